package service

import "testing"

func TestEmailPattern(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"new@example.com", true},
		{"first.last@example.com", true},
		{"user+tag@sub.example.co", true},
		{"o'brien@example.com", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"", false},
		{"@example.com", false},
		{"user@", false},
		{"user@@example.com", false},
		{"user@example", false},
		{".user@example.com", false},
		{"user.@example.com", false},
		{"us..er@example.com", false},
		{"user@-example.com", false},
		{"user@example-.com", false},
		{"user@example.com ", false},
		// the pattern is lowercase-oriented and case-sensitive
		{"User@example.com", false},
		{"user@Example.com", false},
	}

	for _, tt := range tests {
		if got := emailPattern.MatchString(tt.email); got != tt.want {
			t.Errorf("emailPattern.MatchString(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
