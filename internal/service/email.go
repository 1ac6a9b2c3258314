package service

import "regexp"

// emailPattern accepts a lowercase RFC-5322-like address: dot-separated
// local-part segments of alphanumerics and allowed punctuation, and
// dot-separated domain labels with no leading/trailing hyphen. Matching is
// deliberately case-sensitive; emails are expected to be stored lowercase.
var emailPattern = regexp.MustCompile(
	"^[a-z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
		"@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$")
