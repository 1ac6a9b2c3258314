package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/align-mind/accounts/internal/common"
	"github.com/align-mind/accounts/internal/models"
	"github.com/google/uuid"
)

func parseID(args []string, usage string) (uuid.UUID, error) {
	if len(args) == 0 {
		printlnFn("Usage: " + usage)
		return uuid.Nil, errors.New("missing id")
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		printlnFn("Invalid id:", args[0])
		return uuid.Nil, err
	}
	return id, nil
}

func formatUser(u *models.User) string {
	changed := "never"
	if u.ChangedPasswordAt != nil {
		changed = u.ChangedPasswordAt.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf("%s  %s  <%s>  password changed: %s  updated: %s",
		u.UserID, u.Username, u.Email, changed, u.UpdatedAt.Format("2006-01-02 15:04:05"))
}

func formatProfile(p *models.Profile) string {
	photo := "-"
	if p.PhotoURL != nil {
		photo = *p.PhotoURL
	}
	return fmt.Sprintf("%s  %s %s  photo: %s  owner: %s",
		p.ProfileID, p.FirstName, p.LastName, photo, p.UserID)
}

func (a *App) ShowUser(ctx context.Context, args []string) error {
	id, err := parseID(args, "user <id>")
	if err != nil {
		return err
	}

	user, err := a.accounts.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("User not found")
			return nil
		}
		a.logger.Error(ctx, "user lookup failed", "user_id", id, "err", err)
		return err
	}

	printlnFn(formatUser(user))
	return nil
}

func (a *App) ShowUserByEmail(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: email <addr>")
		return errors.New("missing email")
	}

	user, err := a.accounts.GetUserByEmail(ctx, args[0])
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("User not found")
			return nil
		}
		a.logger.Error(ctx, "user lookup failed", "email", args[0], "err", err)
		return err
	}

	printlnFn(formatUser(user))
	return nil
}

func (a *App) ShowProfile(ctx context.Context, args []string) error {
	id, err := parseID(args, "profile <id>")
	if err != nil {
		return err
	}

	profile, err := a.accounts.GetUserProfile(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No such user or no profile")
			return nil
		}
		a.logger.Error(ctx, "profile lookup failed", "user_id", id, "err", err)
		return err
	}

	printlnFn(formatProfile(profile))
	return nil
}

func (a *App) VerifyEmail(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: verify <addr>")
		return errors.New("missing email")
	}

	ok, err := a.accounts.VerifyNewEmail(ctx, args[0])
	if err != nil {
		a.logger.Error(ctx, "email verification failed", "email", args[0], "err", err)
		return err
	}

	if ok {
		printlnFn("Email is valid and available")
	} else {
		printlnFn("Email is malformed or already taken")
	}
	return nil
}

func (a *App) NewProfile(ctx context.Context, args []string) error {
	id, err := parseID(args, "newprofile <id>")
	if err != nil {
		return err
	}

	profile := &models.Profile{}
	if profile.FirstName, err = GetSimpleText(a.reader, "First name", os.Stdout); err != nil {
		return err
	}
	if profile.LastName, err = GetSimpleText(a.reader, "Last name", os.Stdout); err != nil {
		return err
	}
	photo, err := GetSimpleText(a.reader, "Photo URL (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if photo != "" {
		profile.PhotoURL = &photo
	}

	created, err := a.accounts.CreateProfile(ctx, id, profile)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("User not found")
			return nil
		}
		a.logger.Error(ctx, "profile creation failed", "user_id", id, "err", err)
		return err
	}

	printlnFn("Created:", formatProfile(created))
	return nil
}

func (a *App) EditUser(ctx context.Context, args []string) error {
	id, err := parseID(args, "edituser <id>")
	if err != nil {
		return err
	}

	upd := models.UserUpdate{}

	username, err := GetSimpleText(a.reader, "New username (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if username != "" {
		upd.Username = &username
	}

	email, err := GetSimpleText(a.reader, "New email (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if email != "" {
		upd.Email = &email
	}

	answer, err := GetSimpleText(a.reader, "Change password? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if answer == "y" || answer == "Y" {
		pw, err := GetPassword(os.Stdout)
		if err != nil {
			return err
		}
		password := string(pw)
		upd.Password = &password
	}

	if err := a.accounts.UpdateUser(ctx, id, upd); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("User not found")
			return nil
		}
		a.logger.Error(ctx, "user update failed", "user_id", id, "err", err)
		return err
	}

	printlnFn("Updated")
	return nil
}

func (a *App) EditProfile(ctx context.Context, args []string) error {
	id, err := parseID(args, "editprofile <id>")
	if err != nil {
		return err
	}

	upd := models.ProfileUpdate{}

	first, err := GetSimpleText(a.reader, "First name (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if first != "" {
		upd.FirstName = &first
	}

	last, err := GetSimpleText(a.reader, "Last name (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if last != "" {
		upd.LastName = &last
	}

	photo, err := GetSimpleText(a.reader, "Photo URL (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if photo != "" {
		upd.PhotoURL = &photo
	}

	if err := a.accounts.UpdateProfile(ctx, id, upd); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("No such user or no profile")
			return nil
		}
		a.logger.Error(ctx, "profile update failed", "user_id", id, "err", err)
		return err
	}

	printlnFn("Updated")
	return nil
}

func (a *App) DeleteAccount(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete <id>")
	if err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %s and its profile? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		printlnFn("Aborted")
		return nil
	}

	if err := a.accounts.DeleteUserWithProfile(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("User not found")
			return nil
		}
		a.logger.Error(ctx, "account deletion failed", "user_id", id, "err", err)
		return err
	}

	printlnFn("Deleted")
	return nil
}
