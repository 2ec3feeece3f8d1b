package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"pronet-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	minUsernameLen = 3
	maxUsernameLen = 32
)

var (
	usernameRe = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9._-]*[a-z0-9])?$`)
)

func ValidatePage(page string) (int, error) {
	p := 1
	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil && p < 0 {
			return p, errors.New("invalid page")
		}
		return p, nil
	}

	return p, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateSignup(r auth.SignupRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	username := strings.ToLower(strings.TrimSpace(r.Username))
	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	// username (required + length + allowed chars)
	if username == "" {
		errs["username"] = "username is required"
	} else if l := utf8.RuneCountInString(username); l < minUsernameLen || l > maxUsernameLen {
		errs["username"] = "username length must be 3–32 characters"
	} else if !usernameRe.MatchString(username) {
		errs["username"] = "allowed characters: lowercase letters, digits, '.', '_', '-'"
	}

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	login := strings.ToLower(strings.TrimSpace(r.Login))
	password := r.Password

	// login (required; username or email, resolved by the service)
	if login == "" {
		errs["login"] = "login is required"
	}

	// password (required + length)
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
