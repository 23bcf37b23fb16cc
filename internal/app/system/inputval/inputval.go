// Package inputval validates caller-supplied identity fields before they
// reach the stores.
package inputval

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 30
)

var (
	ErrUsernameLength = fmt.Errorf("username must be %d-%d characters", UsernameMinLen, UsernameMaxLen)
	ErrEmailSyntax    = errors.New("email address is not valid")
	ErrPasswordEmpty  = errors.New("password is required")
)

// Username checks the 3-30 character length rule. Length is counted in
// runes, not bytes, so multibyte handles are measured the way users see
// them. No character-class rule exists; any non-space handle of valid
// length is accepted.
func Username(username string) error {
	if n := utf8.RuneCountInString(username); n < UsernameMinLen || n > UsernameMaxLen {
		return ErrUsernameLength
	}
	return nil
}

// Email checks address syntax. Addresses with a display name part
// ("Name <a@b.c>") are rejected; only the bare addr-spec form is accepted.
func Email(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailSyntax
	}
	if !strings.Contains(email, "@") {
		return ErrEmailSyntax
	}
	return nil
}

// Password only requires presence; the value is opaque to the server.
func Password(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	return nil
}
