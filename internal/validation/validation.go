// Package validation holds the pure input checks for the contact form.
// It never touches storage or the network.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/folio/backend/internal/model"
)

// Field limits for contact-form input. Lengths are counted in runes on the
// trimmed value.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MinMessageLength = 10
	MaxMessageLength = 2000
)

// emailPattern accepts local@domain where the domain contains a dot and no
// part contains whitespace or a second "@".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a field name to a human-readable violation message.
// It implements error so the service layer can return it directly.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

// ValidateContactInput checks name/email/message against the form rules and
// reports every violated field at once. It returns nil when the input is
// valid. Values are trimmed before checking; callers should persist the
// trimmed form (see NormalizeContactInput).
func ValidateContactInput(in model.ContactInput) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case utf8.RuneCountInString(name) > MaxNameLength:
		errs["name"] = "Name must be at most 100 characters"
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case utf8.RuneCountInString(email) > MaxEmailLength:
		errs["email"] = "Email must be at most 255 characters"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email address"
	}

	message := strings.TrimSpace(in.Message)
	switch {
	case utf8.RuneCountInString(message) < MinMessageLength:
		errs["message"] = "Message must be at least 10 characters"
	case utf8.RuneCountInString(message) > MaxMessageLength:
		errs["message"] = "Message must be at most 2000 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// NormalizeContactInput returns the input with each field trimmed, the form
// that validation judged and that gets persisted.
func NormalizeContactInput(in model.ContactInput) model.ContactInput {
	return model.ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
}
