package env

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalid is matched by every validation failure returned from Load and LoadPublic.
var ErrInvalid = errors.New("invalid environment configuration")

// FieldError describes one variable that failed validation.
// It never carries the offending value, which may be a secret.
type FieldError struct {
	Key     string
	Rule    string
	Message string
}

func (f FieldError) String() string {
	return f.Key + ": " + f.Message
}

// Error lists every variable that failed validation for a profile.
type Error struct {
	Profile string
	Fields  []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}

	return fmt.Sprintf("%s (%s profile): %s", ErrInvalid, e.Profile, strings.Join(parts, "; "))
}

// Unwrap makes errors.Is(err, ErrInvalid) work.
func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Keys returns the failing variable names in validation order.
func (e *Error) Keys() []string {
	keys := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		keys = append(keys, f.Key)
	}

	return keys
}

const reportWidth = 64

// Report writes a human readable, boxed diagnostic for err to w.
func Report(w io.Writer, err *Error) {
	var b strings.Builder

	border := "+" + strings.Repeat("-", reportWidth) + "+\n"
	line := func(s string) {
		fmt.Fprintf(&b, "| %-*s |\n", reportWidth-2, s)
	}

	b.WriteString("\n" + border)
	line(fmt.Sprintf("ERROR: invalid environment variables (%s profile)", err.Profile))
	b.WriteString(border)

	for _, f := range err.Fields {
		line("x " + f.String())
	}

	b.WriteString(border)
	line("Fix:")
	line("1. copy .env.example to .env")
	line("2. fill in the missing values")
	line("3. restart the server")
	b.WriteString(border)

	_, _ = io.WriteString(w, b.String())
}
