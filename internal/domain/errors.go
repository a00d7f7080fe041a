package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ValidationErrors is the batch of every field error found in one submission,
// in detection order.
type ValidationErrors struct {
	Fields []ValidationError
}

func (e ValidationErrors) Error() string {
	switch len(e.Fields) {
	case 0:
		return "validation error"
	case 1:
		return e.Fields[0].Msg
	}
	return fmt.Sprintf("%d validation errors: %s", len(e.Fields), strings.Join(e.Messages(), "; "))
}

// Messages returns the human-readable message of every field error.
func (e ValidationErrors) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Msg)
	}
	return out
}

// PayloadTooLargeError is returned when the serialized payload does not fit the
// largest QR symbol at the configured error-correction level.
type PayloadTooLargeError struct {
	Size int
	Err  error
}

func (e PayloadTooLargeError) Error() string {
	if e.Size > 0 {
		return fmt.Sprintf("payload too large for a QR code (%d bytes)", e.Size)
	}
	return "payload too large for a QR code"
}

func (e PayloadTooLargeError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var batch ValidationErrors
	if errors.As(err, &batch) {
		return true
	}
	var target ValidationError
	return errors.As(err, &target)
}

func IsPayloadTooLarge(err error) bool {
	var target PayloadTooLargeError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// ValidationMessages extracts the ordered messages of a validation failure.
// It returns nil when err is not a validation error.
func ValidationMessages(err error) []string {
	var batch ValidationErrors
	if errors.As(err, &batch) {
		return batch.Messages()
	}
	var single ValidationError
	if errors.As(err, &single) {
		if single.Msg != "" {
			return []string{single.Msg}
		}
		return []string{single.Error()}
	}
	return nil
}
