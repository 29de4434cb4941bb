package domain

import (
	"errors"
)

// ErrMissingField is returned when a save is attempted without a name or phone.
var ErrMissingField = errors.New("please fill in all fields")

// InvalidPhoneError carries the classifier message for a rejected phone number.
type InvalidPhoneError struct {
	Phone   string
	Message string
}

func (e *InvalidPhoneError) Error() string {
	return e.Message
}
