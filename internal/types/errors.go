package types

import "errors"

// Error kinds shared by the whole application. Callers match them with
// errors.Is. The text is shown to the user verbatim.
var (
	ErrInvalidName        = errors.New("Name must not be empty")
	ErrInvalidPhone       = errors.New("The phone number must be a string of 10 digits")
	ErrInvalidBirthday    = errors.New("Birthday must be in format DD.MM.YYYY")
	ErrPhoneNotFound      = errors.New("Phone number not found")
	ErrRecordNotFound     = errors.New("Contact not found")
	ErrWrongArgumentCount = errors.New("Wrong number of arguments")
)
