package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrEmptyPassword       = errors.New("password is required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 bytes long")
	ErrEmptyFirstName      = errors.New("first name is required")
	ErrEmptyLastName       = errors.New("last name is required")
	ErrEmptyResetToken     = errors.New("reset token is required")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
)
