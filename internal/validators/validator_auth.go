package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-session/models"
)

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldResetToken  = "token"
	FieldNewPassword = "new_password"
)

const (
	// MinPasswordLength is counted in characters.
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// AuthRequestValidator checks the payloads of the authentication endpoints.
// The same rules run in the terminal forms and on the server.
type AuthRequestValidator struct{}

func NewAuthRequestValidator() Validator {
	return &AuthRequestValidator{}
}

func (v *AuthRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.SignInRequest:
		return v.validateSignIn(value, fields...)
	case *models.SignInRequest:
		return v.validateSignIn(*value, fields...)

	case models.ForgotPasswordRequest:
		return v.validateForgotPassword(value, fields...)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPassword(*value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthRequestValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldEmail:
			err = ValidateEmail(req.Email)
		case FieldPassword:
			err = ValidatePassword(req.Password)
		case FieldFirstName:
			if strings.TrimSpace(req.FirstName) == "" {
				err = ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(req.LastName) == "" {
				err = ErrEmptyLastName
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateSignIn only checks presence: the length rule must not leak which
// accounts predate it.
func (v *AuthRequestValidator) validateSignIn(req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := ValidateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AuthRequestValidator) validateForgotPassword(req models.ForgotPasswordRequest, fields ...string) error {
	for _, field := range fields {
		if field != FieldEmail {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return ValidateEmail(req.Email)
}

func (v *AuthRequestValidator) validateResetPassword(req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldResetToken, FieldNewPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldResetToken:
			if strings.TrimSpace(req.Token) == "" {
				return ErrEmptyResetToken
			}
		case FieldNewPassword:
			if err := ValidatePassword(req.NewPassword); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// ValidateEmail accepts a bare RFC 5322 address with a dotted domain.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	at := strings.LastIndexByte(email, '@')
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ErrInvalidEmail
	}

	return nil
}

func ValidatePassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

// ValidatePasswordConfirmation is used by forms that ask for the new
// password twice.
func ValidatePasswordConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordsDoNotMatch
	}
	return ValidatePassword(password)
}
