package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrNoURLOrFileProvided is returned when a create request carries
	// neither a url nor a file.
	ErrNoURLOrFileProvided = errors.New("neither url nor file provided")
	// ErrBothURLAndFileProvided is returned when a create request carries
	// both a url and a file.
	ErrBothURLAndFileProvided = errors.New("both url and file provided")
	// ErrInvalidURL is returned for malformed urls or unsupported schemes.
	ErrInvalidURL = errors.New("invalid url")
	// ErrEmptyFile is returned for zero-length uploads or uploads without a name.
	ErrEmptyFile = errors.New("empty file")

	// ErrMissingPassword is returned when an access request has no password
	// or an empty one.
	ErrMissingPassword = errors.New("password is required")

	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyPassword = errors.New("password is required for account")
)
