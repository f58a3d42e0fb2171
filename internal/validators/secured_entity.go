package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-secure-url/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPayload checks that exactly one of url and file is provided.
	FieldPayload = "payload"

	// FieldURL checks url syntax and scheme.
	FieldURL = "url"

	// FieldFile checks that an uploaded file has a name and content.
	FieldFile = "file"

	// FieldPassword checks that an access password was submitted.
	FieldPassword = "password"

	// FieldLogin checks that an account login is not blank.
	FieldLogin = "login"
)

// allowedURLSchemes lists the schemes a secured link may use.
var allowedURLSchemes = []string{"http", "https", "ftp", "ftps"}

// SecuredEntityValidator implements the Validator interface for the payloads
// accepted by the secure-url service: create requests, access requests and
// account credentials.
type SecuredEntityValidator struct {
	validate *validator.Validate
}

// NewSecuredEntityValidator constructs a new SecuredEntityValidator
// and returns it as the Validator interface.
func NewSecuredEntityValidator() Validator {
	return &SecuredEntityValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches validation based on the dynamic type of obj. Both value
// and pointer forms are accepted.
//
// Supported types:
//   - models.CreateSecuredEntityRequest: payload, url, file
//   - models.AccessRequest: password
//   - models.User: login, password
//
// Fields are checked in the given order and the first failure is returned.
func (v *SecuredEntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSecuredEntityRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateSecuredEntityRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.AccessRequest:
		return v.validateAccessRequest(ctx, value, fields...)
	case *models.AccessRequest:
		return v.validateAccessRequest(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateRequest checks the payload shape before the url itself, so a
// request with both fields set reports the conflict rather than a bad url.
func (v *SecuredEntityValidator) validateCreateRequest(ctx context.Context, request models.CreateSecuredEntityRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPayload, FieldURL, FieldFile}
	}

	hasURL := strings.TrimSpace(request.URL) != ""
	hasFile := request.File != nil

	for _, f := range fields {
		switch f {
		case FieldPayload:
			if !hasURL && !hasFile {
				return ErrNoURLOrFileProvided
			}
			if hasURL && hasFile {
				return ErrBothURLAndFileProvided
			}
		case FieldURL:
			if hasURL {
				if err := v.validateURL(ctx, request.URL); err != nil {
					return err
				}
			}
		case FieldFile:
			if hasFile && (request.File.Name == "" || request.File.Size <= 0) {
				return ErrEmptyFile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SecuredEntityValidator) validateURL(ctx context.Context, raw string) error {
	if err := v.validate.VarCtx(ctx, raw, "required,url"); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	for _, scheme := range allowedURLSchemes {
		if strings.EqualFold(parsed.Scheme, scheme) {
			return nil
		}
	}

	return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
}

func (v *SecuredEntityValidator) validateAccessRequest(_ context.Context, request models.AccessRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if request.Password == nil || *request.Password == "" {
				return ErrMissingPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SecuredEntityValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
