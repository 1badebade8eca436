// Package bind decodes and validates JSON request bodies for handlers
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	perr "jejenorm/internal/platform/errors"
	"jejenorm/internal/platform/logger"
)

// DefaultMaxBytes caps request bodies at 1 MiB
const DefaultMaxBytes = 1 << 20

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds the validator and its English translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Get returns the validator singleton. Messages name fields by their json tag
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// RegisterValidation registers a custom tag
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes       int64 // 0 means DefaultMaxBytes, negative means no limit
	AllowUnknown   bool
	AllowEmptyBody bool
}

// ParseJSON decodes one JSON document into T and validates it.
// Malformed or oversized bodies map to ErrorCodeJSON / ErrorCodeTooLarge, failed
// validation to ErrorCodeValidation with the offending field attached
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	var o JSONOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes == 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Debug().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.MaxBytes > 0 {
		body = http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	}
	dec := json.NewDecoder(body)
	if !o.AllowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return zero, perr.TooLargef("request body exceeds %d bytes", tooBig.Limit)
		case errors.Is(err, io.EOF):
			if o.AllowEmptyBody {
				return dst, nil
			}
			return zero, perr.JSONErrf("empty body")
		default:
			return zero, perr.Wrapf(err, perr.ErrorCodeJSON, "invalid JSON: %v", err)
		}
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		return zero, perr.WithField(perr.Validationf("%s", msg), field)
	}
	return dst, nil
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator)
	}
	return "", err.Error()
}

// registerShort swaps a default translation for a terser one
func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
