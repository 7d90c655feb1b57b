package form

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/waypoint"
)

// A Decoder populates structs from submitted form values and validates them,
// including the "enum" rule over [waypoint.Enumerable] fields.
//
// Enum members themselves do not decode directly from strings -
// a string alone cannot name its Enum -
// so structs carry the submitted primitive and the application coerces it
// with [Coerce], or sets a Member field and tags it `validate:"enum"`.
type Decoder struct {
	dec   *schema.Decoder
	valid validator
}

// NewDecoder constructs a Decoder, which applies default configuration.
func NewDecoder() *Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return &Decoder{dec: dec, valid: newValidator()}
}

// Decode populates structPtr from vals and then validates it.
//
// Validation failures return as ValidationErrors for per-field reporting;
// issues with how structPtr itself is put together escalate wrapped in
// waypoint sentinels instead.
func (d *Decoder) Decode(structPtr any, vals url.Values) error {
	if err := d.dec.Decode(structPtr, vals); err != nil {
		return translateDecoderError(err)
	}

	return d.valid.validate(structPtr)
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a submission and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE: outside other errors handled below,
	// the schema package appears to always use MultiError to wrap errors up.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", waypoint.ErrNotValid, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			ve := ValidationError{
				Field: err.Key,
				// NOTE: for non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			}

			validErrs = append(validErrs, ve)

		case schema.UnknownKeyError:
			ve := ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			}

			validErrs = append(validErrs, ve)

		default:
			// NOTE: a field lacking a registered schema.Converter only errors
			// once a url.Values actually sets its key; surface it immediately.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", waypoint.ErrBadConfig)
			}

			return fmt.Errorf("%w: %s", waypoint.ErrUnexpected, err)
		}
	}

	return validErrs
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
