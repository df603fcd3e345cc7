package roster

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-roster/internal/types"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// validate is shared: a *validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json key so callers see "rollno", not "RollNumber".
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// The built-in "numeric" tag accepts signs and decimals; a mobile number
	// is exactly ten ASCII digits and nothing else.
	if err := v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// normalize trims the surrounding whitespace of every field.
func normalize(in types.StudentInput) types.StudentInput {
	return types.StudentInput{
		Name:       strings.TrimSpace(in.Name),
		RollNumber: strings.TrimSpace(in.RollNumber),
		Standard:   strings.TrimSpace(in.Standard),
		Mobile:     strings.TrimSpace(in.Mobile),
	}
}

// Validate checks in against the record rules and returns a
// *ValidationError naming the first failing field, in field order.
func Validate(in types.StudentInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Field: fieldErrs[0].Field(), Tag: fieldErrs[0].Tag()}
	}
	return err
}
