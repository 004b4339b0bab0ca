// Package validation wraps go-playground/validator with the contact rules
// and turns failures into domain validation errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// AdultAge is the minimum age accepted for a date of birth.
const AdultAge = 18

// Validator validates request structs.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New builds a validator with the adult and pin rules registered.
func New() *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}

	// Report fields by their JSON name.
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})
	_ = v.validate.RegisterValidation("adult", v.isAdult)
	_ = v.validate.RegisterValidation("pin", isPIN)

	return v
}

// Struct validates s and returns a *domainerrors.ValidationError listing
// every failed field, or nil.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// isAdult accepts a nil date and any date at least AdultAge years ago.
func (v *Validator) isAdult(fl validator.FieldLevel) bool {
	var dob time.Time
	switch val := fl.Field().Interface().(type) {
	case time.Time:
		dob = val
	case *time.Time:
		if val == nil {
			return true
		}
		dob = *val
	default:
		return false
	}

	return !dob.After(v.now().AddDate(-AdultAge, 0, 0))
}

// isPIN accepts an empty value and any value of exactly entity.PINLength characters.
func isPIN(fl validator.FieldLevel) bool {
	s := fl.Field().String()

	return s == "" || utf8.RuneCountInString(s) == entity.PINLength
}

func message(fe validator.FieldError) string {
	label := Label(fe.StructField())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid Email Address"
	case "max":
		return fmt.Sprintf("%s can't exceed %s characters", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "adult":
		return "You must be at least 18 years old to register."
	case "pin":
		return fmt.Sprintf("PIN must be exactly %d characters", entity.PINLength)
	case "eqfield":
		return fmt.Sprintf("%s and %s do not match", label, Label(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// Label turns a Go field name such as PersonName into "Person Name".
func Label(field string) string {
	switch field {
	case "PIN":
		return "PIN"
	case "CountryID":
		return "Country"
	case "DateOfBirth":
		return "Date of Birth"
	}

	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	return b.String()
}
