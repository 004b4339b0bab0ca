package validation

import (
	"testing"
	"time"

	domainerrors "contacts/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	PersonName  string     `json:"person_name" validate:"required,max=45"`
	Email       string     `json:"email" validate:"required,email,max=30"`
	DateOfBirth *time.Time `json:"date_of_birth" validate:"omitempty,adult"`
	PIN         *string    `json:"pin" validate:"omitempty,pin"`
}

func fixedValidator() *Validator {
	v := New()
	v.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	return v
}

func ptr[T any](v T) *T { return &v }

func TestValidator_Valid(t *testing.T) {
	v := fixedValidator()

	err := v.Struct(&sample{
		PersonName:  "Ada",
		Email:       "ada@example.com",
		DateOfBirth: ptr(time.Date(2006, 6, 15, 0, 0, 0, 0, time.UTC)),
		PIN:         ptr("1234"),
	})

	require.NoError(t, err)
}

func TestValidator_CollectsEveryField(t *testing.T) {
	v := fixedValidator()

	err := v.Struct(&sample{
		Email:       "not-an-email",
		DateOfBirth: ptr(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)),
		PIN:         ptr("12"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var vErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []domainerrors.FieldError{
		{Field: "person_name", Message: "Person Name is required"},
		{Field: "email", Message: "Invalid Email Address"},
		{Field: "date_of_birth", Message: "You must be at least 18 years old to register."},
		{Field: "pin", Message: "PIN must be exactly 4 characters"},
	}, vErr.Fields)
}

func TestValidator_AdultBoundary(t *testing.T) {
	v := fixedValidator()

	tests := []struct {
		name string
		dob  time.Time
		ok   bool
	}{
		{name: "exactly eighteen", dob: time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC), ok: true},
		{name: "one day short", dob: time.Date(2006, 6, 16, 0, 0, 0, 0, time.UTC), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&sample{PersonName: "A", Email: "a@b.co", DateOfBirth: ptr(tt.dob)})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidator_MaxLength(t *testing.T) {
	v := fixedValidator()

	err := v.Struct(&sample{PersonName: "A", Email: "averyveryverylongaddress@example.com"})

	var vErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "Email can't exceed 30 characters", vErr.Fields[0].Message)
	assert.Equal(t, "Email can't exceed 30 characters", vErr.Message())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Person Name", Label("PersonName"))
	assert.Equal(t, "Date of Birth", Label("DateOfBirth"))
	assert.Equal(t, "Country", Label("CountryID"))
	assert.Equal(t, "PIN", Label("PIN"))
	assert.Equal(t, "Email", Label("Email"))
}
