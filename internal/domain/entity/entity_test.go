package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in     string
		want   Gender
		wantOK bool
	}{
		{in: "Male", want: GenderMale, wantOK: true},
		{in: " female ", want: GenderFemale, wantOK: true},
		{in: "OTHER", want: GenderOther, wantOK: true},
		{in: "unknown"},
		{in: ""},
	}

	for _, tt := range tests {
		got, ok := ParseGender(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParsePersonField(t *testing.T) {
	field, ok := ParsePersonField("email")
	assert.True(t, ok)
	assert.Equal(t, PersonFieldEmail, field)

	field, ok = ParsePersonField("countryid")
	assert.True(t, ok)
	assert.Equal(t, PersonFieldCountry, field)
	assert.Equal(t, "Country", field.Label())

	_, ok = ParsePersonField("PIN")
	assert.False(t, ok)
}

func TestRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"Admin", "Root", "User", "admin"})
	assert.Equal(t, Roles{RoleAdmin, RoleUser}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.False(t, Roles{RoleUser}.Contains(RoleAdmin))
	assert.Equal(t, []string{"Admin", "User"}, roles.ToStrings())
}

func TestPerson_CountryName(t *testing.T) {
	var nilPerson *Person
	assert.Empty(t, nilPerson.CountryName())
	assert.Empty(t, (&Person{}).CountryName())
	assert.Equal(t, "India", (&Person{Country: &Country{Name: "India"}}).CountryName())
}
