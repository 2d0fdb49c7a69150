package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/internal/domains/draft/model"
)

func TestValidateField_Names(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty is required", value: "", want: model.MsgNameRequired},
		{name: "digits rejected before length", value: "1", want: model.MsgNameCharset},
		{name: "accented letters rejected", value: "Zoë", want: model.MsgNameCharset},
		{name: "single letter too short", value: "J", want: model.MsgNameTooShort},
		{name: "twenty six letters too long", value: strings.Repeat("a", 26), want: model.MsgNameTooLong},
		{name: "two letters pass", value: "Jo", want: ""},
		{name: "twenty five letters pass", value: strings.Repeat("a", 25), want: ""},
		{name: "apostrophe allowed", value: "O'Brien", want: ""},
		{name: "hyphen allowed", value: "Smith-Jones", want: ""},
		{name: "space allowed", value: "Mary Anne", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ValidateField(model.FieldFirstName, tt.value))
			assert.Equal(t, tt.want, model.ValidateField(model.FieldLastName, tt.value))
		})
	}
}

func TestValidateField_Email(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty is required", value: "", want: model.MsgEmailRequired},
		{name: "missing at sign", value: "john.example.com", want: model.MsgEmailInvalid},
		{name: "missing domain dot", value: "john@example", want: model.MsgEmailInvalid},
		{name: "whitespace rejected", value: "jo hn@example.com", want: model.MsgEmailInvalid},
		{name: "valid address", value: "john@example.com", want: ""},
		{name: "plus tag accepted", value: "john+tag@mail.example.org", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ValidateField(model.FieldEmail, tt.value))
		})
	}
}

func TestValidateField_Phone(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty is required", value: "", want: model.MsgPhoneRequired},
		{name: "letters rejected before length", value: "abc", want: model.MsgPhoneDigitsOnly},
		{name: "six digits too short", value: "123456", want: model.MsgPhoneTooShort},
		{name: "sixteen digits too long", value: strings.Repeat("1", 16), want: model.MsgPhoneTooLong},
		{name: "seven digits pass", value: "1234567", want: ""},
		{name: "fifteen digits pass", value: strings.Repeat("1", 15), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ValidateField(model.FieldPhoneNumber, tt.value))
		})
	}
}

func TestValidateField_CountryCode(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty is required", value: "", want: model.MsgCodeRequired},
		{name: "plus sign rejected", value: "+44", want: model.MsgCodeDigitsOnly},
		{name: "five digits too long", value: "12345", want: model.MsgCodeLength},
		{name: "one digit passes", value: "1", want: ""},
		{name: "four digits pass", value: "1234", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ValidateField(model.FieldPhoneCountryCode, tt.value))
		})
	}
}

func TestValidateField_TitleAndUnknown(t *testing.T) {
	assert.Equal(t, model.MsgTitleRequired, model.ValidateField(model.FieldTitle, ""))
	assert.Equal(t, "", model.ValidateField(model.FieldTitle, "Mr"))
	assert.Equal(t, model.MsgUnknownField, model.ValidateField("nickname", "anything"))
}

func TestValidTitle(t *testing.T) {
	for _, title := range model.AdultTitles {
		assert.True(t, model.ValidTitle(model.GuestTypeAdult, title))
		assert.False(t, model.ValidTitle(model.GuestTypeChild, title))
	}

	for _, title := range model.ChildTitles {
		assert.True(t, model.ValidTitle(model.GuestTypeChild, title))
		assert.False(t, model.ValidTitle(model.GuestTypeAdult, title))
	}
}

func TestNameAllowed(t *testing.T) {
	assert.True(t, model.NameAllowed(""))
	assert.True(t, model.NameAllowed("J"))
	assert.True(t, model.NameAllowed("O'Brien-Smith Jr"))
	assert.False(t, model.NameAllowed("John3"))
	assert.False(t, model.NameAllowed("José"))
}
