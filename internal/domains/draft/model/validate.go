package model

import (
	"regexp"
	"slices"
)

// Validation messages are part of the storefront contract; they are shown
// inline next to the offending field.
const (
	MsgNameRequired     = "name is required"
	MsgNameCharset      = "name may only contain English letters"
	MsgNameTooShort     = "name must be at least 2 characters"
	MsgNameTooLong      = "name must be at most 25 characters"
	MsgEmailRequired    = "email is required"
	MsgEmailInvalid     = "email address is invalid"
	MsgPhoneRequired    = "phone number is required"
	MsgPhoneDigitsOnly  = "phone number may only contain digits"
	MsgPhoneTooShort    = "phone number must be at least 7 digits"
	MsgPhoneTooLong     = "phone number must be at most 15 digits"
	MsgCodeRequired     = "country code is required"
	MsgCodeDigitsOnly   = "country code may only contain digits"
	MsgCodeLength       = "country code must be 1 to 4 digits"
	MsgTitleRequired    = "title is required"
	MsgTitleInvalid     = "title is not valid for this traveller"
	MsgFirstNameUnique  = "first name must be unique across travellers"
	MsgUnknownField     = "unknown field"
)

const (
	nameMinLen = 2
	nameMaxLen = 25

	phoneMinLen = 7
	phoneMaxLen = 15

	codeMinLen = 1
	codeMaxLen = 4
)

var (
	namePattern   = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateField checks one candidate value against the rules for the named
// field and returns at most one message, evaluated in fixed precedence:
// required, then charset, then length. An empty string means the value is
// valid.
func ValidateField(field, value string) string {
	switch field {
	case FieldFirstName, FieldLastName:
		return validateName(value)
	case FieldEmail:
		return validateEmail(value)
	case FieldPhoneNumber:
		return validatePhone(value)
	case FieldPhoneCountryCode:
		return validateCountryCode(value)
	case FieldTitle:
		if value == "" {
			return MsgTitleRequired
		}

		return ""
	default:
		return MsgUnknownField
	}
}

// ValidTitle reports whether a title belongs to the enumeration for the
// given guest type.
func ValidTitle(guestType GuestType, title string) bool {
	if guestType == GuestTypeChild {
		return slices.Contains(ChildTitles, title)
	}

	return slices.Contains(AdultTitles, title)
}

// NameAllowed reports whether a candidate name value contains only the
// accepted English-letter charset. Used by the mutator to mask keystrokes.
func NameAllowed(value string) bool {
	return value == "" || namePattern.MatchString(value)
}

func validateName(value string) string {
	if value == "" {
		return MsgNameRequired
	}

	if !namePattern.MatchString(value) {
		return MsgNameCharset
	}

	if len(value) < nameMinLen {
		return MsgNameTooShort
	}

	if len(value) > nameMaxLen {
		return MsgNameTooLong
	}

	return ""
}

func validateEmail(value string) string {
	if value == "" {
		return MsgEmailRequired
	}

	if !emailPattern.MatchString(value) {
		return MsgEmailInvalid
	}

	return ""
}

func validatePhone(value string) string {
	if value == "" {
		return MsgPhoneRequired
	}

	if !digitsPattern.MatchString(value) {
		return MsgPhoneDigitsOnly
	}

	if len(value) < phoneMinLen {
		return MsgPhoneTooShort
	}

	if len(value) > phoneMaxLen {
		return MsgPhoneTooLong
	}

	return ""
}

func validateCountryCode(value string) string {
	if value == "" {
		return MsgCodeRequired
	}

	if !digitsPattern.MatchString(value) {
		return MsgCodeDigitsOnly
	}

	if len(value) < codeMinLen || len(value) > codeMaxLen {
		return MsgCodeLength
	}

	return ""
}
