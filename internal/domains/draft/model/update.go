package model

import (
	"errors"
	"slices"
)

var (
	ErrGuestOutOfRange   = errors.New("guest address is out of range")
	ErrContactOnLeadOnly = errors.New("contact fields belong to the lead guest only")
)

// Update applies one field change and returns a structurally new roster;
// rooms and travellers not addressed by the change are shared with the input.
// The returned verdict is the field's current validation message (empty when
// valid).
//
// Name fields mask input: a candidate value containing characters outside the
// English-letter charset leaves the roster untouched and only reports the
// charset verdict. This mirrors keystroke rejection, not deferred validation.
func Update(r Roster, room int, guestType GuestType, index int, field, value string) (Roster, string, error) {
	current, ok := r.Person(room, guestType, index)
	if !ok {
		return r, "", ErrGuestOutOfRange
	}

	isLead := IsLead(room, guestType, index)

	switch field {
	case FieldEmail, FieldPhoneCountryCode, FieldPhoneNumber:
		if !isLead {
			return r, "", ErrContactOnLeadOnly
		}
	case FieldFirstName, FieldLastName:
		if !NameAllowed(value) {
			return r, MsgNameCharset, nil
		}
	case FieldTitle:
		if value != "" && !ValidTitle(guestType, value) {
			return r, MsgTitleInvalid, nil
		}
	default:
		return r, "", errors.New("unknown field: " + field)
	}

	updated := current
	switch field {
	case FieldTitle:
		updated.Title = value
	case FieldFirstName:
		updated.FirstName = value
	case FieldLastName:
		updated.LastName = value
	case FieldEmail:
		updated.Email = value
	case FieldPhoneCountryCode:
		updated.PhoneCountryCode = value
	case FieldPhoneNumber:
		updated.PhoneNumber = value
	}

	updated.IsCompleted = PersonComplete(updated, isLead)

	return replacePerson(r, room, guestType, index, updated), ValidateField(field, value), nil
}

// replacePerson clones only the path to the changed record: a new Rooms
// slice, a new guest slice for the affected room, and the replaced Person.
// Every other room keeps its backing arrays.
func replacePerson(r Roster, room int, guestType GuestType, index int, p Person) Roster {
	rooms := slices.Clone(r.Rooms)

	if guestType == GuestTypeChild {
		children := slices.Clone(rooms[room].Children)
		children[index] = p
		rooms[room].Children = children
	} else {
		adults := slices.Clone(rooms[room].Adults)
		adults[index] = p
		rooms[room].Adults = adults
	}

	return Roster{Rooms: rooms}
}
