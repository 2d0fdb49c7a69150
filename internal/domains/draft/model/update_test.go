package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/internal/domains/draft/model"
)

func TestUpdate_AppliesFieldAndReportsVerdict(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 2, Children: 1}})

	updated, verdict, err := model.Update(roster, 0, model.GuestTypeAdult, 1, model.FieldFirstName, "Jane")

	assert.NoError(t, err)
	assert.Empty(t, verdict)

	person, ok := updated.Person(0, model.GuestTypeAdult, 1)
	assert.True(t, ok)
	assert.Equal(t, "Jane", person.FirstName)
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 2, Children: 1}})

	updated, _, err := model.Update(roster, 0, model.GuestTypeAdult, 0, model.FieldFirstName, "Jane")
	assert.NoError(t, err)

	original, _ := roster.Person(0, model.GuestTypeAdult, 0)
	changed, _ := updated.Person(0, model.GuestTypeAdult, 0)

	assert.Empty(t, original.FirstName)
	assert.Equal(t, "Jane", changed.FirstName)

	// Untouched travellers are shared between the two values.
	other, _ := updated.Person(0, model.GuestTypeChild, 0)
	assert.Equal(t, model.GuestTypeChild, other.Type)
}

func TestUpdate_NameMaskingLeavesRosterUntouched(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 1}})

	seeded, _, err := model.Update(roster, 0, model.GuestTypeAdult, 0, model.FieldFirstName, "John")
	assert.NoError(t, err)

	masked, verdict, err := model.Update(seeded, 0, model.GuestTypeAdult, 0, model.FieldFirstName, "John3")

	assert.NoError(t, err)
	assert.Equal(t, model.MsgNameCharset, verdict)

	person, _ := masked.Person(0, model.GuestTypeAdult, 0)
	assert.Equal(t, "John", person.FirstName)
}

func TestUpdate_ShortNameIsStoredWithVerdict(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 1}})

	// A single letter is within the charset, so it lands in the roster even
	// though the length rule reports it.
	updated, verdict, err := model.Update(roster, 0, model.GuestTypeAdult, 0, model.FieldFirstName, "J")

	assert.NoError(t, err)
	assert.Equal(t, model.MsgNameTooShort, verdict)

	person, _ := updated.Person(0, model.GuestTypeAdult, 0)
	assert.Equal(t, "J", person.FirstName)
}

func TestUpdate_ContactFieldsLeadOnly(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 2}})

	for _, field := range []string{model.FieldEmail, model.FieldPhoneCountryCode, model.FieldPhoneNumber} {
		_, _, err := model.Update(roster, 0, model.GuestTypeAdult, 1, field, "value")
		assert.ErrorIs(t, err, model.ErrContactOnLeadOnly)
	}

	updated, verdict, err := model.Update(roster, 0, model.GuestTypeAdult, 0, model.FieldEmail, "lead@example.com")
	assert.NoError(t, err)
	assert.Empty(t, verdict)

	lead := updated.Lead()
	assert.Equal(t, "lead@example.com", lead.Email)
}

func TestUpdate_OutOfRangeAddress(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 1}})

	tests := []struct {
		name      string
		room      int
		guestType model.GuestType
		index     int
	}{
		{name: "room out of range", room: 1, guestType: model.GuestTypeAdult, index: 0},
		{name: "negative room", room: -1, guestType: model.GuestTypeAdult, index: 0},
		{name: "adult index out of range", room: 0, guestType: model.GuestTypeAdult, index: 1},
		{name: "no children in room", room: 0, guestType: model.GuestTypeChild, index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := model.Update(roster, tt.room, tt.guestType, tt.index, model.FieldFirstName, "John")
			assert.ErrorIs(t, err, model.ErrGuestOutOfRange)
		})
	}
}

func TestUpdate_InvalidTitleLeavesRosterUntouched(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 1, Children: 1}})

	updated, verdict, err := model.Update(roster, 0, model.GuestTypeChild, 0, model.FieldTitle, "Mr")

	assert.NoError(t, err)
	assert.Equal(t, model.MsgTitleInvalid, verdict)

	child, _ := updated.Person(0, model.GuestTypeChild, 0)
	assert.Empty(t, child.Title)
}

func TestUpdate_RecomputesCompletion(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 1}})

	steps := []struct {
		field string
		value string
	}{
		{model.FieldTitle, "Mr"},
		{model.FieldFirstName, "John"},
		{model.FieldLastName, "Smith"},
		{model.FieldEmail, "john@example.com"},
		{model.FieldPhoneCountryCode, "44"},
	}

	var err error
	for _, step := range steps {
		roster, _, err = model.Update(roster, 0, model.GuestTypeAdult, 0, step.field, step.value)
		assert.NoError(t, err)
		assert.False(t, roster.Lead().IsCompleted)
	}

	roster, _, err = model.Update(roster, 0, model.GuestTypeAdult, 0, model.FieldPhoneNumber, "7700900123")
	assert.NoError(t, err)
	assert.True(t, roster.Lead().IsCompleted)
	assert.True(t, roster.IsComplete())
}

func TestUpdate_UnknownField(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 1}})

	_, _, err := model.Update(roster, 0, model.GuestTypeAdult, 0, "nickname", "JJ")
	assert.Error(t, err)
}
