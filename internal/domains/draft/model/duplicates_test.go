package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/internal/domains/draft/model"
)

func TestDuplicateFirstNames_FlagsEveryOccurrence(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 2}, {Adults: 1}})

	roster.Rooms[0].Adults[0].FirstName = "John"
	roster.Rooms[0].Adults[1].FirstName = "Mary"
	roster.Rooms[1].Adults[0].FirstName = "john"

	result := model.DuplicateFirstNames(roster)

	assert.Len(t, result, 2)

	first := model.FieldKey{Room: 0, GuestType: model.GuestTypeAdult, Index: 0, Field: model.FieldFirstName}
	second := model.FieldKey{Room: 1, GuestType: model.GuestTypeAdult, Index: 0, Field: model.FieldFirstName}

	assert.Equal(t, model.MsgFirstNameUnique, result[first])
	assert.Equal(t, model.MsgFirstNameUnique, result[second])
}

func TestDuplicateFirstNames_NormalizesCaseAndSpace(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 1, Children: 1}})

	roster.Rooms[0].Adults[0].FirstName = "  Emma "
	roster.Rooms[0].Children[0].FirstName = "EMMA"

	result := model.DuplicateFirstNames(roster)

	assert.Len(t, result, 2)
}

func TestDuplicateFirstNames_IgnoresEmptyNames(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 3}})

	// Two untouched records share an empty first name; that is not a clash.
	roster.Rooms[0].Adults[0].FirstName = "John"

	result := model.DuplicateFirstNames(roster)

	assert.Empty(t, result)
}

func TestDuplicateFirstNames_UniqueNamesPass(t *testing.T) {
	roster := model.NewRoster([]model.Occupancy{{Adults: 2, Children: 1}})

	roster.Rooms[0].Adults[0].FirstName = "John"
	roster.Rooms[0].Adults[1].FirstName = "Mary"
	roster.Rooms[0].Children[0].FirstName = "Emma"

	assert.Empty(t, model.DuplicateFirstNames(roster))
}

func TestFieldKeyString(t *testing.T) {
	adult := model.FieldKey{Room: 0, GuestType: model.GuestTypeAdult, Index: 1, Field: model.FieldFirstName}
	child := model.FieldKey{Room: 2, GuestType: model.GuestTypeChild, Index: 0, Field: model.FieldTitle}

	assert.Equal(t, "rooms[0].adults[1].firstName", adult.String())
	assert.Equal(t, "rooms[2].children[0].title", child.String())
}
