package model

import (
	"strings"
)

// DuplicateFirstNames flags every traveller whose trimmed, lowercased first
// name occurs more than once anywhere in the roster. It needs full-roster
// context, so it runs only on submit, never per keystroke.
func DuplicateFirstNames(r Roster) ErrorMap {
	frequency := map[string]int{}

	forEachPerson(r, func(_ FieldKey, p Person) {
		name := normalizeName(p.FirstName)
		if name != "" {
			frequency[name]++
		}
	})

	result := ErrorMap{}

	forEachPerson(r, func(key FieldKey, p Person) {
		name := normalizeName(p.FirstName)
		if name != "" && frequency[name] > 1 {
			key.Field = FieldFirstName
			result[key] = MsgFirstNameUnique
		}
	})

	return result
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func forEachPerson(r Roster, fn func(key FieldKey, p Person)) {
	for roomIdx, room := range r.Rooms {
		for adultIdx, adult := range room.Adults {
			fn(FieldKey{Room: roomIdx, GuestType: GuestTypeAdult, Index: adultIdx}, adult)
		}

		for childIdx, child := range room.Children {
			fn(FieldKey{Room: roomIdx, GuestType: GuestTypeChild, Index: childIdx}, child)
		}
	}
}
