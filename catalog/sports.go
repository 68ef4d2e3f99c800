// Package catalog normalizes facility and venue data coming from the
// SportHub backend: sport-name resolution, payload adaptation across the two
// field-naming conventions the backend has shipped, venue resolution with
// static fallbacks, and view-model assembly for display surfaces.
package catalog

import "strings"

// Sport ties together the three spellings a sport has in the system: the
// UI-facing key ("padel"), the backend database name ("paddle"), and the
// display label ("Pádel"), plus every alias accepted on input.
type Sport struct {
	ID      int
	Key     string // UI-facing canonical key
	Backend string // exact spelling in the backend's canchas table
	Display string
	Aliases []string
}

// Vocabulary is the sport lookup table. It is a plain value so tests and
// callers can inject their own; use Sports() for the built-in table.
type Vocabulary struct {
	sports []Sport
	index  map[string]int
}

func NewVocabulary(sports []Sport) *Vocabulary {
	v := &Vocabulary{sports: sports, index: make(map[string]int)}
	for i, s := range sports {
		v.add(s.Key, i)
		v.add(s.Backend, i)
		for _, alias := range s.Aliases {
			v.add(alias, i)
		}
	}
	return v
}

func (v *Vocabulary) add(name string, i int) {
	name = normalizeSportName(name)
	if name == "" {
		return
	}
	if _, exists := v.index[name]; !exists {
		v.index[name] = i
	}
}

// Sports returns the built-in vocabulary. Backend names are the exact
// spellings in the canchas table; several differ from the UI keys (the
// backend kept historical spellings when sports were renamed).
func Sports() *Vocabulary {
	return NewVocabulary([]Sport{
		{ID: 1, Key: "futbol", Backend: "futbol", Display: "Fútbol",
			Aliases: []string{"fútbol", "football", "soccer"}},
		{ID: 2, Key: "basquet", Backend: "basquetbol", Display: "Básquetbol",
			Aliases: []string{"básquet", "basketball", "basquetbol", "básquetbol"}},
		{ID: 3, Key: "tenis", Backend: "tenis", Display: "Tenis",
			Aliases: []string{"tennis"}},
		{ID: 4, Key: "padel", Backend: "paddle", Display: "Pádel",
			Aliases: []string{"pádel", "paddle"}},
		{ID: 5, Key: "volley", Backend: "voleibol", Display: "Voleibol",
			Aliases: []string{"voley", "voleibol", "volleyball"}},
		{ID: 6, Key: "futbol_sala", Backend: "futbolito", Display: "Fútbol Sala",
			Aliases: []string{"futbol sala", "futsal", "fútbol sala", "futbolito"}},
	})
}

// Resolve looks up a sport by any accepted spelling. The boolean is false
// for unknown sports; callers decide whether to fail open.
func (v *Vocabulary) Resolve(input string) (Sport, bool) {
	i, ok := v.index[normalizeSportName(input)]
	if !ok {
		return Sport{}, false
	}
	return v.sports[i], true
}

// All returns the table entries in declaration order.
func (v *Vocabulary) All() []Sport {
	out := make([]Sport, len(v.sports))
	copy(out, v.sports)
	return out
}

// CanonicalName returns the backend spelling for any accepted alias.
// Unknown sports fail open: the normalized input comes back unchanged so an
// unmapped future sport still round-trips to the backend.
func (v *Vocabulary) CanonicalName(input string) string {
	if s, ok := v.Resolve(input); ok {
		return s.Backend
	}
	return normalizeSportName(input)
}

// Key returns the UI-facing key for any accepted alias, failing open like
// CanonicalName. This is the inverse lookup the facility adapter applies to
// the backend's sport field.
func (v *Vocabulary) Key(input string) string {
	if s, ok := v.Resolve(input); ok {
		return s.Key
	}
	return normalizeSportName(input)
}

// DisplayLabel returns the display spelling, or the raw input with its first
// letter upper-cased when the sport is unknown.
func (v *Vocabulary) DisplayLabel(input string) string {
	if s, ok := v.Resolve(input); ok {
		return s.Display
	}
	return capitalizeFirst(strings.TrimSpace(input))
}

// ID returns the numeric sport identifier. ok is false when no mapping
// exists; that means "unknown sport", not a fault.
func (v *Vocabulary) ID(input string) (int, bool) {
	s, ok := v.Resolve(input)
	if !ok {
		return 0, false
	}
	return s.ID, true
}

func normalizeSportName(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
