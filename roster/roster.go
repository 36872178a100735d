// Package roster holds the ordered list of names shown on the wheel and the last winner.
package roster

import (
	"errors"
	"regexp"
	"strings"
)

// ErrIndexOutOfRange is returned when deleting a position that does not exist
var ErrIndexOutOfRange = errors.New("roster index out of range")

// pasteSeparators splits pasted text on newlines (LF or CRLF) and commas
var pasteSeparators = regexp.MustCompile(`[\r\n,]+`)

// Roster is an ordered name list with the most recent winner
// Duplicate names are allowed, each occupies its own segment
type Roster struct {
	names  []string
	winner string
}

// New returns a roster seeded with names (cleaned like Add) and a last winner
func New(names []string, winner string) *Roster {
	r := &Roster{winner: strings.TrimSpace(winner)}
	for _, n := range names {
		r.Add(n)
	}
	return r
}

// Add appends a trimmed name, blank input is ignored
func (r *Roster) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	r.names = append(r.names, name)
	return true
}

// AddPasted splits text on newlines and commas, appending every non-blank part in order
// Returns the number of names added
func (r *Roster) AddPasted(text string) int {
	added := 0
	for _, part := range pasteSeparators.Split(text, -1) {
		if r.Add(part) {
			added++
		}
	}
	return added
}

// Delete removes the name at index i
func (r *Roster) Delete(i int) (string, error) {
	if i < 0 || i >= len(r.names) {
		return "", ErrIndexOutOfRange
	}
	removed := r.names[i]
	r.names = append(r.names[:i], r.names[i+1:]...)
	return removed, nil
}

// Clear removes every name and forgets the last winner
func (r *Roster) Clear() {
	r.names = nil
	r.winner = ""
}

// SetWinner records the most recent winner
func (r *Roster) SetWinner(name string) { r.winner = name }

// Winner returns the most recent winner, empty if none
func (r *Roster) Winner() string { return r.winner }

// Names returns a copy of the list
func (r *Roster) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of names
func (r *Roster) Len() int { return len(r.names) }

// At returns the name at i, empty when out of range
func (r *Roster) At(i int) string {
	if i < 0 || i >= len(r.names) {
		return ""
	}
	return r.names[i]
}

// IsSplittable reports whether text would be split into several names by AddPasted
func IsSplittable(text string) bool {
	return strings.ContainsAny(text, "\r\n,")
}
