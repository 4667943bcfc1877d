// Package matchlist holds the set of live candidate matches the LZSS
// compressor is extending at a given point in the input stream.
package matchlist

import "errors"

// ErrFull is returned by Append when the list is already at capacity.
var ErrFull = errors.New("matchlist: list is full")

// Match is a candidate back-reference: Pos is the age-based window offset
// the candidate is tracked at (0 = newest byte, as read by Window.Read),
// Len is the length matched so far.
type Match struct {
	Pos uint64
	Len uint64
}

// UpdateFunc is called once per live match during Update. It may mutate m
// in place (e.g. grow its Len); returning false unlinks m from the list.
type UpdateFunc func(m *Match) bool

// MatchList is a dense, capacity-bounded collection of live matches. It
// supports O(1) removal during Update by swapping the removed element with
// the last live one, so the traversal order and the post-Update identity of
// surviving elements are both unspecified to callers.
type MatchList struct {
	matches []Match
}

// New allocates a match list bounded at the given capacity (the window
// size, since there can never be more live candidates than window
// positions).
func New(capacity int) *MatchList {
	return &MatchList{matches: make([]Match, 0, capacity)}
}

// Append adds m as a new live candidate. It fails if the list is already at
// capacity.
func (ml *MatchList) Append(m Match) error {
	if len(ml.matches) >= cap(ml.matches) {
		return ErrFull
	}
	ml.matches = append(ml.matches, m)
	return nil
}

// Get returns the live match at logical position i. It reports false if i
// is out of range.
func (ml *MatchList) Get(i int) (Match, bool) {
	if i < 0 || i >= len(ml.matches) {
		return Match{}, false
	}
	return ml.matches[i], true
}

// Update visits every live match and applies fn. When fn returns false for
// a match, that match is unlinked by swapping the last live match into its
// slot, which is then re-examined. Update returns the number of matches
// still alive afterward.
func (ml *MatchList) Update(fn UpdateFunc) int {
	i := 0
	for i < len(ml.matches) {
		if fn(&ml.matches[i]) {
			i++
			continue
		}

		last := len(ml.matches) - 1
		ml.matches[i] = ml.matches[last]
		ml.matches = ml.matches[:last]
		// slot i now holds a new element (or the list just shrank past it); re-examine it.
	}

	return len(ml.matches)
}

// Length returns the number of live matches.
func (ml *MatchList) Length() int {
	return len(ml.matches)
}

// Reset discards all live matches without releasing the backing storage.
func (ml *MatchList) Reset() {
	ml.matches = ml.matches[:0]
}
