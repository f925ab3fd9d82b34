package events

import "strings"

// Journal is an in-memory, append-only buffer of one round's events, in
// submission order. The moderator owns one Journal per round; Render joins
// every entry into the round-file body.
type Journal struct {
	entries []Event
}

// NewJournal starts a fresh, empty journal for a round.
func NewJournal() *Journal {
	return &Journal{}
}

// Append adds one event to the end of the buffer. Appending to a nil
// *Journal (no round opened yet) is a no-op.
func (j *Journal) Append(e Event) {
	if j == nil {
		return
	}
	j.entries = append(j.entries, e)
}

// Len reports how many events the journal currently holds.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Render joins every entry's rendered line(s) with newlines, producing the
// full round-file body (caller prepends the BOM and writes the header/footer
// as ordinary entries).
func (j *Journal) Render() string {
	lines := make([]string, 0, len(j.entries))
	for _, e := range j.entries {
		lines = append(lines, e.Render())
	}
	return strings.Join(lines, "\n")
}
