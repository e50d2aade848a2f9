// Package prediction reads ranked link-prediction files and applies filtered
// evaluation against a collection of known-true triples.
package prediction

// Triple is a single (subject, predicate, object) statement.
// It is comparable and can be used directly as a map key.
type Triple struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// String returns the triple in prediction-file form.
func (t Triple) String() string {
	return t.Subject + " " + t.Predicate + " " + t.Object
}

// Entry holds the ranked candidates proposed for one held-out triple.
type Entry struct {
	Truth Triple
	Heads []string // candidates for the subject slot, best first
	Tails []string // candidates for the object slot, best first
}

// Set is a parsed prediction file. Entries keep the order in which their
// truth triples first appeared in the file.
type Set struct {
	entries []Entry
	byTruth map[Triple]int

	// TotalTasks counts one head and one tail task per parsed record.
	TotalTasks int
}

func newSet(capacity int) *Set {
	return &Set{
		entries: make([]Entry, 0, capacity),
		byTruth: make(map[Triple]int, capacity),
	}
}

// Len returns the number of distinct truth triples.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns the entries in file order. The returned slice is owned by
// the set and must not be modified.
func (s *Set) Entries() []Entry {
	return s.entries
}

// Lookup returns the entry for a truth triple.
func (s *Set) Lookup(t Triple) (Entry, bool) {
	i, ok := s.byTruth[t]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// put stores e, replacing the candidates of an existing entry with the same
// truth. It reports whether a replacement happened.
func (s *Set) put(e Entry) bool {
	if i, ok := s.byTruth[e.Truth]; ok {
		s.entries[i] = e
		return true
	}
	s.byTruth[e.Truth] = len(s.entries)
	s.entries = append(s.entries, e)
	return false
}
