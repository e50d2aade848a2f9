package prediction

import (
	"reflect"
	"strings"
	"testing"
)

// filterInput has (c, r, b) and (a, r, e) true alongside (a, r, b), so c is
// another valid head for (?, r, b) and e another valid tail for (a, r, ?).
const filterInput = "a r b\n" +
	"\tHeads: c a d\n" +
	"\tTails: e b\n" +
	"c r b\n" +
	"\tHeads: c x\n" +
	"\tTails: f b\n" +
	"a r e\n" +
	"\tHeads: z q\n" +
	"\tTails: b e\n"

func parseWithIndex(t *testing.T, input string) (*Set, *Index) {
	t.Helper()
	idx := NewIndex()
	set, err := Parse(strings.NewReader(input), ParseOptions{Index: idx, Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return set, idx
}

func TestFilter(t *testing.T) {
	set, idx := parseWithIndex(t, filterInput)
	got := Filter(set, idx)

	want := []Entry{
		{Truth: Triple{"a", "r", "b"}, Heads: []string{"a", "d"}, Tails: []string{"b"}},
		{Truth: Triple{"c", "r", "b"}, Heads: []string{"c", "x"}, Tails: []string{"f", "b"}},
		{Truth: Triple{"a", "r", "e"}, Heads: []string{"z", "q"}, Tails: []string{"e"}},
	}

	if !reflect.DeepEqual(got.Entries(), want) {
		t.Errorf("Filter() entries = %+v, want %+v", got.Entries(), want)
	}
	if got.TotalTasks != set.TotalTasks {
		t.Errorf("TotalTasks = %d, want %d", got.TotalTasks, set.TotalTasks)
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	set, idx := parseWithIndex(t, filterInput)
	before := append([]string(nil), set.Entries()[0].Heads...)

	_ = Filter(set, idx)

	if !reflect.DeepEqual(set.Entries()[0].Heads, before) {
		t.Errorf("input heads changed to %v, want %v", set.Entries()[0].Heads, before)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	set, idx := parseWithIndex(t, filterInput)

	once := Filter(set, idx)
	twice := Filter(once, idx)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second filter pass changed the set:\nonce  = %+v\ntwice = %+v", once.Entries(), twice.Entries())
	}
}

func TestFilter_KeepsTargetEvenWhenKnown(t *testing.T) {
	// The target appears twice and is itself in the index.
	input := "a r b\n" +
		"\tHeads: a c a\n" +
		"\tTails: b b\n" +
		"c r b\n" +
		"\tHeads: a\n" +
		"\tTails: b\n"

	set, idx := parseWithIndex(t, input)
	got := Filter(set, idx)

	entry, ok := got.Lookup(Triple{"a", "r", "b"})
	if !ok {
		t.Fatal("expected entry for (a, r, b)")
	}
	if want := []string{"a", "a"}; !reflect.DeepEqual(entry.Heads, want) {
		t.Errorf("Heads = %v, want %v", entry.Heads, want)
	}
	if want := []string{"b", "b"}; !reflect.DeepEqual(entry.Tails, want) {
		t.Errorf("Tails = %v, want %v", entry.Tails, want)
	}

	// (c, r, b): a is a known head for (?, r, b) and is removed.
	entry, _ = got.Lookup(Triple{"c", "r", "b"})
	if len(entry.Heads) != 0 {
		t.Errorf("Heads = %v, want empty", entry.Heads)
	}
}

func TestFilter_UnindexedTripleRemovesNothing(t *testing.T) {
	set, err := Parse(strings.NewReader(filterInput), ParseOptions{Logger: discardLogger()})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for _, idx := range []*Index{nil, NewIndex()} {
		got := Filter(set, idx)
		if !reflect.DeepEqual(got.Entries(), set.Entries()) {
			t.Errorf("Filter() with empty index changed entries: %+v", got.Entries())
		}
	}
}

func TestIndex_CompositeKeysDoNotCollide(t *testing.T) {
	idx := NewIndex()
	idx.Add(Triple{Subject: "a_b", Predicate: "c", Object: "x"})

	// Joined with "_" both keys would read "a_b_c".
	if got := idx.KnownObjects("a", "b_c"); len(got) != 0 {
		t.Errorf("KnownObjects(a, b_c) = %v, want empty", got)
	}
	if got := idx.KnownObjects("a_b", "c"); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("KnownObjects(a_b, c) = %v, want [x]", got)
	}
}

func TestIndex_AddAll(t *testing.T) {
	idx := NewIndex()
	idx.AddAll([]Triple{
		{Subject: "s", Predicate: "p", Object: "o2"},
		{Subject: "s", Predicate: "p", Object: "o1"},
		{Subject: "s", Predicate: "p", Object: "o1"},
		{Subject: "t", Predicate: "p", Object: "o1"},
	})

	if got := idx.KnownObjects("s", "p"); !reflect.DeepEqual(got, []string{"o1", "o2"}) {
		t.Errorf("KnownObjects(s, p) = %v, want [o1 o2]", got)
	}
	if got := idx.KnownSubjects("p", "o1"); !reflect.DeepEqual(got, []string{"s", "t"}) {
		t.Errorf("KnownSubjects(p, o1) = %v, want [s t]", got)
	}
	if idx.Contains(Triple{Subject: "t", Predicate: "p", Object: "o2"}) {
		t.Error("unexpected (t, p, o2) in index")
	}
}
