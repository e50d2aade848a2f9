package prediction

import (
	"slices"
)

// SubjectPredicate keys the objects known to complete (subject, predicate, ?).
type SubjectPredicate struct {
	Subject   string
	Predicate string
}

// PredicateObject keys the subjects known to complete (?, predicate, object).
type PredicateObject struct {
	Predicate string
	Object    string
}

// Index is a lookup of known-true triples used for filtered evaluation.
// It is not safe for concurrent mutation; build it once, then only read.
type Index struct {
	sp map[SubjectPredicate]map[string]struct{}
	po map[PredicateObject]map[string]struct{}
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		sp: make(map[SubjectPredicate]map[string]struct{}),
		po: make(map[PredicateObject]map[string]struct{}),
	}
}

// Add records t as true.
func (x *Index) Add(t Triple) {
	spKey := SubjectPredicate{Subject: t.Subject, Predicate: t.Predicate}
	objects, ok := x.sp[spKey]
	if !ok {
		objects = make(map[string]struct{})
		x.sp[spKey] = objects
	}
	objects[t.Object] = struct{}{}

	poKey := PredicateObject{Predicate: t.Predicate, Object: t.Object}
	subjects, ok := x.po[poKey]
	if !ok {
		subjects = make(map[string]struct{})
		x.po[poKey] = subjects
	}
	subjects[t.Subject] = struct{}{}
}

// AddAll records every triple in ts as true.
func (x *Index) AddAll(ts []Triple) {
	for _, t := range ts {
		x.Add(t)
	}
}

// Contains reports whether t was added.
func (x *Index) Contains(t Triple) bool {
	_, ok := x.sp[SubjectPredicate{Subject: t.Subject, Predicate: t.Predicate}][t.Object]
	return ok
}

// KnownObjects returns the sorted objects completing (subject, predicate, ?).
func (x *Index) KnownObjects(subject, predicate string) []string {
	return sortedKeys(x.sp[SubjectPredicate{Subject: subject, Predicate: predicate}])
}

// KnownSubjects returns the sorted subjects completing (?, predicate, object).
func (x *Index) KnownSubjects(predicate, object string) []string {
	return sortedKeys(x.po[PredicateObject{Predicate: predicate, Object: object}])
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
