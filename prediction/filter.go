package prediction

// Filter returns a copy of set in which every candidate known by idx to be
// another correct answer is removed. The target of each slot is always kept
// and the relative order of retained candidates is unchanged. A nil index
// removes nothing. Applying Filter again with the same index is a no-op.
func Filter(set *Set, idx *Index) *Set {
	out := newSet(set.Len())
	out.TotalTasks = set.TotalTasks

	for _, e := range set.entries {
		var knownSubjects, knownObjects map[string]struct{}
		if idx != nil {
			knownSubjects = idx.po[PredicateObject{Predicate: e.Truth.Predicate, Object: e.Truth.Object}]
			knownObjects = idx.sp[SubjectPredicate{Subject: e.Truth.Subject, Predicate: e.Truth.Predicate}]
		}

		out.put(Entry{
			Truth: e.Truth,
			Heads: retain(e.Heads, e.Truth.Subject, knownSubjects),
			Tails: retain(e.Tails, e.Truth.Object, knownObjects),
		})
	}

	return out
}

// retain keeps target and every candidate not in known.
func retain(candidates []string, target string, known map[string]struct{}) []string {
	var kept []string
	for _, c := range candidates {
		if c == target {
			kept = append(kept, c)
			continue
		}
		if _, ok := known[c]; !ok {
			kept = append(kept, c)
		}
	}
	return kept
}
