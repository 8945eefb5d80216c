package compare

import "sort"

// Set is a set of usernames. Membership is exact, case-sensitive text match.
type Set map[string]struct{}

// NewSet creates a set holding the given usernames
func NewSet(usernames ...string) Set {
	s := make(Set, len(usernames))
	for _, u := range usernames {
		s.Add(u)
	}
	return s
}

// Add inserts a username
func (s Set) Add(username string) {
	s[username] = struct{}{}
}

// Has reports whether username is in the set
func (s Set) Has(username string) bool {
	_, ok := s[username]
	return ok
}

// Match lets a Set act as an ignore matcher
func (s Set) Match(username string) bool {
	return s.Has(username)
}

// Len returns the number of usernames
func (s Set) Len() int {
	return len(s)
}

// Union adds every member of o
func (s Set) Union(o Set) {
	for u := range o {
		s[u] = struct{}{}
	}
}

// Diff returns the members of s that are not in o
func (s Set) Diff(o Set) Set {
	r := NewSet()
	for u := range s {
		if !o.Has(u) {
			r.Add(u)
		}
	}
	return r
}

// Intersect returns the members present in both s and o
func (s Set) Intersect(o Set) Set {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	r := NewSet()
	for u := range small {
		if large.Has(u) {
			r.Add(u)
		}
	}
	return r
}

// Sorted returns the members in ascending byte order
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for u := range s {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}
