package graph

import "sort"

// Set is an unordered duplicate free collection of location ids
type Set map[ID]struct{}

// NewSet creates a set
func NewSet(ids ...ID) Set {
	result := make(Set, len(ids))
	result.Add(ids...)
	return result
}

func (s Set) Add(ids ...ID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

func (s Set) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy
func (s Set) Clone() Set {
	result := make(Set, len(s))
	for id := range s {
		result[id] = struct{}{}
	}
	return result
}

// Union returns a new set with members of s and others
func (s Set) Union(others ...Set) Set {
	result := s.Clone()
	for _, other := range others {
		for id := range other {
			result[id] = struct{}{}
		}
	}
	return result
}

// Intersection returns a new set with members of s present in every other set
func (s Set) Intersection(others ...Set) Set {
	result := Set{}
	for id := range s {
		keep := true
		for _, other := range others {
			if !other.Has(id) {
				keep = false
				break
			}
		}
		if keep {
			result[id] = struct{}{}
		}
	}
	return result
}

// Difference returns a new set with members of s absent from all others
func (s Set) Difference(others ...Set) Set {
	result := Set{}
	for id := range s {
		keep := true
		for _, other := range others {
			if other.Has(id) {
				keep = false
				break
			}
		}
		if keep {
			result[id] = struct{}{}
		}
	}
	return result
}

// Equal returns true when both sets hold the same ids
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// IDs returns sorted ids
func (s Set) IDs() []ID {
	result := make([]ID, 0, len(s))
	for id := range s {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
