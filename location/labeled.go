package location

import (
	"strings"

	"github.com/viant/refd/graph"
)

// MarkFunc receives one danger location, source is nil when the location has no source correspondence
type MarkFunc func(label, name string, source *graph.Source)

type entry struct {
	id     graph.ID
	name   string
	source *graph.Source
}

// LabeledSet is a location set tagged with the rule that produced it.
// Members are captured when labeled so later graph mutation does not change the danger.
type LabeledSet struct {
	Label   string
	entries []entry
}

// Size returns number of locations
func (s *LabeledSet) Size() int {
	return len(s.entries)
}

// HasLabel returns true when the set carries the label
func (s *LabeledSet) HasLabel(label string) bool {
	return s.Label == label
}

// Message returns the display form of the label, "MissingDefinition.Method" reads "MissingDefinition - Method"
func (s *LabeledSet) Message() string {
	return strings.ReplaceAll(s.Label, ".", " - ")
}

// IDs returns labeled location ids
func (s *LabeledSet) IDs() graph.Set {
	result := graph.Set{}
	for _, item := range s.entries {
		result.Add(item.id)
	}
	return result
}

// Names returns labeled location names in id order
func (s *LabeledSet) Names() []string {
	var result []string
	for _, item := range s.entries {
		result = append(result, item.name)
	}
	return result
}

// Mark invokes fn for every labeled location
func (s *LabeledSet) Mark(fn MarkFunc) {
	for _, item := range s.entries {
		var source *graph.Source
		if item.source != nil {
			clone := *item.source
			source = &clone
		}
		fn(s.Label, item.name, source)
	}
}
