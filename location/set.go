package location

import (
	"errors"
	"fmt"

	"github.com/viant/refd/graph"
)

// ErrCardinality is returned when a single location was expected
var ErrCardinality = errors.New("location set did not have exactly one program location")

// Kind identifies the semantic family of a location set
type Kind int

const (
	Components Kind = iota
	Classes
	Methods
	Fields
	Instructions
)

func (k Kind) String() string {
	switch k {
	case Classes:
		return "classes"
	case Methods:
		return "methods"
	case Fields:
		return "fields"
	case Instructions:
		return "instructions"
	}
	return "components"
}

// Set represents an unordered, duplicate free collection of program locations of one family
type Set struct {
	graph *graph.Graph
	ids   graph.Set
	kind  Kind
}

func newSet(g *graph.Graph, kind Kind, ids graph.Set) Set {
	if ids == nil {
		ids = graph.Set{}
	}
	return Set{graph: g, ids: ids, kind: kind}
}

// Graph returns the graph the set was collected from
func (s Set) Graph() *graph.Graph {
	return s.graph
}

// Kind returns the set family
func (s Set) Kind() Kind {
	return s.kind
}

// IDs returns a copy of member ids
func (s Set) IDs() graph.Set {
	return s.ids.Clone()
}

// Size returns number of locations
func (s Set) Size() int {
	return len(s.ids)
}

// Locations returns member locations in id order
func (s Set) Locations() []*graph.Location {
	return s.graph.Locations(s.ids)
}

// Names returns member names in id order
func (s Set) Names() []string {
	var result []string
	for _, location := range s.Locations() {
		result = append(result, location.Name())
	}
	return result
}

// SingleLocation returns the only member or ErrCardinality
func (s Set) SingleLocation() (*graph.Location, error) {
	if len(s.ids) != 1 {
		return nil, fmt.Errorf("%w: expected 1 %v, but had %d", ErrCardinality, s.kind, len(s.ids))
	}
	for id := range s.ids {
		return s.graph.MustLocation(id)
	}
	return nil, nil
}

// Without returns a set of the same family without ids
func (s Set) Without(ids graph.Set) Set {
	return newSet(s.graph, s.kind, s.ids.Difference(ids))
}

// Label snapshots the set as a danger carrying a rule label
func (s Set) Label(label string) *LabeledSet {
	result := &LabeledSet{Label: label}
	for _, location := range s.Locations() {
		result.entries = append(result.entries, entry{id: location.ID, name: location.Name(), source: location.Source()})
	}
	return result
}

// ComponentSet represents any program components
type ComponentSet struct{ Set }

// NewComponentSet creates a component set
func NewComponentSet(g *graph.Graph, ids graph.Set) ComponentSet {
	return ComponentSet{newSet(g, Components, ids)}
}

// Stream returns a stream sourced by the set
func (s ComponentSet) Stream() ComponentStream {
	return ComponentStream{fromSet(s.Set)}
}

// ClassSet represents classes
type ClassSet struct{ Set }

// NewClassSet creates a class set
func NewClassSet(g *graph.Graph, ids graph.Set) ClassSet {
	return ClassSet{newSet(g, Classes, ids)}
}

// Stream returns a stream sourced by the set
func (s ClassSet) Stream() ClassStream {
	return ClassStream{fromSet(s.Set)}
}

// MethodSet represents methods
type MethodSet struct{ Set }

// NewMethodSet creates a method set
func NewMethodSet(g *graph.Graph, ids graph.Set) MethodSet {
	return MethodSet{newSet(g, Methods, ids)}
}

// Stream returns a stream sourced by the set
func (s MethodSet) Stream() MethodStream {
	return MethodStream{fromSet(s.Set)}
}

// FieldSet represents fields
type FieldSet struct{ Set }

// NewFieldSet creates a field set
func NewFieldSet(g *graph.Graph, ids graph.Set) FieldSet {
	return FieldSet{newSet(g, Fields, ids)}
}

// Stream returns a stream sourced by the set
func (s FieldSet) Stream() FieldStream {
	return FieldStream{fromSet(s.Set)}
}

// InstructionSet represents instructions (call sites, data flow nodes, control flow blocks)
type InstructionSet struct{ Set }

// NewInstructionSet creates an instruction set
func NewInstructionSet(g *graph.Graph, ids graph.Set) InstructionSet {
	return InstructionSet{newSet(g, Instructions, ids)}
}

// Stream returns a stream sourced by the set
func (s InstructionSet) Stream() InstructionStream {
	return InstructionStream{fromSet(s.Set)}
}
