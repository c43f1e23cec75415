package location

import "github.com/viant/refd/graph"

// InstanceFields keeps instance fields
type InstanceFields struct{}

func (InstanceFields) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(locations, graph.InstanceVariable), nil
}

// StaticFields keeps class fields
type StaticFields struct{}

func (StaticFields) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(locations, graph.ClassVariable), nil
}

// FieldsCalledAt maps fields to the instructions their values flow into
type FieldsCalledAt struct{}

func (FieldsCalledAt) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Successors(locations, graph.DataFlow), nil
}

// FieldsByName keeps fields with a given name
type FieldsByName struct{ Name string }

func (f FieldsByName) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Named(g.Tagged(locations, graph.Field), f.Name), nil
}
