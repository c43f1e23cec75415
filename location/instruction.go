package location

import "github.com/viant/refd/graph"

// ParentMethods maps instructions to the methods containing them
type ParentMethods struct{}

func (ParentMethods) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return Universe(g).Classes().Methods().
		ContainInstruction(NewInstructionSet(g, locations).Stream()).
		evaluate()
}

// ContainedIntersection keeps everything contained by the locations that is present in every other stream
type ContainedIntersection struct{ With []Stream }

func (c ContainedIntersection) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	others, err := evaluateAll(c.With)
	if err != nil {
		return nil, err
	}
	return g.Contained(locations).Intersection(others...), nil
}

// MethodCalls maps instructions to the method call sites they contain
type MethodCalls struct{}

func (MethodCalls) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	contained := NewInstructionSet(g, g.Contained(locations)).Stream()
	return Universe(g).Classes().Methods().MethodsCalledAt().
		IntersectionWithInstructions(contained).
		evaluate()
}

// FieldCalls maps instructions to the field accesses they contain
type FieldCalls struct{}

func (FieldCalls) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	contained := NewInstructionSet(g, g.Contained(locations)).Stream()
	return Universe(g).Classes().Fields().FieldsCalledAt().
		IntersectionWithInstructions(contained).
		evaluate()
}
