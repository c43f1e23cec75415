package location

import "github.com/viant/refd/graph"

// Union adds locations of other streams
type Union struct{ With []Stream }

func (u Union) Apply(_ *graph.Graph, locations graph.Set) (graph.Set, error) {
	others, err := evaluateAll(u.With)
	if err != nil {
		return nil, err
	}
	return locations.Union(others...), nil
}

// Intersection keeps locations present in every other stream
type Intersection struct{ With []Stream }

func (i Intersection) Apply(_ *graph.Graph, locations graph.Set) (graph.Set, error) {
	others, err := evaluateAll(i.With)
	if err != nil {
		return nil, err
	}
	return locations.Intersection(others...), nil
}

// Difference removes locations of other streams
type Difference struct{ With []Stream }

func (d Difference) Apply(_ *graph.Graph, locations graph.Set) (graph.Set, error) {
	others, err := evaluateAll(d.With)
	if err != nil {
		return nil, err
	}
	return locations.Difference(others...), nil
}

// ParentClasses maps members to their direct containers
type ParentClasses struct{}

func (ParentClasses) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Parent(locations), nil
}

// ClassesOnly keeps class locations
type ClassesOnly struct{}

func (ClassesOnly) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(locations, graph.Class), nil
}
