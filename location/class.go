package location

import "github.com/viant/refd/graph"

// ClassesByName keeps classes with a given name
type ClassesByName struct{ Name string }

func (c ClassesByName) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Named(g.Tagged(locations, graph.Class, graph.Classifier, graph.Type), c.Name), nil
}

// DirectSuperClasses maps classes to the classes they directly extend
type DirectSuperClasses struct{}

func (DirectSuperClasses) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(g.Successors(locations, graph.Extends), graph.Class), nil
}

// AllSuperClasses maps classes to all transitive super classes
type AllSuperClasses struct{}

func (AllSuperClasses) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Descendants(locations, graph.Extends), nil
}

// DirectSubclasses maps classes to the classes directly extending them
type DirectSubclasses struct{}

func (DirectSubclasses) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(g.Predecessors(locations, graph.Extends), graph.Class), nil
}

// AllSubclasses maps classes to all transitive subclasses
type AllSubclasses struct{}

func (AllSubclasses) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Ancestors(locations, graph.Extends), nil
}

// AbstractClasses keeps abstract classes
type AbstractClasses struct{}

func (AbstractClasses) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(locations, graph.AbstractClass), nil
}

// ConcreteClasses keeps classes that are not abstract
type ConcreteClasses struct{}

func (ConcreteClasses) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(locations, graph.Class).Difference(g.Tagged(locations, graph.AbstractClass)), nil
}

// FirstConcreteSubclasses maps classes to the nearest concrete subclasses:
// concrete direct subclasses, plus concrete direct subclasses of abstract subclasses.
type FirstConcreteSubclasses struct{}

func (FirstConcreteSubclasses) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	classes := NewClassSet(g, locations).Stream()
	return classes.AllSubclasses().
		AbstractClasses().
		DirectSubclasses().
		ConcreteClasses().
		UnionWithClasses(classes.DirectSubclasses().ConcreteClasses()).
		evaluate()
}

// DeclaredMethods maps classes to their methods.
// Declared methods are followed transitively along declares, constructed methods hang off contains.
type DeclaredMethods struct{}

func (DeclaredMethods) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	members := g.Forward(locations, graph.Declares).Union(g.Successors(locations, graph.Contains))
	methods := g.Tagged(members, graph.Method)
	return g.Tagged(methods, graph.AbstractMethod, graph.InstanceMethod, graph.ClassMethod), nil
}

// DeclaredFields maps classes to contained fields
type DeclaredFields struct{}

func (DeclaredFields) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(g.Contained(locations), graph.Field), nil
}
