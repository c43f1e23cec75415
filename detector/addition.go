package detector

import (
	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
	"github.com/viant/refd/spec"
)

// DoubleDefinitionOfClass reports classes sharing name and package with the class to add
type DoubleDefinitionOfClass struct {
	Subject *spec.Class
}

func (d *DoubleDefinitionOfClass) Kind() Kind { return DoubleDefinitionClass }

func (d *DoubleDefinitionOfClass) Risks(g *graph.Graph) (location.Set, error) {
	classes, err := location.Universe(g).
		Classes().
		ClassesByName(d.Subject.Name).
		Apply(location.SubdetectorFunc(d.samePackage)).
		Collect()
	return classes.Set, err
}

func (d *DoubleDefinitionOfClass) samePackage(g *graph.Graph, classes graph.Set) (graph.Set, error) {
	if d.Subject.Package == nil || d.Subject.Package.Name == "" {
		return classes, nil
	}
	packages := d.Subject.Package.Locations(g)
	result := graph.Set{}
	for _, id := range classes.IDs() {
		if g.Parent(graph.NewSet(id)).Intersection(packages).Len() > 0 {
			result.Add(id)
		}
	}
	return result, nil
}

func (d *DoubleDefinitionOfClass) detector() {}

// DoubleDefinitionOfMethod reports methods of the destination class with the signature of the method to add
type DoubleDefinitionOfMethod struct {
	Subject *spec.Method
}

func (d *DoubleDefinitionOfMethod) Kind() Kind { return DoubleDefinitionMethod }

func (d *DoubleDefinitionOfMethod) Risks(g *graph.Graph) (location.Set, error) {
	methods, err := d.Subject.Class.Stream(g).
		Methods().
		MethodsWithSignature(d.Subject.Name, d.Subject.ParameterTypes()).
		Collect()
	return methods.Set, err
}

func (d *DoubleDefinitionOfMethod) detector() {}

// BrokenSubTypingMethod reports super class methods the method to add would override illegally:
// final ones, ones differing in static modifier, non covariant return types and more visible ones
type BrokenSubTypingMethod struct {
	Subject *spec.Method
}

func (d *BrokenSubTypingMethod) Kind() Kind { return BrokenSubTyping }

func (d *BrokenSubTypingMethod) Risks(g *graph.Graph) (location.Set, error) {
	methods, err := d.Subject.Class.Stream(g).
		AllSuperClasses().
		Methods().
		MethodsWithSignature(d.Subject.Name, d.Subject.ParameterTypes()).
		Apply(location.SubdetectorFunc(d.violations)).
		Collect()
	return methods.Set, err
}

func (d *BrokenSubTypingMethod) violations(g *graph.Graph, candidates graph.Set) (graph.Set, error) {
	returnTypes := covariantTypes(g, d.Subject.ReturnType)
	result := graph.Set{}
	for _, candidate := range g.Locations(candidates) {
		visibility, ok := graph.VisibilityOf(candidate.Tags)
		if !ok {
			visibility = graph.PackagePrivate
		}
		if visibility == graph.Private {
			continue
		}
		switch {
		case candidate.Tagged(graph.FinalMethod),
			candidate.Tagged(graph.ClassMethod) != d.Subject.Static,
			!returnTypes[location.ReturnType(g, candidate.ID)],
			d.Subject.Visibility > visibility:
			result.Add(candidate.ID)
		}
	}
	return result, nil
}

// covariantTypes returns name with the names of every super type of the types named name
func covariantTypes(g *graph.Graph, name string) map[string]bool {
	result := map[string]bool{name: true}
	types := g.Named(g.Tagged(g.Universe(), graph.Type, graph.Classifier, graph.Class), name)
	for _, super := range g.Locations(g.Forward(types, graph.Supertype, graph.Extends)) {
		result[super.Name()] = true
	}
	return result
}

func (d *BrokenSubTypingMethod) detector() {}

// CorrespondingSubclassSpecificationMethod reports subclass methods that would start overriding the method to add
type CorrespondingSubclassSpecificationMethod struct {
	Subject *spec.Method
}

func (d *CorrespondingSubclassSpecificationMethod) Kind() Kind { return CorrespondingSubclassSpecification }

func (d *CorrespondingSubclassSpecificationMethod) Risks(g *graph.Graph) (location.Set, error) {
	methods, err := d.Subject.Class.Stream(g).
		AllSubclasses().
		Methods().
		MethodsWithSignature(d.Subject.Name, d.Subject.ParameterTypes()).
		Collect()
	return methods.Set, err
}

func (d *CorrespondingSubclassSpecificationMethod) detector() {}

// OverloadParameterConversionMethod reports call sites of visible overloads
// that would bind to the method to add through a narrower parameter type
type OverloadParameterConversionMethod struct {
	Subject *spec.Method
}

func (d *OverloadParameterConversionMethod) Kind() Kind { return OverloadParameterConversion }

func (d *OverloadParameterConversionMethod) Risks(g *graph.Graph) (location.Set, error) {
	class := d.Subject.Class.Stream(g)
	sites, err := class.UnionWithClasses(class.AllSuperClasses()).
		Methods().
		AutoNarrowingOverloads(d.Subject.Signature()).
		MethodsCalledAt().
		Collect()
	return sites.Set, err
}

func (d *OverloadParameterConversionMethod) detector() {}
