package location

import "github.com/viant/refd/graph"

var (
	charConversions = []string{"char", "int", "long", "float", "double"}
	byteConversions = []string{"byte", "short", "int", "long", "float", "double"}
)

// IsNarrowingConversion returns true when existing is a wider primitive type than candidate.
// Non primitive types never narrow.
func IsNarrowingConversion(existing, candidate string) bool {
	conversions := byteConversions
	if existing == "char" || candidate == "char" {
		conversions = charConversions
	}
	existingIndex, candidateIndex := indexOf(conversions, existing), indexOf(conversions, candidate)
	if existingIndex < 0 || candidateIndex < 0 {
		return false
	}
	return existingIndex-candidateIndex > 0
}

func indexOf(values []string, value string) int {
	for i, candidate := range values {
		if candidate == value {
			return i
		}
	}
	return -1
}

// MethodsByName keeps methods with a given name
type MethodsByName struct{ Name string }

func (m MethodsByName) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Named(g.Tagged(locations, graph.Method), m.Name), nil
}

// Bodies maps methods to their control flow
type Bodies struct{}

func (Bodies) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.ForwardDifference(locations, graph.HasControlFlow), nil
}

// MethodsWithParameters keeps methods whose ordered parameter types match
type MethodsWithParameters struct{ Types []string }

func (m MethodsWithParameters) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	result := graph.Set{}
	for _, id := range locations.IDs() {
		parameters, err := ParameterTypes(g, id)
		if err != nil {
			return nil, err
		}
		if equalTypes(parameters, m.Types) {
			result.Add(id)
		}
	}
	return result, nil
}

func equalTypes(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i := range actual {
		if actual[i] != expected[i] {
			return false
		}
	}
	return true
}

// MethodsWithSignature keeps methods with a name and ordered parameter types
type MethodsWithSignature struct {
	Name  string
	Types []string
}

func (m MethodsWithSignature) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return NewMethodSet(g, locations).Stream().
		FilterByName(m.Name).
		MethodsWithParameters(m.Types).
		evaluate()
}

// MethodsCalledAt maps methods to the call sites that may invoke them:
// dynamic dispatch through the receiver identity, static invocations and signature invocations.
type MethodsCalledAt struct{}

func (MethodsCalledAt) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	receivers := g.Tagged(g.Contained(locations), graph.Identity)
	passes := g.Tagged(g.Predecessors(receivers, graph.DataFlow), graph.IdentityPass)
	dynamic := g.Successors(passes, graph.IdentityPassedTo)
	static := g.Predecessors(locations, graph.InvokedFunction)
	signature := g.Predecessors(locations, graph.InvokedSignature)
	return dynamic.Union(static, signature), nil
}

// Overrides maps methods to every method they transitively override
type Overrides struct{}

func (Overrides) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(g.Descendants(locations, graph.Overrides), graph.Method), nil
}

// OverriddenBy maps methods to the methods directly overriding them
type OverriddenBy struct{}

func (OverriddenBy) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Predecessors(locations, graph.Overrides), nil
}

// ConcreteMethods keeps methods that are not abstract
type ConcreteMethods struct{}

func (ConcreteMethods) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(locations, graph.Method).Difference(g.Tagged(locations, graph.AbstractMethod)), nil
}

// AbstractMethods keeps abstract methods
type AbstractMethods struct{}

func (AbstractMethods) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return g.Tagged(locations, graph.AbstractMethod), nil
}

// MethodsWithCovariantReturnTypes keeps methods returning the type or one of its subtypes
type MethodsWithCovariantReturnTypes struct{ Type string }

func (m MethodsWithCovariantReturnTypes) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	types := g.Named(g.Tagged(g.Universe(), graph.Type, graph.Classifier, graph.Class), m.Type)
	covariant := g.Reverse(types, graph.Supertype, graph.Extends)
	methods := g.Predecessors(covariant, graph.Returns).Intersection(locations)
	return g.Tagged(methods, graph.Method), nil
}

// MethodsEquallyOrMoreVisible keeps methods at least as visible as Visibility
type MethodsEquallyOrMoreVisible struct{ Visibility graph.Visibility }

func (m MethodsEquallyOrMoreVisible) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	var tags []graph.Tag
	switch m.Visibility {
	case graph.Public:
		tags = []graph.Tag{graph.PublicVisibility}
	case graph.Protected:
		tags = []graph.Tag{graph.PublicVisibility, graph.ProtectedPackageVisibility}
	case graph.PackagePrivate:
		tags = []graph.Tag{graph.PublicVisibility, graph.ProtectedPackageVisibility, graph.PackageVisibility}
	default:
		tags = []graph.Tag{graph.PublicVisibility, graph.ProtectedPackageVisibility, graph.PackageVisibility, graph.PrivateVisibility}
	}
	return g.Tagged(g.Tagged(locations, tags...), graph.Method), nil
}

// AutoNarrowingOverloads keeps same name, same arity methods where at least one
// existing parameter type is wider than the subject parameter type
type AutoNarrowingOverloads struct{ Subject Signature }

func (a AutoNarrowingOverloads) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	result := graph.Set{}
	for _, id := range g.Named(g.Tagged(locations, graph.Method), a.Subject.Name).IDs() {
		parameters, err := ParameterTypes(g, id)
		if err != nil {
			return nil, err
		}
		if len(parameters) != len(a.Subject.Parameters) {
			continue
		}
		for i, existing := range parameters {
			if IsNarrowingConversion(existing, a.Subject.Parameters[i]) {
				result.Add(id)
				break
			}
		}
	}
	return result, nil
}

// OverloadsOfMethod keeps same name methods with a different parameter list
type OverloadsOfMethod struct{ Subject Signature }

func (o OverloadsOfMethod) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	named := NewMethodSet(g, locations).Stream().FilterByName(o.Subject.Name)
	return named.DifferenceWithMethods(named.MethodsWithSignature(o.Subject.Name, o.Subject.Parameters)).evaluate()
}

// OverrideEquivalentMethods keeps methods the subject could legally override:
// same name and parameters, covariant return type, not less visible.
type OverrideEquivalentMethods struct{ Subject Signature }

func (o OverrideEquivalentMethods) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return NewMethodSet(g, locations).Stream().
		FilterByName(o.Subject.Name).
		MethodsWithCovariantReturnTypes(o.Subject.ReturnType).
		MethodsEquallyOrMoreVisible(o.Subject.Visibility).
		MethodsWithParameters(o.Subject.Parameters).
		evaluate()
}

// ContainInstruction keeps methods containing at least one of the instructions
type ContainInstruction struct{ Instructions InstructionStream }

func (c ContainInstruction) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	instructions, err := c.Instructions.evaluate()
	if err != nil {
		return nil, err
	}
	result := graph.Set{}
	for _, id := range g.Tagged(locations, graph.Method).IDs() {
		if g.Contained(graph.NewSet(id)).Intersection(instructions).Len() > 0 {
			result.Add(id)
		}
	}
	return result, nil
}
