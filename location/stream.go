package location

import (
	"github.com/viant/refd/graph"
)

// Subdetector maps a location set to a location set
type Subdetector interface {
	Apply(g *graph.Graph, locations graph.Set) (graph.Set, error)
}

// SubdetectorFunc adapts a function to Subdetector
type SubdetectorFunc func(g *graph.Graph, locations graph.Set) (graph.Set, error)

// Apply implements Subdetector
func (f SubdetectorFunc) Apply(g *graph.Graph, locations graph.Set) (graph.Set, error) {
	return f(g, locations)
}

// Source produces the initial locations of a stream
type Source func(g *graph.Graph) (graph.Set, error)

// Stream is any typed stream, it can be passed to set operation subdetectors
type Stream interface {
	evaluate() (graph.Set, error)
}

// stream holds a source and an immutable subdetector chain, evaluation happens on collect
type stream struct {
	graph  *graph.Graph
	source Source
	chain  []Subdetector
}

func fromSet(set Set) stream {
	ids := set.ids.Clone()
	return stream{graph: set.graph, source: func(*graph.Graph) (graph.Set, error) {
		return ids.Clone(), nil
	}}
}

// then returns a new stream extending the chain, the receiver is never modified
func (s stream) then(subdetector Subdetector) stream {
	chain := make([]Subdetector, len(s.chain), len(s.chain)+1)
	copy(chain, s.chain)
	return stream{graph: s.graph, source: s.source, chain: append(chain, subdetector)}
}

func (s stream) evaluate() (graph.Set, error) {
	locations, err := s.source(s.graph)
	if err != nil {
		return nil, err
	}
	for _, subdetector := range s.chain {
		if locations, err = subdetector.Apply(s.graph, locations); err != nil {
			return nil, err
		}
	}
	return locations, nil
}

func evaluateAll(streams []Stream) ([]graph.Set, error) {
	result := make([]graph.Set, 0, len(streams))
	for _, candidate := range streams {
		locations, err := candidate.evaluate()
		if err != nil {
			return nil, err
		}
		result = append(result, locations)
	}
	return result, nil
}

// Universe streams every location of the graph
func Universe(g *graph.Graph) ComponentStream {
	return ComponentStream{stream{graph: g, source: func(g *graph.Graph) (graph.Set, error) {
		return g.Universe(), nil
	}}}
}

// Project streams locations contained by a named project
func Project(g *graph.Graph, name string) ComponentStream {
	return ComponentStream{stream{graph: g, source: func(g *graph.Graph) (graph.Set, error) {
		projects := g.Named(g.Tagged(g.Universe(), graph.Project), name)
		return g.Contained(projects), nil
	}}}
}

// NewClassStream creates a class stream with a lazy source
func NewClassStream(g *graph.Graph, source Source) ClassStream {
	return ClassStream{stream{graph: g, source: source}}
}

// NewMethodStream creates a method stream with a lazy source
func NewMethodStream(g *graph.Graph, source Source) MethodStream {
	return MethodStream{stream{graph: g, source: source}}
}

// NewInstructionStream creates an instruction stream with a lazy source
func NewInstructionStream(g *graph.Graph, source Source) InstructionStream {
	return InstructionStream{stream{graph: g, source: source}}
}

// ComponentStream streams program components
type ComponentStream struct{ stream }

// Apply extends the stream with a custom subdetector
func (s ComponentStream) Apply(subdetector Subdetector) ComponentStream {
	return ComponentStream{s.then(subdetector)}
}

// Classes keeps classes
func (s ComponentStream) Classes() ClassStream {
	return ClassStream{s.then(ClassesOnly{})}
}

// Collect evaluates the stream
func (s ComponentStream) Collect() (ComponentSet, error) {
	locations, err := s.evaluate()
	if err != nil {
		return ComponentSet{}, err
	}
	return NewComponentSet(s.graph, locations), nil
}

// ClassStream streams classes
type ClassStream struct{ stream }

// Apply extends the stream with a custom subdetector
func (s ClassStream) Apply(subdetector Subdetector) ClassStream {
	return ClassStream{s.then(subdetector)}
}

func (s ClassStream) ClassesByName(name string) ClassStream {
	return ClassStream{s.then(ClassesByName{Name: name})}
}

func (s ClassStream) DirectSuperClasses() ClassStream {
	return ClassStream{s.then(DirectSuperClasses{})}
}

func (s ClassStream) AllSuperClasses() ClassStream {
	return ClassStream{s.then(AllSuperClasses{})}
}

func (s ClassStream) DirectSubclasses() ClassStream {
	return ClassStream{s.then(DirectSubclasses{})}
}

func (s ClassStream) AllSubclasses() ClassStream {
	return ClassStream{s.then(AllSubclasses{})}
}

func (s ClassStream) AbstractClasses() ClassStream {
	return ClassStream{s.then(AbstractClasses{})}
}

func (s ClassStream) ConcreteClasses() ClassStream {
	return ClassStream{s.then(ConcreteClasses{})}
}

func (s ClassStream) FirstConcreteSubclasses() ClassStream {
	return ClassStream{s.then(FirstConcreteSubclasses{})}
}

func (s ClassStream) Methods() MethodStream {
	return MethodStream{s.then(DeclaredMethods{})}
}

func (s ClassStream) Fields() FieldStream {
	return FieldStream{s.then(DeclaredFields{})}
}

func (s ClassStream) UnionWithClasses(others ...ClassStream) ClassStream {
	return ClassStream{s.then(Union{With: classStreams(others)})}
}

func (s ClassStream) IntersectionWithClasses(others ...ClassStream) ClassStream {
	return ClassStream{s.then(Intersection{With: classStreams(others)})}
}

func (s ClassStream) DifferenceWithClasses(others ...ClassStream) ClassStream {
	return ClassStream{s.then(Difference{With: classStreams(others)})}
}

// Collect evaluates the stream
func (s ClassStream) Collect() (ClassSet, error) {
	locations, err := s.evaluate()
	if err != nil {
		return ClassSet{}, err
	}
	return NewClassSet(s.graph, locations), nil
}

// MethodStream streams methods
type MethodStream struct{ stream }

// Apply extends the stream with a custom subdetector
func (s MethodStream) Apply(subdetector Subdetector) MethodStream {
	return MethodStream{s.then(subdetector)}
}

func (s MethodStream) FilterByName(name string) MethodStream {
	return MethodStream{s.then(MethodsByName{Name: name})}
}

func (s MethodStream) Bodies() InstructionStream {
	return InstructionStream{s.then(Bodies{})}
}

func (s MethodStream) MethodsWithParameters(parameterTypes []string) MethodStream {
	return MethodStream{s.then(MethodsWithParameters{Types: parameterTypes})}
}

func (s MethodStream) MethodsWithSignature(name string, parameterTypes []string) MethodStream {
	return MethodStream{s.then(MethodsWithSignature{Name: name, Types: parameterTypes})}
}

func (s MethodStream) MethodsCalledAt() InstructionStream {
	return InstructionStream{s.then(MethodsCalledAt{})}
}

func (s MethodStream) Overrides() MethodStream {
	return MethodStream{s.then(Overrides{})}
}

func (s MethodStream) OverriddenBy() MethodStream {
	return MethodStream{s.then(OverriddenBy{})}
}

func (s MethodStream) ConcreteMethods() MethodStream {
	return MethodStream{s.then(ConcreteMethods{})}
}

func (s MethodStream) AbstractMethods() MethodStream {
	return MethodStream{s.then(AbstractMethods{})}
}

func (s MethodStream) ParentClasses() ClassStream {
	return ClassStream{s.then(ParentClasses{})}
}

func (s MethodStream) MethodsWithCovariantReturnTypes(returnType string) MethodStream {
	return MethodStream{s.then(MethodsWithCovariantReturnTypes{Type: returnType})}
}

func (s MethodStream) MethodsEquallyOrMoreVisible(visibility graph.Visibility) MethodStream {
	return MethodStream{s.then(MethodsEquallyOrMoreVisible{Visibility: visibility})}
}

func (s MethodStream) AutoNarrowingOverloads(subject Signature) MethodStream {
	return MethodStream{s.then(AutoNarrowingOverloads{Subject: subject})}
}

func (s MethodStream) OverloadsOfMethod(subject Signature) MethodStream {
	return MethodStream{s.then(OverloadsOfMethod{Subject: subject})}
}

func (s MethodStream) OverrideEquivalentMethods(subject Signature) MethodStream {
	return MethodStream{s.then(OverrideEquivalentMethods{Subject: subject})}
}

func (s MethodStream) ContainInstruction(instructions InstructionStream) MethodStream {
	return MethodStream{s.then(ContainInstruction{Instructions: instructions})}
}

func (s MethodStream) Union(others ...MethodStream) MethodStream {
	return MethodStream{s.then(Union{With: methodStreams(others)})}
}

func (s MethodStream) IntersectionWithMethods(others ...MethodStream) MethodStream {
	return MethodStream{s.then(Intersection{With: methodStreams(others)})}
}

func (s MethodStream) DifferenceWithMethods(others ...MethodStream) MethodStream {
	return MethodStream{s.then(Difference{With: methodStreams(others)})}
}

// Collect evaluates the stream
func (s MethodStream) Collect() (MethodSet, error) {
	locations, err := s.evaluate()
	if err != nil {
		return MethodSet{}, err
	}
	return NewMethodSet(s.graph, locations), nil
}

// FieldStream streams fields
type FieldStream struct{ stream }

// Apply extends the stream with a custom subdetector
func (s FieldStream) Apply(subdetector Subdetector) FieldStream {
	return FieldStream{s.then(subdetector)}
}

func (s FieldStream) InstanceFields() FieldStream {
	return FieldStream{s.then(InstanceFields{})}
}

func (s FieldStream) StaticFields() FieldStream {
	return FieldStream{s.then(StaticFields{})}
}

func (s FieldStream) FieldsCalledAt() InstructionStream {
	return InstructionStream{s.then(FieldsCalledAt{})}
}

func (s FieldStream) FilterByName(name string) FieldStream {
	return FieldStream{s.then(FieldsByName{Name: name})}
}

func (s FieldStream) ParentClasses() ClassStream {
	return ClassStream{s.then(ParentClasses{})}
}

func (s FieldStream) IntersectionWithFields(others ...FieldStream) FieldStream {
	return FieldStream{s.then(Intersection{With: fieldStreams(others)})}
}

// Collect evaluates the stream
func (s FieldStream) Collect() (FieldSet, error) {
	locations, err := s.evaluate()
	if err != nil {
		return FieldSet{}, err
	}
	return NewFieldSet(s.graph, locations), nil
}

// InstructionStream streams instructions
type InstructionStream struct{ stream }

// Apply extends the stream with a custom subdetector
func (s InstructionStream) Apply(subdetector Subdetector) InstructionStream {
	return InstructionStream{s.then(subdetector)}
}

func (s InstructionStream) ParentMethods() MethodStream {
	return MethodStream{s.then(ParentMethods{})}
}

func (s InstructionStream) MethodCalls() InstructionStream {
	return InstructionStream{s.then(MethodCalls{})}
}

func (s InstructionStream) FieldCalls() InstructionStream {
	return InstructionStream{s.then(FieldCalls{})}
}

func (s InstructionStream) Union(others ...InstructionStream) InstructionStream {
	return InstructionStream{s.then(Union{With: instructionStreams(others)})}
}

func (s InstructionStream) IntersectionWithInstructions(others ...InstructionStream) InstructionStream {
	return InstructionStream{s.then(ContainedIntersection{With: instructionStreams(others)})}
}

// Collect evaluates the stream
func (s InstructionStream) Collect() (InstructionSet, error) {
	locations, err := s.evaluate()
	if err != nil {
		return InstructionSet{}, err
	}
	return NewInstructionSet(s.graph, locations), nil
}

func classStreams(streams []ClassStream) []Stream {
	result := make([]Stream, len(streams))
	for i := range streams {
		result[i] = streams[i]
	}
	return result
}

func methodStreams(streams []MethodStream) []Stream {
	result := make([]Stream, len(streams))
	for i := range streams {
		result[i] = streams[i]
	}
	return result
}

func fieldStreams(streams []FieldStream) []Stream {
	result := make([]Stream, len(streams))
	for i := range streams {
		result[i] = streams[i]
	}
	return result
}

func instructionStreams(streams []InstructionStream) []Stream {
	result := make([]Stream, len(streams))
	for i := range streams {
		result[i] = streams[i]
	}
	return result
}
