package spec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
)

// Parameter describes a method parameter
type Parameter struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Method describes an existing or prospective method
type Method struct {
	Name       string           `yaml:"name"`
	Parameters []Parameter      `yaml:"parameters,omitempty"`
	Visibility graph.Visibility `yaml:"visibility"`
	Static     bool             `yaml:"static,omitempty"`
	Abstract   bool             `yaml:"abstract,omitempty"`
	ReturnType string           `yaml:"returnType"`
	Class      *Class           `yaml:"class"`
}

// MethodFromLocation reads a method specification off a method location
func MethodFromLocation(g *graph.Graph, method *graph.Location) (*Method, error) {
	if !method.Tagged(graph.Method) {
		return nil, fmt.Errorf("%w: %v is not a method", ErrIncompatibleLocation, method.ID)
	}
	visibility, ok := graph.VisibilityOf(method.Tags)
	if !ok {
		visibility = graph.PackagePrivate
	}
	result := &Method{
		Name:       method.Name(),
		Visibility: visibility,
		Static:     method.Tagged(graph.ClassMethod),
		Abstract:   method.Tagged(graph.AbstractMethod),
		ReturnType: location.ReturnType(g, method.ID),
	}
	relations := method.Out(graph.HasParameter)
	result.Parameters = make([]Parameter, len(relations))
	for _, relation := range relations {
		parameter, err := g.MustLocation(relation.To)
		if err != nil {
			return nil, err
		}
		index, err := parameter.ParameterIndex()
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(result.Parameters) {
			return nil, fmt.Errorf("%w: parameter index %d out of range on %v", graph.ErrIncorrectAttributeType, index, method.ID)
		}
		result.Parameters[index] = Parameter{Name: parameter.Name(), Type: location.TypeName(g, parameter.ID)}
	}
	classes := g.Locations(g.Tagged(g.Parent(graph.NewSet(method.ID)), graph.Class))
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: method %v has no enclosing class", ErrIncompatibleLocation, method.ID)
	}
	class, err := ClassFromLocation(g, classes[0])
	if err != nil {
		return nil, err
	}
	result.Class = class
	return result, nil
}

// Copy returns an independent copy
func (m *Method) Copy() *Method {
	if m == nil {
		return nil
	}
	clone := *m
	clone.Parameters = append([]Parameter(nil), m.Parameters...)
	clone.Class = m.Class.Copy()
	return &clone
}

// SetEnclosingClass moves the specification to another class
func (m *Method) SetEnclosingClass(class *Class) {
	m.Class = class
}

// ParameterTypes returns ordered parameter type names
func (m *Method) ParameterTypes() []string {
	result := make([]string, len(m.Parameters))
	for i, parameter := range m.Parameters {
		result[i] = parameter.Type
	}
	return result
}

// Signature returns the matching signature
func (m *Method) Signature() location.Signature {
	return location.Signature{
		Name:       m.Name,
		Parameters: m.ParameterTypes(),
		ReturnType: m.ReturnType,
		Visibility: m.Visibility,
	}
}

func (m *Method) String() string {
	className := ""
	if m.Class != nil {
		className = m.Class.Name
	}
	return fmt.Sprintf("%v.%v(%v)", className, m.Name, strings.Join(m.ParameterTypes(), ","))
}

// Stream returns a lazy stream of methods matching the enclosing class name and signature.
// The stream is empty when no such method exists.
func (m *Method) Stream(g *graph.Graph) location.MethodStream {
	return location.NewMethodStream(g, func(g *graph.Graph) (graph.Set, error) {
		if m.Class == nil {
			return graph.Set{}, nil
		}
		methods, err := location.NewClassSet(g, m.Class.candidates(g)).Stream().
			Methods().
			MethodsWithSignature(m.Name, m.ParameterTypes()).
			Collect()
		if err != nil {
			return nil, err
		}
		return methods.IDs(), nil
	})
}

// Resolve returns the single method location
func (m *Method) Resolve(g *graph.Graph) (*graph.Location, error) {
	methods, err := m.Stream(g).Collect()
	if err != nil {
		return nil, err
	}
	method, err := methods.SingleLocation()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve method %v: %w", m, err)
	}
	return method, nil
}

// Body returns a lazy stream of the method body
func (m *Method) Body(g *graph.Graph) location.InstructionStream {
	return m.Stream(g).Bodies()
}

// Construct adds the method with its parameters to the enclosing class
func (m *Method) Construct(g *graph.Graph) (*graph.Location, error) {
	if m.Class == nil {
		return nil, fmt.Errorf("%w: method %v has no enclosing class", ErrIncompatibleLocation, m.Name)
	}
	class, err := m.Class.Resolve(g)
	if err != nil {
		return nil, err
	}
	returnType, err := typeLocation(g, m.ReturnType)
	if err != nil {
		return nil, err
	}
	parameterTypes := make([]graph.ID, len(m.Parameters))
	for i, parameter := range m.Parameters {
		if parameterTypes[i], err = typeLocation(g, parameter.Type); err != nil {
			return nil, err
		}
	}
	tags := []graph.Tag{graph.Method, graph.Function, graph.RefactorCreatedMethod, m.Visibility.Tag()}
	if m.Static {
		tags = append(tags, graph.ClassMethod)
	} else {
		tags = append(tags, graph.InstanceMethod)
	}
	if m.Abstract {
		tags = append(tags, graph.AbstractMethod)
	}
	method := g.CreateLocation(tags...)
	if err = method.SetAttribute(graph.AttrName, m.Name); err != nil {
		return nil, err
	}
	if _, err = g.CreateRelation(class.ID, method.ID, graph.Contains, graph.RefactorCreatedEdge); err != nil {
		return nil, err
	}
	if returnType != "" {
		if _, err = g.CreateRelation(method.ID, returnType, graph.Returns, graph.RefactorCreatedEdge); err != nil {
			return nil, err
		}
	}
	for i, spec := range m.Parameters {
		parameter := g.CreateLocation(graph.Parameter, graph.RefactorCreatedParameter, graph.CallInput, graph.Variable, graph.PackageVisibility)
		if err = parameter.SetAttribute(graph.AttrName, spec.Name); err != nil {
			return nil, err
		}
		if err = parameter.SetAttribute(graph.AttrParameterIndex, i); err != nil {
			return nil, err
		}
		if _, err = g.CreateRelation(method.ID, parameter.ID, graph.HasVariable, graph.Contains, graph.HasParameter, graph.RefactorCreatedEdge); err != nil {
			return nil, err
		}
		if parameterTypes[i] != "" {
			if _, err = g.CreateRelation(parameter.ID, parameterTypes[i], graph.TypeOf, graph.RefactorCreatedEdge); err != nil {
				return nil, err
			}
		}
	}
	return method, nil
}

// typeLocation resolves the single type named name, an empty name has no type
func typeLocation(g *graph.Graph, name string) (graph.ID, error) {
	if name == "" {
		return "", nil
	}
	types := location.NewComponentSet(g, g.Named(g.Tagged(g.Universe(), graph.Type, graph.Classifier, graph.Class), name))
	result, err := types.SingleLocation()
	if err != nil {
		return "", fmt.Errorf("failed to resolve type %v: %w", name, err)
	}
	return result.ID, nil
}

// Methods converts method locations to specifications
func Methods(set location.MethodSet) ([]*Method, error) {
	var result []*Method
	for _, method := range set.Locations() {
		spec, err := MethodFromLocation(set.Graph(), method)
		if err != nil {
			return nil, err
		}
		result = append(result, spec)
	}
	return result, nil
}

var methodReference = regexp.MustCompile(`^\s*([\w$]+)\.([\w$<>]+)\s*\(([^)]*)\)\s*$`)

// FindMethod resolves a "Class.method(type,type)" reference against the graph
func FindMethod(g *graph.Graph, reference string) (*Method, error) {
	matches := methodReference.FindStringSubmatch(reference)
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid method reference %q, expected Class.method(type,...)", reference)
	}
	var parameters []Parameter
	if types := strings.TrimSpace(matches[3]); types != "" {
		for _, parameterType := range strings.Split(types, ",") {
			parameters = append(parameters, Parameter{Type: strings.TrimSpace(parameterType)})
		}
	}
	probe := &Method{Name: matches[2], Parameters: parameters, Class: &Class{Name: matches[1]}}
	method, err := probe.Resolve(g)
	if err != nil {
		return nil, err
	}
	return MethodFromLocation(g, method)
}
