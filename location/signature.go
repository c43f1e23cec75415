package location

import (
	"fmt"

	"github.com/viant/refd/graph"
)

// Signature describes a method by the properties used for overload and override matching
type Signature struct {
	Name       string
	Parameters []string
	ReturnType string
	Visibility graph.Visibility
}

// ParameterTypes returns type names of method parameters ordered by parameter index
func ParameterTypes(g *graph.Graph, method graph.ID) ([]string, error) {
	location, err := g.MustLocation(method)
	if err != nil {
		return nil, err
	}
	relations := location.Out(graph.HasParameter)
	result := make([]string, len(relations))
	for _, relation := range relations {
		parameter, err := g.MustLocation(relation.To)
		if err != nil {
			return nil, err
		}
		index, err := parameter.ParameterIndex()
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(result) {
			return nil, fmt.Errorf("%w: parameter index %d out of range on %v", graph.ErrIncorrectAttributeType, index, method)
		}
		result[index] = TypeName(g, relation.To)
	}
	return result, nil
}

// TypeName returns the name of the type a parameter or variable is typed with
func TypeName(g *graph.Graph, id graph.ID) string {
	return targetName(g, id, graph.TypeOf)
}

// ReturnType returns the name of a method return type
func ReturnType(g *graph.Graph, method graph.ID) string {
	return targetName(g, method, graph.Returns)
}

func targetName(g *graph.Graph, id graph.ID, tag graph.EdgeTag) string {
	location, ok := g.Location(id)
	if !ok {
		return ""
	}
	for _, relation := range location.Out(tag) {
		if target, ok := g.Location(relation.To); ok {
			return target.Name()
		}
	}
	return ""
}
