package spec

import (
	"fmt"

	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
)

// Field describes a field
type Field struct {
	Name       string           `yaml:"name"`
	Type       string           `yaml:"type"`
	Visibility graph.Visibility `yaml:"visibility"`
	Static     bool             `yaml:"static,omitempty"`
	Class      *Class           `yaml:"class"`
}

// FieldFromLocation reads a field specification off a field location
func FieldFromLocation(g *graph.Graph, field *graph.Location) (*Field, error) {
	if !field.Tagged(graph.Field) {
		return nil, fmt.Errorf("%w: %v is not a field", ErrIncompatibleLocation, field.ID)
	}
	visibility, ok := graph.VisibilityOf(field.Tags)
	if !ok {
		visibility = graph.PackagePrivate
	}
	result := &Field{
		Name:       field.Name(),
		Type:       location.TypeName(g, field.ID),
		Visibility: visibility,
		Static:     field.Tagged(graph.ClassVariable),
	}
	if classes := g.Locations(g.Tagged(g.Parent(graph.NewSet(field.ID)), graph.Class)); len(classes) > 0 {
		class, err := ClassFromLocation(g, classes[0])
		if err != nil {
			return nil, err
		}
		result.Class = class
	}
	return result, nil
}

// Copy returns an independent copy
func (f *Field) Copy() *Field {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Class = f.Class.Copy()
	return &clone
}

// Stream returns a lazy stream of fields matching the enclosing class name and field name
func (f *Field) Stream(g *graph.Graph) location.FieldStream {
	classes := location.NewClassStream(g, func(g *graph.Graph) (graph.Set, error) {
		if f.Class == nil {
			return graph.Set{}, nil
		}
		return f.Class.candidates(g), nil
	})
	return classes.Fields().FilterByName(f.Name)
}

// Construct is not supported for fields
func (f *Field) Construct(*graph.Graph) (*graph.Location, error) {
	return nil, fmt.Errorf("%w: construct field %v", ErrUnsupported, f.Name)
}
