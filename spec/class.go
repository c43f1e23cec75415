package spec

import (
	"fmt"
	"strings"

	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
)

// Class describes an existing or prospective class
type Class struct {
	Name       string           `yaml:"name"`
	Visibility graph.Visibility `yaml:"visibility"`
	Package    *Package         `yaml:"package,omitempty"`
}

// ClassFromLocation reads a class specification off a class location
func ClassFromLocation(g *graph.Graph, class *graph.Location) (*Class, error) {
	if !class.Tagged(graph.Class) {
		return nil, fmt.Errorf("%w: %v is not a class", ErrIncompatibleLocation, class.ID)
	}
	visibility, ok := graph.VisibilityOf(class.Tags)
	if !ok {
		visibility = graph.PackagePrivate
	}
	result := &Class{Name: class.Name(), Visibility: visibility}
	if packages := g.Locations(g.Tagged(g.Parent(graph.NewSet(class.ID)), graph.Package)); len(packages) > 0 {
		pkg, err := PackageFromLocation(packages[0])
		if err != nil {
			return nil, err
		}
		result.Package = pkg
	}
	return result, nil
}

// ParseClass parses "package,visibility,name", package and visibility are optional
func ParseClass(text string) (*Class, error) {
	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	result := &Class{Visibility: graph.Public}
	switch len(parts) {
	case 1:
		result.Name = parts[0]
	case 3:
		visibility, err := graph.ParseVisibility(parts[1])
		if err != nil {
			return nil, err
		}
		result.Visibility = visibility
		result.Name = parts[2]
		if parts[0] != "" {
			result.Package = &Package{Name: parts[0]}
		}
	default:
		return nil, fmt.Errorf("invalid class %q, expected package,visibility,name", text)
	}
	if result.Name == "" {
		return nil, fmt.Errorf("invalid class %q, missing name", text)
	}
	return result, nil
}

// Copy returns an independent copy
func (c *Class) Copy() *Class {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Package = c.Package.Copy()
	return &clone
}

func (c *Class) String() string {
	if c.Package == nil {
		return c.Name
	}
	return c.Package.Name + "." + c.Name
}

// candidates returns classes matching the name, narrowed to the package when it is known
func (c *Class) candidates(g *graph.Graph) graph.Set {
	classes := g.Named(g.Tagged(g.Universe(), graph.Class), c.Name)
	if c.Package == nil || c.Package.Name == "" {
		return classes
	}
	packages := c.Package.Locations(g)
	result := graph.Set{}
	for _, id := range classes.IDs() {
		if g.Parent(graph.NewSet(id)).Intersection(packages).Len() > 0 {
			result.Add(id)
		}
	}
	return result
}

// Stream returns a lazy stream resolving the class to exactly one location
func (c *Class) Stream(g *graph.Graph) location.ClassStream {
	return location.NewClassStream(g, func(g *graph.Graph) (graph.Set, error) {
		classes := location.NewClassSet(g, c.candidates(g))
		class, err := classes.SingleLocation()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve class %v: %w", c, err)
		}
		return graph.NewSet(class.ID), nil
	})
}

// Resolve returns the single class location
func (c *Class) Resolve(g *graph.Graph) (*graph.Location, error) {
	classes, err := c.Stream(g).Collect()
	if err != nil {
		return nil, err
	}
	return classes.SingleLocation()
}

// Construct adds the class to its package
func (c *Class) Construct(g *graph.Graph) (*graph.Location, error) {
	var container graph.ID
	if c.Package != nil {
		packages := location.NewComponentSet(g, c.Package.Locations(g))
		pkg, err := packages.SingleLocation()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve package %v: %w", c.Package.Name, err)
		}
		container = pkg.ID
	}
	class := g.CreateLocation(graph.Class, graph.Namespace, graph.Type, graph.Classifier, graph.RefactorCreatedClass, c.Visibility.Tag())
	if err := class.SetAttribute(graph.AttrName, c.Name); err != nil {
		return nil, err
	}
	if container != "" {
		if _, err := g.CreateRelation(container, class.ID, graph.Contains, graph.RefactorCreatedEdge); err != nil {
			return nil, err
		}
	}
	return class, nil
}

// Classes converts class locations to specifications
func Classes(set location.ClassSet) ([]*Class, error) {
	var result []*Class
	for _, class := range set.Locations() {
		spec, err := ClassFromLocation(set.Graph(), class)
		if err != nil {
			return nil, err
		}
		result = append(result, spec)
	}
	return result, nil
}
