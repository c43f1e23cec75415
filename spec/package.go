package spec

import (
	"fmt"

	"github.com/viant/refd/graph"
)

// Package describes a package
type Package struct {
	Name string `yaml:"name"`
}

// PackageFromLocation reads a package specification off a package location
func PackageFromLocation(location *graph.Location) (*Package, error) {
	if !location.Tagged(graph.Package) {
		return nil, fmt.Errorf("%w: %v is not a package", ErrIncompatibleLocation, location.ID)
	}
	return &Package{Name: location.Name()}, nil
}

// Copy returns an independent copy
func (p *Package) Copy() *Package {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

// Construct is not supported for packages
func (p *Package) Construct(*graph.Graph) (*graph.Location, error) {
	return nil, fmt.Errorf("%w: construct package %v", ErrUnsupported, p.Name)
}

// Locations returns package locations with the specification name
func (p *Package) Locations(g *graph.Graph) graph.Set {
	return g.Named(g.Tagged(g.Universe(), graph.Package), p.Name)
}
