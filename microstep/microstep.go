// Package microstep defines the atomic graph transformations refactorings are composed of
package microstep

import (
	"fmt"

	"github.com/viant/refd/detector"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/spec"
)

// Microstep is an atomic transformation carrying the detectors guarding it. The set of implementations is closed.
type Microstep interface {
	// Detectors returns the detectors evaluated before the transformation, in order
	Detectors() []detector.Detector
	// Apply mutates the graph
	Apply(g *graph.Graph) error
	String() string
	microstep()
}

// AddClass constructs a new class
type AddClass struct {
	Class     *spec.Class
	detectors []detector.Detector
}

// NewAddClass creates an add class microstep
func NewAddClass(class *spec.Class) *AddClass {
	return &AddClass{
		Class:     class,
		detectors: []detector.Detector{&detector.DoubleDefinitionOfClass{Subject: class}},
	}
}

func (m *AddClass) Detectors() []detector.Detector { return m.detectors }

func (m *AddClass) Apply(g *graph.Graph) error {
	_, err := m.Class.Construct(g)
	return err
}

func (m *AddClass) String() string { return fmt.Sprintf("AddClass(%v)", m.Class) }

func (m *AddClass) microstep() {}

// AddMethod constructs a new method in its enclosing class
type AddMethod struct {
	Method    *spec.Method
	detectors []detector.Detector
}

// NewAddMethod creates an add method microstep
func NewAddMethod(method *spec.Method) *AddMethod {
	return &AddMethod{
		Method: method,
		detectors: []detector.Detector{
			&detector.DoubleDefinitionOfMethod{Subject: method},
			&detector.BrokenSubTypingMethod{Subject: method},
			&detector.CorrespondingSubclassSpecificationMethod{Subject: method},
			&detector.OverloadParameterConversionMethod{Subject: method},
		},
	}
}

func (m *AddMethod) Detectors() []detector.Detector { return m.detectors }

func (m *AddMethod) Apply(g *graph.Graph) error {
	_, err := m.Method.Construct(g)
	return err
}

func (m *AddMethod) String() string { return fmt.Sprintf("AddMethod(%v)", m.Method) }

func (m *AddMethod) microstep() {}

// RemoveMethod deletes an existing method
type RemoveMethod struct {
	Method    *spec.Method
	detectors []detector.Detector
}

// NewRemoveMethod creates a remove method microstep
func NewRemoveMethod(method *spec.Method) *RemoveMethod {
	return &RemoveMethod{
		Method: method,
		detectors: []detector.Detector{
			&detector.MissingDefinitionMethod{Subject: method},
			&detector.RemovedConcreteOverrideMethod{Subject: method},
			&detector.LostSpecificationMethod{Subject: method},
			&detector.MissingSuperImplementationMethod{Subject: method},
			&detector.MissingAbstractImplementationMethod{Subject: method},
		},
	}
}

func (m *RemoveMethod) Detectors() []detector.Detector { return m.detectors }

// Apply removes the method location with its incident relations; the method must resolve to exactly one location
func (m *RemoveMethod) Apply(g *graph.Graph) error {
	method, err := m.Method.Resolve(g)
	if err != nil {
		return err
	}
	return g.RemoveLocation(method.ID)
}

func (m *RemoveMethod) String() string { return fmt.Sprintf("RemoveMethod(%v)", m.Method) }

func (m *RemoveMethod) microstep() {}

// MoveMethod adds a copy of the target at the destination, then removes the target
type MoveMethod struct {
	Target      *spec.Method
	Destination *spec.Method
	detectors   []detector.Detector
	children    []Microstep
}

// NewMoveMethod creates a move method composite microstep
func NewMoveMethod(target, destination *spec.Method) *MoveMethod {
	return &MoveMethod{
		Target:      target,
		Destination: destination,
		detectors: []detector.Detector{
			&detector.BrokenLocalReferencesBody{Source: target, Destination: destination.Class},
		},
		children: []Microstep{NewAddMethod(destination), NewRemoveMethod(target)},
	}
}

// Detectors returns the detectors of the move itself, children carry their own
func (m *MoveMethod) Detectors() []detector.Detector { return m.detectors }

// Children returns component microsteps in execution order
func (m *MoveMethod) Children() []Microstep { return m.children }

// Apply applies every child in order
func (m *MoveMethod) Apply(g *graph.Graph) error {
	for _, child := range m.children {
		if err := child.Apply(g); err != nil {
			return fmt.Errorf("failed to apply %v: %w", child, err)
		}
	}
	return nil
}

func (m *MoveMethod) String() string {
	return fmt.Sprintf("MoveMethod(%v -> %v)", m.Target, m.Destination)
}

func (m *MoveMethod) microstep() {}
