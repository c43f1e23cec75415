// Package refactoring composes microsteps into refactorings with their verdict policies
package refactoring

import (
	"fmt"
	"strings"

	"github.com/viant/refd/analysis"
	"github.com/viant/refd/detector"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/microstep"
	"github.com/viant/refd/spec"
)

// PullUpMethod moves a method into a super class of its enclosing class
type PullUpMethod struct {
	Target             *spec.Method
	Destination        *spec.Class
	toDirectSuperclass bool
	microsteps         []microstep.Microstep
}

// NewPullUpMethod creates a pull up refactoring, the graph is consulted to tell whether destination is a direct super class
func NewPullUpMethod(g *graph.Graph, target *spec.Method, destination *spec.Class) (*PullUpMethod, error) {
	direct, err := target.Class.Stream(g).
		DirectSuperClasses().
		IntersectionWithClasses(destination.Stream(g)).
		Collect()
	if err != nil {
		return nil, fmt.Errorf("failed to create pull up of %v: %w", target, err)
	}
	moved := target.Copy()
	moved.SetEnclosingClass(destination)
	return &PullUpMethod{
		Target:             target,
		Destination:        destination,
		toDirectSuperclass: direct.Size() > 0,
		microsteps:         []microstep.Microstep{microstep.NewMoveMethod(target, moved)},
	}, nil
}

// ToDirectSuperclass returns true when destination directly generalizes the target class
func (r *PullUpMethod) ToDirectSuperclass() bool {
	return r.toDirectSuperclass
}

func (r *PullUpMethod) Microsteps() []microstep.Microstep { return r.microsteps }

// Policy suppresses dangers a pull up resolves by construction
func (r *PullUpMethod) Policy() analysis.Policy {
	hierarchy := analysis.All
	if r.toDirectSuperclass {
		hierarchy = analysis.None
	}
	return analysis.Policy{
		detector.CorrespondingSubclassSpecification: analysis.Partial(analysis.Without(func(g *graph.Graph) (graph.Set, error) {
			methods, err := r.Target.Stream(g).Collect()
			return methods.IDs(), err
		})),
		detector.MissingDefinition:             analysis.None,
		detector.MissingAbstractImplementation: analysis.None,
		detector.RemovedConcreteOverride:       hierarchy,
		detector.LostSpecification:             hierarchy,
		detector.MissingSuperImplementation:    hierarchy,
	}
}

func (r *PullUpMethod) String() string {
	return fmt.Sprintf("PullUpMethod(%v -> %v)", r.Target, r.Destination)
}

// CombineMethodsIntoClass creates a class and moves every target into it
type CombineMethodsIntoClass struct {
	Destination *spec.Class
	Targets     []*spec.Method
	microsteps  []microstep.Microstep
}

// NewCombineMethodsIntoClass creates a combine refactoring
func NewCombineMethodsIntoClass(destination *spec.Class, targets []*spec.Method) *CombineMethodsIntoClass {
	result := &CombineMethodsIntoClass{Destination: destination, Targets: targets}
	result.microsteps = append(result.microsteps, microstep.NewAddClass(destination))
	for _, target := range targets {
		moved := target.Copy()
		moved.SetEnclosingClass(destination)
		result.microsteps = append(result.microsteps, microstep.NewMoveMethod(target, moved))
	}
	return result
}

func (r *CombineMethodsIntoClass) Microsteps() []microstep.Microstep { return r.microsteps }

// Policy forwards all risks.
// TODO: suppress MissingSuperImplementation when the overridden method is combined as well
func (r *CombineMethodsIntoClass) Policy() analysis.Policy {
	return analysis.Policy{}
}

func (r *CombineMethodsIntoClass) String() string {
	var targets []string
	for _, target := range r.Targets {
		targets = append(targets, target.String())
	}
	return fmt.Sprintf("CombineMethodsIntoClass(%v <- %v)", r.Destination, strings.Join(targets, ", "))
}
