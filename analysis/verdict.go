package analysis

import (
	"github.com/viant/refd/detector"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
)

// Filter narrows risks reported by a detector to the dangers a refactoring cares about
type Filter func(g *graph.Graph, risks location.Set) (location.Set, error)

type decision int

const (
	all decision = iota
	none
	partial
)

// Action is the verdict on a single detector
type Action struct {
	decision decision
	filter   Filter
}

var (
	// All forwards every risk
	All = Action{decision: all}
	// None discards the detector without evaluating it
	None = Action{decision: none}
)

// Partial forwards risks narrowed by filter
func Partial(filter Filter) Action {
	return Action{decision: partial, filter: filter}
}

// Without returns a filter removing ids from risks
func Without(ids func(g *graph.Graph) (graph.Set, error)) Filter {
	return func(g *graph.Graph, risks location.Set) (location.Set, error) {
		excluded, err := ids(g)
		if err != nil {
			return location.Set{}, err
		}
		return risks.Without(excluded), nil
	}
}

func (a Action) String() string {
	switch a.decision {
	case none:
		return "none"
	case partial:
		return "partial"
	}
	return "all"
}

// Dangers evaluates the detector according to the action, ok is false when nothing is to be aggregated
func (a Action) Dangers(g *graph.Graph, target detector.Detector) (dangers location.Set, ok bool, err error) {
	if a.decision == none {
		return dangers, false, nil
	}
	if dangers, err = target.Risks(g); err != nil {
		return dangers, false, err
	}
	if a.decision == partial && a.filter != nil {
		if dangers, err = a.filter(g, dangers); err != nil {
			return dangers, false, err
		}
	}
	return dangers, dangers.Size() > 0, nil
}

// Policy maps detector kinds to actions, kinds without an entry get All
type Policy map[detector.Kind]Action

// Action returns the action for kind
func (p Policy) Action(kind detector.Kind) Action {
	if action, ok := p[kind]; ok {
		return action
	}
	return All
}
