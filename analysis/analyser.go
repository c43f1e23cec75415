// Package analysis runs refactorings microstep by microstep against a program graph
// and aggregates the dangers their detectors report
package analysis

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/viant/refd/detector"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
	"github.com/viant/refd/microstep"
)

// Refactoring is an ordered sequence of microsteps with a verdict policy
type Refactoring interface {
	Microsteps() []microstep.Microstep
	Policy() Policy
	String() string
}

// Analyser predicts dangers of a refactoring. The graph is mutated while analysing, no rollback takes place.
type Analyser struct {
	graph       *graph.Graph
	refactoring Refactoring
	policy      Policy
	logger      hclog.Logger
	isolated    bool
	dangers     []*location.LabeledSet
}

// Option configures an analyser
type Option func(*Analyser)

// WithLogger sets analyser logger
func WithLogger(logger hclog.Logger) Option {
	return func(a *Analyser) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithIsolation analyses a clone, leaving the supplied graph untouched
func WithIsolation() Option {
	return func(a *Analyser) {
		a.isolated = true
	}
}

// New creates an analyser
func New(g *graph.Graph, refactoring Refactoring, opts ...Option) *Analyser {
	result := &Analyser{
		graph:       g,
		refactoring: refactoring,
		policy:      refactoring.Policy(),
		logger:      hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// Analyse executes every microstep in order and returns aggregated dangers
func (a *Analyser) Analyse() ([]*location.LabeledSet, error) {
	a.dangers = nil
	g := a.graph
	if a.isolated {
		g = g.Clone()
	}
	a.logger.Info("analysing", "refactoring", a.refactoring.String())
	for _, step := range a.refactoring.Microsteps() {
		if err := a.handle(g, step); err != nil {
			return nil, err
		}
	}
	a.logger.Info("analysed", "refactoring", a.refactoring.String(), "dangers", len(a.dangers))
	return append([]*location.LabeledSet(nil), a.dangers...), nil
}

func (a *Analyser) handle(g *graph.Graph, step microstep.Microstep) error {
	switch actual := step.(type) {
	case *microstep.MoveMethod:
		if err := a.evaluate(g, actual, actual.Detectors()); err != nil {
			return err
		}
		for _, child := range actual.Children() {
			if err := a.handle(g, child); err != nil {
				return err
			}
		}
		return nil
	case *microstep.AddClass, *microstep.AddMethod, *microstep.RemoveMethod:
		if err := a.evaluate(g, actual, actual.Detectors()); err != nil {
			return err
		}
		a.logger.Debug("applying", "microstep", actual.String())
		if err := actual.Apply(g); err != nil {
			return fmt.Errorf("failed to apply %v: %w", actual, err)
		}
		return nil
	}
	return fmt.Errorf("unsupported microstep: %T", step)
}

func (a *Analyser) evaluate(g *graph.Graph, step microstep.Microstep, detectors []detector.Detector) error {
	for _, target := range detectors {
		action := a.policy.Action(target.Kind())
		a.logger.Trace("verdict", "microstep", step.String(), "detector", target.Kind().String(), "action", action.String())
		dangers, ok, err := action.Dangers(g, target)
		if err != nil {
			return fmt.Errorf("%v: %v: %w", step, target.Kind(), err)
		}
		if !ok {
			continue
		}
		a.logger.Debug("dangers", "microstep", step.String(), "detector", target.Kind().String(), "count", dangers.Size())
		a.dangers = append(a.dangers, dangers.Label(target.Kind().String()))
	}
	return nil
}
