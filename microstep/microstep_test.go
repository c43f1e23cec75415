package microstep_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/refd/detector"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/internal/fixture"
	"github.com/viant/refd/location"
	"github.com/viant/refd/microstep"
	"github.com/viant/refd/spec"
)

func kinds(detectors []detector.Detector) []detector.Kind {
	var result []detector.Kind
	for _, candidate := range detectors {
		result = append(result, candidate.Kind())
	}
	return result
}

func TestDetectors(t *testing.T) {
	target := &spec.Method{Name: "m", ReturnType: "void", Class: &spec.Class{Name: "A"}}
	destination := target.Copy()
	destination.SetEnclosingClass(&spec.Class{Name: "B"})

	var testCases = []struct {
		description string
		microstep   microstep.Microstep
		expected    []detector.Kind
	}{
		{
			description: "add class",
			microstep:   microstep.NewAddClass(&spec.Class{Name: "A"}),
			expected:    []detector.Kind{detector.DoubleDefinitionClass},
		},
		{
			description: "add method",
			microstep:   microstep.NewAddMethod(target),
			expected: []detector.Kind{
				detector.DoubleDefinitionMethod, detector.BrokenSubTyping,
				detector.CorrespondingSubclassSpecification, detector.OverloadParameterConversion,
			},
		},
		{
			description: "remove method",
			microstep:   microstep.NewRemoveMethod(target),
			expected: []detector.Kind{
				detector.MissingDefinition, detector.RemovedConcreteOverride, detector.LostSpecification,
				detector.MissingSuperImplementation, detector.MissingAbstractImplementation,
			},
		},
		{
			description: "move method",
			microstep:   microstep.NewMoveMethod(target, destination),
			expected:    []detector.Kind{detector.BrokenLocalReferences},
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, kinds(testCase.microstep.Detectors()), testCase.description)
	}

	move := microstep.NewMoveMethod(target, destination)
	require.Len(t, move.Children(), 2)
	assert.IsType(t, &microstep.AddMethod{}, move.Children()[0])
	assert.IsType(t, &microstep.RemoveMethod{}, move.Children()[1])
	assert.Equal(t, "MoveMethod(A.m() -> B.m())", move.String())
}

func TestApply(t *testing.T) {
	b := fixture.New()
	a := b.Class("A")
	b.Class("B")
	m := b.Method(a, "m", "int", "long")

	require.NoError(t, microstep.NewAddClass(&spec.Class{Name: "Fresh", Package: &spec.Package{Name: "app"}}).Apply(b.G))
	fresh, err := (&spec.Class{Name: "Fresh"}).Resolve(b.G)
	require.NoError(t, err)
	assert.True(t, fresh.Tagged(graph.RefactorCreatedClass))

	methodLocation, _ := b.G.Location(m)
	target, err := spec.MethodFromLocation(b.G, methodLocation)
	require.NoError(t, err)
	destination := target.Copy()
	destination.SetEnclosingClass(&spec.Class{Name: "B"})

	require.NoError(t, microstep.NewMoveMethod(target, destination).Apply(b.G))
	_, ok := b.G.Location(m)
	assert.False(t, ok)
	moved, err := destination.Resolve(b.G)
	require.NoError(t, err)
	assert.True(t, moved.Tagged(graph.RefactorCreatedMethod))

	err = microstep.NewRemoveMethod(target).Apply(b.G)
	assert.True(t, errors.Is(err, location.ErrCardinality))
}
