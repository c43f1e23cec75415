package refactoring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/refd/analysis"
	"github.com/viant/refd/detector"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/internal/fixture"
	"github.com/viant/refd/location"
	"github.com/viant/refd/refactoring"
	"github.com/viant/refd/spec"
)

func method(class, name string) *spec.Method {
	return &spec.Method{Name: name, ReturnType: "void", Visibility: graph.Public, Class: &spec.Class{Name: class}}
}

type summary struct {
	Label string
	IDs   []graph.ID
}

func summarize(dangers []*location.LabeledSet) []summary {
	var result []summary
	for _, danger := range dangers {
		result = append(result, summary{Label: danger.Label, IDs: danger.IDs().IDs()})
	}
	return result
}

func TestPullUpMethod_SuppressesResolvedDangers(t *testing.T) {
	b := fixture.New()
	a := b.AbstractClass("A")
	am := b.AbstractMethod(a, "m", "void")
	c := b.Class("C")
	b.Extends(c, a)
	cm := b.Method(c, "m", "void")
	b.Override(cm, am)
	b.Extends(b.Class("D"), c)

	abstract, err := (&detector.MissingAbstractImplementationMethod{Subject: method("C", "m")}).Risks(b.G)
	require.NoError(t, err)
	assert.EqualValues(t, []graph.ID{am}, abstract.IDs().IDs())
	super, err := (&detector.MissingSuperImplementationMethod{Subject: method("C", "m")}).Risks(b.G)
	require.NoError(t, err)
	assert.EqualValues(t, []graph.ID{"D"}, super.IDs().IDs())

	pullUp, err := refactoring.NewPullUpMethod(b.G, method("C", "m"), &spec.Class{Name: "A"})
	require.NoError(t, err)
	assert.True(t, pullUp.ToDirectSuperclass())

	dangers, err := analysis.New(b.G, pullUp).Analyse()
	require.NoError(t, err)
	assert.Equal(t, []summary{{Label: "DoubleDefinition.Method", IDs: []graph.ID{am}}}, summarize(dangers))
}

func TestPullUpMethod_Destination(t *testing.T) {
	build := func() *fixture.Builder {
		b := fixture.New()
		a := b.Class("A")
		bc := b.Class("B")
		b.Extends(bc, a)
		bm := b.Method(bc, "m", "void")
		c := b.Class("C")
		b.Extends(c, bc)
		cm := b.Method(c, "m", "void")
		b.Override(cm, bm)
		b.Extends(b.Class("D"), c)
		return b
	}
	var testCases = []struct {
		description string
		destination string
		direct      bool
		expected    []summary
	}{
		{
			description: "direct super class",
			destination: "B",
			direct:      true,
			expected:    []summary{{Label: "DoubleDefinition.Method", IDs: []graph.ID{"B.m()"}}},
		},
		{
			description: "indirect super class",
			destination: "A",
			expected: []summary{
				{Label: "CorrespondingSubclassSpecification.Method", IDs: []graph.ID{"B.m()"}},
				{Label: "RemovedConcreteOverride.Method", IDs: []graph.ID{"B.m()"}},
				{Label: "MissingSuperImplementation.Method", IDs: []graph.ID{"D"}},
			},
		},
	}
	for _, testCase := range testCases {
		b := build()
		pullUp, err := refactoring.NewPullUpMethod(b.G, method("C", "m"), &spec.Class{Name: testCase.destination})
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.direct, pullUp.ToDirectSuperclass(), testCase.description)

		dangers, err := analysis.New(b.G, pullUp).Analyse()
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expected, summarize(dangers), testCase.description)

		moved, err := (&spec.Method{Name: "m", Class: &spec.Class{Name: testCase.destination}}).Stream(b.G).Collect()
		require.NoError(t, err, testCase.description)
		assert.GreaterOrEqual(t, moved.Size(), 1, testCase.description)
		_, ok := b.G.Location("C.m()")
		assert.False(t, ok, testCase.description)
	}
}

func TestPullUpMethod_UnknownClass(t *testing.T) {
	b := fixture.New()
	b.Class("A")
	_, err := refactoring.NewPullUpMethod(b.G, method("Missing", "m"), &spec.Class{Name: "A"})
	assert.True(t, errors.Is(err, location.ErrCardinality))
}

func TestCombineMethodsIntoClass(t *testing.T) {
	b := fixture.New()
	s := b.Class("S")
	count := b.Field(s, "count", "int")
	work := b.Method(s, "work", "void")
	read := b.Read(work, count)
	util := b.Method(b.Class("U"), "util", "void")
	call := b.Call(work, util)

	destination := &spec.Class{Name: "Helper", Visibility: graph.Public, Package: &spec.Package{Name: "app"}}
	combine := refactoring.NewCombineMethodsIntoClass(destination, []*spec.Method{method("S", "work"), method("U", "util")})
	require.Len(t, combine.Microsteps(), 3)
	assert.Equal(t, "CombineMethodsIntoClass(app.Helper <- S.work(), U.util())", combine.String())

	dangers, err := analysis.New(b.G, combine).Analyse()
	require.NoError(t, err)
	assert.Equal(t, []summary{
		{Label: "BrokenLocalReferences.Body", IDs: []graph.ID{read}},
		{Label: "MissingDefinition.Method", IDs: []graph.ID{call}},
	}, summarize(dangers))

	methods, err := destination.Stream(b.G).Methods().Collect()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"util", "work"}, methods.Names())
}

func TestCombineMethodsIntoClass_ExistingClass(t *testing.T) {
	b := fixture.New()
	b.Method(b.Class("S"), "work", "void")
	b.Class("Helper")

	combine := refactoring.NewCombineMethodsIntoClass(&spec.Class{Name: "Helper", Package: &spec.Package{Name: "app"}}, nil)
	dangers, err := analysis.New(b.G, combine).Analyse()
	require.NoError(t, err)
	assert.Equal(t, []summary{{Label: "DoubleDefinition.Class", IDs: []graph.ID{"Helper"}}}, summarize(dangers))
}
