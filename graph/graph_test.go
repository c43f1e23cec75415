package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/refd/graph"
)

// hierarchy builds C -> B -> A along extends, with method m declared by A
func hierarchy(t *testing.T) *graph.Graph {
	g := graph.New()
	for _, id := range []graph.ID{"A", "B", "C"} {
		location, err := g.AddLocation(id, graph.Class)
		require.NoError(t, err)
		require.NoError(t, location.SetAttribute(graph.AttrName, string(id)))
	}
	_, err := g.AddLocation("A.m", graph.Method, graph.InstanceMethod)
	require.NoError(t, err)
	mustRelate(t, g, "B", "A", graph.Extends)
	mustRelate(t, g, "C", "B", graph.Extends)
	mustRelate(t, g, "A", "A.m", graph.Contains, graph.Declares)
	return g
}

func mustRelate(t *testing.T, g *graph.Graph, from, to graph.ID, tags ...graph.EdgeTag) {
	_, err := g.CreateRelation(from, to, tags...)
	require.NoError(t, err)
}

func TestGraph_Traversal(t *testing.T) {
	g := hierarchy(t)
	var testCases = []struct {
		description string
		actual      graph.Set
		expected    []graph.ID
	}{
		{description: "successors", actual: g.Successors(graph.NewSet("C"), graph.Extends), expected: []graph.ID{"B"}},
		{description: "predecessors", actual: g.Predecessors(graph.NewSet("A"), graph.Extends), expected: []graph.ID{"B"}},
		{description: "forward includes start", actual: g.Forward(graph.NewSet("C"), graph.Extends), expected: []graph.ID{"A", "B", "C"}},
		{description: "reverse includes start", actual: g.Reverse(graph.NewSet("A"), graph.Extends), expected: []graph.ID{"A", "B", "C"}},
		{description: "descendants exclude start", actual: g.Descendants(graph.NewSet("C"), graph.Extends), expected: []graph.ID{"A", "B"}},
		{description: "ancestors exclude start", actual: g.Ancestors(graph.NewSet("A"), graph.Extends), expected: []graph.ID{"B", "C"}},
		{description: "contained", actual: g.Contained(graph.NewSet("A")), expected: []graph.ID{"A", "A.m"}},
		{description: "parent", actual: g.Parent(graph.NewSet("A.m")), expected: []graph.ID{"A"}},
		{description: "tagged any of", actual: g.Tagged(g.Universe(), graph.Method, graph.Field), expected: []graph.ID{"A.m"}},
		{description: "named", actual: g.Named(g.Universe(), "B"), expected: []graph.ID{"B"}},
		{description: "forward difference", actual: g.ForwardDifference(graph.NewSet("C"), graph.Extends), expected: []graph.ID{"A", "B"}},
		{description: "unknown start", actual: g.Successors(graph.NewSet("Z"), graph.Extends), expected: []graph.ID{}},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expected, testCase.actual.IDs(), testCase.description)
	}
}

func TestSet_Algebra(t *testing.T) {
	a := graph.NewSet("1", "2", "3")
	b := graph.NewSet("2", "3", "4")
	c := graph.NewSet("3", "5")

	assert.True(t, a.Union(b).Equal(b.Union(a)), "union commutes")
	assert.True(t, a.Intersection(b).Equal(b.Intersection(a)), "intersection commutes")
	assert.True(t, a.Union(b.Union(c)).Equal(a.Union(b).Union(c)), "union associates")
	assert.True(t, a.Difference(a).Equal(graph.NewSet()), "self difference is empty")
	assert.True(t, a.Union(graph.NewSet()).Equal(a), "empty set is union identity")
	assert.True(t, a.Intersection(a).Equal(a), "intersection idempotent")
	assert.EqualValues(t, []graph.ID{"3"}, a.Intersection(b, c).IDs())
	assert.EqualValues(t, []graph.ID{"1"}, a.Difference(b, c).IDs())
	assert.EqualValues(t, []graph.ID{"1", "2", "3"}, a.IDs(), "operands are not mutated")
}

func TestLocation_Attributes(t *testing.T) {
	g := graph.New()
	location := g.CreateLocation(graph.Parameter)

	require.NoError(t, location.SetAttribute(graph.AttrParameterIndex, 1))
	index, err := location.ParameterIndex()
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	err = location.SetAttribute(graph.AttrParameterIndex, "1")
	assert.True(t, errors.Is(err, graph.ErrIncorrectAttributeType))
	err = location.SetAttribute(graph.AttrName, 7)
	assert.True(t, errors.Is(err, graph.ErrIncorrectAttributeType))

	assert.Nil(t, location.Source())
	require.NoError(t, location.SetAttribute(graph.AttrSource, &graph.Source{Path: "src/A.java", Offset: 10, Length: 4}))
	assert.Equal(t, &graph.Source{Path: "src/A.java", Offset: 10, Length: 4}, location.Source())

	location.RemoveAttribute(graph.AttrParameterIndex)
	assert.False(t, location.HasAttribute(graph.AttrParameterIndex))
	_, err = location.ParameterIndex()
	assert.True(t, errors.Is(err, graph.ErrIncorrectAttributeType))
}

func TestGraph_RemoveLocation(t *testing.T) {
	g := hierarchy(t)
	require.NoError(t, g.RemoveLocation("B"))

	assert.EqualValues(t, []graph.ID{}, g.Predecessors(graph.NewSet("A"), graph.Extends).IDs())
	assert.EqualValues(t, []graph.ID{}, g.Successors(graph.NewSet("C"), graph.Extends).IDs())
	assert.Len(t, g.Relations(), 1)

	err := g.RemoveLocation("B")
	assert.True(t, errors.Is(err, graph.ErrLocationNotFound))
}

func TestGraph_Clone(t *testing.T) {
	g := hierarchy(t)
	before, err := g.Fingerprint()
	require.NoError(t, err)

	clone := g.Clone()
	cloned, err := clone.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, before, cloned)

	require.NoError(t, clone.RemoveLocation("A.m"))
	created := clone.CreateLocation(graph.Class)
	assert.NotEqual(t, graph.ID(""), created.ID)

	after, err := g.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, before, after, "original graph is untouched")
	_, ok := g.Location("A.m")
	assert.True(t, ok)
}

func TestTag_Parse(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expected    graph.Tag
		hasError    bool
	}{
		{description: "class", input: "class", expected: graph.Class},
		{description: "case insensitive", input: "Abstract_Method", expected: graph.AbstractMethod},
		{description: "unknown", input: "interface", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := graph.ParseTag(testCase.input)
		if testCase.hasError {
			assert.True(t, errors.Is(err, graph.ErrUnknownTag), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expected, actual, testCase.description)
		assert.Equal(t, actual, mustParse(t, actual.String()), testCase.description)
	}

	edge, err := graph.ParseEdgeTag("has_parameter")
	require.NoError(t, err)
	assert.Equal(t, graph.HasParameter, edge)
}

func mustParse(t *testing.T, name string) graph.Tag {
	tag, err := graph.ParseTag(name)
	require.NoError(t, err)
	return tag
}

func TestVisibility(t *testing.T) {
	visibility, err := graph.ParseVisibility("protected")
	require.NoError(t, err)
	assert.Equal(t, graph.ProtectedPackageVisibility, visibility.Tag())

	actual, ok := graph.VisibilityOf(graph.TagsOf(graph.Method, graph.PrivateVisibility))
	assert.True(t, ok)
	assert.Equal(t, graph.Private, actual)

	_, ok = graph.VisibilityOf(graph.TagsOf(graph.Method))
	assert.False(t, ok)
}
