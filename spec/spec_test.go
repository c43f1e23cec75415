package spec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/refd/graph"
	"github.com/viant/refd/internal/fixture"
	"github.com/viant/refd/location"
	"github.com/viant/refd/spec"
	"gopkg.in/yaml.v3"
)

func TestMethodFromLocation(t *testing.T) {
	b := fixture.New()
	class := b.Class("Account")
	method := b.Static(b.Method(class, "transfer", "boolean", "long", "Account"))
	methodLocation, _ := b.G.Location(method)

	actual, err := spec.MethodFromLocation(b.G, methodLocation)
	require.NoError(t, err)

	expected := `name: transfer
parameters:
    - name: p0
      type: long
    - name: p1
      type: Account
visibility: public
static: true
returnType: boolean
class:
    name: Account
    visibility: public
    package:
        name: app
`
	data, err := yaml.Marshal(actual)
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))

	classLocation, _ := b.G.Location(class)
	_, err = spec.MethodFromLocation(b.G, classLocation)
	assert.True(t, errors.Is(err, spec.ErrIncompatibleLocation))
	_, err = spec.ClassFromLocation(b.G, methodLocation)
	assert.True(t, errors.Is(err, spec.ErrIncompatibleLocation))
}

func TestMethod_Copy(t *testing.T) {
	original := &spec.Method{
		Name:       "m",
		Parameters: []spec.Parameter{{Name: "a", Type: "int"}},
		ReturnType: "void",
		Class:      &spec.Class{Name: "A", Package: &spec.Package{Name: "app"}},
	}
	clone := original.Copy()
	clone.SetEnclosingClass(&spec.Class{Name: "B"})
	clone.Parameters[0].Type = "long"

	assert.Equal(t, "A", original.Class.Name)
	assert.Equal(t, "int", original.Parameters[0].Type)

	classClone := original.Class.Copy()
	classClone.Package.Name = "other"
	assert.Equal(t, "app", original.Class.Package.Name)
}

func TestClass_Construct(t *testing.T) {
	b := fixture.New()
	target := &spec.Class{Name: "Service", Visibility: graph.Protected, Package: &spec.Package{Name: "app"}}

	created, err := target.Construct(b.G)
	require.NoError(t, err)
	assert.True(t, created.Tagged(graph.Class, graph.RefactorCreatedClass, graph.ProtectedPackageVisibility))
	assert.Equal(t, "Service", created.Name())
	assert.EqualValues(t, []graph.ID{b.Package}, b.G.Parent(graph.NewSet(created.ID)).IDs())

	resolved, err := target.Resolve(b.G)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)

	_, err = (&spec.Class{Name: "Service", Package: &spec.Package{Name: "missing"}}).Construct(b.G)
	assert.True(t, errors.Is(err, location.ErrCardinality))
}

func TestClass_Resolve(t *testing.T) {
	b := fixture.New()
	b.Class("A")
	other, err := b.G.AddLocation("lib", graph.Package)
	require.NoError(t, err)
	require.NoError(t, other.SetAttribute(graph.AttrName, "lib"))
	duplicate, err := (&spec.Class{Name: "A", Package: &spec.Package{Name: "lib"}}).Construct(b.G)
	require.NoError(t, err)

	_, err = (&spec.Class{Name: "A"}).Resolve(b.G)
	assert.True(t, errors.Is(err, location.ErrCardinality), "ambiguous name")

	actual, err := (&spec.Class{Name: "A", Package: &spec.Package{Name: "lib"}}).Resolve(b.G)
	require.NoError(t, err)
	assert.Equal(t, duplicate.ID, actual.ID)

	_, err = (&spec.Class{Name: "Missing"}).Resolve(b.G)
	assert.True(t, errors.Is(err, location.ErrCardinality))

	b.Class("B")
	_, err = (&spec.Class{Name: "B", Package: &spec.Package{Name: "lib"}}).Resolve(b.G)
	assert.True(t, errors.Is(err, location.ErrCardinality), "single class in another package")
	actual, err = (&spec.Class{Name: "B", Package: &spec.Package{Name: "app"}}).Resolve(b.G)
	require.NoError(t, err)
	assert.Equal(t, graph.ID("B"), actual.ID)
}

func TestMethod_Construct(t *testing.T) {
	b := fixture.New()
	b.Class("A")
	target := &spec.Method{
		Name:       "sum",
		Parameters: []spec.Parameter{{Name: "a", Type: "int"}, {Name: "b", Type: "long"}},
		Visibility: graph.Public,
		ReturnType: "long",
		Class:      &spec.Class{Name: "A"},
	}
	before, err := target.Stream(b.G).Collect()
	require.NoError(t, err)
	assert.Equal(t, 0, before.Size())

	created, err := target.Construct(b.G)
	require.NoError(t, err)
	assert.True(t, created.Tagged(graph.Method, graph.InstanceMethod, graph.RefactorCreatedMethod, graph.PublicVisibility))
	assert.False(t, created.Tagged(graph.AbstractMethod))

	resolved, err := target.Resolve(b.G)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)

	roundTrip, err := spec.MethodFromLocation(b.G, created)
	require.NoError(t, err)
	assert.Equal(t, target.ParameterTypes(), roundTrip.ParameterTypes())
	assert.Equal(t, "long", roundTrip.ReturnType)
	assert.Equal(t, "a", roundTrip.Parameters[0].Name)
	assert.Equal(t, "A", roundTrip.Class.Name)

	abstract := &spec.Method{Name: "run", ReturnType: "void", Abstract: true, Static: true, Class: &spec.Class{Name: "A"}}
	created, err = abstract.Construct(b.G)
	require.NoError(t, err)
	assert.True(t, created.Tagged(graph.AbstractMethod, graph.ClassMethod))

	_, err = (&spec.Method{Name: "x", Class: &spec.Class{Name: "Missing"}}).Construct(b.G)
	assert.True(t, errors.Is(err, location.ErrCardinality))
}

func TestMethod_ConstructUnresolvedType(t *testing.T) {
	var testCases = []struct {
		description string
		method      *spec.Method
	}{
		{
			description: "missing return type",
			method:      &spec.Method{Name: "get", ReturnType: "Widget", Class: &spec.Class{Name: "A"}},
		},
		{
			description: "missing parameter type",
			method:      &spec.Method{Name: "put", ReturnType: "void", Parameters: []spec.Parameter{{Name: "w", Type: "Widget"}}, Class: &spec.Class{Name: "A"}},
		},
		{
			description: "ambiguous return type",
			method:      &spec.Method{Name: "get", ReturnType: "Part", Class: &spec.Class{Name: "A"}},
		},
	}
	for _, testCase := range testCases {
		b := fixture.New()
		b.Class("A")
		b.Class("Part")
		lib, err := b.G.AddLocation("lib", graph.Package)
		require.NoError(t, err, testCase.description)
		require.NoError(t, lib.SetAttribute(graph.AttrName, "lib"), testCase.description)
		_, err = (&spec.Class{Name: "Part", Package: &spec.Package{Name: "lib"}}).Construct(b.G)
		require.NoError(t, err, testCase.description)
		size := b.G.Len()

		_, err = testCase.method.Construct(b.G)
		assert.True(t, errors.Is(err, location.ErrCardinality), testCase.description)
		assert.Equal(t, size, b.G.Len(), testCase.description)
	}
}

func TestMethod_Body(t *testing.T) {
	b := fixture.New()
	class := b.Class("A")
	method := b.Method(class, "m", "void")
	methodLocation, _ := b.G.Location(method)
	target, err := spec.MethodFromLocation(b.G, methodLocation)
	require.NoError(t, err)

	body, err := target.Body(b.G).Collect()
	require.NoError(t, err)
	assert.EqualValues(t, []graph.ID{fixture.BodyID(method)}, body.IDs().IDs())
}

func TestUnsupportedConstruct(t *testing.T) {
	g := graph.New()
	_, err := (&spec.Field{Name: "f"}).Construct(g)
	assert.True(t, errors.Is(err, spec.ErrUnsupported))
	_, err = (&spec.Package{Name: "p"}).Construct(g)
	assert.True(t, errors.Is(err, spec.ErrUnsupported))
}

func TestField(t *testing.T) {
	b := fixture.New()
	class := b.Class("A")
	field := b.StaticField(class, "count", "int")
	fieldLocation, _ := b.G.Location(field)

	actual, err := spec.FieldFromLocation(b.G, fieldLocation)
	require.NoError(t, err)
	assert.Equal(t, "count", actual.Name)
	assert.Equal(t, "int", actual.Type)
	assert.True(t, actual.Static)
	assert.Equal(t, graph.Private, actual.Visibility)

	fields, err := actual.Stream(b.G).Collect()
	require.NoError(t, err)
	assert.EqualValues(t, []graph.ID{field}, fields.IDs().IDs())
}

func TestFindMethod(t *testing.T) {
	b := fixture.New()
	class := b.Class("A")
	b.Method(class, "m", "void", "int", "long")
	b.Method(class, "m", "void")

	actual, err := spec.FindMethod(b.G, "A.m(int, long)")
	require.NoError(t, err)
	assert.Equal(t, []string{"int", "long"}, actual.ParameterTypes())
	assert.Equal(t, "A.m(int,long)", actual.String())

	actual, err = spec.FindMethod(b.G, "A.m()")
	require.NoError(t, err)
	assert.Empty(t, actual.Parameters)

	_, err = spec.FindMethod(b.G, "A.m(char)")
	assert.True(t, errors.Is(err, location.ErrCardinality))
	_, err = spec.FindMethod(b.G, "m")
	assert.Error(t, err)
}

func TestParseClass(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expected    *spec.Class
		hasError    bool
	}{
		{description: "name only", input: "Service", expected: &spec.Class{Name: "Service", Visibility: graph.Public}},
		{description: "full", input: "app, private, Service", expected: &spec.Class{Name: "Service", Visibility: graph.Private, Package: &spec.Package{Name: "app"}}},
		{description: "default package", input: ",protected,Service", expected: &spec.Class{Name: "Service", Visibility: graph.Protected}},
		{description: "bad visibility", input: "app,hidden,Service", hasError: true},
		{description: "bad arity", input: "app,Service", hasError: true},
		{description: "missing name", input: "app,public,", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := spec.ParseClass(testCase.input)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expected, actual, testCase.description)
	}
}

func TestSpecifiableCollections(t *testing.T) {
	b := fixture.New()
	a, c := b.Class("A"), b.Class("C")
	b.Extends(c, a)
	b.Method(a, "m", "void")

	supers, err := location.NewClassSet(b.G, graph.NewSet(c)).Stream().AllSuperClasses().Collect()
	require.NoError(t, err)
	classes, err := spec.Classes(supers)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "A", classes[0].Name)

	methods, err := supers.Stream().Methods().Collect()
	require.NoError(t, err)
	specs, err := spec.Methods(methods)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "A.m()", specs[0].String())
}
