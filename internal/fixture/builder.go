// Package fixture builds small program graphs for tests
package fixture

import (
	"fmt"
	"strings"

	"github.com/viant/refd/graph"
)

// Primitives are type locations every fixture graph carries
var Primitives = []string{"void", "boolean", "char", "byte", "short", "int", "long", "float", "double", "String"}

// Builder creates program graph elements with predictable ids:
// classes use their name, methods use Class.name(types), fields use Class.name
type Builder struct {
	G       *graph.Graph
	Project graph.ID
	Package graph.ID
	calls   int
}

// New creates a builder with a "demo" project holding package "app"
func New() *Builder {
	b := &Builder{G: graph.New(), Project: "demo", Package: "app"}
	b.location(b.Project, "demo", graph.Project)
	b.location(b.Package, "app", graph.Package, graph.Namespace)
	b.relate(b.Project, b.Package, graph.Contains)
	for _, name := range Primitives {
		b.location(graph.ID(name), name, graph.Type)
	}
	return b
}

// Class adds a public concrete class to the package
func (b *Builder) Class(name string) graph.ID {
	id := graph.ID(name)
	b.location(id, name, graph.Class, graph.Type, graph.Classifier, graph.Namespace, graph.PublicVisibility)
	b.relate(b.Package, id, graph.Contains)
	return id
}

// AbstractClass adds a public abstract class to the package
func (b *Builder) AbstractClass(name string) graph.ID {
	id := b.Class(name)
	b.tag(id, graph.AbstractClass)
	return id
}

// Extends relates subclass to superclass
func (b *Builder) Extends(subclass, superclass graph.ID) {
	b.relate(subclass, superclass, graph.Extends, graph.Supertype)
}

// Method adds a public instance method with a control flow body
func (b *Builder) Method(class graph.ID, name, returnType string, parameters ...string) graph.ID {
	id := MethodID(class, name, parameters...)
	b.location(id, name, graph.Method, graph.Function, graph.InstanceMethod, graph.PublicVisibility)
	b.relate(class, id, graph.Contains, graph.Declares)
	b.relate(id, graph.ID(returnType), graph.Returns)
	for i, parameterType := range parameters {
		parameter := graph.ID(fmt.Sprintf("%v#p%d", id, i))
		b.location(parameter, fmt.Sprintf("p%d", i), graph.Parameter, graph.Variable, graph.CallInput)
		b.attribute(parameter, graph.AttrParameterIndex, i)
		b.relate(id, parameter, graph.HasParameter, graph.HasVariable, graph.Contains)
		b.relate(parameter, graph.ID(parameterType), graph.TypeOf)
	}
	receiver := id + "#this"
	b.location(receiver, "this", graph.Identity)
	b.relate(id, receiver, graph.Contains)
	body := BodyID(id)
	b.location(body, name+" body", graph.Node)
	b.relate(id, body, graph.HasControlFlow, graph.Contains)
	return id
}

// AbstractMethod adds a public abstract method without body
func (b *Builder) AbstractMethod(class graph.ID, name, returnType string, parameters ...string) graph.ID {
	id := b.Method(class, name, returnType, parameters...)
	if err := b.G.RemoveLocation(BodyID(id)); err != nil {
		panic(err)
	}
	b.untag(id, graph.InstanceMethod)
	b.tag(id, graph.AbstractMethod)
	return id
}

// Static turns a method into a class method
func (b *Builder) Static(method graph.ID) graph.ID {
	b.untag(method, graph.InstanceMethod)
	b.tag(method, graph.ClassMethod)
	return method
}

// Final marks a method final
func (b *Builder) Final(method graph.ID) graph.ID {
	b.tag(method, graph.FinalMethod)
	return method
}

// Visibility replaces location visibility
func (b *Builder) Visibility(id graph.ID, visibility graph.Visibility) graph.ID {
	b.untag(id, graph.PublicVisibility, graph.ProtectedPackageVisibility, graph.PackageVisibility, graph.PrivateVisibility)
	b.tag(id, visibility.Tag())
	return id
}

// Override relates overriding method to the overridden one
func (b *Builder) Override(overriding, overridden graph.ID) {
	b.relate(overriding, overridden, graph.Overrides)
}

// Field adds an instance field
func (b *Builder) Field(class graph.ID, name, fieldType string) graph.ID {
	id := graph.ID(fmt.Sprintf("%v.%v", class, name))
	b.location(id, name, graph.Field, graph.Variable, graph.InstanceVariable, graph.PrivateVisibility)
	b.relate(class, id, graph.Contains, graph.Declares)
	b.relate(id, graph.ID(fieldType), graph.TypeOf)
	return id
}

// StaticField adds a class field
func (b *Builder) StaticField(class graph.ID, name, fieldType string) graph.ID {
	id := b.Field(class, name, fieldType)
	b.untag(id, graph.InstanceVariable)
	b.tag(id, graph.ClassVariable)
	return id
}

// Call adds a static call site in caller body invoking callee
func (b *Builder) Call(caller, callee graph.ID) graph.ID {
	site := b.callSite(caller, callee)
	b.relate(site, callee, graph.InvokedFunction)
	return site
}

// SignatureCall adds a call site in caller body bound to callee signature
func (b *Builder) SignatureCall(caller, callee graph.ID) graph.ID {
	site := b.callSite(caller, callee)
	b.relate(site, callee, graph.InvokedSignature)
	return site
}

// DynamicCall adds a dispatched call site where the receiver flows into callee identity
func (b *Builder) DynamicCall(caller, callee graph.ID) graph.ID {
	site := b.callSite(caller, callee)
	pass := site + "#receiver"
	b.location(pass, "receiver", graph.IdentityPass, graph.DataFlowNode)
	b.relate(BodyID(caller), pass, graph.Contains)
	b.relate(pass, callee+"#this", graph.DataFlow)
	b.relate(pass, site, graph.IdentityPassedTo)
	return site
}

// Read adds a field access in method body
func (b *Builder) Read(method, field graph.ID) graph.ID {
	b.calls++
	access := graph.ID(fmt.Sprintf("%v@%d", field, b.calls))
	location, _ := b.G.Location(field)
	b.location(access, location.Name(), graph.DataFlowNode)
	b.relate(BodyID(method), access, graph.Contains)
	b.relate(field, access, graph.DataFlow)
	return access
}

// Source attaches source correspondence
func (b *Builder) Source(id graph.ID, path string, offset, length int) {
	b.attribute(id, graph.AttrSource, graph.Source{Path: path, Offset: offset, Length: length})
}

func (b *Builder) callSite(caller, callee graph.ID) graph.ID {
	b.calls++
	site := graph.ID(fmt.Sprintf("%v->%v@%d", caller, callee, b.calls))
	location, _ := b.G.Location(callee)
	b.location(site, location.Name()+"()", graph.DataFlowNode)
	b.relate(BodyID(caller), site, graph.Contains)
	return site
}

// MethodID returns a method id
func MethodID(class graph.ID, name string, parameters ...string) graph.ID {
	return graph.ID(fmt.Sprintf("%v.%v(%v)", class, name, strings.Join(parameters, ",")))
}

// BodyID returns a method body id
func BodyID(method graph.ID) graph.ID {
	return method + "#body"
}

func (b *Builder) location(id graph.ID, name string, tags ...graph.Tag) {
	location, err := b.G.AddLocation(id, tags...)
	if err != nil {
		panic(err)
	}
	b.attribute(location.ID, graph.AttrName, name)
}

func (b *Builder) attribute(id graph.ID, key graph.Attribute, value interface{}) {
	location, err := b.G.MustLocation(id)
	if err != nil {
		panic(err)
	}
	if err = location.SetAttribute(key, value); err != nil {
		panic(err)
	}
}

func (b *Builder) relate(from, to graph.ID, tags ...graph.EdgeTag) {
	if _, err := b.G.CreateRelation(from, to, tags...); err != nil {
		panic(err)
	}
}

func (b *Builder) tag(id graph.ID, tags ...graph.Tag) {
	location, err := b.G.MustLocation(id)
	if err != nil {
		panic(err)
	}
	location.Tag(tags...)
}

func (b *Builder) untag(id graph.ID, tags ...graph.Tag) {
	location, err := b.G.MustLocation(id)
	if err != nil {
		panic(err)
	}
	location.Untag(tags...)
}
