package detector

import (
	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
	"github.com/viant/refd/spec"
)

// MissingDefinitionMethod reports call sites left without a definition when Subject is removed
type MissingDefinitionMethod struct {
	Subject *spec.Method
}

func (d *MissingDefinitionMethod) Kind() Kind { return MissingDefinition }

func (d *MissingDefinitionMethod) Risks(g *graph.Graph) (location.Set, error) {
	sites, err := d.Subject.Stream(g).MethodsCalledAt().Collect()
	return sites.Set, err
}

func (d *MissingDefinitionMethod) detector() {}

// RemovedConcreteOverrideMethod reports concrete methods Subject overrides;
// calls dispatched to Subject fall back to them once it is removed
type RemovedConcreteOverrideMethod struct {
	Subject *spec.Method
}

func (d *RemovedConcreteOverrideMethod) Kind() Kind { return RemovedConcreteOverride }

func (d *RemovedConcreteOverrideMethod) Risks(g *graph.Graph) (location.Set, error) {
	methods, err := d.Subject.Stream(g).Overrides().ConcreteMethods().Collect()
	return methods.Set, err
}

func (d *RemovedConcreteOverrideMethod) detector() {}

// LostSpecificationMethod reports methods directly overriding Subject,
// they lose the specification they refine once it is removed
type LostSpecificationMethod struct {
	Subject *spec.Method
}

func (d *LostSpecificationMethod) Kind() Kind { return LostSpecification }

func (d *LostSpecificationMethod) Risks(g *graph.Graph) (location.Set, error) {
	methods, err := d.Subject.Stream(g).OverriddenBy().Collect()
	return methods.Set, err
}

func (d *LostSpecificationMethod) detector() {}

// MissingSuperImplementationMethod reports direct subclasses of the class declaring a concrete Subject
// that do not override it and so lose the inherited implementation
type MissingSuperImplementationMethod struct {
	Subject *spec.Method
}

func (d *MissingSuperImplementationMethod) Kind() Kind { return MissingSuperImplementation }

func (d *MissingSuperImplementationMethod) Risks(g *graph.Graph) (location.Set, error) {
	concrete := d.Subject.Stream(g).ConcreteMethods()
	classes, err := concrete.ParentClasses().
		DirectSubclasses().
		DifferenceWithClasses(concrete.OverriddenBy().ParentClasses()).
		Collect()
	return classes.Set, err
}

func (d *MissingSuperImplementationMethod) detector() {}

// MissingAbstractImplementationMethod reports abstract methods of super classes a concrete Subject implements,
// they lose their implementation once it is removed
type MissingAbstractImplementationMethod struct {
	Subject *spec.Method
}

func (d *MissingAbstractImplementationMethod) Kind() Kind { return MissingAbstractImplementation }

func (d *MissingAbstractImplementationMethod) Risks(g *graph.Graph) (location.Set, error) {
	concrete := d.Subject.Stream(g).ConcreteMethods()
	abstract := concrete.ParentClasses().AllSuperClasses().AbstractClasses().Methods().AbstractMethods()
	methods, err := concrete.Overrides().IntersectionWithMethods(abstract).Collect()
	return methods.Set, err
}

func (d *MissingAbstractImplementationMethod) detector() {}
