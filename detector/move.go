package detector

import (
	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
	"github.com/viant/refd/spec"
)

// BrokenLocalReferencesBody reports method and field accesses in a moved body that resolve
// against the source class hierarchy but not against the destination class hierarchy
type BrokenLocalReferencesBody struct {
	Source      *spec.Method
	Destination *spec.Class
}

func (d *BrokenLocalReferencesBody) Kind() Kind { return BrokenLocalReferences }

func (d *BrokenLocalReferencesBody) Risks(g *graph.Graph) (location.Set, error) {
	body := d.Source.Body(g)
	local := body.ParentMethods().ParentClasses()
	context := local.UnionWithClasses(local.AllSuperClasses())
	if d.Destination != nil {
		destination := d.Destination.Stream(g)
		context = context.DifferenceWithClasses(destination.UnionWithClasses(destination.AllSuperClasses()))
	}
	references := context.Methods().MethodsCalledAt().Union(context.Fields().FieldsCalledAt())
	sites, err := body.MethodCalls().
		Union(body.FieldCalls()).
		IntersectionWithInstructions(references).
		Collect()
	return sites.Set, err
}

func (d *BrokenLocalReferencesBody) detector() {}
