// Package detector defines the structural rules predicting refactoring dangers.
//
// Each detector is bound to the specifications of the transformation it guards and is
// evaluated lazily against the graph state at the time Risks is called.
package detector

import (
	"github.com/viant/refd/graph"
	"github.com/viant/refd/location"
)

// Kind identifies a detector rule
type Kind int

const (
	BrokenLocalReferences Kind = iota
	BrokenSubTyping
	CorrespondingSubclassSpecification
	DoubleDefinitionClass
	DoubleDefinitionMethod
	LostSpecification
	MissingAbstractImplementation
	MissingDefinition
	MissingSuperImplementation
	OverloadParameterConversion
	RemovedConcreteOverride
)

var kindLabels = map[Kind]string{
	BrokenLocalReferences:              "BrokenLocalReferences.Body",
	BrokenSubTyping:                    "BrokenSubTyping.Method",
	CorrespondingSubclassSpecification: "CorrespondingSubclassSpecification.Method",
	DoubleDefinitionClass:              "DoubleDefinition.Class",
	DoubleDefinitionMethod:             "DoubleDefinition.Method",
	LostSpecification:                  "LostSpecification.Method",
	MissingAbstractImplementation:      "MissingAbstractImplementation.Method",
	MissingDefinition:                  "MissingDefinition.Method",
	MissingSuperImplementation:         "MissingSuperImplementation.Method",
	OverloadParameterConversion:        "OverloadParameterConversion.Method",
	RemovedConcreteOverride:            "RemovedConcreteOverride.Method",
}

// String returns the rule label
func (k Kind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return "Unknown"
}

// Kinds returns all rule kinds
func Kinds() []Kind {
	return []Kind{
		BrokenLocalReferences, BrokenSubTyping, CorrespondingSubclassSpecification,
		DoubleDefinitionClass, DoubleDefinitionMethod, LostSpecification,
		MissingAbstractImplementation, MissingDefinition, MissingSuperImplementation,
		OverloadParameterConversion, RemovedConcreteOverride,
	}
}

// Detector evaluates one structural rule. The set of implementations is closed.
type Detector interface {
	Kind() Kind
	// Risks returns locations at risk, an empty set when none, or a structural error
	Risks(g *graph.Graph) (location.Set, error)
	detector()
}
