package graph

import (
	"fmt"
	"strings"
)

// Tag classifies a program location. Tags are not mutually exclusive.
type Tag uint8

const (
	Node Tag = iota
	Project
	Package
	Namespace
	Type
	Classifier
	Class
	AbstractClass
	FinalClass
	Function
	Method
	FinalMethod
	ClassMethod
	InstanceMethod
	AbstractMethod
	Variable
	Parameter
	Field
	InstanceVariable
	ClassVariable
	PublicVisibility
	ProtectedPackageVisibility
	PackageVisibility
	PrivateVisibility
	Identity
	IdentityPass
	DataFlowNode
	CallInput
	RefactorCreatedClass
	RefactorCreatedMethod
	RefactorCreatedParameter
	tagCount
)

var tagNames = [tagCount]string{
	Node:                       "node",
	Project:                    "project",
	Package:                    "package",
	Namespace:                  "namespace",
	Type:                       "type",
	Classifier:                 "classifier",
	Class:                      "class",
	AbstractClass:              "abstract_class",
	FinalClass:                 "final_class",
	Function:                   "function",
	Method:                     "method",
	FinalMethod:                "final_method",
	ClassMethod:                "class_method",
	InstanceMethod:             "instance_method",
	AbstractMethod:             "abstract_method",
	Variable:                   "variable",
	Parameter:                  "parameter",
	Field:                      "field",
	InstanceVariable:           "instance_variable",
	ClassVariable:              "class_variable",
	PublicVisibility:           "public_visibility",
	ProtectedPackageVisibility: "protected_package_visibility",
	PackageVisibility:          "package_visibility",
	PrivateVisibility:          "private_visibility",
	Identity:                   "identity",
	IdentityPass:               "identity_pass",
	DataFlowNode:               "data_flow",
	CallInput:                  "call_input",
	RefactorCreatedClass:       "refactor_created_class",
	RefactorCreatedMethod:      "refactor_created_method",
	RefactorCreatedParameter:   "refactor_created_parameter",
}

func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return fmt.Sprintf("tag(%d)", t)
}

// ParseTag translates an external tag name
func ParseTag(name string) (Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range tagNames {
		if candidate == name {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: location tag %q", ErrUnknownTag, name)
}

// MarshalYAML implements yaml.Marshaler
func (t Tag) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *Tag) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseTag(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Tags is a location tag bitset
type Tags uint64

// TagsOf returns a bitset holding tags
func TagsOf(tags ...Tag) Tags {
	var result Tags
	for _, tag := range tags {
		result |= 1 << tag
	}
	return result
}

func (t Tags) Has(tag Tag) bool {
	return t&(1<<tag) != 0
}

// HasAny returns true when at least one of tags is set
func (t Tags) HasAny(tags ...Tag) bool {
	return t&TagsOf(tags...) != 0
}

// List returns set tags in declaration order
func (t Tags) List() []Tag {
	var result []Tag
	for i := Tag(0); i < tagCount; i++ {
		if t.Has(i) {
			result = append(result, i)
		}
	}
	return result
}

// EdgeTag classifies a relation. A relation may carry several tags.
type EdgeTag uint8

const (
	Edge EdgeTag = iota
	Contains
	Declares
	Extends
	Supertype
	HasParameter
	HasVariable
	HasControlFlow
	TypeOf
	Returns
	Overrides
	DataFlow
	InvokedSignature
	InvokedFunction
	IdentityPassedTo
	RefactorCreatedEdge
	edgeTagCount
)

var edgeTagNames = [edgeTagCount]string{
	Edge:                "edge",
	Contains:            "contains",
	Declares:            "declares",
	Extends:             "extends",
	Supertype:           "supertype",
	HasParameter:        "has_parameter",
	HasVariable:         "has_variable",
	HasControlFlow:      "has_control_flow",
	TypeOf:              "type_of",
	Returns:             "returns",
	Overrides:           "overrides",
	DataFlow:            "data_flow",
	InvokedSignature:    "invoked_signature",
	InvokedFunction:     "invoked_function",
	IdentityPassedTo:    "identity_passed_to",
	RefactorCreatedEdge: "refactor_created_edge",
}

func (t EdgeTag) String() string {
	if t < edgeTagCount {
		return edgeTagNames[t]
	}
	return fmt.Sprintf("edge_tag(%d)", t)
}

// ParseEdgeTag translates an external relation tag name
func ParseEdgeTag(name string) (EdgeTag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range edgeTagNames {
		if candidate == name {
			return EdgeTag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: relation tag %q", ErrUnknownTag, name)
}

// MarshalYAML implements yaml.Marshaler
func (t EdgeTag) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *EdgeTag) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseEdgeTag(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// EdgeTags is a relation tag bitset
type EdgeTags uint32

// EdgeTagsOf returns a bitset holding tags
func EdgeTagsOf(tags ...EdgeTag) EdgeTags {
	var result EdgeTags
	for _, tag := range tags {
		result |= 1 << tag
	}
	return result
}

func (t EdgeTags) Has(tag EdgeTag) bool {
	return t&(1<<tag) != 0
}

// HasAny returns true when at least one of tags is set
func (t EdgeTags) HasAny(tags ...EdgeTag) bool {
	return t&EdgeTagsOf(tags...) != 0
}

// List returns set tags in declaration order
func (t EdgeTags) List() []EdgeTag {
	var result []EdgeTag
	for i := EdgeTag(0); i < edgeTagCount; i++ {
		if t.Has(i) {
			result = append(result, i)
		}
	}
	return result
}
