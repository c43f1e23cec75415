package graph

import (
	"fmt"
	"sort"
)

// ID identifies a program location
type ID string

// Attribute names a typed location attribute
type Attribute string

const (
	// AttrName holds the element name (string)
	AttrName Attribute = "name"
	// AttrParameterIndex holds the zero based parameter position (int)
	AttrParameterIndex Attribute = "parameterIndex"
	// AttrSource holds the source correspondence (Source)
	AttrSource Attribute = "source"
)

// Source locates an element in a source file
type Source struct {
	Path   string `yaml:"path"`
	Offset int    `yaml:"offset"`
	Length int    `yaml:"length"`
}

// Location represents a program element node
type Location struct {
	ID         ID
	Tags       Tags
	attributes map[Attribute]interface{}
	out        []*Relation
	in         []*Relation
}

// Tagged returns true when the location carries all tags
func (l *Location) Tagged(tags ...Tag) bool {
	for _, tag := range tags {
		if !l.Tags.Has(tag) {
			return false
		}
	}
	return true
}

// Tag adds tags to the location
func (l *Location) Tag(tags ...Tag) {
	l.Tags |= TagsOf(tags...)
}

// Untag removes tags from the location
func (l *Location) Untag(tags ...Tag) {
	l.Tags &^= TagsOf(tags...)
}

// Attribute returns an attribute value
func (l *Location) Attribute(key Attribute) (interface{}, bool) {
	value, ok := l.attributes[key]
	return value, ok
}

// HasAttribute returns true when the attribute is set
func (l *Location) HasAttribute(key Attribute) bool {
	_, ok := l.attributes[key]
	return ok
}

// RemoveAttribute removes an attribute
func (l *Location) RemoveAttribute(key Attribute) {
	delete(l.attributes, key)
}

// SetAttribute sets an attribute, known attributes are type checked
func (l *Location) SetAttribute(key Attribute, value interface{}) error {
	if err := checkAttribute(key, value); err != nil {
		return err
	}
	if l.attributes == nil {
		l.attributes = map[Attribute]interface{}{}
	}
	if source, ok := value.(*Source); ok {
		value = *source
	}
	l.attributes[key] = value
	return nil
}

func checkAttribute(key Attribute, value interface{}) error {
	ok := true
	switch key {
	case AttrName:
		_, ok = value.(string)
	case AttrParameterIndex:
		_, ok = value.(int)
	case AttrSource:
		switch value.(type) {
		case Source, *Source:
		default:
			ok = false
		}
	}
	if !ok {
		return fmt.Errorf("%w: %v has %T", ErrIncorrectAttributeType, key, value)
	}
	return nil
}

// Name returns the name attribute or empty string
func (l *Location) Name() string {
	name, _ := l.attributes[AttrName].(string)
	return name
}

// ParameterIndex returns the parameter index attribute
func (l *Location) ParameterIndex() (int, error) {
	value, ok := l.attributes[AttrParameterIndex]
	if !ok {
		return 0, fmt.Errorf("%w: %v is missing on %v", ErrIncorrectAttributeType, AttrParameterIndex, l.ID)
	}
	index, ok := value.(int)
	if !ok {
		return 0, fmt.Errorf("%w: %v has %T", ErrIncorrectAttributeType, AttrParameterIndex, value)
	}
	return index, nil
}

// Source returns source correspondence or nil
func (l *Location) Source() *Source {
	if source, ok := l.attributes[AttrSource].(Source); ok {
		return &source
	}
	return nil
}

// Out returns outgoing relations with any of tags, all when no tags are given
func (l *Location) Out(tags ...EdgeTag) []*Relation {
	return filterRelations(l.out, tags)
}

// In returns incoming relations with any of tags, all when no tags are given
func (l *Location) In(tags ...EdgeTag) []*Relation {
	return filterRelations(l.in, tags)
}

// Attributes returns attribute keys in sorted order
func (l *Location) Attributes() []Attribute {
	var keys []Attribute
	for key := range l.attributes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func filterRelations(relations []*Relation, tags []EdgeTag) []*Relation {
	if len(tags) == 0 {
		return append([]*Relation(nil), relations...)
	}
	var result []*Relation
	for _, relation := range relations {
		if relation.Tags.HasAny(tags...) {
			result = append(result, relation)
		}
	}
	return result
}
