package graph

import (
	"fmt"
	"strings"
)

// Visibility represents an access modifier
type Visibility uint8

const (
	Public Visibility = iota
	Protected
	PackagePrivate
	Private
)

var visibilityNames = map[Visibility]string{
	Public:         "public",
	Protected:      "protected",
	PackagePrivate: "package",
	Private:        "private",
}

func (v Visibility) String() string {
	if name, ok := visibilityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("visibility(%d)", v)
}

// Tag returns the location tag carrying the visibility
func (v Visibility) Tag() Tag {
	switch v {
	case Public:
		return PublicVisibility
	case Protected:
		return ProtectedPackageVisibility
	case Private:
		return PrivateVisibility
	default:
		return PackageVisibility
	}
}

// ParseVisibility parses an access modifier name, "" stands for package visibility
func ParseVisibility(name string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "public":
		return Public, nil
	case "protected":
		return Protected, nil
	case "package", "default", "":
		return PackagePrivate, nil
	case "private":
		return Private, nil
	}
	return 0, fmt.Errorf("%w: visibility %q", ErrUnknownTag, name)
}

// VisibilityOf returns the visibility of a tagged location
func VisibilityOf(tags Tags) (Visibility, bool) {
	switch {
	case tags.Has(PublicVisibility):
		return Public, true
	case tags.Has(ProtectedPackageVisibility):
		return Protected, true
	case tags.Has(PackageVisibility):
		return PackagePrivate, true
	case tags.Has(PrivateVisibility):
		return Private, true
	}
	return 0, false
}

// MarshalYAML implements yaml.Marshaler
func (v Visibility) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (v *Visibility) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseVisibility(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
