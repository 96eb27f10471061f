package models

import (
	"fmt"
	"regexp"
	"strings"
)

type Subtype string

const (
	Source      Subtype = ""
	Template    Subtype = "template"
	Style       Subtype = "style"
	Unit        Subtype = "unit"
	Integration Subtype = "integration"
)

func (s Subtype) Valid() bool {
	switch s {
	case Source, Template, Style, Unit, Integration:
		return true
	default:
		return false
	}
}

// TypePattern pairs a module name ("component", "component-template", ...)
// with the compiled expression that recognises its files.
type TypePattern struct {
	ModuleName string
	Regex      *regexp.Regexp
}

// TypeKey is the decomposed form of a key such as "component-template-hbs".
type TypeKey struct {
	Kind      string
	Subtype   Subtype
	Extension string
}

func ParseTypeKey(key string) (TypeKey, error) {
	parts := strings.Split(key, "-")
	switch len(parts) {
	case 2:
		if parts[0] == "" || parts[1] == "" {
			break
		}
		return TypeKey{Kind: parts[0], Extension: parts[1]}, nil
	case 3:
		subtype := Subtype(parts[1])
		if parts[0] == "" || parts[2] == "" || subtype == Source || !subtype.Valid() {
			break
		}
		return TypeKey{Kind: parts[0], Subtype: subtype, Extension: parts[2]}, nil
	}
	return TypeKey{}, fmt.Errorf("malformed type key %q", key)
}

func (k TypeKey) ModuleName() string {
	if k.Subtype == Source {
		return k.Kind
	}
	return k.Kind + "-" + string(k.Subtype)
}

func (k TypeKey) String() string {
	return k.ModuleName() + "-" + k.Extension
}
