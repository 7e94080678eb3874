package model

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// extensionBase is the registry's base value for extension-contributed
	// enumerators; each extension owns a block of extensionBlock values
	// starting at extensionBase + (number-1)*extensionBlock.
	extensionBase  = 1_000_000_000
	extensionBlock = 1_000
)

// ErrUnknownAlias indicates an alias declaration referenced a name that was
// never declared for the enum type. Valid registries declare names before
// aliasing them, so this aborts the run.
var ErrUnknownAlias = errors.New("alias target not declared")

// ErrUnrecognizedEnumerator indicates a value lookup for an integer that no
// declaration ever produced. It is the Go-side equivalent of the generated
// lookup function's unreachable default arm.
var ErrUnrecognizedEnumerator = errors.New("unrecognized enumerator value")

// Offset is the extension-offset form of a value declaration.
type Offset struct {
	// ExtNumber is the 1-based registry number of the contributing extension.
	ExtNumber int64
	// Offset is the enumerator's slot within the extension's value block.
	Offset int64
	// Error marks negative status enumerators; the resolved value is negated.
	Error bool
}

// ValueSpec describes one enumerator declaration. Exactly one of Literal,
// Alias, or Offset must be set.
type ValueSpec struct {
	Literal *int64
	Alias   *string
	Offset  *Offset
}

// Literal builds the explicit-integer form of a ValueSpec.
func Literal(v int64) ValueSpec {
	return ValueSpec{Literal: &v}
}

// Alias builds the alias form of a ValueSpec.
func Alias(target string) ValueSpec {
	return ValueSpec{Alias: &target}
}

// OffsetValue builds the extension-offset form of a ValueSpec.
func OffsetValue(extNumber, offset int64, isError bool) ValueSpec {
	return ValueSpec{Offset: &Offset{ExtNumber: extNumber, Offset: offset, Error: isError}}
}

// EnumType is a named enumeration with its resolved value tables.
type EnumType struct {
	Name string

	// values maps each distinct integer to its canonical name.
	values map[int64]string
	// nameToValue maps every declared name, aliases included, to its value.
	nameToValue map[string]int64
}

// NewEnumType creates an empty enum type with the given name.
func NewEnumType(name string) *EnumType {
	return &EnumType{
		Name:        name,
		values:      make(map[int64]string),
		nameToValue: make(map[string]int64),
	}
}

// AddValue resolves one declaration and records it in the value tables.
// Supplying zero or several forms in spec is a caller bug and panics; an
// unresolvable alias returns ErrUnknownAlias.
func (e *EnumType) AddValue(name string, spec ValueSpec) error {
	forms := 0
	if spec.Literal != nil {
		forms++
	}
	if spec.Alias != nil {
		forms++
	}
	if spec.Offset != nil {
		forms++
	}
	if forms != 1 {
		panic(fmt.Sprintf("model: enumerator %q of %s: exactly one of literal, alias, or offset must be set (got %d)", name, e.Name, forms))
	}

	var value int64
	switch {
	case spec.Literal != nil:
		value = *spec.Literal
	case spec.Alias != nil:
		v, ok := e.nameToValue[*spec.Alias]
		if !ok {
			return fmt.Errorf("enum %s: %q aliases %q: %w", e.Name, name, *spec.Alias, ErrUnknownAlias)
		}
		value = v
	default:
		o := spec.Offset
		value = extensionBase + (o.ExtNumber-1)*extensionBlock + o.Offset
		if o.Error {
			value = -value
		}
	}

	e.nameToValue[name] = value
	if current, ok := e.values[value]; !ok || len(name) < len(current) {
		e.values[value] = name
	}
	return nil
}

// CanonicalName returns the chosen string for a resolved integer value, or
// ErrUnrecognizedEnumerator when no declaration produced that integer.
func (e *EnumType) CanonicalName(value int64) (string, error) {
	name, ok := e.values[value]
	if !ok {
		return "", fmt.Errorf("enum %s: value %d: %w", e.Name, value, ErrUnrecognizedEnumerator)
	}
	return name, nil
}

// ValueOf reports the resolved integer for a declared name.
func (e *EnumType) ValueOf(name string) (int64, bool) {
	v, ok := e.nameToValue[name]
	return v, ok
}

// Entry is one resolved (value, canonical name) pair.
type Entry struct {
	Value int64
	Name  string
}

// Entries returns the value table as pairs in ascending value order.
func (e *EnumType) Entries() []Entry {
	entries := make([]Entry, 0, len(e.values))
	for v, n := range e.values {
		entries = append(entries, Entry{Value: v, Name: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Value < entries[j].Value })
	return entries
}

// Len reports the number of distinct resolved integers.
func (e *EnumType) Len() int {
	return len(e.values)
}
