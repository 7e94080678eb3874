package symbol

import (
	"sort"

	"github.com/vk/enumgen/internal/model"
)

// EnumTypes is the factory for enum-type objects, keyed by declared name.
type EnumTypes struct {
	byName map[string]*model.EnumType
}

// NewEnumTypes creates an empty enum-type factory.
func NewEnumTypes() *EnumTypes {
	return &EnumTypes{byName: make(map[string]*model.EnumType)}
}

// GetOrCreate returns the enum type registered under name, creating and
// registering it on first reference.
func (f *EnumTypes) GetOrCreate(name string) *model.EnumType {
	if e, ok := f.byName[name]; ok {
		return e
	}
	e := model.NewEnumType(name)
	f.byName[name] = e
	return e
}

// Lookup is the non-creating form; references to types absent from the
// loaded documents report ok=false instead of materializing a type.
func (f *EnumTypes) Lookup(name string) (*model.EnumType, bool) {
	e, ok := f.byName[name]
	return e, ok
}

// Sorted returns every registered enum type ordered by name.
func (f *EnumTypes) Sorted() []*model.EnumType {
	out := make([]*model.EnumType, 0, len(f.byName))
	for _, e := range f.byName {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Extensions is the factory for extension objects, keyed by declared name.
type Extensions struct {
	byName map[string]*model.Extension
}

// NewExtensions creates an empty extension factory.
func NewExtensions() *Extensions {
	return &Extensions{byName: make(map[string]*model.Extension)}
}

// GetOrCreate returns the extension registered under name, creating it with
// the given number on first encounter. The number is ignored on a hit: the
// first declaration fixes it.
func (f *Extensions) GetOrCreate(name string, number int64) *model.Extension {
	if e, ok := f.byName[name]; ok {
		return e
	}
	e := model.NewExtension(name, number)
	f.byName[name] = e
	return e
}

// Lookup is the non-creating form.
func (f *Extensions) Lookup(name string) (*model.Extension, bool) {
	e, ok := f.byName[name]
	return e, ok
}

// Sorted returns every registered extension ordered by name.
func (f *Extensions) Sorted() []*model.Extension {
	out := make([]*model.Extension, 0, len(f.byName))
	for _, e := range f.byName {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
