package assemble

import (
	"context"
	"fmt"

	"github.com/vk/enumgen/internal/ctxlog"
	"github.com/vk/enumgen/internal/model"
	"github.com/vk/enumgen/internal/symbol"
	"github.com/vk/enumgen/internal/vkxml"
)

// Assembler accumulates registry documents into the resolved model. The two
// symbol factories live for the whole run so declarations from later
// documents land on the objects created by earlier ones.
type Assembler struct {
	enums *symbol.EnumTypes
	exts  *symbol.Extensions
	apis  []string
}

// New creates an assembler that processes extension blocks whose supported
// attribute names any of the given APIs.
func New(supportedAPIs []string) *Assembler {
	return &Assembler{
		enums: symbol.NewEnumTypes(),
		exts:  symbol.NewExtensions(),
		apis:  supportedAPIs,
	}
}

// AddDocument resolves every declaration of one parsed registry document,
// in the fixed pass order: base enum blocks, feature requirements, then
// supported extension blocks.
func (a *Assembler) AddDocument(ctx context.Context, reg *vkxml.Registry) error {
	logger := ctxlog.FromContext(ctx)

	for _, block := range reg.Enums {
		if block.Type != "enum" {
			continue
		}
		enum := a.enums.GetOrCreate(block.Name)
		for i := range block.Enums {
			if err := a.addDecl(enum, &block.Enums[i], nil); err != nil {
				return fmt.Errorf("enums block %s: %w", block.Name, err)
			}
		}
	}
	logger.Debug("Base enum blocks assembled.", "enum_types", len(a.enums.Sorted()))

	for _, feature := range reg.Features {
		for _, req := range feature.Requires {
			for i := range req.Enums {
				decl := &req.Enums[i]
				if decl.Extends == "" {
					continue
				}
				enum, ok := a.enums.Lookup(decl.Extends)
				if !ok {
					logger.Debug("Skipping feature declaration for unknown enum type.",
						"feature", feature.Name, "extends", decl.Extends, "name", decl.Name)
					continue
				}
				if err := a.addDecl(enum, decl, nil); err != nil {
					return fmt.Errorf("feature %s: %w", feature.Name, err)
				}
			}
		}
	}

	for _, ext := range reg.Extensions {
		if !ext.SupportedBy(a.apis) {
			logger.Debug("Skipping unsupported extension block.",
				"extension", ext.Name, "supported", ext.Supported)
			continue
		}
		extension := a.exts.GetOrCreate(ext.Name, ext.Number)
		for _, req := range ext.Requires {
			for i := range req.Enums {
				decl := &req.Enums[i]
				if decl.Extends == "" {
					continue
				}
				enum, ok := a.enums.Lookup(decl.Extends)
				if !ok {
					logger.Debug("Skipping extension declaration for unknown enum type.",
						"extension", ext.Name, "extends", decl.Extends, "name", decl.Name)
					continue
				}
				if err := a.addDecl(enum, decl, extension); err != nil {
					return fmt.Errorf("extension %s: %w", ext.Name, err)
				}
			}
		}
	}

	return nil
}

// addDecl routes one declaration to the value resolver. The literal form
// takes precedence over alias, alias over offset, mirroring the attribute
// precedence registries rely on. ext is the enclosing extension, or nil for
// base and feature declarations.
func (a *Assembler) addDecl(enum *model.EnumType, decl *vkxml.EnumDecl, ext *model.Extension) error {
	switch {
	case decl.HasValue():
		v, err := decl.ParseValue()
		if err != nil {
			return fmt.Errorf("enumerator %q: bad value attribute: %w", decl.Name, err)
		}
		return enum.AddValue(decl.Name, model.Literal(v))

	case decl.HasAlias():
		return enum.AddValue(decl.Name, model.Alias(decl.Alias))

	case decl.HasOffset():
		offset, err := decl.ParseOffset()
		if err != nil {
			return fmt.Errorf("enumerator %q: bad offset attribute: %w", decl.Name, err)
		}
		var extNumber int64
		switch {
		case decl.ExtNumber != "":
			extNumber, err = decl.ParseExtNumber()
			if err != nil {
				return fmt.Errorf("enumerator %q: bad extnumber attribute: %w", decl.Name, err)
			}
		case ext != nil:
			extNumber = ext.Number
		default:
			return fmt.Errorf("enumerator %q of %s: offset form outside an extension requires extnumber", decl.Name, enum.Name)
		}
		return enum.AddValue(decl.Name, model.OffsetValue(extNumber, offset, decl.IsError()))

	default:
		return fmt.Errorf("enumerator %q of %s: declaration carries none of value, alias, or offset", decl.Name, enum.Name)
	}
}

// EnumTypes returns every assembled enum type ordered by name.
func (a *Assembler) EnumTypes() []*model.EnumType {
	return a.enums.Sorted()
}

// Extensions returns every assembled extension ordered by name.
func (a *Assembler) Extensions() []*model.Extension {
	return a.exts.Sorted()
}
