package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/enumgen/internal/ctxlog"
)

var configSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "header_file"},
		{Name: "source_file"},
		{Name: "copyright"},
		{Name: "foreign_values"},
		{Name: "supported_apis"},
	},
}

// Load parses the HCL config file at path and applies it over the defaults.
// vars are exposed to attribute expressions as top-level variables.
func Load(ctx context.Context, path string, vars map[string]cty.Value) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	cfg := Default()

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse config %s: %w", path, diags)
	}

	content, diags := file.Body.Content(configSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{Variables: vars}
	for name, attr := range content.Attributes {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("config %s: attribute %s: %w", path, name, diags)
		}

		var err error
		switch name {
		case "header_file":
			cfg.HeaderFile, err = stringAttr(val, name)
		case "source_file":
			cfg.SourceFile, err = stringAttr(val, name)
		case "copyright":
			cfg.Copyright, err = stringAttr(val, name)
		case "foreign_values":
			cfg.ForeignValues, err = stringListAttr(val, name)
		case "supported_apis":
			cfg.SupportedAPIs, err = stringListAttr(val, name)
		}
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	logger.Debug("Generator config loaded.", "path", path,
		"header", cfg.HeaderFile, "source", cfg.SourceFile,
		"foreign_values", len(cfg.ForeignValues), "supported_apis", cfg.SupportedAPIs)
	return cfg, nil
}

func stringAttr(val cty.Value, name string) (string, error) {
	conv, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("attribute %s: %w", name, err)
	}
	if conv.IsNull() {
		return "", fmt.Errorf("attribute %s: must not be null", name)
	}
	return conv.AsString(), nil
}

func stringListAttr(val cty.Value, name string) ([]string, error) {
	conv, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("attribute %s: %w", name, err)
	}
	if conv.IsNull() {
		return nil, fmt.Errorf("attribute %s: must not be null", name)
	}

	var out []string
	for it := conv.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() {
			return nil, fmt.Errorf("attribute %s: element must not be null", name)
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}
