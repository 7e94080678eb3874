package emit

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/vk/enumgen/internal/config"
	"github.com/vk/enumgen/internal/ctxlog"
	"github.com/vk/enumgen/internal/model"
)

// generatorName appears in the autogenerated-file banner.
const generatorName = "enumgen"

// Emitter renders the model through the fixed templates using one generator
// configuration.
type Emitter struct {
	cfg    *config.Config
	header *template.Template
	source *template.Template
}

// New creates an emitter for the given configuration.
func New(cfg *config.Config) (*Emitter, error) {
	header, err := template.New("header").Parse(headerTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse header template: %w", err)
	}
	source, err := template.New("source").Parse(sourceTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse source template: %w", err)
	}
	return &Emitter{cfg: cfg, header: header, source: source}, nil
}

type fileData struct {
	Generator  string
	Copyright  []string
	Guard      string
	HeaderFile string
	Extensions []*model.Extension
	Enums      []enumData
}

type enumData struct {
	Name  string
	Func  string
	Cases []caseData
}

type caseData struct {
	Value   int64
	Name    string
	Foreign bool
}

// Write renders both artifacts into outDir. Generation is all-or-nothing:
// any render or write failure is returned and no partial output should be
// trusted.
func (e *Emitter) Write(ctx context.Context, outDir string, enums []*model.EnumType, exts []*model.Extension) error {
	logger := ctxlog.FromContext(ctx)
	data := e.buildData(enums, exts)

	for _, artifact := range []struct {
		tmpl *template.Template
		name string
	}{
		{tmpl: e.header, name: e.cfg.HeaderFile},
		{tmpl: e.source, name: e.cfg.SourceFile},
	} {
		var buf bytes.Buffer
		if err := artifact.tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("render %s: %w", artifact.name, err)
		}
		path := filepath.Join(outDir, artifact.name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debug("Artifact written.", "path", path, "bytes", buf.Len())
	}

	logger.Info("Generation complete.", "enum_types", len(enums), "extensions", len(exts), "outdir", outDir)
	return nil
}

func (e *Emitter) buildData(enums []*model.EnumType, exts []*model.Extension) *fileData {
	foreign := make(map[string]struct{}, len(e.cfg.ForeignValues))
	for _, name := range e.cfg.ForeignValues {
		foreign[name] = struct{}{}
	}

	data := &fileData{
		Generator:  generatorName,
		Copyright:  copyrightLines(e.cfg.Copyright),
		Guard:      guardMacro(e.cfg.HeaderFile),
		HeaderFile: e.cfg.HeaderFile,
		Extensions: exts,
	}
	for _, enum := range enums {
		ed := enumData{
			Name: enum.Name,
			Func: strings.TrimPrefix(enum.Name, "Vk"),
		}
		for _, entry := range enum.Entries() {
			_, isForeign := foreign[entry.Name]
			ed.Cases = append(ed.Cases, caseData{
				Value:   entry.Value,
				Name:    entry.Name,
				Foreign: isForeign,
			})
		}
		data.Enums = append(data.Enums, ed)
	}
	return data
}

// guardMacro derives the include guard from the header file name:
// "vk_enum_to_str.h" becomes "VK_ENUM_TO_STR_H".
func guardMacro(headerFile string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(headerFile) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func copyrightLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}
