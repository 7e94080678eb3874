package app

import (
	"context"
	"fmt"

	"github.com/vk/enumgen/internal/assemble"
	"github.com/vk/enumgen/internal/ctxlog"
	"github.com/vk/enumgen/internal/emit"
	"github.com/vk/enumgen/internal/fsutil"
	"github.com/vk/enumgen/internal/vkxml"
)

// Run executes the whole generation pipeline: expand inputs, load and
// assemble every registry document in order, emit the artifacts.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	xmlFiles, err := fsutil.ExpandPaths(appConfig.XMLPaths, ".xml")
	if err != nil {
		return fmt.Errorf("failed to resolve registry documents: %w", err)
	}
	a.logger.Debug("Registry documents resolved.", "files", xmlFiles)

	assembler := assemble.New(a.cfg.SupportedAPIs)
	for _, path := range xmlFiles {
		doc, err := vkxml.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load registry document: %w", err)
		}
		if err := assembler.AddDocument(ctx, doc); err != nil {
			return fmt.Errorf("failed to assemble %s: %w", path, err)
		}
		a.logger.Debug("Registry document assembled.", "path", path)
	}

	enums := assembler.EnumTypes()
	exts := assembler.Extensions()
	a.logger.Info("Model assembled.", "documents", len(xmlFiles),
		"enum_types", len(enums), "extensions", len(exts))

	emitter, err := emit.New(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to prepare emitter: %w", err)
	}
	if err := emitter.Write(ctx, appConfig.OutDir, enums, exts); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
