// Package testutil provides the shared harness for end-to-end generator
// tests: it materializes registry documents in a temporary directory, runs
// the full application pipeline, and exposes the generated artifacts.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/enumgen/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Input describes one end-to-end generation run.
type Input struct {
	// Files maps relative paths to file contents, written under the test's
	// temporary root before the run.
	Files map[string]string
	// XMLArgs are relative paths passed as --xml arguments, in order. Order
	// is part of the determinism contract, so it is explicit here rather
	// than derived from the Files map.
	XMLArgs []string
	// ConfigArg optionally names a relative path passed as --config.
	ConfigArg string
}

// Result holds the outcomes of an end-to-end generation run.
type Result struct {
	LogOutput string
	Err       error
	App       *app.App
	OutDir    string
}

// Generate runs the full pipeline against the given input.
func Generate(t *testing.T, in Input) *Result {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range in.Files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	xmlPaths := make([]string, 0, len(in.XMLArgs))
	for _, rel := range in.XMLArgs {
		xmlPaths = append(xmlPaths, filepath.Join(tmpDir, rel))
	}
	configPath := ""
	if in.ConfigArg != "" {
		configPath = filepath.Join(tmpDir, in.ConfigArg)
	}

	appConfig, err := app.NewConfig(app.Config{
		XMLPaths:   xmlPaths,
		OutDir:     outDir,
		ConfigPath: configPath,
		LogFormat:  "text",
		LogLevel:   "debug",
	})
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	result := &Result{OutDir: outDir}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		result.App = app.NewApp(logBuffer, appConfig)
		result.Err = result.App.Run(context.Background(), appConfig)
	}()

	result.LogOutput = logBuffer.String()
	return result
}

// Artifact reads a generated file from the run's output directory.
func (r *Result) Artifact(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.OutDir, name))
	require.NoError(t, err)
	return string(data)
}

// Header reads the generated header using the run's effective file name.
func (r *Result) Header(t *testing.T) string {
	t.Helper()
	return r.Artifact(t, r.App.Config().HeaderFile)
}

// Source reads the generated source using the run's effective file name.
func (r *Result) Source(t *testing.T) string {
	t.Helper()
	return r.Artifact(t, r.App.Config().SourceFile)
}
