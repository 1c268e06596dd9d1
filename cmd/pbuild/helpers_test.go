//go:build unit || integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testManifest = `{
	"id": "sticky-headings",
	"name": "Sticky Headings",
	"version": "1.0.0",
	"author": "GottZ",
	"helpUrl": "https://github.com/GottZ/sticky-headings"
}`

// newTestProject creates a project directory and points the global flags at it.
func newTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(testManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsconfig.json"),
		[]byte(`{"compilerOptions": {"target": "ES6"}}`), 0o644))

	oldDir, oldConfig, oldHooks, oldQuiet := projectDir, configPath, hooksPath, quiet
	t.Cleanup(func() {
		projectDir, configPath, hooksPath, quiet = oldDir, oldConfig, oldHooks, oldQuiet
	})
	return dir
}
