//go:build unit

package orchestrator

import (
	"strings"
	"testing"

	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/lerenn/plugin-builder/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testSources() Sources {
	src := Sources{
		Project:    config.DefaultConfig(),
		ProjectDir: "/work/plugin",
	}
	src.Project.External = []string{"moment", "obsidian"}
	src.TSConfig.CompilerOptions.Target = "ES6"
	src.Manifest = config.Manifest{
		Name:    "Sticky Headings",
		Version: "1.0.0",
		HelpURL: "https://github.com/GottZ/sticky-headings",
		Author:  "GottZ",
	}
	return src
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		mode      bundler.Mode
		minify    bool
		sourcemap bundler.SourceMap
	}{
		{bundler.Production, true, bundler.SourceMapNone},
		{bundler.Development, false, bundler.SourceMapInline},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			opts := Configure(testSources(), tt.mode)

			assert.Equal(t, tt.minify, opts.Minify)
			assert.Equal(t, tt.sourcemap, opts.Sourcemap)
			assert.Equal(t, []string{"main.ts"}, opts.EntryPoints)
			assert.Equal(t, "main.js", opts.Outfile)
			assert.Equal(t, "cjs", opts.Format)
			assert.Equal(t, "ES6", opts.Target)
			assert.Equal(t, "info", opts.LogLevel)
			assert.Equal(t, "/work/plugin", opts.AbsWorkingDir)
			assert.True(t, opts.Bundle)
			assert.True(t, opts.TreeShaking)
			assert.True(t, strings.HasPrefix(opts.Banner, "/*"))
			assert.Contains(t, opts.Banner, "„Sticky Headings”")
			assert.Contains(t, opts.External, "@codemirror/view")
			assert.Contains(t, opts.External, "fs/promises")
			assert.Equal(t, "moment", opts.External[len(opts.External)-1])
		})
	}
}

func TestConfigure_FreshValue(t *testing.T) {
	src := testSources()
	a := Configure(src, bundler.Production)
	a.EntryPoints[0] = "changed.ts"
	b := Configure(src, bundler.Production)
	assert.Equal(t, "main.ts", b.EntryPoints[0])
}

func TestExternals(t *testing.T) {
	ext := Externals("obsidian", "", "left-pad")
	assert.Equal(t, "obsidian", ext[0])
	assert.Equal(t, "electron", ext[1])
	assert.Equal(t, "left-pad", ext[len(ext)-1])
	assert.Len(t, ext, len(editorModules)+len(nodeBuiltins)+1)
}
