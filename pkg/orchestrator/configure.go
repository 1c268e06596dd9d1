package orchestrator

import (
	"github.com/lerenn/plugin-builder/pkg/banner"
	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/lerenn/plugin-builder/pkg/config"
)

// Sources are the documents the baseline configuration is assembled from.
type Sources struct {
	Project    config.Config
	TSConfig   config.TSConfig
	Manifest   config.Manifest
	ProjectDir string
}

// Configure assembles the baseline bundler options for mode.
// The result is a fresh value; hooks mutate it in place during Run.
func Configure(src Sources, mode bundler.Mode) *bundler.Options {
	prod := mode.IsProduction()

	sourcemap := bundler.SourceMapInline
	if prod {
		sourcemap = bundler.SourceMapNone
	}

	return &bundler.Options{
		Banner: banner.Generate(banner.Metadata{
			Name:    src.Manifest.Name,
			Version: src.Manifest.Version,
			HelpURL: src.Manifest.HelpURL,
			Author:  src.Manifest.Author,
		}),
		EntryPoints:   append([]string(nil), src.Project.EntryPoints...),
		Bundle:        true,
		External:      Externals(src.Project.External...),
		Format:        src.Project.Format,
		Target:        src.TSConfig.CompilerOptions.Target,
		LogLevel:      src.Project.LogLevel,
		Sourcemap:     sourcemap,
		TreeShaking:   true,
		Outfile:       src.Project.Outfile,
		Minify:        prod,
		AbsWorkingDir: src.ProjectDir,
	}
}
