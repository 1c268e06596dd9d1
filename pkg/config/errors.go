package config

import "errors"

// Error definitions for config package.
var (
	// ErrConfigFileParse is returned when pbuild.yaml cannot be parsed.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// ErrDocumentParse is returned when a JSON project document cannot be parsed.
	ErrDocumentParse = errors.New("failed to parse project document")
	// ErrManifestField is returned when the manifest lacks a required field.
	ErrManifestField = errors.New("manifest field missing")
	// ErrNoEntryPoints is returned when no entry point is configured.
	ErrNoEntryPoints = errors.New("entry_points cannot be empty")
	// ErrOutfileEmpty is returned when no output file is configured.
	ErrOutfileEmpty = errors.New("outfile cannot be empty")
	// ErrHooksPathEmpty is returned when the hooks module path is blank.
	ErrHooksPathEmpty = errors.New("hooks.path cannot be empty")
)
