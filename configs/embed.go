// Package configs provides embedded configuration files for the plugin builder.
package configs

import _ "embed"

// DefaultConfigYAML contains the default project configuration (pbuild.yaml).
//
//go:embed default.yaml
var DefaultConfigYAML []byte

// DevHooksTemplate is written by "pbuild init-hooks" as a starting point for a hooks module.
//
//go:embed devhooks.go.tmpl
var DevHooksTemplate []byte
