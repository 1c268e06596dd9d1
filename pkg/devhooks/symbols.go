package devhooks

import (
	"reflect"

	"github.com/lerenn/plugin-builder/pkg/bundler"
	"github.com/traefik/yaegi/interp"
)

// BundlerImportPath is the import path hooks modules use for bundler types.
const BundlerImportPath = "github.com/lerenn/plugin-builder/pkg/bundler"

// Symbols exposes the bundler package to interpreted hooks modules.
var Symbols = interp.Exports{
	BundlerImportPath + "/bundler": {
		// function, constant and variable definitions
		"Development":        reflect.ValueOf(bundler.Development),
		"ErrAlreadyWatching": reflect.ValueOf(&bundler.ErrAlreadyWatching).Elem(),
		"ErrBuildFailed":     reflect.ValueOf(&bundler.ErrBuildFailed).Elem(),
		"ParseMode":          reflect.ValueOf(bundler.ParseMode),
		"Production":         reflect.ValueOf(bundler.Production),
		"SourceMapBoth":      reflect.ValueOf(bundler.SourceMapBoth),
		"SourceMapExternal":  reflect.ValueOf(bundler.SourceMapExternal),
		"SourceMapInline":    reflect.ValueOf(bundler.SourceMapInline),
		"SourceMapLinked":    reflect.ValueOf(bundler.SourceMapLinked),
		"SourceMapNone":      reflect.ValueOf(bundler.SourceMapNone),

		// type definitions
		"BuildError":   reflect.ValueOf((*bundler.BuildError)(nil)),
		"Context":      reflect.ValueOf((*bundler.Context)(nil)),
		"Message":      reflect.ValueOf((*bundler.Message)(nil)),
		"Mode":         reflect.ValueOf((*bundler.Mode)(nil)),
		"Options":      reflect.ValueOf((*bundler.Options)(nil)),
		"Result":       reflect.ValueOf((*bundler.Result)(nil)),
		"SourceMap":    reflect.ValueOf((*bundler.SourceMap)(nil)),
		"WatchSession": reflect.ValueOf((*bundler.WatchSession)(nil)),
	},
}
