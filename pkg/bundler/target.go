package bundler

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// targets maps TypeScript compiler targets to esbuild language targets.
var targets = map[string]api.Target{
	"es5":    api.ES5,
	"es6":    api.ES2015,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"es2023": api.ES2023,
	"es2024": api.ES2024,
	"esnext": api.ESNext,
}

// ParseTarget converts a tsconfig "target" value such as "ES6" or "ESNext".
// An empty string selects esbuild's default.
func ParseTarget(s string) (api.Target, error) {
	if s == "" {
		return api.DefaultTarget, nil
	}
	t, ok := targets[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return api.DefaultTarget, fmt.Errorf("%w: %q", ErrUnknownTarget, s)
	}
	return t, nil
}
