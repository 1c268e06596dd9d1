//go:build unit

package dependencies

import (
	"testing"

	"github.com/lerenn/plugin-builder/pkg/config"
	"github.com/lerenn/plugin-builder/pkg/devhooks"
	"github.com/lerenn/plugin-builder/pkg/fs"
	"github.com/lerenn/plugin-builder/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDependencies_Validate_MissingFS tests validation failure when FS is missing
func TestDependencies_Validate_MissingFS(t *testing.T) {
	deps := New()
	deps.FS = nil

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrFSMissing)
}

func TestDependencies_Validate_MissingEngine(t *testing.T) {
	deps := New().WithConfig(config.NewManager(fs.NewFS(), "pbuild.yaml"))
	deps.Engine = nil

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrEngineMissing)
}

// TestDependencies_Validate_AllMissing tests validation failure when all dependencies are missing
func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{}

	err := deps.Validate()
	// Should return the first missing dependency (FS)
	assert.ErrorIs(t, err, ErrFSMissing)
}

// TestDependencies_New_Defaults tests that New() creates a Dependencies instance with proper defaults
func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Engine)

	// Project-specific dependencies are nil by default
	assert.Nil(t, deps.Config)
	assert.Nil(t, deps.Loader)

	err := deps.Validate()
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestDependencies_Chaining(t *testing.T) {
	fsys := fs.NewFS()
	l := logger.NewNoopLogger()

	deps := New().
		WithFS(fsys).
		WithLogger(l).
		WithConfig(config.NewManager(fsys, "pbuild.yaml")).
		WithLoader(devhooks.NewLoader(fsys, l))

	require.NoError(t, deps.Validate())
	assert.Same(t, l, deps.Logger)
}
