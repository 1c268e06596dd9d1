// Package fs provides the file system operations the plugin builder depends on.
package fs

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
