package fs

import "os"

// Exists reports whether path exists. A missing path is not an error.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if f.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
