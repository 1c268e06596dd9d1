package main

import "errors"

// ErrHooksModuleExists is returned by init-hooks when the module is already there.
var ErrHooksModuleExists = errors.New("hooks module already exists")
