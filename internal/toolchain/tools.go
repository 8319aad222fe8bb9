//go:build tools

// Package toolchain pins build-time tool dependencies in go.mod without
// pulling them into any non-tools build, the standard way to keep `go
// mod tidy` from dropping a tool the repo still relies on.
package toolchain

import (
	_ "github.com/mattn/goveralls"
	_ "golang.org/x/tools/cmd/stringer"
)
