package hanoi

import _ "embed"

// Version is the release of the hanoi module, read from the VERSION file.
//
//go:embed VERSION
var Version string
