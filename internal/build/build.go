// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the git commit the binary was built from.
// It defaults to "none" and can be overwritten by linker flags.
var Commit = "none"

// Date is the time the binary was built.
// It defaults to "unknown" and can be overwritten by linker flags.
var Date = "unknown"
