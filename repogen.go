// Package repogen scaffolds repository-pattern classes and interfaces for
// PHP web applications.
package repogen

// Version is the current repogen release, overridden at build time with
// -ldflags "-X github.com/simonhull/firebird-suite/repogen.Version=...".
var Version = "0.1.0"
