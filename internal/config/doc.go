// Package config defines the format-agnostic settings model for the
// controller, along with the Loader interface for reading settings from
// files.
//
// Settings supply what the command line usually leaves out: where the phase
// tools are installed and the tuning values an installation wants by default.
// Command-line values always take precedence. Concrete loaders, such as the
// HCL one, live in separate packages.
package config
