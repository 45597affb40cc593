// Package app contains the controller's lifecycle. It turns a parsed Config
// into a run: settings are merged, the location is prepared, and the phase
// pipeline is executed, decoupled from any specific entrypoint like a CLI.
package app
