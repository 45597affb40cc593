// Package pipeline turns a RunConfig into phase tool invocations and runs them
// strictly in order. The first failing phase ends the run; artifacts left
// behind by a failed tool are kept so that a later index-only run can resume
// from them.
package pipeline
