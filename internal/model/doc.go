// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the in-memory description of a single bulk-load
// invocation: which phases to run, where the database lives, which tuning
// values travel to the phase tools, and the errors that end a run.
//
// # Core Concepts
//
//   - Mode: The closed set of phase selections (all, data, index). A Mode
//     expands to the ordered list of Phases it runs.
//
//   - Phase: One build step backed by one external tool. The Data phase must
//     complete before the Index phase begins.
//
//   - RunConfig: The validated result of argument resolution. It is built once
//     and then passed by value, so nothing downstream can change it.
//
//   - ConfigurationError / PhaseFailure: The two ways a run ends early. Both
//     carry the process exit code the controller terminates with.
//
// Nothing in this package touches the filesystem or starts processes.
package model
