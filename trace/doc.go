// Package trace records the step-by-step derivation produced by the
// rowreduce engines.
//
// A Step pairs a human-readable description, a compact symbolic annotation
// such as "(R2 + (-3) * R1 => R2)", and a deep copy of the working matrix
// taken immediately after the operation. Engines talk to a Recorder, never
// to a concrete log, so the snapshot strategy can change without touching
// the algorithms:
//
//   - Trace keeps a full copy per step (O(steps × r × c) memory). This is the
//     default and what every result exposes.
//   - Discard keeps nothing; use it when only the numeric answer matters.
package trace
