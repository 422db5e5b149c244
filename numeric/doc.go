// Package numeric is the single tolerance policy shared by every rowreduce engine.
//
// It answers two questions: "is this value effectively zero?" (IsZero, with
// Epsilon = 1e-12) and "what should this value look like once float noise is
// removed?" (Clean). It also owns the two text formats the engines promise:
// FormatAnnotation for symbolic row-operation annotations and FormatSolution
// for back-substituted variable values.
//
// Every function is pure and safe for concurrent use.
package numeric
