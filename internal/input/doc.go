// SPDX-License-Identifier: MIT

// Package input reads augmented or square matrices for the rowreduce CLI.
//
// Four encodings are understood:
//   - text: one row per line; cells separated by commas, tabs or spaces.
//     When a line contains a comma, commas alone separate cells so an empty
//     field is a blank cell. Lines that are empty or start with '#' are skipped.
//   - JSON: either a bare array of rows or {"matrix": [[...], ...]}.
//   - YAML: the same two shapes; a null entry (~) is a blank cell.
//   - TOML: matrix = [[...], ...].
//
// Every parser reports blank or non-numeric cells as *CellError carrying the
// 1-based position, and rejects ragged or empty input with the matrix
// package sentinels.
package input
