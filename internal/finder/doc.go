// SPDX-License-Identifier: MPL-2.0

// Package finder discovers keyword libraries in directory trees: module
// libraries (initializer-marked packages with documented keywords),
// script-based library files, and declarative resource files.
//
// The package intentionally separates two concerns across its files:
//   - finder.go: traversal (work queue, ignore pruning, result accumulation)
//   - classify.go: the pure classification predicates
//
// Traversal is breadth-first, but since results are sorted before being
// returned the order only affects the debug log sequence.
package finder
