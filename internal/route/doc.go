// Package route maps arbitrary-depth hierarchical paths to functions.
//
// A path arrives as a dotted string ("sky.stars.search"), an explicit
// segment slice, or a slice of enumerated labels; Normalize converts all
// three to one canonical segment sequence at the boundary, so the tree
// logic is representation-agnostic. Empty or unrecognized paths make every
// operation a no-op.
//
// The registry tree distinguishes branch nodes from leaf functions
// explicitly. Two behaviors are deliberate and observable:
//
//   - Shadowing: registering below an existing leaf replaces the leaf with
//     a branch, discarding the prior function without error.
//   - Prefix catch-all: a function found before the lookup path is
//     exhausted is invoked and the trailing segments are ignored.
//
// A lookup that resolves to no function logs a non-fatal diagnostic and
// invokes nothing.
package route
