// Package decor composes document decorators deterministically.
//
// Each decorator belongs to one capability category with a fixed relative
// priority: Content (0) rewrites existing segments and runs innermost;
// Framing (1) adds borders; Hierarchy (2) indents whole blocks, borders
// included; Visual (4) styles everything and runs outermost. Compose dedups
// the input list by structural descriptor equality, stable-sorts by
// priority, and folds each decorator's output into the next, so any
// permutation of the same decorator multiset nests identically.
//
// Built-in decorators cover the roles the console renderer needs: literal
// prefix/suffix insertion and secret masking (Content), boxed framing with
// rounded, square, heavy, or ASCII borders (Framing), per-level indentation
// (Hierarchy), and ANSI styling with terminal auto-detection (Visual).
package decor
