// Package ir provides the intermediate representation (IR) for rendered log
// records.
//
// # Overview
//
// One log event renders through exactly one Document: an ordered sequence of
// Nodes plus an open string-keyed metadata sidecar. The formatter populates
// the Document, decorators transform it, and an encoder reads it out.
//
// The IR is deliberately mutable: instances are recycled through an arena
// (see the arena package) and live for the span of a single pipeline run.
// Nothing here is thread-safe; a checked-out Document is owned by one run.
//
// # Node Structure
//
// A Node is a flat tagged union selected by the Kind field:
//
//   - KindMessage: one output line, an ordered run of Segments
//   - KindMap: key-value pairs in parallel Keys/Values, insertion order kept
//   - KindList: ordered Values
//   - KindBorder: a structural line emitted by framing decorators
//   - KindIndent: a structural line emitted by indentation decorators,
//     padding followed by the content it displaced
//
// A Segment is the smallest styled unit: a text run plus a Tag bitmask of
// semantic roles (message body, timestamp, border glyph, map key, ...).
// Tags drive downstream styling without exposing concrete types; within one
// run they are write-once, except for designated in-place rewriters.
//
// # Creating Nodes
//
// Use constructor functions, or their *At variants which populate an
// already-allocated (typically pooled) node:
//
//	line := ir.MessageNode(ir.Seg("ready", ir.TagMessage))
//	m := ir.MapNode().Put("user", ir.MessageNode(ir.Seg("alice", ir.TagValue)))
//	ir.MessageNodeAt(pooled, ir.Seg("ready", ir.TagMessage))
//
// # Comparison and Hashing
//
// Compare, Equal, EqualDocuments and Hash define structural identity: two
// Documents are equal iff their node sequences and metadata match. Hash is
// consistent with Equal. The decorator engine dedups on this identity.
package ir
