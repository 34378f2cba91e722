// Package pipeline orchestrates the rendering of one log event into encoded
// records: acquire IR from the arena, format, decorate, encode, dispatch,
// release. The stages of one run are strictly sequential and a run always
// completes; release happens exactly once on every path and never after sink
// I/O has begun. Formatters, decorators, encoders, and sinks are opaque
// collaborators the host supplies.
package pipeline
