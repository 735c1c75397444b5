// Package encode re-serialises decoded ir trees as Hjson or JSON.
//
// The decoder's obligation is to retain enough trivia that this
// package can reproduce the document's formatting; with
// EncodeComments, the four comment slots on each node are replayed
// around the emitted tokens. Byte-exact round-trips are best effort.
//
// # Related Packages
//
//   - github.com/signadot/hjson-format/go-hjson/ir - decoded trees
//   - github.com/signadot/hjson-format/go-hjson/parse - text to trees
package encode
