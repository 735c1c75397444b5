// Package ir holds the in-memory tree produced by decoding an Hjson
// document. Every node carries, besides its typed payload, the comments
// and whitespace that surrounded it in the source so that an encoder can
// re-emit the document with its original formatting.
package ir
