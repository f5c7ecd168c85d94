// Package edn implements a reader for the Extensible Data Notation, the
// general-purpose, extensible data format shared by Clojure and related
// tooling. It reads one form at a time from a position-tracking,
// bounded-pushback character source, recursively, through a
// macro-character dispatch table, with caller-extensible support for
// tagged literals.
package edn
