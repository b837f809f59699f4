// Package wire implements the FactorRepresentation interchange format: a
// little-endian, length-prefixed byte encoding used to hand a
// FactorRepresentation across a process boundary (e.g. to or from a host
// scripting environment that drives the EP update loop).
//
// This is a transfer format, not a persisted one: construction and use are
// expected to be co-located in one process lifetime, so no schema version is
// carried in the encoding. Every integer is a 32-bit signed int; every
// coefficient and message value is a 64-bit IEEE-754 float. All encoding is
// little-endian.
package wire
