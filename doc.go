// Package toon encodes and decodes TOON (Token-Oriented Object Notation),
// a line-oriented, indentation-structured interchange format covering the
// same value universe as JSON while spending far fewer tokens on structure.
//
// Homogeneous arrays of objects collapse into a header plus delimited rows:
//
//	users[2]{id,name,role}:
//	  1,Alice,admin
//	  2,Bob,user
//
// Short primitive arrays inline on the header line (tags[3]: red,green,blue)
// and everything else nests by indentation, two spaces per level.
//
// UnmarshalString parses a document into a toonparser.Value tree; the
// decoder is strict by default and can be relaxed with Lenient().
// MarshalString goes the other way from plain Go values, MarshalValue from
// an explicit Value tree. FromJSON/FromYAML and their counterparts convert
// to and from the neighboring formats preserving mapping key order.
//
// The parsing machinery lives in the toonparser subpackage.
package toon
