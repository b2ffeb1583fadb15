// Package episode builds the identifier-to-file index that joins videos and
// subtitles across naming conventions.
//
// Identifiers are verbatim capture-group strings, so "05" and "5" are
// distinct. Duplicate identifiers keep the last path in input order; the
// collision is logged so silent overwrites are visible to the user.
package episode
