// Package schema provides struct validation with user-friendly error messages
// and decoding helpers for values that may be written either as a single
// string or as a list of strings.
//
// Validation is tag based (go-playground/validator). Field paths in messages
// use the json names of the fields, so an error reads like
//
//	Validation error: Expected a non-empty string at "argsOptions.string[1]"
package schema
