// Package boolstr converts between booleans and their string form as stored
// in environment variables.
//
// Encoding is canonical: FromBool always yields True ("true") or False
// ("false"). Decoding is lenient. ToBool folds case and trims surrounding
// whitespace, then treats the empty string, "0", "false" and "no" as false.
// Any other input decodes to true, so a variable that is merely present with
// an unusual value such as "on", "1" or "enabled" reads as enabled.
//
// # Usage
//
//	import "github.com/dmitrymomot/envkit/pkg/boolstr"
//
//	os.Setenv("FEATURE_X", boolstr.FromBool(true))
//	enabled := boolstr.ToBool(os.Getenv("FEATURE_X"))
package boolstr
