// Package getopt implements the two-stage option machinery used by the CLI:
// a normalizer that rewrites raw arguments into a canonical one-option-per-token
// form, and a parser that walks the canonical sequence against a declared
// option set. The package never terminates the process; all failures surface
// as typed errors for the caller to report.
package getopt
