package getopt

import "strings"

// Terminator is the end-of-options sentinel. Everything after it is passed
// through as positional arguments, verbatim.
const Terminator = "--"

// Normalize rewrites a raw argument sequence into canonical form: one short
// flag, long flag, or value per token. It only restructures token boundaries;
// unknown options and missing arguments are the parser's concern.
//
// Normalizing an already-canonical sequence returns it unchanged.
func Normalize(args []string, spec *Spec) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		switch {
		case arg == Terminator:
			// Explicit end of options: everything after passes through
			// untouched, including tokens that look like clusters.
			out = append(out, Terminator)
			out = append(out, args[i+1:]...)
			return out
		case isCluster(arg):
			tokens, _ := SplitCluster(arg, spec)
			out = append(out, tokens...)
		case isLongWithValue(arg):
			eq := strings.Index(arg, "=")
			out = append(out, arg[:eq], arg[eq+1:])
		default:
			out = append(out, arg)
		}
	}
	return out
}

// SplitCluster expands one compressed short-option token ("-xyz") into
// canonical tokens. If a character is declared argument-requiring and
// characters remain after it, the whole remainder becomes that option's value
// token and consumed is true; the remainder is never reinterpreted as flags.
// An argument-requiring character in final position emits no value token, so
// the parser pulls the next canonical token instead.
func SplitCluster(token string, spec *Spec) (tokens []string, consumed bool) {
	body := token[1:]
	for i := 0; i < len(body); i++ {
		tokens = append(tokens, "-"+string(body[i]))
		if spec.ShortTakesValue(body[i]) && i+1 < len(body) {
			tokens = append(tokens, body[i+1:])
			return tokens, true
		}
	}
	return tokens, false
}

// isCluster matches a dash followed by a non-dash character and at least one
// more character. A lone "-" and long options never match; a token
// like "-o-" does, and is split per normal cluster rules.
func isCluster(arg string) bool {
	return len(arg) > 2 && arg[0] == '-' && arg[1] != '-'
}

// isLongWithValue matches "--name=value", with at least one character between
// the dashes and the first "=". The value side may be empty.
func isLongWithValue(arg string) bool {
	if !strings.HasPrefix(arg, "--") {
		return false
	}
	return strings.Index(arg[2:], "=") > 0
}
