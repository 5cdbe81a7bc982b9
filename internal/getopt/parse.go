package getopt

import "fmt"

// Result is the outcome of a successful parse: flag presence and collected
// values keyed by option identifier, plus trailing positional arguments. It
// is built once by Parse and not mutated afterwards.
type Result struct {
	Flags  map[string]bool
	Values map[string]string
	Args   []string
}

// Flag reports whether the named flag option was present.
func (r *Result) Flag(name string) bool {
	return r.Flags[name]
}

// Value returns the collected value for the named option, or "" if absent.
func (r *Result) Value(name string) string {
	return r.Values[name]
}

// MissingArgumentError reports an argument-requiring option that reached
// end of input, or an empty string, where its value should be.
type MissingArgumentError struct {
	Option string // the flag token as the user wrote it, e.g. "-o"
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("option %s requires an argument", e.Option)
}

// UnknownOptionError reports an option-shaped token that matches no
// declaration.
type UnknownOptionError struct {
	Token string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unexpected option %s", e.Token)
}

// Parse walks a canonical token sequence against the declared set. It scans
// while tokens are option-shaped (leading dash, length > 1), consuming a
// following value token for argument-requiring options; the terminator and
// the first non-option token end scanning, and everything remaining is
// positional. The first failure aborts the whole parse.
func Parse(tokens []string, spec *Spec) (*Result, error) {
	res := &Result{
		Flags:  make(map[string]bool),
		Values: make(map[string]string),
	}

	i := 0
	for i < len(tokens) {
		token := tokens[i]
		if token == Terminator {
			i++
			break
		}
		if !isOptionShaped(token) {
			break
		}

		opt, ok := spec.Lookup(token)
		if !ok {
			return nil, &UnknownOptionError{Token: token}
		}
		if !opt.TakesValue {
			res.Flags[opt.Name] = true
			i++
			continue
		}
		if i+1 >= len(tokens) || tokens[i+1] == "" {
			return nil, &MissingArgumentError{Option: token}
		}
		res.Values[opt.Name] = tokens[i+1]
		i += 2
	}

	res.Args = append(res.Args, tokens[i:]...)
	return res, nil
}

func isOptionShaped(token string) bool {
	return len(token) > 1 && token[0] == '-'
}
