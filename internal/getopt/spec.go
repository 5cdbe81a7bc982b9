package getopt

// Option declares a single recognized option. Short and Long are aliases for
// the same identifier; either may be empty, not both.
type Option struct {
	Name       string // canonical identifier, unique within a Spec
	Short      string // single character, without the leading dash
	Long       string // multi-character name, without the leading dashes
	TakesValue bool   // option consumes a following value token
	Usage      string
}

// Spec is the declared option set for one invocation.
type Spec struct {
	options []Option
	byToken map[string]*Option
}

// NewSpec builds a Spec from a list of declarations. It panics on duplicate
// identifiers or duplicate short/long forms, since the option set is fixed at
// compile time and a collision is a programmer error.
func NewSpec(options ...Option) *Spec {
	s := &Spec{
		options: options,
		byToken: make(map[string]*Option, len(options)*2),
	}
	seen := make(map[string]bool, len(options))
	for i := range s.options {
		opt := &s.options[i]
		if seen[opt.Name] {
			panic("getopt: duplicate option identifier " + opt.Name)
		}
		seen[opt.Name] = true
		if opt.Short != "" {
			s.register("-"+opt.Short, opt)
		}
		if opt.Long != "" {
			s.register("--"+opt.Long, opt)
		}
	}
	return s
}

func (s *Spec) register(token string, opt *Option) {
	if _, exists := s.byToken[token]; exists {
		panic("getopt: duplicate option form " + token)
	}
	s.byToken[token] = opt
}

// Lookup resolves a canonical flag token ("-o", "--help") to its declaration.
func (s *Spec) Lookup(token string) (*Option, bool) {
	opt, ok := s.byToken[token]
	return opt, ok
}

// ShortTakesValue reports whether the single-character option c is declared
// and requires an argument. The normalizer uses this to decide when a
// compressed cluster's remainder becomes a value token.
func (s *Spec) ShortTakesValue(c byte) bool {
	opt, ok := s.byToken["-"+string(c)]
	return ok && opt.TakesValue
}

// Options returns the declarations in registration order, for help rendering.
func (s *Spec) Options() []Option {
	return s.options
}
