// Package defaults loads option defaults from an HCL file named by --config.
// The file holds a single defaults block whose attributes are option
// identifiers: bool attributes default flags, string attributes default
// values. Defaults only fill options the command line left unset.
package defaults

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/doytsujin/skel/internal/getopt"
)

// Set is the decoded contents of a defaults file. The zero-value methods on
// an empty Set report every option absent, so a missing --config costs nothing.
type Set struct {
	flags  map[string]bool
	values map[string]string
}

// Flag reports the file default for the named flag option.
func (s *Set) Flag(name string) bool {
	return s.flags[name]
}

// Value returns the file default for the named value option, or "".
func (s *Set) Value(name string) string {
	return s.values[name]
}

// fileSchema admits exactly one defaults block and nothing else.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "defaults"},
	},
}

// Load parses the defaults file at path against the declared option set. An
// empty path returns an empty Set. Any unknown identifier or mistyped value
// is an error; defaults are validated with the same all-or-nothing policy as
// the command line itself.
func Load(path string, spec *getopt.Spec) (*Set, error) {
	set := &Set{
		flags:  make(map[string]bool),
		values: make(map[string]string),
	}
	if path == "" {
		return set, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid defaults file %s: %w", path, diags)
	}

	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid defaults block in %s: %w", path, diags)
		}
		for name, attr := range attrs {
			if err := set.decode(name, attr, spec); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	return set, nil
}

// decode validates one attribute against the declared set and stores it.
func (s *Set) decode(name string, attr *hcl.Attribute, spec *getopt.Spec) error {
	opt, ok := lookupByName(spec, name)
	if !ok {
		return fmt.Errorf("unknown option %q in defaults block", name)
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("option %q: %w", name, diags)
	}

	switch {
	case opt.TakesValue:
		if val.Type() != cty.String {
			return fmt.Errorf("option %q takes an argument and must default to a string", name)
		}
		s.values[name] = val.AsString()
	default:
		if val.Type() != cty.Bool {
			return fmt.Errorf("option %q is a flag and must default to a bool", name)
		}
		s.flags[name] = val.True()
	}
	return nil
}

func lookupByName(spec *getopt.Spec, name string) (getopt.Option, bool) {
	for _, opt := range spec.Options() {
		if opt.Name == name {
			return opt, true
		}
	}
	return getopt.Option{}, false
}
