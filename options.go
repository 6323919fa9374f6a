// Package argparse turns a table of option descriptors into a working
// command line parser. Callers describe switches, valued options,
// positionals and a help option as plain records; registration against
// the flag engine, help text generation and error/exit behavior are
// derived from the table.
package argparse

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind selects how a descriptor is registered and rendered.
type Kind string

const (
	// KindNormal is a flag taking one value, e.g. -l/--logfile=file.
	KindNormal Kind = "normal"
	// KindSwitch is a boolean flag, false unless present.
	KindSwitch Kind = "switch"
	// KindPositional is an argument identified by position, with an arity.
	KindPositional Kind = "positional"
	// KindHelp is the flag that triggers the help listing.
	KindHelp Kind = "help"
)

// Nargs is a positional arity: an exact count (>= 1) or one of the
// glyph forms below.
type Nargs string

const (
	NargsOptional   Nargs = "?" // zero or one
	NargsOneOrMore  Nargs = "+"
	NargsZeroOrMore Nargs = "*"
)

// NargsExact returns the arity consuming exactly n arguments. An exact
// count of 1 yields a scalar result rather than a one-element slice;
// this mirrors the engine quirk older option tables rely on.
func NargsExact(n int) Nargs {
	return Nargs(strconv.Itoa(n))
}

func (n Nargs) exact() (int, bool) {
	count, err := strconv.Atoi(string(n))
	return count, err == nil
}

func (n Nargs) min() int {
	switch n {
	case NargsOptional, NargsZeroOrMore:
		return 0
	case NargsOneOrMore:
		return 1
	}
	count, _ := n.exact()
	return count
}

// headroom reports how many arguments beyond the minimum this arity can
// absorb. -1 means unlimited.
func (n Nargs) headroom() int {
	switch n {
	case NargsOptional:
		return 1
	case NargsOneOrMore, NargsZeroOrMore:
		return -1
	}
	return 0
}

func (n Nargs) valid() bool {
	switch n {
	case NargsOptional, NargsOneOrMore, NargsZeroOrMore:
		return true
	}
	count, ok := n.exact()
	return ok && count >= 1
}

// UnmarshalYAML accepts either an integer count or one of the glyph
// specifiers, so option tables can write `nargs: 2` and `nargs: "+"`
// alike.
func (n *Nargs) UnmarshalYAML(value *yaml.Node) error {
	var count int
	if err := value.Decode(&count); err == nil {
		if count < 1 {
			return fmt.Errorf("nargs count must be >= 1, got %d", count)
		}
		*n = NargsExact(count)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	switch Nargs(s) {
	case NargsOptional, NargsOneOrMore, NargsZeroOrMore:
		*n = Nargs(s)
		return nil
	}

	return fmt.Errorf("invalid nargs specifier %q", s)
}

// Option is one descriptor in the table handed to New. Which fields are
// meaningful depends on Type: flag kinds use Short/Long (and Arg for
// KindNormal), positionals use Nargs and optionally Display.
type Option struct {
	Type    Kind    `yaml:"type"`
	Name    string  `yaml:"name"`
	Short   string  `yaml:"short,omitempty"`
	Long    string  `yaml:"long,omitempty"`
	Arg     string  `yaml:"arg,omitempty"`
	Nargs   Nargs   `yaml:"nargs,omitempty"`
	Default *string `yaml:"default,omitempty"`
	Display string  `yaml:"display,omitempty"`
	Help    string  `yaml:"help,omitempty"`

	// computed during construction, fixed afterwards
	syntax string
}

// Syntax returns the display string rendered for this entry in the
// options listing. It is computed once by New.
func (o *Option) Syntax() string {
	return o.syntax
}

// usageName is the spelling used on the usage line.
func (o *Option) usageName() string {
	if o.Display != "" {
		return strings.ToUpper(o.Display)
	}
	return strings.ToUpper(o.Name)
}

// LoadOptions decodes an option table from a YAML document holding a
// sequence of descriptors. Decoding validates shape only; New validates
// meaning (and panics on an unrecognized kind, as it does for tables
// built in code).
func LoadOptions(data []byte) ([]Option, error) {
	var options []Option
	if err := yaml.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("decoding option table: %w", err)
	}
	return options, nil
}

// LoadOptionsFile reads and decodes an option table from path.
func LoadOptionsFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading option table: %w", err)
	}
	return LoadOptions(data)
}
