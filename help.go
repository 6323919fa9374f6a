package argparse

import (
	"fmt"
	"strings"
)

// PrintHelp writes the usage line and the aligned option listing to the
// configured output, then terminates with the usage exit code.
// Positionals appear on the usage line only; the listing covers flag
// entries in descriptor order, with help text starting two columns past
// the widest syntax string.
func (p *Parser) PrintHelp() {
	var b strings.Builder

	fmt.Fprintf(&b, p.msgUsage+"\n", p.name, p.positionalUsage())

	maxlen := 0
	for _, opt := range p.options {
		if opt.Type != KindPositional && len(opt.syntax) > maxlen {
			maxlen = len(opt.syntax)
		}
	}

	for _, opt := range p.options {
		if opt.Type == KindPositional {
			continue
		}
		fmt.Fprintf(&b, "%-*s%s\n", maxlen+2, opt.syntax, opt.Help)
	}

	fmt.Fprint(p.out, b.String())
	p.exit(p.excUsage)
}

// positionalUsage renders the positional segment of the usage line:
// uppercased names, bracketed when optional, trailing "..." for the
// variable arities, repeated names for exact counts.
func (p *Parser) positionalUsage() string {
	parts := make([]string, 0, len(p.positionals))
	for _, opt := range p.positionals {
		name := opt.usageName()
		switch opt.Nargs {
		case NargsOptional:
			parts = append(parts, "["+name+"]")
		case NargsOneOrMore:
			parts = append(parts, name+"...")
		case NargsZeroOrMore:
			parts = append(parts, "["+name+"]...")
		default:
			count, _ := opt.Nargs.exact()
			parts = append(parts, strings.Repeat(name+" ", count))
		}
	}
	return strings.Join(parts, " ")
}
