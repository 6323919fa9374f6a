package argparse

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/spf13/pflag"
)

// Defaults used for zero-value Config fields. The error message carries
// one placeholder for the help option's long spelling; the usage message
// carries two, for the executable name and the positional rendering.
const (
	DefaultErrorMessage = "Invalid command line. Use %s to display available options."
	DefaultUsageMessage = "Usage: %s [OPTION]... %s\n\nOptions:"

	DefaultErrorCode = 2
	DefaultUsageCode = 0
)

func defaultHelpOption() *Option {
	return &Option{
		Type:  KindHelp,
		Name:  "help",
		Short: "-h",
		Long:  "--help",
		Help:  "Display this message",
	}
}

// Config adjusts messages, exit codes and process-level side effects of
// a Parser. The zero value selects the package defaults: errors exit
// with 2 on stderr, help exits with 0 on stdout.
type Config struct {
	// Name is the executable name shown on the usage line. Defaults to
	// the base name of os.Args[0].
	Name string

	ErrorMessage string
	ErrorCode    int
	UsageMessage string
	UsageCode    int

	// Output receives the help listing, ErrOutput the syntax error
	// line. Exit terminates the process; tests replace it to observe
	// the code without exiting.
	Output    io.Writer
	ErrOutput io.Writer
	Exit      func(code int)
}

// Parser registers a descriptor table with the flag engine and renders
// its help text. Parse either returns the parsed values or terminates
// the process; PrintHelp always terminates.
type Parser struct {
	options     []*Option
	positionals []*Option
	optHelp     *Option

	name     string
	msgError string
	excError int
	msgUsage string
	excUsage int

	out  io.Writer
	errw io.Writer
	exit func(int)

	fs       *pflag.FlagSet
	strVals  map[string]*string
	boolVals map[string]*bool
}

// New builds a Parser from a descriptor table. The table is copied; the
// caller's slice is never touched. A default -h/--help descriptor is
// appended when the table has no help entry, and every descriptor gets
// its syntax string computed before registration.
//
// A descriptor with an unrecognized kind, or a positional with an
// invalid arity, is a programming error and panics.
func New(options []Option, cfg Config) *Parser {
	p := &Parser{
		name:     cfg.Name,
		msgError: cfg.ErrorMessage,
		excError: cfg.ErrorCode,
		msgUsage: cfg.UsageMessage,
		excUsage: cfg.UsageCode,
		out:      cfg.Output,
		errw:     cfg.ErrOutput,
		exit:     cfg.Exit,
		strVals:  map[string]*string{},
		boolVals: map[string]*bool{},
	}

	if p.name == "" {
		p.name = filepath.Base(os.Args[0])
	}
	if p.msgError == "" {
		p.msgError = DefaultErrorMessage
	}
	if p.msgUsage == "" {
		p.msgUsage = DefaultUsageMessage
	}
	if cfg.ErrorCode == 0 {
		p.excError = DefaultErrorCode
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.errw == nil {
		p.errw = os.Stderr
	}
	if p.exit == nil {
		p.exit = os.Exit
	}

	p.options = cloneOptions(options)
	for _, opt := range p.options {
		if opt.Type == KindHelp {
			p.optHelp = opt
			break
		}
	}
	if p.optHelp == nil {
		p.optHelp = defaultHelpOption()
		p.options = append(p.options, p.optHelp)
	}

	p.fs = pflag.NewFlagSet(p.name, pflag.ContinueOnError)
	p.fs.SetOutput(io.Discard)
	p.fs.Usage = func() {}

	for _, opt := range p.options {
		switch opt.Type {
		case KindNormal:
			opt.syntax = fmt.Sprintf("%s, %s=%s", opt.Short, opt.Long, opt.Arg)
			def := ""
			if opt.Default != nil {
				def = *opt.Default
			}
			p.strVals[opt.Name] = p.fs.StringP(flagName(opt.Long), flagName(opt.Short), def, opt.Help)
		case KindSwitch:
			opt.syntax = fmt.Sprintf("%s, %s", opt.Short, opt.Long)
			p.boolVals[opt.Name] = p.fs.BoolP(flagName(opt.Long), flagName(opt.Short), false, opt.Help)
		case KindPositional:
			opt.syntax = opt.Name
			if !opt.Nargs.valid() {
				panic(fmt.Sprintf("argparse: positional %q has invalid nargs %q", opt.Name, opt.Nargs))
			}
			p.positionals = append(p.positionals, opt)
		case KindHelp:
			opt.syntax = fmt.Sprintf("%s, %s", opt.Short, opt.Long)
			p.boolVals[opt.Name] = p.fs.BoolP(flagName(opt.Long), flagName(opt.Short), false, opt.Help)
		default:
			panic(fmt.Sprintf("argparse: unrecognized option kind %q", opt.Type))
		}
	}

	return p
}

// Options exposes the built descriptor set, including an appended
// default help entry. The returned descriptors must not be modified.
func (p *Parser) Options() []*Option {
	return p.options
}

// Parse hands arguments to the flag engine, distributes the leftover
// arguments across the positional descriptors and returns the values
// keyed by descriptor name. On any syntax error it prints the
// configured error line and terminates with the error exit code; when
// the help flag was given it prints the help listing and terminates
// with the usage exit code. Callers must treat both as non-returning.
func (p *Parser) Parse(arguments []string) Values {
	if err := p.fs.Parse(arguments); err != nil {
		p.fail(err)
		return nil
	}

	if *p.boolVals[p.optHelp.Name] {
		p.PrintHelp()
		return nil
	}

	values := Values{}
	for _, opt := range p.options {
		switch opt.Type {
		case KindNormal:
			if p.fs.Changed(flagName(opt.Long)) || opt.Default != nil {
				values[opt.Name] = *p.strVals[opt.Name]
			} else {
				values[opt.Name] = nil
			}
		case KindSwitch:
			values[opt.Name] = *p.boolVals[opt.Name]
		}
	}

	if err := p.bindPositionals(values, p.fs.Args()); err != nil {
		p.fail(err)
		return nil
	}

	return values
}

// bindPositionals distributes rest across the positional descriptors in
// order. Each descriptor is granted its minimum first; surplus
// arguments go to variable arities, earliest first. Exact count 1 and
// "?" store a scalar, every other arity stores a slice.
func (p *Parser) bindPositionals(values Values, rest []string) error {
	required := 0
	for _, opt := range p.positionals {
		required += opt.Nargs.min()
	}
	if len(rest) < required {
		return fmt.Errorf("missing positional arguments: want %d, have %d", required, len(rest))
	}

	surplus := len(rest) - required
	idx := 0
	for _, opt := range p.positionals {
		take := opt.Nargs.min()
		switch room := opt.Nargs.headroom(); {
		case room < 0:
			take += surplus
			surplus = 0
		case room > 0 && surplus > 0:
			grant := surplus
			if grant > room {
				grant = room
			}
			take += grant
			surplus -= grant
		}

		got := rest[idx : idx+take]
		idx += take

		switch opt.Nargs {
		case NargsOptional:
			if len(got) == 1 {
				values[opt.Name] = got[0]
			} else {
				values[opt.Name] = nil
			}
		case NargsOneOrMore, NargsZeroOrMore:
			values[opt.Name] = append([]string(nil), got...)
		default:
			if count, _ := opt.Nargs.exact(); count == 1 {
				// scalar, never a one-element slice
				values[opt.Name] = got[0]
			} else {
				values[opt.Name] = append([]string(nil), got...)
			}
		}
	}

	if idx < len(rest) {
		return fmt.Errorf("unexpected positional argument %q", rest[idx])
	}

	return nil
}

// fail discards the engine's diagnosis: every syntax failure surfaces
// as the one configured error line pointing at the help flag.
func (p *Parser) fail(error) {
	fmt.Fprintf(p.errw, p.msgError+"\n", p.optHelp.Long)
	p.exit(p.excError)
}

func cloneOptions(options []Option) []*Option {
	out := make([]*Option, 0, len(options)+1)
	for i := range options {
		opt := new(Option)
		if err := copier.CopyWithOption(opt, &options[i], copier.Option{DeepCopy: true}); err != nil {
			panic(fmt.Sprintf("argparse: copying option %q: %v", options[i].Name, err))
		}
		out = append(out, opt)
	}
	return out
}

func flagName(spelling string) string {
	return strings.TrimLeft(spelling, "-")
}
