package argparse

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageLinePositionals(t *testing.T) {
	spy := &exitSpy{}
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}
	p := New([]Option{
		{Type: KindPositional, Name: "infile", Nargs: NargsOneOrMore},
		{Type: KindPositional, Name: "outfile", Nargs: NargsExact(1)},
	}, testConfig(spy, out, errw))

	p.PrintHelp()
	require.True(t, spy.called)
	assert.Equal(t, DefaultUsageCode, spy.code)

	lines := strings.Split(out.String(), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "Usage: prog [OPTION]... INFILE... OUTFILE ", lines[0])
}

func TestUsageLineArityForms(t *testing.T) {
	spy := &exitSpy{}
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}
	p := New([]Option{
		{Type: KindPositional, Name: "target", Nargs: NargsOptional},
		{Type: KindPositional, Name: "extras", Nargs: NargsZeroOrMore},
		{Type: KindPositional, Name: "pair", Nargs: NargsExact(2)},
	}, testConfig(spy, out, errw))

	assert.Equal(t, "[TARGET] [EXTRAS]... PAIR PAIR ", p.positionalUsage())
}

func TestUsageLineDisplayOverride(t *testing.T) {
	spy := &exitSpy{}
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}
	p := New([]Option{
		{Type: KindPositional, Name: "infiles", Display: "file", Nargs: NargsOneOrMore},
	}, testConfig(spy, out, errw))

	assert.Equal(t, "FILE...", p.positionalUsage())
}

func TestHelpListingAlignment(t *testing.T) {
	spy := &exitSpy{}
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}
	p := New([]Option{
		// syntax "-a, --aa=v", length 10
		{Type: KindNormal, Name: "aa", Short: "-a", Long: "--aa", Arg: "v", Help: "First option"},
		// syntax "-b, --bbbbbbbbbb=vvv", length 20
		{Type: KindNormal, Name: "bb", Short: "-b", Long: "--bbbbbbbbbb", Arg: "vvv", Help: "Second option"},
	}, testConfig(spy, out, errw))

	p.PrintHelp()
	require.True(t, spy.called)

	listing := out.String()
	assert.Contains(t, listing, fmt.Sprintf("%-22s%s", "-a, --aa=v", "First option"))
	assert.Contains(t, listing, fmt.Sprintf("%-22s%s", "-b, --bbbbbbbbbb=vvv", "Second option"))
	assert.Contains(t, listing, fmt.Sprintf("%-22s%s", "-h, --help", "Display this message"))
}

func TestHelpListingSkipsPositionals(t *testing.T) {
	spy := &exitSpy{}
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}
	p := New(demoOptions(), testConfig(spy, out, errw))

	p.PrintHelp()
	require.True(t, spy.called)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// usage line, blank line, "Options:" and one line per flag entry
	require.Len(t, lines, 6)
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Options:", lines[2])
	for _, line := range lines[3:] {
		assert.NotContains(t, line, "infile")
		assert.NotContains(t, line, "outfile")
	}
}

func TestHelpListingPreservesOrder(t *testing.T) {
	spy := &exitSpy{}
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}
	p := New(demoOptions(), testConfig(spy, out, errw))

	p.PrintHelp()

	listing := out.String()
	pretend := strings.Index(listing, "--pretend")
	logfile := strings.Index(listing, "--logfile")
	help := strings.Index(listing, "--help")
	require.True(t, pretend >= 0 && logfile >= 0 && help >= 0)
	assert.Less(t, pretend, logfile)
	assert.Less(t, logfile, help)
}

func TestUsageCustomTemplate(t *testing.T) {
	spy := &exitSpy{}
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := testConfig(spy, out, errw)
	cfg.Name = "wcdtool"
	cfg.UsageMessage = "%s: give me %s\n\nFlags:"
	p := New([]Option{
		{Type: KindPositional, Name: "infile", Nargs: NargsOneOrMore},
	}, cfg)

	p.PrintHelp()
	assert.True(t, strings.HasPrefix(out.String(), "wcdtool: give me INFILE...\n"))
}
