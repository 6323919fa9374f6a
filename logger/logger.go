// Package logger configures the global zap logger for console output
// with colored level glyphs. The parser library itself stays silent;
// this is for binaries built on top of it.
package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Out io.Writer

func init() {
	setup(false)
}

func setup(debug bool) {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000")
	cfg.ConsoleSeparator = " "
	cfg.StacktraceKey = ""
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		lvl = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.CallerKey = ""
		cfg.LevelKey = ""
		cfg.TimeKey = ""
	}

	Out = color.Output
	if inTerm() {
		uilive.Out = Out
		Out = uilive.New().Bypass()
	}

	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(Out),
		lvl,
	))

	zap.ReplaceGlobals(logger)
}

// SetDebug rebuilds the global logger at debug level.
func SetDebug(debug bool) {
	setup(debug)
}

func glyph(s string) string {
	return color.New(color.Bold, color.FgBlack).Sprint(s)
}

func Debugf(format string, args ...any) {
	zap.S().Debugf("%s %s", glyph(":"), color.MagentaString(format, args...))
}

func Info(args ...any) {
	zap.S().Infof("%s %s", glyph(">"), color.WhiteString(fmt.Sprint(args...)))
}

func Infof(format string, args ...any) {
	zap.S().Infof("%s %s", glyph(">"), color.WhiteString(format, args...))
}

func Warnf(format string, args ...any) {
	zap.S().Warnf("%s %s", glyph("->"), color.YellowString(format, args...))
}

func Errorf(format string, args ...any) {
	zap.S().Errorf("%s %s", glyph("=>"), color.RedString(format, args...))
}

func Fatalf(format string, args ...any) {
	zap.S().Fatalf("%s %s", glyph("=>"), color.RedString(format, args...))
}
