package main

import (
	"os"

	"github.com/cmdkit/argparse"
	"github.com/cmdkit/argparse/logger"
)

const (
	errorMessage = "Invalid or insufficient command line. Use %s for detailed usage information."
	usageMessage = "Usage: %s [OPTION]... %s\n\nDemonstration of the descriptor driven argument parser. The\noptions specified below are for demonstration purposes only.\n\nOptions:"
)

func demoTable() []argparse.Option {
	return []argparse.Option{
		{
			Type:  argparse.KindSwitch,
			Name:  "pretend",
			Short: "-p",
			Long:  "--pretend",
			Help:  "No changes (dry run)",
		},
		{
			Type:  argparse.KindNormal,
			Name:  "logfile",
			Short: "-l",
			Long:  "--logfile",
			Arg:   "file",
			Help:  "Log file to write to",
		},
		{
			Type:  argparse.KindSwitch,
			Name:  "debug",
			Short: "-d",
			Long:  "--debug",
			Help:  "Enable debug logging",
		},
		{
			Type:  argparse.KindHelp,
			Name:  "help",
			Short: "-h",
			Long:  "--help",
			Help:  "Display this message",
		},
		{
			Type:  argparse.KindPositional,
			Name:  "infile",
			Nargs: argparse.NargsOneOrMore,
			Help:  "Input files",
		},
		{
			Type:  argparse.KindPositional,
			Name:  "outfile",
			Nargs: argparse.NargsExact(1),
			Help:  "Output file",
		},
	}
}

func main() {
	table := demoTable()
	arguments := os.Args[1:]

	// --spec FILE swaps the built-in table for one loaded from YAML
	if len(arguments) >= 2 && arguments[0] == "--spec" {
		loaded, err := argparse.LoadOptionsFile(arguments[1])
		if err != nil {
			logger.Fatalf("loading option table: %v", err)
		}
		table = loaded
		arguments = arguments[2:]
	}

	parser := argparse.New(table, argparse.Config{
		ErrorMessage: errorMessage,
		UsageMessage: usageMessage,
	})

	values := parser.Parse(arguments)

	if values.Bool("debug") {
		logger.SetDebug(true)
		logger.Debugf("parsed %d values", len(values))
	}

	logger.Info("Command line arguments:")
	logger.Infof("Pretend: %v", values.Bool("pretend"))
	if values.IsSet("logfile") {
		logger.Infof("Logfile: %s", values.String("logfile"))
	} else {
		logger.Infof("Logfile: <none>")
	}
	logger.Infof("Input:   %v", values.Strings("infile"))
	logger.Infof("Output:  %s", values.String("outfile"))
}
