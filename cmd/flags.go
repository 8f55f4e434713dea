package cmd

import (
	"github.com/spf13/pflag"
)

// options holds everything the command line can ask for in one invocation.
type options struct {
	// Modifiers
	file    string
	create  bool
	force   bool
	diff    bool
	verbose bool
	debug   bool
	help    bool
	version bool
	output  string

	// Read operations
	gets        []string
	getLiterals []string
	has         []string
	keys        bool
	list        bool

	// Write operations
	sets       []string
	setsQuoted []string
	unsets     []string
}

// newFlagSet defines the pflags used for argument parsing and help.
func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("envedit", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { PrintHelp() }

	// Modifiers
	fs.StringVarP(&opts.file, "file", "e", "", "Target env file (default from config)")
	fs.BoolVar(&opts.create, "create", false, "Start from an empty document when the file is missing")
	fs.BoolVarP(&opts.force, "force", "f", false, "Write even when nothing changed")
	fs.BoolVarP(&opts.diff, "diff", "d", false, "Preview pending changes instead of writing")
	fs.StringVarP(&opts.output, "output", "o", "env", "List output format (env, yaml)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&opts.debug, "debug", "x", false, "Debug output")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show help")
	fs.BoolVarP(&opts.version, "version", "V", false, "Show version")

	// Variables
	fs.StringArrayVarP(&opts.gets, "get", "g", nil, "Print variable value")
	fs.StringArrayVar(&opts.getLiterals, "get-literal", nil, "Print variable literal value")
	fs.StringArrayVar(&opts.has, "has", nil, "Exit non-zero unless variable exists")
	fs.BoolVarP(&opts.keys, "keys", "k", false, "List variable names")
	fs.BoolVarP(&opts.list, "list", "l", false, "List all variables")
	fs.StringArrayVarP(&opts.sets, "set", "s", nil, "Set variable (KEY=VALUE)")
	fs.StringArrayVar(&opts.setsQuoted, "set-quoted", nil, "Set variable, always quoted (KEY=VALUE)")
	fs.StringArrayVarP(&opts.unsets, "unset", "u", nil, "Remove variable")

	return fs
}
