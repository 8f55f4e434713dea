package cmd

import (
	"fmt"

	"envedit/internal/version"
)

// PrintHelp prints usage information.
func PrintHelp() {
	fmt.Print(GetUsage())
}

// GetUsage returns usage information as a string.
func GetUsage() string {
	appCmd := version.CommandName
	return fmt.Sprintf(`Usage: %[1]s [<Flags>] [<Operations>]

%[2]s [%[3]s]
Edits ".env"-style files in place, preserving comments, blank lines and
the ordering of everything it does not touch.

Operations run in this order: sets and unsets first, then reads, then the
file is written back (with a timestamped backup when enabled in config).

Flags:
  -e, --file PATH          Target env file (default from config)
      --create             Start from an empty document when the file is missing
  -f, --force              Write even when nothing changed
  -d, --diff               Preview pending changes instead of writing
  -o, --output FORMAT      List output format: env, yaml (default env)
  -v, --verbose            Verbose output
  -x, --debug              Debug output
  -V, --version            Show version
  -h, --help               Show this help

Operations:
  -s, --set KEY=VALUE      Set a variable (quoted only when needed; repeatable)
      --set-quoted KEY=VALUE
                           Set a variable, always quoted (repeatable)
  -u, --unset KEY          Remove a variable (repeatable)
  -g, --get KEY            Print a variable's value (repeatable)
      --get-literal KEY    Print a variable's raw right-hand side (repeatable)
      --has KEY            Exit non-zero unless the variable exists (repeatable)
  -k, --keys               List variable names
  -l, --list               List all variables

Examples:
  %[1]s -e .env --set DB_HOST=localhost --set 'GREETING=hello world'
  %[1]s -e .env --get DB_HOST
  %[1]s -e .env --unset DB_HOST --diff
`, appCmd, version.ApplicationName, version.Version)
}
