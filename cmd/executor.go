package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"envedit/envfile"
	"envedit/internal/backup"
	"envedit/internal/config"
	"envedit/internal/logger"
	"envedit/internal/version"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"
)

// Execute parses args and runs the requested operations against the target
// env file: mutations first, then reads, then persistence. It returns the
// process exit code.
func Execute(ctx context.Context, args []string) int {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		logger.Error(ctx, "%v", err)
		return 2
	}
	if opts.help {
		PrintHelp()
		return 0
	}
	if opts.version {
		fmt.Printf("%s %s (%s, built %s)\n", version.ApplicationName, version.Version, version.Commit, version.BuildDate)
		return 0
	}
	switch {
	case opts.debug:
		logger.SetLevel(logger.LevelDebug)
	case opts.verbose:
		logger.SetLevel(logger.LevelInfo)
	}
	if fs.NArg() > 0 {
		logger.Error(ctx, "Unexpected argument '%s'.", fs.Arg(0))
		return 2
	}

	conf := config.LoadAppConfig()
	target := opts.file
	if target == "" {
		target = conf.Files.Default
	}

	f, err := openTarget(ctx, target, opts.create)
	if err != nil {
		logger.Error(ctx, "%v", err)
		return 1
	}
	original := f.Content()

	// Mutations
	for _, kv := range opts.sets {
		if err := applySet(f, kv, false); err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}
	}
	for _, kv := range opts.setsQuoted {
		if err := applySet(f, kv, true); err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}
	}
	for _, key := range opts.unsets {
		if !f.Has(key) {
			logger.Debug(ctx, "Variable '%s' not present, nothing to unset.", key)
		}
		f.Unset(key)
	}

	// Reads
	missing := false
	for _, key := range opts.has {
		if f.Has(key) {
			logger.Info(ctx, "Variable '%s' exists.", key)
		} else {
			logger.Info(ctx, "Variable '%s' does not exist.", key)
			missing = true
		}
	}
	for _, key := range opts.gets {
		fmt.Println(f.Get(key))
	}
	for _, key := range opts.getLiterals {
		fmt.Println(f.GetLiteral(key))
	}
	if opts.keys {
		for _, key := range f.Keys() {
			fmt.Println(key)
		}
	}
	if opts.list {
		if err := printList(f, opts.output); err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}
	}

	// Persistence
	if opts.diff {
		printDiff(original, f.Content())
	} else if f.Changed() || opts.force {
		if conf.Backup.Enabled {
			if _, err := backup.File(ctx, target, conf); err != nil {
				logger.Warn(ctx, "%v", err)
			}
		}
		if err := f.SaveAs(target, opts.force); err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}
		logger.Notice(ctx, "Wrote '%s'.", target)
	}

	if missing {
		return 1
	}
	return 0
}

// openTarget loads the env file, or starts empty when create is set and the
// file does not exist yet.
func openTarget(ctx context.Context, target string, create bool) (*envfile.File, error) {
	f, err := envfile.Load(target)
	if err == nil {
		logger.Debug(ctx, "Loaded '%s' (%d variables).", target, f.Len())
		return f, nil
	}
	if create && errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "File '%s' not found, starting empty.", target)
		return envfile.New(), nil
	}
	return nil, err
}

// applySet splits a KEY=VALUE argument and applies it to the document.
func applySet(f *envfile.File, kv string, quoted bool) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("set: expected KEY=VALUE, got %q", kv)
	}
	if quoted {
		return f.SetQuoted(key, value)
	}
	return f.Set(key, value)
}

func printList(f *envfile.File, format string) error {
	switch format {
	case "env", "":
		for _, key := range f.Keys() {
			fmt.Printf("%s=%s\n", key, envfile.EscapeValue(f.Get(key), false))
		}
		return nil
	case "yaml":
		out, err := yaml.Marshal(f.Values())
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	default:
		return fmt.Errorf("list: unknown output format %q", format)
	}
}

func printDiff(before, after string) {
	if before == after {
		fmt.Println("No changes.")
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	fmt.Print(dmp.DiffPrettyText(diffs))
}
