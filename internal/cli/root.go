// Package cli implements the jayson command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/i18n"
	"github.com/reoring/jayson/internal/config"
)

// errInvalid makes the process exit 1 without printing an error line; the
// command has already written its result.
var errInvalid = errors.New("invalid")

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg config.Config
	log *slog.Logger

	configFile string
	envFile    string
	syntax     string
	logLevel   string
	language   string
	maxDepth   int
	maxBytes   int64
	dupKeys    string
}

// NewRootCmd builds the command tree reading from in and writing results to
// out and logs to errOut.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, log: slog.New(slog.NewTextHandler(errOut, nil))}

	root := &cobra.Command{
		Use:   "jayson",
		Short: "Validate, infer, template, type and transform JSON documents",
		Long: `jayson works with JSON Schema (draft-07 subset) documents and JSON data:
it validates data against a schema, infers a schema from a sample, generates
example documents, emits TypeScript or JavaScript types and transforms record
arrays. Inputs are file paths, "-" for stdin, or built-in samples.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file (default "+config.DefaultFile+" when present)")
	pf.StringVar(&a.envFile, "env-file", "", "dotenv file (default "+config.DefaultEnvFile+" when present)")
	pf.StringVar(&a.syntax, "syntax", "", "input syntax for stdin and unknown extensions: json or yaml")
	pf.StringVarP(&a.logLevel, "log-level", "l", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.language, "lang", "", "message language: "+fmt.Sprint(i18n.Languages()))
	pf.IntVar(&a.maxDepth, "max-depth", 0, "maximum nesting depth of input documents (0 = unlimited)")
	pf.Int64Var(&a.maxBytes, "max-bytes", 0, "maximum size of input documents in bytes (0 = unlimited)")
	pf.StringVar(&a.dupKeys, "duplicate-keys", "", "duplicate object keys: ignore (last wins) or error")

	root.AddCommand(
		a.validateCmd(),
		a.inferCmd(),
		a.templateCmd(),
		a.typesCmd(),
		a.transformCmd(),
		a.infoCmd(),
		a.samplesCmd(),
	)
	return root
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, in io.Reader, out, errOut io.Writer) int {
	root := NewRootCmd(in, out, errOut)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(errOut, "Error: %s\n", err)
		}
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Loader{File: a.configFile, EnvFile: a.envFile}.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("lang") {
		cfg.Language = a.language
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = a.maxDepth
	}
	if flags.Changed("max-bytes") {
		cfg.MaxBytes = a.maxBytes
	}
	if flags.Changed("duplicate-keys") {
		cfg.DuplicateKeys = a.dupKeys
	}
	if err := cfg.Check(); err != nil {
		return err
	}
	if a.syntax != "" {
		if _, err := jayson.ParseSyntax(a.syntax); err != nil {
			return err
		}
	}

	lvl, _ := cfg.SlogLevel()
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))
	i18n.SetLanguage(cfg.Language)
	a.cfg = cfg
	a.log.Debug("configuration loaded", "language", cfg.Language, "max_depth", cfg.MaxDepth, "duplicate_keys", cfg.DuplicateKeys)
	return nil
}

func (a *app) warn(what string, warnings []string) {
	for _, w := range warnings {
		a.log.Warn(w, "input", what)
	}
}
