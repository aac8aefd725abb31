// Package cli wires the calculator's subcommands into a cobra command tree.
// Every failure, including flag errors, is printed to the command output as
// an "ERROR:" line; nothing is reported through the exit status.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"timecalc/internal/buildinfo"
	"timecalc/internal/command"
	"timecalc/internal/config"
	appLog "timecalc/internal/log"
	"timecalc/internal/tz"
)

func init() {
	cobra.EnableCaseInsensitive = true
}

// Clock returns the current moment. It is read once per invocation.
type Clock func() time.Time

type app struct {
	clock      Clock
	configPath string
	debug      bool
	ics        bool

	env command.Env
}

// Execute runs one invocation with the given arguments (without the
// program name) and writes all output to out.
func Execute(args []string, out io.Writer) {
	run(NewRootCmd(out, time.Now), args, out)
}

func run(root *cobra.Command, args []string, out io.Writer) {
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetFlagErrorFunc(flagErrors(args))
	if err := root.Execute(); err != nil {
		report(out, err)
		if command.IsKind(err, command.KindUnknownCommand) {
			command.PrintHelp(out)
		}
	}
}

// flagErrors maps flag parse failures onto command errors. At the root a
// stray flag stands where a command name belongs; for future and past it
// stands where the day count belongs.
func flagErrors(args []string) func(*cobra.Command, error) error {
	return func(cmd *cobra.Command, err error) error {
		appLog.Debug("flag error", "command", cmd.Name(), "err", err)
		switch {
		case cmd.Name() == "future" || cmd.Name() == "past":
			return command.InvalidCount(cmd.Name(), err)
		case !cmd.HasParent():
			if tok := strayToken(cmd, args); tok != "" {
				return unknownCommand(tok)
			}
		}
		return err
	}
}

// strayToken returns the first argument that is neither a known flag nor
// the value of one.
func strayToken(cmd *cobra.Command, args []string) string {
	flags := cmd.Flags()
	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) < 2 || a[0] != '-' {
			return a
		}
		name, inline := strings.TrimLeft(a, "-"), false
		if n, _, ok := strings.Cut(name, "="); ok {
			name, inline = n, true
		}
		if name == "" {
			return a
		}

		f := flags.Lookup(name)
		if !strings.HasPrefix(a, "--") {
			f = flags.ShorthandLookup(name[:1])
			inline = inline || len(name) > 1
		}
		if f == nil {
			return a
		}
		if f.NoOptDefVal == "" && !inline {
			i++
		}
	}
	return ""
}

func unknownCommand(token string) *command.Error {
	return &command.Error{
		Kind: command.KindUnknownCommand,
		Msg:  "Unknown command: " + strings.ToLower(token),
	}
}

// NewRootCmd builds the command tree. clock supplies "now"; its location
// is used as the local zone unless the config names another.
func NewRootCmd(out io.Writer, clock Clock) *cobra.Command {
	a := &app{clock: clock}

	root := &cobra.Command{
		Use:               "timecalc",
		Short:             "Date arithmetic and timezone conversion",
		Version:           buildinfo.Version,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.OutOrStdout())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return unknownCommand(args[0])
			}
			command.PrintHelp(cmd.OutOrStdout())
			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(out)
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		command.PrintHelp(cmd.OutOrStdout())
	})
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		command.PrintHelp(cmd.OutOrStdout())
		return nil
	})
	root.SetVersionTemplate(buildinfo.String() + "\n")

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config (default $"+config.EnvPath+")")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log parsing decisions to stderr")

	root.AddCommand(a.commands()...)
	return root
}

// setup loads config and takes the single clock reading for this run.
func (a *app) setup(out io.Writer) error {
	if a.debug {
		appLog.SetLevel(appLog.LevelDebug)
	}

	path := config.ResolvePath(a.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", path)
		return err
	}
	if !a.debug {
		if lvl, err := appLog.ParseLevel(cfg.LogLevel); err == nil {
			appLog.SetLevel(lvl)
		}
	}

	now := a.clock()
	if cfg.Timezone != "" {
		now = now.In(resolveLocation(cfg.Timezone, now.Location()))
	}

	a.env = command.Env{
		Out:        out,
		Now:        now,
		Weekdays:   cfg.Weekdays,
		ICS:        a.ics,
		ICSSummary: cfg.ICSSummary,
	}
	appLog.Debug("invocation", "now", now.Format(time.RFC3339), "weekdays", cfg.Weekdays, "ics", a.ics)
	return nil
}

// resolveLocation accepts a zone-table name or an IANA name and falls back
// to fallback when neither loads.
func resolveLocation(name string, fallback *time.Location) *time.Location {
	if loc, err := tz.Resolve(name); err == nil {
		return loc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		appLog.Error("failed to load timezone; falling back to local", err, "name", name)
		return fallback
	}
	return loc
}

func report(w io.Writer, err error) {
	var ce *command.Error
	if !errors.As(err, &ce) {
		fmt.Fprintln(w, "ERROR: "+err.Error())
		return
	}
	fmt.Fprintln(w, "ERROR: "+ce.Msg)
	for _, h := range ce.Hints {
		fmt.Fprintln(w, h)
	}
}
