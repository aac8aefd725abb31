package cli

import (
	"github.com/spf13/cobra"

	"timecalc/internal/command"
	appLog "timecalc/internal/log"
)

type handler func(command.Env, []string) error

func (a *app) commands() []*cobra.Command {
	future := &cobra.Command{
		Use:     "future <N[d|day|days]>",
		Aliases: []string{"date"},
		Short:   "Date N days from today",
		Args:    cobra.ArbitraryArgs,
		RunE:    a.run(command.Future),
	}

	past := &cobra.Command{
		Use:   "past <N[d|day|days]>",
		Short: "Date N days before today",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.run(command.Past),
	}

	convert := &cobra.Command{
		Use:     "convert <time-or-date...> <from-tz> to <to-tz>",
		Aliases: []string{"tz"},
		Short:   "Convert a clock time between timezones",
		Args:    cobra.ArbitraryArgs,
		RunE:    a.run(command.Convert),
	}
	convert.Flags().BoolVar(&a.ics, "ics", false, "also print the converted time as an iCalendar event")

	remaining := &cobra.Command{
		Use:     "remaining month|year",
		Aliases: []string{"left"},
		Short:   "Days left in the current month or year",
		Args:    cobra.ArbitraryArgs,
		RunE:    a.run(command.Remaining),
	}

	day := &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Weekday of a date",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.run(command.DayOfWeek),
	}

	return []*cobra.Command{future, past, convert, remaining, day}
}

// run adapts a handler to cobra. Handler errors are printed and swallowed
// so the process always exits normally.
func (a *app) run(h handler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		appLog.Debug("dispatch", "command", cmd.Name(), "args", args)
		if err := h(a.env, args); err != nil {
			appLog.Debug("command failed", "command", cmd.Name(), "err", err)
			report(cmd.OutOrStdout(), err)
		}
		return nil
	}
}
