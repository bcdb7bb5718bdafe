package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/changelog"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "print the recorded changes, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := openRecorder(l.NewConsoleLoggerWrapper())
		if err != nil {
			return err
		}

		entries, err := rec.GetAllEntries(flags.From)
		if err != nil {
			return err
		}

		now := time.Now()

		for _, e := range entries {
			fmt.Fprintln(cmd.OutOrStdout(), formatEntry(e, now))
		}

		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&flags.From, "from", "", "only entries after this seq id")
}

func formatEntry(e changelog.Entry, now time.Time) string {
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%v\t%s", e.SeqID, e.Session,
		humanize.RelTime(time.Unix(e.At, 0), now, "ago", "from now"), e.Kind, e.Counts, e.Change)
}
