package main

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/changelog"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "check every recorded change against the recorded section counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := l.NewConsoleLoggerWrapper()

		rec, err := openRecorder(logger)
		if err != nil {
			return err
		}

		entries, err := rec.GetAllEntries("")
		if err != nil {
			return err
		}

		if err = changelog.VerifyEntries(entries); err != nil {
			logger.WithFields(l.ErrorField(err)).Error("verify failed")

			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d entries\n", len(entries))

		return nil
	},
}
