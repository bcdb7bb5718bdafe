package changelog

import (
	"fmt"

	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/tracker"
)

// VerifyEntries checks that the change of every entry turns the counts recorded by
// the entry before it into its own counts. The first entry of each session only
// seeds the counts.
func VerifyEntries(entries []Entry) error {
	var tr *tracker.Tracker

	for idx, e := range entries {
		counts := tracker.Counts(e.Counts)

		if idx == 0 || e.Session != entries[idx-1].Session {
			tr = tracker.New(counts)

			continue
		}

		change, err := datachange.Unmarshal(e.Change)
		if err != nil {
			return fmt.Errorf("entry %s: %w", e.SeqID, err)
		}

		tr.Bind(counts)
		tr.Apply(change)

		if err = tr.Verify(counts); err != nil {
			return fmt.Errorf("entry %s: %w", e.SeqID, err)
		}
	}

	return nil
}
