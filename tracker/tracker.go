// Package tracker keeps per-section item counts in step with a stream of
// datachange.DataChange values, the way a list widget keeps its row bookkeeping.
// It is used to check that a data source publishes changes matching its content.
package tracker

import (
	"fmt"
	"slices"

	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/relay"
)

// Counter is anything exposing section and item counts, data sources included.
type Counter interface {
	NumberOfSections() int
	NumberOfItemsInSection(section int) int
}

// Counts is a Counter over a plain slice of item counts, one per section.
type Counts []int

func (c Counts) NumberOfSections() int {
	return len(c)
}

func (c Counts) NumberOfItemsInSection(section int) int {
	return c[section]
}

// CountsOf snapshots counter.
func CountsOf(counter Counter) Counts {
	counts := make(Counts, counter.NumberOfSections())
	for section := range counts {
		counts[section] = counter.NumberOfItemsInSection(section)
	}

	return counts
}

type Tracker struct {
	counts  []int
	counter Counter
	err     error
}

// New seeds the tracked counts from counter and binds it.
func New(counter Counter) *Tracker {
	return &Tracker{
		counts:  CountsOf(counter),
		counter: counter,
	}
}

// Bind sets the counter that inserted and reloaded sections read their counts from.
func (t *Tracker) Bind(counter Counter) {
	t.counter = counter
}

// Attach binds ds and applies every change it publishes from now on.
func (t *Tracker) Attach(ds interface {
	Counter
	Changes() relay.Observable[datachange.DataChange]
}) relay.Subscription {
	t.Bind(ds)

	return ds.Changes().Listen(t.Apply)
}

func (t *Tracker) Counts() Counts {
	return slices.Clone(Counts(t.counts))
}

// Err returns the first inconsistency seen, if any.
func (t *Tracker) Err() error {
	return t.err
}

// Verify reports the first inconsistency seen, or a mismatch between the tracked counts and counter.
func (t *Tracker) Verify(counter Counter) error {
	if t.err != nil {
		return t.err
	}

	expected := CountsOf(counter)
	if !slices.Equal(expected, Counts(t.counts)) {
		return fmt.Errorf("%w: tracked %v, expected %v", ErrInconsistent, t.counts, expected)
	}

	return nil
}

// Apply applies change. Consecutive section moves inside one batch are applied as a
// single permutation: their sources are pre-move indices and their destinations
// post-move indices.
func (t *Tracker) Apply(change datachange.DataChange) {
	batch, ok := change.(datachange.Batch)
	if !ok {
		change.Apply(t)

		return
	}

	var moves []datachange.MoveSection

	for _, member := range batch.Changes {
		if move, ok := member.(datachange.MoveSection); ok {
			moves = append(moves, move)

			continue
		}

		t.permute(moves)
		moves = nil

		t.Apply(member)
	}

	t.permute(moves)
}

func (t *Tracker) InsertSections(sections []int) {
	for _, section := range sortedAsc(sections) {
		if !t.check(section >= 0 && section <= len(t.counts), "insert section %d into %d sections", section, len(t.counts)) {
			return
		}

		t.counts = slices.Insert(t.counts, section, t.countOf(section))
	}
}

func (t *Tracker) DeleteSections(sections []int) {
	for _, section := range sortedDesc(sections) {
		if !t.checkSection(section, "delete") {
			return
		}

		t.counts = slices.Delete(t.counts, section, section+1)
	}
}

func (t *Tracker) ReloadSections(sections []int) {
	for _, section := range sections {
		if !t.checkSection(section, "reload") {
			return
		}

		t.counts[section] = t.countOf(section)
	}
}

func (t *Tracker) MoveSection(from, to int) {
	if !t.checkSection(from, "move") || !t.checkSection(to, "move") {
		return
	}

	count := t.counts[from]
	t.counts = slices.Delete(t.counts, from, from+1)
	t.counts = slices.Insert(t.counts, to, count)
}

func (t *Tracker) InsertItems(indexPaths []datachange.IndexPath) {
	for _, p := range sortedPathsAsc(indexPaths) {
		if !t.checkSection(p.Section, "insert item into") ||
			!t.check(p.Item >= 0 && p.Item <= t.counts[p.Section], "insert item %v into %d items", p, t.counts[p.Section]) {
			return
		}

		t.counts[p.Section]++
	}
}

func (t *Tracker) DeleteItems(indexPaths []datachange.IndexPath) {
	for _, p := range indexPaths {
		if !t.checkItem(p, "delete") {
			return
		}
	}

	for _, p := range indexPaths {
		t.counts[p.Section]--
	}
}

func (t *Tracker) ReloadItems(indexPaths []datachange.IndexPath) {
	for _, p := range indexPaths {
		if !t.checkItem(p, "reload") {
			return
		}
	}
}

func (t *Tracker) MoveItem(from, to datachange.IndexPath) {
	if !t.checkItem(from, "move") {
		return
	}

	t.counts[from.Section]--

	if !t.checkSection(to.Section, "move item into") ||
		!t.check(to.Item >= 0 && to.Item <= t.counts[to.Section], "move item to %v with %d items", to, t.counts[to.Section]) {
		return
	}

	t.counts[to.Section]++
}

func (t *Tracker) ReloadData() {
	if t.counter == nil {
		t.check(false, "reload data without a counter")

		return
	}

	t.counts = CountsOf(t.counter)
}

// permute applies moves as one permutation of the sections. Sections that are not
// moved keep their relative order and fill the remaining slots.
func (t *Tracker) permute(moves []datachange.MoveSection) {
	if len(moves) == 0 || t.err != nil {
		return
	}

	if len(moves) == 1 {
		t.MoveSection(moves[0].From, moves[0].To)

		return
	}

	n := len(t.counts)
	result := make([]int, n)
	filled := make([]bool, n)
	moved := make([]bool, n)

	for _, move := range moves {
		if !t.checkSection(move.From, "move") || !t.checkSection(move.To, "move") ||
			!t.check(!moved[move.From] && !filled[move.To], "section move %d -> %d collides", move.From, move.To) {
			return
		}

		result[move.To] = t.counts[move.From]
		filled[move.To] = true
		moved[move.From] = true
	}

	slot := 0

	for section, count := range t.counts {
		if moved[section] {
			continue
		}

		for filled[slot] {
			slot++
		}

		result[slot] = count
		filled[slot] = true
	}

	t.counts = result
}

func (t *Tracker) countOf(section int) int {
	if t.counter == nil || section >= t.counter.NumberOfSections() {
		return 0
	}

	return t.counter.NumberOfItemsInSection(section)
}

func (t *Tracker) checkSection(section int, op string) bool {
	return t.check(section >= 0 && section < len(t.counts), "%s section %d of %d", op, section, len(t.counts))
}

func (t *Tracker) checkItem(p datachange.IndexPath, op string) bool {
	return t.checkSection(p.Section, op+" item in") &&
		t.check(p.Item >= 0 && p.Item < t.counts[p.Section], "%s item %v of %d", op, p, t.counts[p.Section])
}

// check records the first failure. It returns false when ok is false or an earlier failure exists.
func (t *Tracker) check(ok bool, format string, args ...any) bool {
	if t.err != nil {
		return false
	}

	if !ok {
		t.err = fmt.Errorf("%w: "+format, append([]any{ErrInconsistent}, args...)...)

		return false
	}

	return true
}

func sortedAsc(sections []int) []int {
	sorted := slices.Clone(sections)
	slices.Sort(sorted)

	return sorted
}

func sortedDesc(sections []int) []int {
	sorted := sortedAsc(sections)
	slices.Reverse(sorted)

	return sorted
}

func sortedPathsAsc(indexPaths []datachange.IndexPath) []datachange.IndexPath {
	sorted := slices.Clone(indexPaths)
	slices.SortFunc(sorted, func(a, b datachange.IndexPath) int {
		if a.Section != b.Section {
			return a.Section - b.Section
		}

		return a.Item - b.Item
	})

	return sorted
}
