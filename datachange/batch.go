package datachange

// ReloadData tells the target to drop everything it knows and read the data again.
type ReloadData struct{}

func NewReloadData() ReloadData {
	return ReloadData{}
}

func (ReloadData) Kind() Kind { return KindReloadData }

func (ReloadData) Apply(target Target) {
	target.ReloadData()
}

func (c ReloadData) MapSections(_ func(int) int) DataChange {
	return c
}

func (ReloadData) isDataChange() {}

// Batch groups changes that are applied in order. Every member is expressed against
// the state left by the members before it, except for a run of consecutive
// MoveSection members: such a run is one permutation with pre-move sources and
// post-move destinations, as list widgets read batched moves.
type Batch struct {
	Changes []DataChange
}

func NewBatch(changes ...DataChange) Batch {
	return Batch{Changes: changes}
}

func (Batch) Kind() Kind { return KindBatch }

func (c Batch) Apply(target Target) {
	for _, change := range c.Changes {
		change.Apply(target)
	}
}

func (c Batch) MapSections(transform func(int) int) DataChange {
	if len(c.Changes) == 0 {
		return NewBatch()
	}

	changes := make([]DataChange, len(c.Changes))
	for idx, change := range c.Changes {
		changes[idx] = change.MapSections(transform)
	}

	return Batch{Changes: changes}
}

func (Batch) isDataChange() {}

// Flatten returns the non-batch changes of change in application order.
func Flatten(change DataChange) []DataChange {
	batch, ok := change.(Batch)
	if !ok {
		return []DataChange{change}
	}

	changes := make([]DataChange, 0, len(batch.Changes))
	for _, member := range batch.Changes {
		changes = append(changes, Flatten(member)...)
	}

	return changes
}

// IsEmpty reports whether applying change would do nothing, i.e. it is a batch without leaf changes.
func IsEmpty(change DataChange) bool {
	if change == nil {
		return true
	}

	return len(Flatten(change)) == 0
}
