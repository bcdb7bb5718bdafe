package datachange

// InsertItems reports new items inside existing sections.
type InsertItems struct {
	IndexPaths []IndexPath
}

func NewInsertItems(indexPaths ...IndexPath) InsertItems {
	return InsertItems{IndexPaths: indexPaths}
}

func (c InsertItems) Kind() Kind { return KindInsertItems }

func (c InsertItems) Apply(target Target) {
	target.InsertItems(c.IndexPaths)
}

func (c InsertItems) MapSections(transform func(int) int) DataChange {
	return InsertItems{IndexPaths: mapIndexPaths(c.IndexPaths, transform)}
}

func (InsertItems) isDataChange() {}

// DeleteItems carries the paths the removed items had before the removal.
type DeleteItems struct {
	IndexPaths []IndexPath
}

func NewDeleteItems(indexPaths ...IndexPath) DeleteItems {
	return DeleteItems{IndexPaths: indexPaths}
}

func (c DeleteItems) Kind() Kind { return KindDeleteItems }

func (c DeleteItems) Apply(target Target) {
	target.DeleteItems(c.IndexPaths)
}

func (c DeleteItems) MapSections(transform func(int) int) DataChange {
	return DeleteItems{IndexPaths: mapIndexPaths(c.IndexPaths, transform)}
}

func (DeleteItems) isDataChange() {}

// ReloadItems reports items replaced in place.
type ReloadItems struct {
	IndexPaths []IndexPath
}

func NewReloadItems(indexPaths ...IndexPath) ReloadItems {
	return ReloadItems{IndexPaths: indexPaths}
}

func (c ReloadItems) Kind() Kind { return KindReloadItems }

func (c ReloadItems) Apply(target Target) {
	target.ReloadItems(c.IndexPaths)
}

func (c ReloadItems) MapSections(transform func(int) int) DataChange {
	return ReloadItems{IndexPaths: mapIndexPaths(c.IndexPaths, transform)}
}

func (ReloadItems) isDataChange() {}

// MoveItem relocates one item, possibly into another section.
type MoveItem struct {
	From IndexPath
	To   IndexPath
}

func NewMoveItem(from, to IndexPath) MoveItem {
	return MoveItem{
		From: from,
		To:   to,
	}
}

func (c MoveItem) Kind() Kind { return KindMoveItem }

func (c MoveItem) Apply(target Target) {
	target.MoveItem(c.From, c.To)
}

func (c MoveItem) MapSections(transform func(int) int) DataChange {
	return MoveItem{
		From: c.From.MapSection(transform),
		To:   c.To.MapSection(transform),
	}
}

func (MoveItem) isDataChange() {}
