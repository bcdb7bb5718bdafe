package datachange

// InsertSections reports that new sections appeared at the given indices.
type InsertSections struct {
	Sections []int
}

func NewInsertSections(sections ...int) InsertSections {
	return InsertSections{Sections: sections}
}

func (c InsertSections) Kind() Kind { return KindInsertSections }

func (c InsertSections) Apply(target Target) {
	target.InsertSections(c.Sections)
}

func (c InsertSections) MapSections(transform func(int) int) DataChange {
	return InsertSections{Sections: mapSections(c.Sections, transform)}
}

func (InsertSections) isDataChange() {}

// DeleteSections reports that the sections at the given indices were removed.
type DeleteSections struct {
	Sections []int
}

func NewDeleteSections(sections ...int) DeleteSections {
	return DeleteSections{Sections: sections}
}

func (c DeleteSections) Kind() Kind { return KindDeleteSections }

func (c DeleteSections) Apply(target Target) {
	target.DeleteSections(c.Sections)
}

func (c DeleteSections) MapSections(transform func(int) int) DataChange {
	return DeleteSections{Sections: mapSections(c.Sections, transform)}
}

func (DeleteSections) isDataChange() {}

// ReloadSections reports that the content of the sections was replaced while their identity stayed.
type ReloadSections struct {
	Sections []int
}

func NewReloadSections(sections ...int) ReloadSections {
	return ReloadSections{Sections: sections}
}

func (c ReloadSections) Kind() Kind { return KindReloadSections }

func (c ReloadSections) Apply(target Target) {
	target.ReloadSections(c.Sections)
}

func (c ReloadSections) MapSections(transform func(int) int) DataChange {
	return ReloadSections{Sections: mapSections(c.Sections, transform)}
}

func (ReloadSections) isDataChange() {}

type MoveSection struct {
	From int
	To   int
}

func NewMoveSection(from, to int) MoveSection {
	return MoveSection{
		From: from,
		To:   to,
	}
}

func (c MoveSection) Kind() Kind { return KindMoveSection }

func (c MoveSection) Apply(target Target) {
	target.MoveSection(c.From, c.To)
}

func (c MoveSection) MapSections(transform func(int) int) DataChange {
	return MoveSection{
		From: transform(c.From),
		To:   transform(c.To),
	}
}

func (MoveSection) isDataChange() {}
