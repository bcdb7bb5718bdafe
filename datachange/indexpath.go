package datachange

import "fmt"

// IndexPath addresses one item: the section it belongs to and its position inside that section.
type IndexPath struct {
	Section int `json:"section"`
	Item    int `json:"item"`
}

func NewIndexPath(section, item int) IndexPath {
	return IndexPath{
		Section: section,
		Item:    item,
	}
}

// SetSection returns a copy of the path with the section replaced.
func (p IndexPath) SetSection(section int) IndexPath {
	p.Section = section

	return p
}

// MapSection returns a copy of the path with transform applied to the section only.
func (p IndexPath) MapSection(transform func(int) int) IndexPath {
	p.Section = transform(p.Section)

	return p
}

func (p IndexPath) String() string {
	return fmt.Sprintf("[%d,%d]", p.Section, p.Item)
}

// Offset returns the transform that shifts a local section into a container whose
// first section for that source is base.
func Offset(base int) func(int) int {
	return func(section int) int {
		return section + base
	}
}

// Sections returns the section indices in [start, end).
func Sections(start, end int) []int {
	if end <= start {
		return nil
	}

	sections := make([]int, 0, end-start)
	for section := start; section < end; section++ {
		sections = append(sections, section)
	}

	return sections
}

// ItemPaths returns the paths of items [start, end) in section.
func ItemPaths(section, start, end int) []IndexPath {
	if end <= start {
		return nil
	}

	paths := make([]IndexPath, 0, end-start)
	for item := start; item < end; item++ {
		paths = append(paths, NewIndexPath(section, item))
	}

	return paths
}

func mapSections(sections []int, transform func(int) int) []int {
	if sections == nil {
		return nil
	}

	mapped := make([]int, len(sections))
	for idx, section := range sections {
		mapped[idx] = transform(section)
	}

	return mapped
}

func mapIndexPaths(paths []IndexPath, transform func(int) int) []IndexPath {
	if paths == nil {
		return nil
	}

	mapped := make([]IndexPath, len(paths))
	for idx, path := range paths {
		mapped[idx] = path.MapSection(transform)
	}

	return mapped
}
