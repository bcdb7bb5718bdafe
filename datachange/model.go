package datachange

import "fmt"

type Kind int

const (
	KindBatch Kind = iota
	KindInsertSections
	KindDeleteSections
	KindReloadSections
	KindMoveSection
	KindInsertItems
	KindDeleteItems
	KindReloadItems
	KindMoveItem
	KindReloadData
)

var kindNames = map[Kind]string{
	KindBatch:          "batch",
	KindInsertSections: "insert_sections",
	KindDeleteSections: "delete_sections",
	KindReloadSections: "reload_sections",
	KindMoveSection:    "move_section",
	KindInsertItems:    "insert_items",
	KindDeleteItems:    "delete_items",
	KindReloadItems:    "reload_items",
	KindMoveItem:       "move_item",
	KindReloadData:     "reload_data",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("unknown(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown change kind %q", ErrBadData, s)
}

// DataChange is one structural mutation of a sectioned collection.
//
// The set of implementations is closed: InsertSections, DeleteSections, ReloadSections,
// MoveSection, InsertItems, DeleteItems, ReloadItems, MoveItem, ReloadData and Batch.
type DataChange interface {
	Kind() Kind

	// Apply performs the mutation against target.
	Apply(target Target)

	// MapSections returns the same mutation with every section coordinate passed
	// through transform. The receiver is left untouched.
	MapSections(transform func(int) int) DataChange

	isDataChange()
}

// Target receives structural mutations, usually a list or grid adapter holding live widget state.
type Target interface {
	InsertSections(sections []int)
	DeleteSections(sections []int)
	ReloadSections(sections []int)
	MoveSection(from, to int)

	InsertItems(indexPaths []IndexPath)
	DeleteItems(indexPaths []IndexPath)
	ReloadItems(indexPaths []IndexPath)
	MoveItem(from, to IndexPath)

	ReloadData()
}
