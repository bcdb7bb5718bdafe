package datachange

import (
	"encoding/json"
	"fmt"
)

// wireChange is the JSON form of every change. Empty section and index path lists
// are omitted, so they decode as nil.
type wireChange struct {
	Kind       string          `json:"kind"`
	Sections   []int           `json:"sections,omitempty"`
	IndexPaths []IndexPath     `json:"index_paths,omitempty"`
	From       json.RawMessage `json:"from,omitempty"`
	To         json.RawMessage `json:"to,omitempty"`
	Changes    []*wireChange   `json:"changes,omitempty"`
}

// Marshal encodes change as JSON, e.g. {"kind":"move_section","from":0,"to":2}.
func Marshal(change DataChange) ([]byte, error) {
	w, err := toWire(change)
	if err != nil {
		return nil, err
	}

	return json.Marshal(w)
}

// Unmarshal decodes a change produced by Marshal.
func Unmarshal(d []byte) (DataChange, error) {
	var w wireChange

	if err := json.Unmarshal(d, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadData, err)
	}

	return fromWire(&w)
}

func toWire(change DataChange) (w *wireChange, err error) {
	if change == nil {
		err = fmt.Errorf("%w: nil change", ErrBadData)

		return
	}

	w = &wireChange{Kind: change.Kind().String()}

	switch c := change.(type) {
	case InsertSections:
		w.Sections = c.Sections
	case DeleteSections:
		w.Sections = c.Sections
	case ReloadSections:
		w.Sections = c.Sections
	case MoveSection:
		err = encodeEndpoints(w, c.From, c.To)
	case InsertItems:
		w.IndexPaths = c.IndexPaths
	case DeleteItems:
		w.IndexPaths = c.IndexPaths
	case ReloadItems:
		w.IndexPaths = c.IndexPaths
	case MoveItem:
		err = encodeEndpoints(w, c.From, c.To)
	case ReloadData:
	case Batch:
		w.Changes = make([]*wireChange, 0, len(c.Changes))

		for _, member := range c.Changes {
			var mw *wireChange

			mw, err = toWire(member)
			if err != nil {
				return
			}

			w.Changes = append(w.Changes, mw)
		}
	default:
		err = fmt.Errorf("%w: unsupported change %T", ErrBadData, change)
	}

	return
}

func fromWire(w *wireChange) (DataChange, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil change", ErrBadData)
	}

	kind, err := ParseKind(w.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindInsertSections:
		return NewInsertSections(w.Sections...), nil
	case KindDeleteSections:
		return NewDeleteSections(w.Sections...), nil
	case KindReloadSections:
		return NewReloadSections(w.Sections...), nil
	case KindMoveSection:
		var from, to int

		if err = decodeEndpoints(w, &from, &to); err != nil {
			return nil, err
		}

		return NewMoveSection(from, to), nil
	case KindInsertItems:
		return NewInsertItems(w.IndexPaths...), nil
	case KindDeleteItems:
		return NewDeleteItems(w.IndexPaths...), nil
	case KindReloadItems:
		return NewReloadItems(w.IndexPaths...), nil
	case KindMoveItem:
		var from, to IndexPath

		if err = decodeEndpoints(w, &from, &to); err != nil {
			return nil, err
		}

		return NewMoveItem(from, to), nil
	case KindReloadData:
		return NewReloadData(), nil
	case KindBatch:
		if len(w.Changes) == 0 {
			return NewBatch(), nil
		}

		changes := make([]DataChange, 0, len(w.Changes))

		for _, mw := range w.Changes {
			member, e := fromWire(mw)
			if e != nil {
				return nil, e
			}

			changes = append(changes, member)
		}

		return NewBatch(changes...), nil
	}

	return nil, fmt.Errorf("%w: unknown change kind %q", ErrBadData, w.Kind)
}

func encodeEndpoints(w *wireChange, from, to any) (err error) {
	w.From, err = json.Marshal(from)
	if err != nil {
		return fmt.Errorf("%w: %s from: %v", ErrBadData, w.Kind, err)
	}

	w.To, err = json.Marshal(to)
	if err != nil {
		return fmt.Errorf("%w: %s to: %v", ErrBadData, w.Kind, err)
	}

	return nil
}

func decodeEndpoints(w *wireChange, from, to any) error {
	if len(w.From) == 0 || len(w.To) == 0 {
		return fmt.Errorf("%w: %s without endpoints", ErrBadData, w.Kind)
	}

	if err := json.Unmarshal(w.From, from); err != nil {
		return fmt.Errorf("%w: %s from: %v", ErrBadData, w.Kind, err)
	}

	if err := json.Unmarshal(w.To, to); err != nil {
		return fmt.Errorf("%w: %s to: %v", ErrBadData, w.Kind, err)
	}

	return nil
}
