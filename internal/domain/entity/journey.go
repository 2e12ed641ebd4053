package entity

import (
	"slices"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
)

// Journey is the ordered list of stops of a multi-leg trip.
type Journey []JourneyStop

// IndexOf returns the index of the stop with the given id, or -1.
func (j Journey) IndexOf(id string) int {
	for i := range j {
		if j[i].ID == id {
			return i
		}
	}

	return -1
}

// PickupItems returns every item of every pickup stop, in stop order.
func (j Journey) PickupItems() []Item {
	var items []Item
	for _, stop := range j {
		if stop.Type == StopTypePickup {
			items = append(items, stop.Items...)
		}
	}

	return items
}

// AddStop appends a stop, assigning an id when it has none.
func (j Journey) AddStop(stop JourneyStop) Journey {
	if stop.ID == "" {
		stop.ID = NewJourneyStop(stop.Type).ID
	}

	return append(j, stop)
}

// RemoveStop deletes the stop with the given id.
// Removing a pickup also drops links to its items from every dropoff.
func (j Journey) RemoveStop(id string) (Journey, error) {
	idx := j.IndexOf(id)
	if idx < 0 {
		return j, errors.Wrapf(ErrStopNotFound, "stop %s", id)
	}

	removed := j[idx]
	out := make(Journey, 0, len(j)-1)
	out = append(out, j[:idx]...)
	out = append(out, j[idx+1:]...)

	if removed.Type != StopTypePickup || len(removed.Items) == 0 {
		return out, nil
	}

	gone := make(map[string]struct{}, len(removed.Items))
	for _, item := range removed.Items {
		gone[item.ID] = struct{}{}
	}

	for i := range out {
		if out[i].Type != StopTypeDropoff || len(out[i].LinkedItems) == 0 {
			continue
		}

		kept := make([]string, 0, len(out[i].LinkedItems))
		for _, linked := range out[i].LinkedItems {
			if _, ok := gone[linked]; !ok {
				kept = append(kept, linked)
			}
		}
		out[i].LinkedItems = kept
	}

	return out, nil
}

// MoveStop moves the stop at index from to index to, shifting the stops in between.
func (j Journey) MoveStop(from, to int) (Journey, error) {
	if from < 0 || from >= len(j) || to < 0 || to >= len(j) {
		return j, errors.Wrapf(ErrStopIndexRange, "move %d -> %d of %d stops", from, to, len(j))
	}

	moved := j[from]
	out := make(Journey, 0, len(j))
	out = append(out, j[:from]...)
	out = append(out, j[from+1:]...)

	return slices.Insert(out, to, moved), nil
}

// Validate checks the structural invariants of the journey.
func (j Journey) Validate() error {
	seen := make(map[string]struct{}, len(j))
	for i, stop := range j {
		if stop.ID == "" {
			return errors.Wrapf(ErrInvalidJourney, "stop %d has no id", i)
		}
		if _, dup := seen[stop.ID]; dup {
			return errors.Wrapf(ErrInvalidJourney, "duplicate stop id %s", stop.ID)
		}
		seen[stop.ID] = struct{}{}

		if !stop.Type.Valid() {
			return errors.Wrapf(ErrInvalidJourney, "stop %d has unknown type %q", i, stop.Type)
		}
		if stop.Type != StopTypePickup && len(stop.Items) > 0 {
			return errors.Wrapf(ErrInvalidJourney, "stop %d carries items but is a %s", i, stop.Type)
		}
		if stop.Type != StopTypeDropoff && len(stop.LinkedItems) > 0 {
			return errors.Wrapf(ErrInvalidJourney, "stop %d links items but is a %s", i, stop.Type)
		}
	}

	return nil
}
