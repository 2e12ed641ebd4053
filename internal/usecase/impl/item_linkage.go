package impl

import (
	"fmt"
	"slices"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	domainerrors "github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"
)

// AvailableItemsForDropoff keeps every pickup item that no other dropoff links.
// Items already linked to the target stay available so existing selections render.
func (s *journeyService) AvailableItemsForDropoff(journey entity.Journey, dropoffIndex int) ([]entity.Item, error) {
	if err := checkDropoff(journey, dropoffIndex); err != nil {
		return nil, err
	}

	claimed := claimedElsewhere(journey, dropoffIndex)
	target := journey[dropoffIndex]

	available := make([]entity.Item, 0)
	for _, item := range journey.PickupItems() {
		if _, taken := claimed[item.ID]; !taken || target.HasLinkedItem(item.ID) {
			available = append(available, item)
		}
	}

	return available, nil
}

// LinkItem links itemID to the dropoff. Linking an already linked item is a no-op.
func (s *journeyService) LinkItem(journey entity.Journey, dropoffIndex int, itemID string) (entity.Journey, error) {
	if err := checkDropoff(journey, dropoffIndex); err != nil {
		return nil, err
	}

	if journey[dropoffIndex].HasLinkedItem(itemID) {
		return cloneJourney(journey), nil
	}

	if !slices.ContainsFunc(journey.PickupItems(), func(item entity.Item) bool { return item.ID == itemID }) {
		return nil, errors.Wrap(domainerrors.ErrItemNotFound.WithDetails(itemID), "link item")
	}

	if _, taken := claimedElsewhere(journey, dropoffIndex)[itemID]; taken {
		return nil, errors.Wrap(domainerrors.ErrItemAlreadyLinked.WithDetails(itemID), "link item")
	}

	out := cloneJourney(journey)
	out[dropoffIndex].LinkedItems = append(out[dropoffIndex].LinkedItems, itemID)

	return out, nil
}

// UnlinkItem removes itemID from the dropoff. Unlinking a missing id is a no-op.
func (s *journeyService) UnlinkItem(journey entity.Journey, dropoffIndex int, itemID string) (entity.Journey, error) {
	if err := checkDropoff(journey, dropoffIndex); err != nil {
		return nil, err
	}

	out := cloneJourney(journey)
	out[dropoffIndex].LinkedItems = slices.DeleteFunc(out[dropoffIndex].LinkedItems, func(id string) bool {
		return id == itemID
	})

	return out, nil
}

// ValidateLinks audits the links of a whole journey.
func (s *journeyService) ValidateLinks(journey entity.Journey) []usecase.LinkConflict {
	known := make(map[string]struct{})
	for _, item := range journey.PickupItems() {
		known[item.ID] = struct{}{}
	}

	var order []string
	claims := make(map[string][]int)
	for i, stop := range journey {
		if stop.Type != entity.StopTypeDropoff {
			continue
		}
		for _, id := range stop.LinkedItems {
			if _, seen := claims[id]; !seen {
				order = append(order, id)
			}
			if !slices.Contains(claims[id], i) {
				claims[id] = append(claims[id], i)
			}
		}
	}

	var conflicts []usecase.LinkConflict
	for _, id := range order {
		if _, ok := known[id]; !ok {
			conflicts = append(conflicts, usecase.LinkConflict{
				ItemID:         id,
				Reason:         usecase.LinkConflictUnknownItem,
				DropoffIndexes: claims[id],
			})

			continue
		}
		if len(claims[id]) > 1 {
			conflicts = append(conflicts, usecase.LinkConflict{
				ItemID:         id,
				Reason:         usecase.LinkConflictMultipleDropoffs,
				DropoffIndexes: claims[id],
			})
		}
	}

	return conflicts
}

func checkDropoff(journey entity.Journey, index int) error {
	if index < 0 || index >= len(journey) {
		return errors.Wrap(
			domainerrors.ErrStopIndexOutOfRange.WithDetails(fmt.Sprintf("index %d of %d stops", index, len(journey))),
			"resolve dropoff",
		)
	}
	if journey[index].Type != entity.StopTypeDropoff {
		return errors.Wrap(
			domainerrors.ErrNotDropoffStop.WithDetails(fmt.Sprintf("stop %d is a %s", index, journey[index].Type)),
			"resolve dropoff",
		)
	}

	return nil
}

// claimedElsewhere collects the item ids linked by every dropoff except the one at index.
func claimedElsewhere(journey entity.Journey, index int) map[string]struct{} {
	claimed := make(map[string]struct{})
	for i, stop := range journey {
		if i == index || stop.Type != entity.StopTypeDropoff {
			continue
		}
		for _, id := range stop.LinkedItems {
			claimed[id] = struct{}{}
		}
	}

	return claimed
}

// cloneJourney copies the stop slice and every LinkedItems slice, the only fields linkage writes.
func cloneJourney(journey entity.Journey) entity.Journey {
	out := slices.Clone(journey)
	for i := range out {
		out[i].LinkedItems = slices.Clone(out[i].LinkedItems)
	}

	return out
}
