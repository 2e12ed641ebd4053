package usecase

import (
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
)

// LinkConflictReason tells why a linked item id is inconsistent.
type LinkConflictReason string

const (
	// LinkConflictMultipleDropoffs means more than one dropoff claims the item.
	LinkConflictMultipleDropoffs LinkConflictReason = "multiple_dropoffs"
	// LinkConflictUnknownItem means no pickup stop carries the item.
	LinkConflictUnknownItem LinkConflictReason = "unknown_item"
)

// LinkConflict describes one inconsistent item link found by ValidateLinks.
type LinkConflict struct {
	ItemID         string             `json:"item_id"`
	Reason         LinkConflictReason `json:"reason"`
	DropoffIndexes []int              `json:"dropoff_indexes"`
}

// JourneyUsecase defines the stop normalization and item linkage use cases.
// All operations are pure: they never mutate their input journey.
type JourneyUsecase interface {
	// NormalizeStops converts any mix of stop representations into canonical stops,
	// dropping stops without a valid coordinate while keeping the order of the rest.
	NormalizeStops(stops []entity.StopInput) []entity.Stop

	// AvailableItemsForDropoff returns the pickup items the dropoff at dropoffIndex may link:
	// items not claimed by another dropoff, plus those it already links.
	AvailableItemsForDropoff(journey entity.Journey, dropoffIndex int) ([]entity.Item, error)

	// LinkItem returns a copy of the journey with itemID linked to the dropoff at dropoffIndex.
	LinkItem(journey entity.Journey, dropoffIndex int, itemID string) (entity.Journey, error)

	// UnlinkItem returns a copy of the journey with itemID removed from the dropoff at dropoffIndex.
	UnlinkItem(journey entity.Journey, dropoffIndex int, itemID string) (entity.Journey, error)

	// ValidateLinks reports items claimed by several dropoffs or by no pickup.
	ValidateLinks(journey entity.Journey) []LinkConflict
}
