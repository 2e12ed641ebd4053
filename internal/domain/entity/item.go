package entity

// Item is a physical object collected at a pickup stop.
// Dropoff stops reference items by ID and never own them.
type Item struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	Category                string   `json:"category,omitempty"`
	Quantity                int      `json:"quantity"`
	WeightKg                *float64 `json:"weight,omitempty"`
	Dimensions              string   `json:"dimensions,omitempty"`
	DeclaredValue           *float64 `json:"value,omitempty"`
	Fragile                 bool     `json:"fragile"`
	NeedsDisassembly        bool     `json:"needs_disassembly"`
	RequiresSpecialHandling bool     `json:"requires_special_handling"`
	InsuranceRequired       bool     `json:"insurance_required"`
	Notes                   string   `json:"notes,omitempty"`
	SpecialInstructions     string   `json:"special_instructions,omitempty"`
	PhotoRef                string   `json:"photo,omitempty"`
}
