package model

import "time"

// PanelEntry is someone who agreed to be contacted for a research panel.
// Only the time they responded is kept so their feedback can't be linked back to them.
type PanelEntry struct {
	Identifier  string    `json:"identifier"`
	RespondedAt time.Time `json:"responded_at"`
}
