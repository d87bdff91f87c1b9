package models

import "time"

// Status of an appointment slot. Transitions are unconditional: any
// status may move to any other by explicit user action.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no-show"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Appointment is a locally persisted schedule entry. It is not linked to
// Client or Consultation records; the name is free text. The whole set is
// snapshotted to local storage on every mutation.
type Appointment struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Formula string `json:"formula"`
	Notes   string `json:"notes"`
	Date    string `json:"date"` // YYYY-MM-DD
	Time    string `json:"time"` // HH:MM (24h)
	Status  Status `json:"status"`

	TimerEnd *time.Time `json:"timerEnd,omitempty"`

	Summary   string `json:"summary,omitempty"`
	Aftercare string `json:"aftercare,omitempty"`

	ServiceKey      string `json:"serviceKey,omitempty"`
	SuggestedRebook string `json:"suggestedRebook,omitempty"`
}

// ServiceTemplate is a named preset supplying default formula/notes text
// and a rebook interval in weeks.
type ServiceTemplate struct {
	Key            string `json:"key"`
	Label          string `json:"label"`
	DefaultFormula string `json:"defaultFormula"`
	DefaultNotes   string `json:"defaultNotes"`
	RebookWeeks    int    `json:"rebookWeeks"`
}

// DefaultRebookWeeks applies when no template, or an unrecognized
// template key, was selected.
const DefaultRebookWeeks = 6

var ServiceTemplates = []ServiceTemplate{
	{
		Key:            "rootTouchUp",
		Label:          "Root touch-up",
		DefaultFormula: "Permanent color, natural level + gray coverage at roots only.",
		DefaultNotes:   "Focus on regrowth only. Blend into mid-lengths if needed, avoid overlapping on ends.",
		RebookWeeks:    6,
	},
	{
		Key:            "fullHighlight",
		Label:          "Full highlight",
		DefaultFormula: "Foil highlights, fine weaves, lightener + bond builder, mid to high lift.",
		DefaultNotes:   "Full head foils, focus on brightness around face and crown. Tone after lift reaches desired level.",
		RebookWeeks:    10,
	},
	{
		Key:            "balayage",
		Label:          "Balayage / lived-in",
		DefaultFormula: "Hand-painted lightener on mid-lengths to ends, soft blended root.",
		DefaultNotes:   "Soft, low-maintenance blend. Keep depth at root, brightest toward ends. Great for 10-12 week maintenance.",
		RebookWeeks:    12,
	},
	{
		Key:            "tonerGloss",
		Label:          "Toner / gloss",
		DefaultFormula: "Demi-permanent gloss to refine tone and add shine, mid-lengths and ends.",
		DefaultNotes:   "Refresh tone and shine between lightening services. Watch timing on porous ends.",
		RebookWeeks:    4,
	},
	{
		Key:            "silkPress",
		Label:          "Silk press",
		DefaultFormula: "Moisturizing shampoo + deep conditioner, heat protectant, light finishing serum.",
		DefaultNotes:   "Full cleanse and deep condition. Blow dry with tension, press in small sections. Avoid heavy oils at roots.",
		RebookWeeks:    3,
	},
}

// TemplateByKey returns the service template for key, if any.
func TemplateByKey(key string) (ServiceTemplate, bool) {
	for _, t := range ServiceTemplates {
		if t.Key == key {
			return t, true
		}
	}
	return ServiceTemplate{}, false
}

// RebookWeeksFor returns the rebook interval for a template key, falling
// back to DefaultRebookWeeks for none or unrecognized keys.
func RebookWeeksFor(key string) int {
	if t, ok := TemplateByKey(key); ok {
		return t.RebookWeeks
	}
	return DefaultRebookWeeks
}
