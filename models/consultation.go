package models

import (
	"time"

	"github.com/google/uuid"
)

// Consultation is one dated visit record. Rows are insert-only: there is
// no update or delete path. Client name and phone are denormalized as a
// snapshot of what was typed at visit time.
type Consultation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerEmail string    `gorm:"not null;uniqueIndex:idx_owner_client_visit,priority:1"`
	ClientID   uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_owner_client_visit,priority:2"`

	ClientName  string
	ClientPhone string

	VoiceNotes string `gorm:"type:text"`
	CutDetails string `gorm:"type:text"`
	Formulas   string `gorm:"type:text"`
	Aftercare  string `gorm:"type:text"`
	ExtraNotes string `gorm:"type:text"`
	Goals      string `gorm:"type:text"`

	Summary string `gorm:"type:text"`

	// VisitDate orders recency; CreatedAt breaks ties for same-instant visits.
	VisitDate time.Time `gorm:"not null;uniqueIndex:idx_owner_client_visit,priority:3"`
	CreatedAt time.Time
}
