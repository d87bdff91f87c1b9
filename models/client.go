package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a person receiving services, scoped to the practitioner
// (owner email) who created it. Clients are never deleted; their Notes
// field holds the running long-term memory digest and is replaced
// wholesale on every consultation save.
type Client struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerEmail string    `gorm:"not null;uniqueIndex:idx_owner_name_key,priority:1"`

	Name string `gorm:"not null"`
	// NameKey is the lowercased trimmed name. Name is case-insensitive
	// unique within one owner's scope; duplicates are blocked here at the
	// store level.
	NameKey string `gorm:"not null;uniqueIndex:idx_owner_name_key,priority:2"`

	Phone string
	Email string
	Notes string `gorm:"type:text"`

	LastVisit *time.Time

	gorm.Model
}

func (c *Client) BeforeSave(tx *gorm.DB) (err error) {
	c.NameKey = NameKeyFor(c.Name)
	return
}

// NameKeyFor normalizes a display name for case-insensitive lookup.
func NameKeyFor(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
