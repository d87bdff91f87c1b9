package repos

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stylegenie-backend/models"
)

// ClientRepo is the GORM-backed clients collection.
type ClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// FindByName looks up a client by case-insensitive exact name match
// within the owner's scope. Returns (nil, nil) when no client matches.
func (r *ClientRepo) FindByName(owner, name string) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("owner_email = ? AND name_key = ?", owner, models.NameKeyFor(name)).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepo) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepo) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// UpdateMemory replaces the client's long-term memory digest wholesale
// and stamps the visit time.
func (r *ClientRepo) UpdateMemory(id uuid.UUID, notes string, visitedAt time.Time) error {
	return r.db.Model(&models.Client{}).Where("id = ?", id).
		Updates(map[string]interface{}{"notes": notes, "last_visit": &visitedAt}).Error
}

// ListForOwner returns all of an owner's clients, most recently updated first.
func (r *ClientRepo) ListForOwner(owner string) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("owner_email = ?", owner).Order("updated_at DESC").Find(&clients).Error
	return clients, err
}
