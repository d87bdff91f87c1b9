package repos

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stylegenie-backend/models"
)

// ConsultationRepo is the GORM-backed consultations collection. Rows are
// insert-only.
type ConsultationRepo struct {
	db *gorm.DB
}

func NewConsultationRepo(db *gorm.DB) *ConsultationRepo {
	return &ConsultationRepo{db: db}
}

// LatestForClient returns the most recent consultation for the client,
// ordered by visit time descending then creation time descending as a
// tie-break. Returns (nil, nil) when the client has no prior visit.
func (r *ConsultationRepo) LatestForClient(owner string, clientID uuid.UUID) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.db.Where("owner_email = ? AND client_id = ?", owner, clientID).
		Order("visit_date DESC, created_at DESC").
		First(&consultation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *ConsultationRepo) Create(consultation *models.Consultation) error {
	return r.db.Create(consultation).Error
}
