package storage

import (
	"encoding/json"
	"fmt"

	"stylegenie-backend/models"
)

const appointmentsKey = "appointments"

// SchemaVersion tags the persisted appointment blob so older snapshots
// can be migrated on load.
const SchemaVersion = 1

type appointmentsBlob struct {
	Version      int                  `json:"version"`
	Appointments []models.Appointment `json:"appointments"`
}

// AppointmentStore persists the full appointment set as one versioned
// JSON document. Every save is a full-collection overwrite.
type AppointmentStore struct {
	local *LocalStore
}

func NewAppointmentStore(local *LocalStore) *AppointmentStore {
	return &AppointmentStore{local: local}
}

// Load reads the snapshot taken at the last mutation. Legacy snapshots
// written before the version tag existed (a bare JSON array) are
// migrated in place on the next save. Missing data yields an empty set.
func (s *AppointmentStore) Load() ([]models.Appointment, error) {
	data, ok, err := s.local.Get(appointmentsKey)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var blob appointmentsBlob
	if err := json.Unmarshal(data, &blob); err != nil || blob.Version == 0 {
		// Pre-versioning snapshots were a raw array.
		var legacy []models.Appointment
		if legacyErr := json.Unmarshal(data, &legacy); legacyErr != nil {
			if err != nil {
				return nil, fmt.Errorf("decode appointments: %w", err)
			}
			return nil, fmt.Errorf("decode appointments: %w", legacyErr)
		}
		blob = appointmentsBlob{Version: SchemaVersion, Appointments: legacy}
	}

	appts := blob.Appointments
	for i := range appts {
		if appts[i].Status == "" {
			appts[i].Status = models.StatusBooked
		}
	}
	return appts, nil
}

// Save overwrites the snapshot with the current full set.
func (s *AppointmentStore) Save(appts []models.Appointment) error {
	if appts == nil {
		appts = []models.Appointment{}
	}
	data, err := json.Marshal(appointmentsBlob{Version: SchemaVersion, Appointments: appts})
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := s.local.Put(appointmentsKey, data); err != nil {
		return fmt.Errorf("save appointments: %w", err)
	}
	return nil
}
