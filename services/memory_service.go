package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"stylegenie-backend/models"
)

// ClientStore is the slice of the clients collection the resolver needs.
// Implementations return (nil, nil) when no record matches: absence is a
// normal case, not a fault.
type ClientStore interface {
	FindByName(owner, name string) (*models.Client, error)
	Create(client *models.Client) error
	Update(client *models.Client) error
	UpdateMemory(id uuid.UUID, notes string, visitedAt time.Time) error
}

// ConsultationStore is the slice of the consultations collection the
// resolver needs. LatestForClient returns (nil, nil) when the client has
// no prior consultation.
type ConsultationStore interface {
	LatestForClient(owner string, clientID uuid.UUID) (*models.Consultation, error)
	Create(consultation *models.Consultation) error
}

// MemoryService merges a client's historical consultation data into a
// new session: it finds or creates the client record, retrieves the most
// recent prior visit, and derives the two renderable documents.
type MemoryService struct {
	clients  ClientStore
	consults ConsultationStore
	now      func() time.Time

	prefillDelay time.Duration
	mu           sync.Mutex
	debouncers   map[string]*Debouncer[*PrefillResult]
}

// DefaultPrefillDelay is how long the name-based prefill lookup waits
// for further keystrokes before executing.
const DefaultPrefillDelay = 500 * time.Millisecond

func NewMemoryService(clients ClientStore, consults ConsultationStore) *MemoryService {
	return &MemoryService{
		clients:      clients,
		consults:     consults,
		now:          time.Now,
		prefillDelay: DefaultPrefillDelay,
		debouncers:   make(map[string]*Debouncer[*PrefillResult]),
	}
}

// ResolveClient finds the owner's client by case-insensitive name match,
// creating it when absent. When found, a supplied non-empty phone/email
// that differs from the stored value updates the record; otherwise the
// stored values are kept and no write is issued.
func (s *MemoryService) ResolveClient(owner, name, phone, email string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErr("client name is required")
	}

	existing, err := s.clients.FindByName(owner, name)
	if err != nil {
		return nil, storeErr(err)
	}

	if existing != nil {
		nextPhone := strings.TrimSpace(phone)
		if nextPhone == "" {
			nextPhone = existing.Phone
		}
		nextEmail := strings.TrimSpace(email)
		if nextEmail == "" {
			nextEmail = existing.Email
		}

		if nextPhone != existing.Phone || nextEmail != existing.Email {
			existing.Phone = nextPhone
			existing.Email = nextEmail
			if err := s.clients.Update(existing); err != nil {
				return nil, storeErr(err)
			}
		}
		return existing, nil
	}

	created := &models.Client{
		ID:         uuid.New(),
		OwnerEmail: owner,
		Name:       name,
		Phone:      strings.TrimSpace(phone),
		Email:      strings.TrimSpace(email),
	}
	if err := s.clients.Create(created); err != nil {
		return nil, storeErr(err)
	}
	return created, nil
}

// LastVisit returns the owner's most recent consultation for the client,
// or nil when none exists. Recency orders on visit time descending with
// creation time descending as tie-break.
func (s *MemoryService) LastVisit(owner string, clientID uuid.UUID) (*models.Consultation, error) {
	prev, err := s.consults.LatestForClient(owner, clientID)
	if err != nil {
		return nil, storeErr(err)
	}
	return prev, nil
}

// PrefillResult is what a name lookup feeds back into the form.
type PrefillResult struct {
	Found     bool
	Form      ConsultationForm
	LastVisit *models.Consultation
}

// Prefill looks up the typed name and fills contact and recall fields,
// but only where the corresponding field is currently empty: text the
// user already entered is never overwritten. An unknown name clears the
// last-visit panel and is not an error.
func (s *MemoryService) Prefill(owner, name string, form ConsultationForm) (*PrefillResult, error) {
	client, err := s.clients.FindByName(owner, name)
	if err != nil {
		return nil, storeErr(err)
	}
	if client == nil {
		return &PrefillResult{Found: false, Form: form}, nil
	}

	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" && v != "" {
			*dst = v
		}
	}
	fill(&form.ClientPhone, client.Phone)
	fill(&form.ClientEmail, client.Email)
	fill(&form.ExtraNotes, client.Notes)

	prev, err := s.consults.LatestForClient(owner, client.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	if prev != nil {
		fill(&form.CutDetails, prev.CutDetails)
		fill(&form.Formulas, prev.Formulas)
		fill(&form.Aftercare, prev.Aftercare)
		fill(&form.Goals, prev.Goals)
	}

	return &PrefillResult{Found: true, Form: form, LastVisit: prev}, nil
}

// PrefillDebounced debounces Prefill per owner so rapid retyping issues
// only the lookup for the latest input. Superseded calls, and calls
// whose lookup completed after newer input arrived, return
// ErrSuperseded instead of applying a stale result.
func (s *MemoryService) PrefillDebounced(ctx context.Context, owner, name string, form ConsultationForm) (*PrefillResult, error) {
	s.mu.Lock()
	d, ok := s.debouncers[owner]
	if !ok {
		d = NewDebouncer[*PrefillResult](s.prefillDelay)
		s.debouncers[owner] = d
	}
	s.mu.Unlock()

	return d.Do(ctx, func(context.Context) (*PrefillResult, error) {
		return s.Prefill(owner, name, form)
	})
}

// SaveResult is the outcome of the primary write transaction.
type SaveResult struct {
	Client        *models.Client
	ClientSummary string
	StylistSheet  string
	LastVisit     *models.Consultation
}

// SaveAndGenerate runs the save sequence: resolve the client, load the
// prior visit, build both documents, insert the consultation, replace
// the client's long-term memory digest, and re-load the latest visit for
// display. Each step requires the prior to succeed; a failure aborts the
// rest but leaves completed writes in place (there is no rollback).
func (s *MemoryService) SaveAndGenerate(owner string, form ConsultationForm) (*SaveResult, error) {
	client, err := s.ResolveClient(owner, form.ClientName, form.ClientPhone, form.ClientEmail)
	if err != nil {
		return nil, err
	}

	prev, err := s.LastVisit(owner, client.ID)
	if err != nil {
		return nil, err
	}

	summary := BuildClientSummary(form, prev)
	sheet := BuildStylistSheet(form, prev)

	consultation := &models.Consultation{
		ID:          uuid.New(),
		OwnerEmail:  owner,
		ClientID:    client.ID,
		ClientName:  strings.TrimSpace(form.ClientName),
		ClientPhone: strings.TrimSpace(form.ClientPhone),
		VoiceNotes:  strings.TrimSpace(form.VoiceNotes),
		CutDetails:  strings.TrimSpace(form.CutDetails),
		Formulas:    strings.TrimSpace(form.Formulas),
		Aftercare:   strings.TrimSpace(form.Aftercare),
		ExtraNotes:  strings.TrimSpace(form.ExtraNotes),
		Goals:       strings.TrimSpace(form.Goals),
		Summary:     summary,
		VisitDate:   s.now(),
	}
	if err := s.consults.Create(consultation); err != nil {
		return nil, storeErr(err)
	}

	if err := s.clients.UpdateMemory(client.ID, BuildLongTermMemory(form), consultation.VisitDate); err != nil {
		return nil, storeErr(err)
	}

	refreshed, err := s.LastVisit(owner, client.ID)
	if err != nil {
		return nil, err
	}

	return &SaveResult{
		Client:        client,
		ClientSummary: summary,
		StylistSheet:  sheet,
		LastVisit:     refreshed,
	}, nil
}
