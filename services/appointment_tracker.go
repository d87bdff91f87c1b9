package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"stylegenie-backend/models"
	"stylegenie-backend/storage"
)

// DefaultSummarizeDelay simulates the asynchronous generation step of
// the notes summarizer.
const DefaultSummarizeDelay = 600 * time.Millisecond

// AppointmentTracker maintains the appointment set with status
// transitions, processing timers, and derived schedule views. The full
// set is snapshotted to local storage on every mutation and loaded once
// at startup. The stored absolute timer end is the source of truth for
// remaining time; any display tick merely recomputes from it.
type AppointmentTracker struct {
	mu    sync.Mutex
	appts []models.Appointment
	store *storage.AppointmentStore

	now            func() time.Time
	newID          func() string
	summarizeDelay time.Duration
}

func NewAppointmentTracker(store *storage.AppointmentStore) (*AppointmentTracker, error) {
	t := &AppointmentTracker{
		store:          store,
		now:            time.Now,
		newID:          func() string { return uuid.NewString() },
		summarizeDelay: DefaultSummarizeDelay,
	}
	appts, err := store.Load()
	if err != nil {
		return nil, storeErr(err)
	}
	t.appts = appts
	t.sortLocked()
	return t, nil
}

// CreateAppointmentInput is the new-appointment form.
type CreateAppointmentInput struct {
	Name       string `json:"name" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:MM
	Formula    string `json:"formula"`
	Notes      string `json:"notes"`
	ServiceKey string `json:"serviceKey"`
}

// Create books a new appointment. A recognized service template
// pre-fills formula and notes where the form left them empty; an
// unrecognized key is dropped.
func (t *AppointmentTracker) Create(input CreateAppointmentInput) (models.Appointment, error) {
	name := strings.TrimSpace(input.Name)
	date := strings.TrimSpace(input.Date)
	timeOfDay := strings.TrimSpace(input.Time)
	if name == "" || date == "" || timeOfDay == "" {
		return models.Appointment{}, validationErr("name, date and time are required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.Appointment{}, validationErr("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return models.Appointment{}, validationErr("time must be HH:MM")
	}

	appt := models.Appointment{
		ID:      t.newID(),
		Name:    name,
		Formula: strings.TrimSpace(input.Formula),
		Notes:   strings.TrimSpace(input.Notes),
		Date:    date,
		Time:    timeOfDay,
		Status:  models.StatusBooked,
	}
	if tpl, ok := models.TemplateByKey(input.ServiceKey); ok {
		appt.ServiceKey = tpl.Key
		if appt.Formula == "" {
			appt.Formula = tpl.DefaultFormula
		}
		if appt.Notes == "" {
			appt.Notes = tpl.DefaultNotes
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.appts = append(t.appts, appt)
	t.sortLocked()
	if err := t.persistLocked(); err != nil {
		return models.Appointment{}, err
	}
	return appt, nil
}

// UpdateStatus moves an appointment to the given status. Transitions are
// unconditional. Entering completed computes and stores the rebook
// suggestion; entering booked clears it; no-show leaves it untouched.
func (t *AppointmentTracker) UpdateStatus(id string, status models.Status) (models.Appointment, error) {
	if !status.Valid() {
		return models.Appointment{}, validationErr("unknown status %q", status)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	a, err := t.findLocked(id)
	if err != nil {
		return models.Appointment{}, err
	}

	a.Status = status
	switch status {
	case models.StatusCompleted:
		a.SuggestedRebook = t.buildSuggestedRebook(*a)
	case models.StatusBooked:
		a.SuggestedRebook = ""
	}

	if err := t.persistLocked(); err != nil {
		return models.Appointment{}, err
	}
	return *a, nil
}

// buildSuggestedRebook advances the scheduled date/time by the service
// template's interval. The suggestion is a display string only; no new
// appointment is created.
func (t *AppointmentTracker) buildSuggestedRebook(a models.Appointment) string {
	weeks := models.RebookWeeksFor(a.ServiceKey)

	timeOfDay := a.Time
	if timeOfDay == "" {
		timeOfDay = "10:00"
	}
	base, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+timeOfDay, time.Local)
	if err != nil {
		base = t.now()
	}
	return base.AddDate(0, 0, weeks*7).Format("Jan 2, 3:04 PM")
}

// StartTimer starts a processing timer ending the given minutes from
// now. Timers are independent of appointment status.
func (t *AppointmentTracker) StartTimer(id string, minutes int) (models.Appointment, error) {
	if minutes <= 0 {
		return models.Appointment{}, validationErr("timer minutes must be positive")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	a, err := t.findLocked(id)
	if err != nil {
		return models.Appointment{}, err
	}

	end := t.now().Add(time.Duration(minutes) * time.Minute)
	a.TimerEnd = &end

	if err := t.persistLocked(); err != nil {
		return models.Appointment{}, err
	}
	return *a, nil
}

// ClearTimer removes the processing timer. A finished timer stays in the
// done state until cleared this way.
func (t *AppointmentTracker) ClearTimer(id string) (models.Appointment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, err := t.findLocked(id)
	if err != nil {
		return models.Appointment{}, err
	}

	a.TimerEnd = nil

	if err := t.persistLocked(); err != nil {
		return models.Appointment{}, err
	}
	return *a, nil
}

// TimerStatus is the derived remaining-time view of one running timer.
type TimerStatus struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"` // minutes:seconds
	Done  bool   `json:"done"`
}

func (t *AppointmentTracker) timerStatus(a models.Appointment, now time.Time) *TimerStatus {
	if a.TimerEnd == nil {
		return nil
	}
	diff := int(a.TimerEnd.Sub(now).Seconds())
	remaining := diff
	if remaining < 0 {
		remaining = 0
	}
	return &TimerStatus{
		ID:    a.ID,
		Name:  a.Name,
		Label: fmt.Sprintf("%d:%02d", remaining/60, remaining%60),
		Done:  diff <= 0,
	}
}

// AppendDictation appends a finalized transcript to the appointment's
// notes, space-joined. Any previously generated summary and aftercare
// are invalidated because the notes changed underneath them.
func (t *AppointmentTracker) AppendDictation(id, transcript string) (models.Appointment, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return models.Appointment{}, validationErr("transcript is empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	a, err := t.findLocked(id)
	if err != nil {
		return models.Appointment{}, err
	}

	if a.Notes != "" {
		a.Notes = a.Notes + " " + transcript
	} else {
		a.Notes = transcript
	}
	a.Summary = ""
	a.Aftercare = ""

	if err := t.persistLocked(); err != nil {
		return models.Appointment{}, err
	}
	return *a, nil
}

var aftercareText = strings.Join([]string{
	"Use sulfate-free shampoo and conditioner.",
	"Avoid hot tools or keep heat low with heat protectant.",
	"Schedule a refresh or toner in 6-8 weeks.",
}, " ")

// Summarize synthesizes a summary and a fixed aftercare text from the
// appointment's notes and formula after the configured generation delay.
// Concurrent regenerations of the same appointment race last-write-wins.
func (t *AppointmentTracker) Summarize(id string) (models.Appointment, error) {
	t.mu.Lock()
	a, err := t.findLocked(id)
	if err != nil {
		t.mu.Unlock()
		return models.Appointment{}, err
	}
	snapshot := *a
	t.mu.Unlock()

	if snapshot.Notes == "" && snapshot.Formula == "" {
		return models.Appointment{}, validationErr("no notes or formula to summarize yet")
	}

	time.Sleep(t.summarizeDelay)

	summary := buildLocalSummary(snapshot)

	t.mu.Lock()
	defer t.mu.Unlock()
	a, err = t.findLocked(id)
	if err != nil {
		return models.Appointment{}, err
	}
	a.Summary = summary
	a.Aftercare = aftercareText

	if err := t.persistLocked(); err != nil {
		return models.Appointment{}, err
	}
	return *a, nil
}

func buildLocalSummary(a models.Appointment) string {
	base := "Client " + a.Name + " had a color service."
	if a.Notes != "" {
		base = "Client " + a.Name + " preferences: " + a.Notes
	}
	if a.Formula != "" {
		base += " Formula used: " + a.Formula + "."
	}
	return base
}

// DashboardView groups the schedule for display: appointments dated
// today, upcoming ones, the latest formula per client name, and all
// running timers. Past-dated appointments appear in neither list.
type DashboardView struct {
	Today        []models.Appointment `json:"today"`
	Upcoming     []models.Appointment `json:"upcoming"`
	ColorHistory []models.Appointment `json:"colorHistory"`
	ActiveTimers []TimerStatus        `json:"activeTimers"`
}

// Dashboard derives the grouped schedule views from the sorted set.
func (t *AppointmentTracker) Dashboard() DashboardView {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	todayISO := now.Format("2006-01-02")

	view := DashboardView{
		Today:        []models.Appointment{},
		Upcoming:     []models.Appointment{},
		ColorHistory: []models.Appointment{},
		ActiveTimers: []TimerStatus{},
	}

	// Latest non-empty formula per client name, last write wins in
	// (date, time) order.
	latestFormula := make(map[string]models.Appointment)
	historyOrder := []string{}

	for _, a := range t.appts {
		switch {
		case a.Date == todayISO:
			view.Today = append(view.Today, a)
		case a.Date > todayISO:
			view.Upcoming = append(view.Upcoming, a)
		}

		if a.Formula != "" {
			if _, seen := latestFormula[a.Name]; !seen {
				historyOrder = append(historyOrder, a.Name)
			}
			latestFormula[a.Name] = a
		}

		if ts := t.timerStatus(a, now); ts != nil {
			view.ActiveTimers = append(view.ActiveTimers, *ts)
		}
	}

	for _, name := range historyOrder {
		view.ColorHistory = append(view.ColorHistory, latestFormula[name])
	}

	return view
}

// CompletedWithRebook returns completed appointments still carrying a
// rebook suggestion, for the daily reminder digest.
func (t *AppointmentTracker) CompletedWithRebook() []models.Appointment {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []models.Appointment
	for _, a := range t.appts {
		if a.Status == models.StatusCompleted && a.SuggestedRebook != "" {
			out = append(out, a)
		}
	}
	return out
}

// Get returns one appointment by id.
func (t *AppointmentTracker) Get(id string) (models.Appointment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, err := t.findLocked(id)
	if err != nil {
		return models.Appointment{}, err
	}
	return *a, nil
}

func (t *AppointmentTracker) findLocked(id string) (*models.Appointment, error) {
	for i := range t.appts {
		if t.appts[i].ID == id {
			return &t.appts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: appointment %s", ErrNotFound, id)
}

func (t *AppointmentTracker) sortLocked() {
	sort.SliceStable(t.appts, func(i, j int) bool {
		a, b := t.appts[i], t.appts[j]
		return a.Date+"T"+a.Time < b.Date+"T"+b.Time
	})
}

func (t *AppointmentTracker) persistLocked() error {
	if err := t.store.Save(t.appts); err != nil {
		return storeErr(err)
	}
	return nil
}
