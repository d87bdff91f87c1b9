package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylegenie-backend/models"
	"stylegenie-backend/storage"
)

func newTestTracker(t *testing.T) (*AppointmentTracker, *storage.AppointmentStore, *time.Time) {
	t.Helper()

	local, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	store := storage.NewAppointmentStore(local)

	tracker, err := NewAppointmentTracker(store)
	require.NoError(t, err)

	clock := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	tracker.now = func() time.Time { return clock }
	tracker.summarizeDelay = 0

	return tracker, store, &clock
}

func mustCreate(t *testing.T, tracker *AppointmentTracker, input CreateAppointmentInput) models.Appointment {
	t.Helper()
	appt, err := tracker.Create(input)
	require.NoError(t, err)
	return appt
}

func TestCreateStartsBooked(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00",
	})

	assert.Equal(t, models.StatusBooked, appt.Status)
	assert.NotEmpty(t, appt.ID)
	assert.Empty(t, appt.SuggestedRebook)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	_, err := tracker.Create(CreateAppointmentInput{Name: "Dana", Date: "2025-06-15"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = tracker.Create(CreateAppointmentInput{Name: "Dana", Date: "June 15", Time: "10:00"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateAppliesTemplateDefaults(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00", ServiceKey: "silkPress",
	})

	tpl, _ := models.TemplateByKey("silkPress")
	assert.Equal(t, tpl.DefaultFormula, appt.Formula)
	assert.Equal(t, tpl.DefaultNotes, appt.Notes)
}

func TestCreateKeepsTypedTextOverTemplate(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00",
		ServiceKey: "silkPress", Formula: "my own formula",
	})

	assert.Equal(t, "my own formula", appt.Formula)
}

func TestCreateDropsUnknownServiceKey(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00", ServiceKey: "perm",
	})

	assert.Empty(t, appt.ServiceKey)
}

func TestCompletedComputesRebookSuggestion(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-01-01", Time: "10:00", ServiceKey: "balayage",
	})

	updated, err := tracker.UpdateStatus(appt.ID, models.StatusCompleted)

	require.NoError(t, err)
	// Balayage rebooks 12 weeks out: Jan 1 + 84 days = Mar 26.
	assert.Equal(t, "Mar 26, 10:00 AM", updated.SuggestedRebook)
}

func TestRebookDefaultsToSixWeeks(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-01-01", Time: "14:30",
	})

	updated, err := tracker.UpdateStatus(appt.ID, models.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, "Feb 12, 2:30 PM", updated.SuggestedRebook)
}

func TestRebookClearedOnReturnToBooked(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-01-01", Time: "10:00", ServiceKey: "balayage",
	})

	_, err := tracker.UpdateStatus(appt.ID, models.StatusCompleted)
	require.NoError(t, err)

	updated, err := tracker.UpdateStatus(appt.ID, models.StatusBooked)
	require.NoError(t, err)

	assert.Empty(t, updated.SuggestedRebook)
}

func TestNoShowLeavesRebookUntouched(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-01-01", Time: "10:00", ServiceKey: "balayage",
	})

	completed, err := tracker.UpdateStatus(appt.ID, models.StatusCompleted)
	require.NoError(t, err)
	require.NotEmpty(t, completed.SuggestedRebook)

	noShow, err := tracker.UpdateStatus(appt.ID, models.StatusNoShow)
	require.NoError(t, err)

	assert.Equal(t, completed.SuggestedRebook, noShow.SuggestedRebook)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00",
	})

	_, err := tracker.UpdateStatus(appt.ID, models.Status("cancelled"))

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	_, err := tracker.UpdateStatus("missing", models.StatusCompleted)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodayUpcomingPartition(t *testing.T) {
	tracker, _, _ := newTestTracker(t) // now is 2025-06-15

	mustCreate(t, tracker, CreateAppointmentInput{Name: "Yesterday", Date: "2025-06-14", Time: "10:00"})
	mustCreate(t, tracker, CreateAppointmentInput{Name: "Today", Date: "2025-06-15", Time: "10:00"})
	mustCreate(t, tracker, CreateAppointmentInput{Name: "Tomorrow", Date: "2025-06-16", Time: "10:00"})

	view := tracker.Dashboard()

	require.Len(t, view.Today, 1)
	assert.Equal(t, "Today", view.Today[0].Name)
	require.Len(t, view.Upcoming, 1)
	assert.Equal(t, "Tomorrow", view.Upcoming[0].Name)
}

func TestDashboardSortsByDateThenTime(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	mustCreate(t, tracker, CreateAppointmentInput{Name: "Late", Date: "2025-06-15", Time: "16:00"})
	mustCreate(t, tracker, CreateAppointmentInput{Name: "Early", Date: "2025-06-15", Time: "09:00"})

	view := tracker.Dashboard()

	require.Len(t, view.Today, 2)
	assert.Equal(t, "Early", view.Today[0].Name)
	assert.Equal(t, "Late", view.Today[1].Name)
}

func TestTimerCountsDownAndSticksAtDone(t *testing.T) {
	tracker, _, clock := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00",
	})

	_, err := tracker.StartTimer(appt.ID, 15)
	require.NoError(t, err)

	view := tracker.Dashboard()
	require.Len(t, view.ActiveTimers, 1)
	assert.Equal(t, "15:00", view.ActiveTimers[0].Label)
	assert.False(t, view.ActiveTimers[0].Done)

	// 15 minutes and one second later the timer reads done at 0:00 but
	// stays listed until explicitly cleared.
	*clock = clock.Add(15*time.Minute + time.Second)
	view = tracker.Dashboard()
	require.Len(t, view.ActiveTimers, 1)
	assert.Equal(t, "0:00", view.ActiveTimers[0].Label)
	assert.True(t, view.ActiveTimers[0].Done)

	cleared, err := tracker.ClearTimer(appt.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.TimerEnd)
	assert.Empty(t, tracker.Dashboard().ActiveTimers)
}

func TestTimerIndependentOfStatus(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00",
	})

	_, err := tracker.StartTimer(appt.ID, 30)
	require.NoError(t, err)

	updated, err := tracker.UpdateStatus(appt.ID, models.StatusCompleted)
	require.NoError(t, err)

	assert.NotNil(t, updated.TimerEnd)
}

func TestColorHistoryKeepsLatestFormulaPerName(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "09:00", Formula: "old formula",
	})
	mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-16", Time: "09:00", Formula: "new formula",
	})
	mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Sam", Date: "2025-06-15", Time: "11:00", // no formula
	})

	view := tracker.Dashboard()

	require.Len(t, view.ColorHistory, 1)
	assert.Equal(t, "Dana", view.ColorHistory[0].Name)
	assert.Equal(t, "new formula", view.ColorHistory[0].Formula)
}

func TestDictationAppendsAndInvalidatesSummary(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00", Notes: "prefers cool tones",
	})

	_, err := tracker.Summarize(appt.ID)
	require.NoError(t, err)

	updated, err := tracker.AppendDictation(appt.ID, "allergic to ammonia")
	require.NoError(t, err)

	assert.Equal(t, "prefers cool tones allergic to ammonia", updated.Notes)
	assert.Empty(t, updated.Summary, "summary must be invalidated when notes change")
	assert.Empty(t, updated.Aftercare)
}

func TestDictationRejectsEmptyTranscript(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00",
	})

	_, err := tracker.AppendDictation(appt.ID, "   ")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSummarizeRequiresNotesOrFormula(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00",
	})

	_, err := tracker.Summarize(appt.ID)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSummarizeBuildsSummaryAndAftercare(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00",
		Notes: "wants dimension", Formula: "7N + 20vol",
	})

	updated, err := tracker.Summarize(appt.ID)

	require.NoError(t, err)
	assert.Equal(t, "Client Dana preferences: wants dimension Formula used: 7N + 20vol.", updated.Summary)
	assert.Equal(t, aftercareText, updated.Aftercare)
}

func TestTrackerReloadsSnapshotOnRestart(t *testing.T) {
	tracker, store, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00", ServiceKey: "balayage",
	})
	_, err := tracker.UpdateStatus(appt.ID, models.StatusCompleted)
	require.NoError(t, err)

	reloaded, err := NewAppointmentTracker(store)
	require.NoError(t, err)

	got, err := reloaded.Get(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, "Mar 26, 10:00 AM", got.SuggestedRebook)
}

func TestCompletedWithRebookFeedsDigest(t *testing.T) {
	tracker, _, _ := newTestTracker(t)
	appt := mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Dana", Date: "2025-06-15", Time: "10:00", ServiceKey: "tonerGloss",
	})
	mustCreate(t, tracker, CreateAppointmentInput{
		Name: "Sam", Date: "2025-06-15", Time: "11:00",
	})

	_, err := tracker.UpdateStatus(appt.ID, models.StatusCompleted)
	require.NoError(t, err)

	pending := tracker.CompletedWithRebook()

	require.Len(t, pending, 1)
	assert.Equal(t, "Dana", pending[0].Name)
}
