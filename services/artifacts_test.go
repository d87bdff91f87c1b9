package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stylegenie-backend/models"
)

func sampleForm() ConsultationForm {
	return ConsultationForm{
		ClientName:  "Jay Brown",
		ClientPhone: "+15550001111",
		ClientEmail: "jay@example.com",
		ServiceType: "Balayage",
		CutDetails:  "Soft layers",
		Formulas:    "7N + 20vol",
		Aftercare:   "Purple shampoo weekly",
		Goals:       "Brighter ends",
	}
}

func TestClientSummaryOmitsNotesWhenEmpty(t *testing.T) {
	form := sampleForm()
	form.VoiceNotes = ""
	form.ExtraNotes = ""

	summary := BuildClientSummary(form, nil)

	assert.NotContains(t, summary, "Notes:")
	assert.Contains(t, summary, "Jay Brown is booked for: Balayage.")
	assert.Contains(t, summary, "No prior visit found yet.")
}

func TestClientSummaryIncludesNonEmptyNotes(t *testing.T) {
	form := sampleForm()
	form.VoiceNotes = "wants low maintenance"
	form.ExtraNotes = ""

	summary := BuildClientSummary(form, nil)

	assert.Contains(t, summary, "Notes:\n- Voice: wants low maintenance")
	assert.NotContains(t, summary, "- Extra:")
}

func TestStylistSheetPrintsNonePlaceholders(t *testing.T) {
	form := sampleForm()
	form.VoiceNotes = ""
	form.ExtraNotes = ""

	sheet := BuildStylistSheet(form, nil)

	assert.Contains(t, sheet, "Voice: (none)")
	assert.Contains(t, sheet, "Extra: (none)")
	assert.Contains(t, sheet, "LAST VISIT:\n- None found yet.")
	assert.Contains(t, sheet, "TODAY:")
}

func TestArtifactsRenderPriorVisit(t *testing.T) {
	visit := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)
	prev := &models.Consultation{
		CutDetails: "Taper fade, #2 guard",
		Formulas:   "",
		Aftercare:  "Leave-in conditioner",
		Goals:      "Grow out top",
		VisitDate:  visit,
	}

	summary := BuildClientSummary(sampleForm(), prev)
	assert.Contains(t, summary, "Last time (Jan 10, 2025 2:30 PM):")
	assert.Contains(t, summary, "- Cut details: Taper fade, #2 guard")
	assert.Contains(t, summary, "- Formulas: N/A")

	sheet := BuildStylistSheet(sampleForm(), prev)
	assert.Contains(t, sheet, "- Date: Jan 10, 2025 2:30 PM")
	assert.Contains(t, sheet, "- Aftercare: Leave-in conditioner")
}

func TestStylistSheetUsesPlaceholdersForEmptyContact(t *testing.T) {
	sheet := BuildStylistSheet(ConsultationForm{}, nil)

	assert.True(t, strings.HasPrefix(sheet, "Client: N/A\nPhone: N/A\nEmail: N/A"))
}

func TestLongTermMemorySkipsEmptyFields(t *testing.T) {
	memory := BuildLongTermMemory(ConsultationForm{
		ServiceType: "Silk press",
		CutDetails:  "Trim ends",
		ExtraNotes:  "Sensitive scalp",
	})

	assert.Equal(t, "Last service: Silk press\nCut details: Trim ends\nNotes: Sensitive scalp", memory)
}

func TestLongTermMemoryDefaultsServiceType(t *testing.T) {
	memory := BuildLongTermMemory(ConsultationForm{})

	assert.Equal(t, "Last service: N/A", memory)
}
