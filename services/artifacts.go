package services

import (
	"strings"

	"stylegenie-backend/models"
)

// visitTimeFormat renders consultation visit timestamps in the two
// generated documents.
const visitTimeFormat = "Jan 2, 2006 3:04 PM"

// ConsultationForm carries the current session's field values as typed.
type ConsultationForm struct {
	ClientName  string
	ClientPhone string
	ClientEmail string
	ServiceType string
	VoiceNotes  string
	CutDetails  string
	Formulas    string
	Aftercare   string
	Goals       string
	ExtraNotes  string
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return strings.TrimSpace(v)
}

// BuildClientSummary renders the client-facing summary: name, service,
// a prior-visit block (or an explicit no-prior-visit notice), today's
// plan, and a notes section that is omitted entirely when both voice
// notes and extra notes are empty.
func BuildClientSummary(form ConsultationForm, previous *models.Consultation) string {
	name := strings.TrimSpace(form.ClientName)
	if name == "" {
		name = "this client"
	}
	svc := strings.TrimSpace(form.ServiceType)
	if svc == "" {
		svc = "a hair service"
	}

	var prevBlock string
	if previous != nil {
		prevBlock = "Last time (" + previous.VisitDate.Format(visitTimeFormat) + "):\n" +
			"- Cut details: " + orNA(previous.CutDetails) + "\n" +
			"- Formulas: " + orNA(previous.Formulas) + "\n" +
			"- Aftercare: " + orNA(previous.Aftercare) + "\n" +
			"- Goals: " + orNA(previous.Goals)
	} else {
		prevBlock = "No prior visit found yet."
	}

	nowBlock := "Today's plan:\n" +
		"- Service: " + svc + "\n" +
		"- Cut details: " + orNA(form.CutDetails) + "\n" +
		"- Formulas/technical: " + orNA(form.Formulas) + "\n" +
		"- Aftercare: " + orNA(form.Aftercare) + "\n" +
		"- Goals: " + orNA(form.Goals)

	voice := strings.TrimSpace(form.VoiceNotes)
	extra := strings.TrimSpace(form.ExtraNotes)
	if voice != "" || extra != "" {
		var lines []string
		if voice != "" {
			lines = append(lines, "- Voice: "+voice)
		}
		if extra != "" {
			lines = append(lines, "- Extra: "+extra)
		}
		nowBlock += "\n\nNotes:\n" + strings.Join(lines, "\n")
	}

	return name + " is booked for: " + svc + ".\n\n" + prevBlock + "\n\n" + nowBlock
}

// BuildStylistSheet renders the stylist technical sheet under LAST VISIT
// and TODAY headers. Unlike the client summary, empty note fields print
// literal placeholders instead of being omitted.
func BuildStylistSheet(form ConsultationForm, previous *models.Consultation) string {
	var prev string
	if previous != nil {
		prev = "LAST VISIT:\n" +
			"- Date: " + previous.VisitDate.Format(visitTimeFormat) + "\n" +
			"- Cut details: " + orNA(previous.CutDetails) + "\n" +
			"- Formulas: " + orNA(previous.Formulas) + "\n" +
			"- Aftercare: " + orNA(previous.Aftercare) + "\n" +
			"- Goals: " + orNA(previous.Goals)
	} else {
		prev = "LAST VISIT:\n- None found yet."
	}

	today := "TODAY:\n" +
		"- Service: " + orNA(form.ServiceType) + "\n" +
		"- Cut details: " + orNA(form.CutDetails) + "\n" +
		"- Formulas/technical: " + orNA(form.Formulas) + "\n" +
		"- Aftercare: " + orNA(form.Aftercare) + "\n" +
		"- Goals: " + orNA(form.Goals)

	voice := strings.TrimSpace(form.VoiceNotes)
	if voice == "" {
		voice = "(none)"
	}
	extra := strings.TrimSpace(form.ExtraNotes)
	if extra == "" {
		extra = "(none)"
	}
	notes := "NOTES:\nVoice: " + voice + "\nExtra: " + extra

	return "Client: " + orNA(form.ClientName) + "\n" +
		"Phone: " + orNA(form.ClientPhone) + "\n" +
		"Email: " + orNA(form.ClientEmail) + "\n\n" +
		prev + "\n\n" + today + "\n\n" + notes
}

// BuildLongTermMemory condenses the current form into the newline-joined
// digest written to the client's long-term notes. Empty fields are
// skipped; the result replaces any previous digest wholesale.
func BuildLongTermMemory(form ConsultationForm) string {
	lines := []string{"Last service: " + orNA(form.ServiceType)}

	add := func(label, v string) {
		if strings.TrimSpace(v) != "" {
			lines = append(lines, label+": "+strings.TrimSpace(v))
		}
	}
	add("Cut details", form.CutDetails)
	add("Formulas/technical", form.Formulas)
	add("Aftercare", form.Aftercare)
	add("Goals", form.Goals)
	add("Notes", form.ExtraNotes)

	return strings.Join(lines, "\n")
}
