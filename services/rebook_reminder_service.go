// services/rebook_reminder_service.go
package services

import (
	"log"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// RebookReminderConfig carries the messaging credentials and the
// practitioner's own number the daily digest goes to.
type RebookReminderConfig struct {
	AccountSID     string
	AuthToken      string
	FromNumber     string
	WhatsAppNumber string
	OwnerPhone     string
}

// RebookReminderService sends the practitioner a morning digest of
// completed appointments that still carry a rebook suggestion.
type RebookReminderService struct {
	tracker *AppointmentTracker
	client  *twilio.RestClient
	cfg     RebookReminderConfig
}

func NewRebookReminderService(tracker *AppointmentTracker, cfg RebookReminderConfig) *RebookReminderService {
	return &RebookReminderService{
		tracker: tracker,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		cfg: cfg,
	}
}

// StartScheduler runs the digest every day at 9 AM.
func (s *RebookReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendRebookDigest()
	})

	c.Start()
	log.Println("Rebook reminder scheduler started")
}

// SendRebookDigest sends one message listing every pending rebook
// suggestion. No suggestions, no message.
func (s *RebookReminderService) SendRebookDigest() {
	if s.cfg.OwnerPhone == "" {
		log.Println("No owner phone configured, skipping rebook digest")
		return
	}

	appts := s.tracker.CompletedWithRebook()
	if len(appts) == 0 {
		log.Println("No pending rebook suggestions today")
		return
	}

	lines := make([]string, 0, len(appts)+1)
	lines = append(lines, "Suggested rebooks:")
	for _, a := range appts {
		lines = append(lines, a.Name+" - "+a.SuggestedRebook)
	}
	message := strings.Join(lines, "\n")

	// WhatsApp when the owner number is in E.164 format, else SMS.
	to := s.cfg.OwnerPhone
	from := s.cfg.FromNumber
	if strings.HasPrefix(to, "+") && s.cfg.WhatsAppNumber != "" {
		to = "whatsapp:" + to
		from = "whatsapp:" + s.cfg.WhatsAppNumber
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send rebook digest: %v", err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Rebook digest sent, SID: %s", *resp.Sid)
	} else {
		log.Println("Rebook digest sent, but no SID returned")
	}
}
