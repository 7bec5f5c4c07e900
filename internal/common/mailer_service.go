package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// MailerService sends transactional mail through the Resend HTTP API. Lead
// notifications are fire-and-forget: delivery failures are logged by the
// caller and never surface into the data model.
type MailerService struct {
	BaseURL string
	APIKey  string
	From    string
	To      string
	Client  *http.Client
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NewMailerService creates a new instance, reading config from environment variables
func NewMailerService() *MailerService {
	baseURL := os.Getenv("RESEND_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "salon@autokomis.example"
	}
	return &MailerService{
		BaseURL: baseURL,
		APIKey:  os.Getenv("RESEND_API_KEY"),
		From:    from,
		To:      os.Getenv("MAIL_NOTIFY_TO"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts a single email; to defaults to the configured notification
// address when empty.
func (svc *MailerService) Send(to, subject, html string) error {
	if to == "" {
		to = svc.To
	}
	if to == "" {
		return fmt.Errorf("no recipient configured")
	}

	payload := emailPayload{
		From:    svc.From,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return err
	}

	req, err := http.NewRequest("POST", svc.BaseURL+"/emails", buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+svc.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
