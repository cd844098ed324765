package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"task-reminder-api/internal/config"
)

// ErrNotConfigured is returned when the transport has no credentials.
var ErrNotConfigured = errors.New("notify: voice transport not configured")

// Caller places an outbound voice reminder. The message content is a
// fixed script; only the destination varies per call.
type Caller interface {
	PlaceCall(ctx context.Context, toNumber string) error
}

// VoiceCaller places calls through a Twilio-style voice REST API. The
// caller id and script URL are fixed from config.
type VoiceCaller struct {
	AccountSID string
	AuthToken  string
	APIBase    string
	From       string
	ScriptURL  string

	HTTPClient *http.Client
}

// NewVoiceCaller builds a VoiceCaller from the application config.
func NewVoiceCaller() *VoiceCaller {
	cfg := config.Get()
	return &VoiceCaller{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		APIBase:    cfg.TwilioAPIBase,
		From:       cfg.CallFromNumber,
		ScriptURL:  cfg.CallScriptURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// PlaceCall implements Caller. It is fire-and-forget from the sweep's
// point of view; the returned error is logged by the caller, never
// retried here.
func (v *VoiceCaller) PlaceCall(ctx context.Context, toNumber string) error {
	if v.AccountSID == "" || v.AuthToken == "" {
		return ErrNotConfigured
	}

	form := url.Values{}
	form.Set("To", toNumber)
	form.Set("From", v.From)
	form.Set("Url", v.ScriptURL)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Calls.json", v.APIBase, v.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(v.AccountSID, v.AuthToken)

	client := v.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify: voice API returned %d", resp.StatusCode)
	}
	return nil
}
