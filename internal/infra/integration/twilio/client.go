package twilio

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.twilio.com/2010-04-01"

type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	fromNumber string
	http       *http.Client
}

func NewClient(accountSID, authToken, fromNumber string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.accountSID != "" && c.authToken != "" && c.fromNumber != ""
}

// SendSMS posts a message through Twilio's form-encoded Messages endpoint.
func (c *Client) SendSMS(input SendSMSInput) error {
	if !c.Configured() {
		return fmt.Errorf("twilio not configured")
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("From", c.fromNumber)
	form.Set("To", input.To)
	form.Set("Body", input.Body)

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio rejected SMS (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
