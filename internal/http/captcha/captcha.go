package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 8 * time.Second

// ErrRejected covers every verification failure: an explicit rejection, an
// unexpected response, or an unreachable service. The write path treats
// them all the same.
var ErrRejected = errors.New("captcha verification rejected")

// Client talks to an external human-verification service. The service
// receives the pre-shared secret plus the client token and answers with a
// success boolean.
type Client struct {
	Secret    string
	VerifyURL string
	Client    *http.Client
}

func New(secret, verifyURL string) *Client {
	return &Client{
		Secret:    secret,
		VerifyURL: verifyURL,
		Client:    &http.Client{Timeout: defaultTimeout},
	}
}

// Enabled reports whether the gate is configured. An unconfigured gate lets
// writes through.
func (c *Client) Enabled() bool {
	return c != nil && c.Secret != "" && c.VerifyURL != ""
}

type verifyResult struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks the token with the verification service. It must run before
// any state-mutating operation; a non-nil return aborts the write.
func (c *Client) Verify(ctx context.Context, token string) error {
	if !c.Enabled() {
		return nil
	}
	if strings.TrimSpace(token) == "" {
		return errors.Wrap(ErrRejected, "missing captcha token")
	}

	form := url.Values{}
	form.Set("secret", c.Secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(ErrRejected, err.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.Client.Do(req)
	if err != nil {
		return errors.Wrap(ErrRejected, "verification service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrRejected, "verification service returned status %d", resp.StatusCode)
	}

	var result verifyResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.Wrap(ErrRejected, "unable to decode verification response")
	}
	if !result.Success {
		return errors.Wrapf(ErrRejected, "service reported failure: %s", strings.Join(result.ErrorCodes, ","))
	}

	return nil
}
