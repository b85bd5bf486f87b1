// Package fincen provides a filingchannel.Client implementation backed by the
// BSA e-filing REST API.
package fincen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"rrer/pkg/domain"
	"rrer/pkg/filingchannel"
	"rrer/pkg/serrors"
)

// Client talks to the BSA e-filing REST API and fulfills the
// filingchannel.Client interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the channel
	baseURL    string       // baseURL is the root endpoint of the channel API
	apiKey     string       // apiKey authenticates the reporting person
}

// rejection is the channel's body for refused submissions.
type rejection struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Submit posts the payload to the channel's filing endpoint and interprets
// the response. A 2xx answer is an accepted outcome carrying the receipt. A
// 409 or 422 answer is a rejected outcome carrying the channel's code and
// message. Anything else is an error: the channel gave no decision, and the
// caller must route the submission to review rather than guess.
func (c *Client) Submit(ctx context.Context, payload domain.FilingPayload) (filingchannel.Outcome, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return filingchannel.Outcome{}, fmt.Errorf("could not marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		strings.TrimRight(c.baseURL, "/")+"/v1/filings",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return filingchannel.Outcome{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return filingchannel.Outcome{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return filingchannel.Outcome{}, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var acceptResp struct {
			ReceiptID string `json:"receiptId"`
		}
		if err := json.Unmarshal(b, &acceptResp); err != nil {
			return filingchannel.Outcome{}, fmt.Errorf("could not decode response: %w", err)
		}
		if acceptResp.ReceiptID == "" {
			return filingchannel.Outcome{}, fmt.Errorf("accepted response carried no receipt")
		}

		return filingchannel.Outcome{
			Status:    domain.FilingStatusAccepted,
			ReceiptID: acceptResp.ReceiptID,
		}, nil

	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		var rej rejection
		if err := json.Unmarshal(b, &rej); err != nil {
			return filingchannel.Outcome{}, fmt.Errorf("could not decode rejection: %w", err)
		}
		code, ok := parseRejectionCode(rej.Code)
		if !ok {
			return filingchannel.Outcome{}, fmt.Errorf("unknown rejection code: %q", rej.Code)
		}

		return filingchannel.Outcome{
			Status:  domain.FilingStatusRejected,
			Code:    code,
			Message: rej.Message,
		}, nil

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return filingchannel.Outcome{},
			serrors.With(serrors.ErrUnavailable, "channel unavailable: %s", strings.TrimSpace(string(b)))

	default:
		return filingchannel.Outcome{}, fmt.Errorf("submit failed: %s", strings.TrimSpace(string(b)))
	}
}

// parseRejectionCode maps the channel's code string onto the closed domain
// enumeration. Unknown codes are refused so a new channel code surfaces as an
// undecided submission instead of a mislabeled rejection.
func parseRejectionCode(s string) (domain.RejectionCode, bool) {
	switch domain.RejectionCode(s) {
	case domain.RejectionMissingField,
		domain.RejectionBadFormat,
		domain.RejectionInvalidData,
		domain.RejectionDuplicateReport,
		domain.RejectionSystemError:
		return domain.RejectionCode(s), true
	default:
		return "", false
	}
}

// Ensure Client conforms to the filingchannel.Client interface at compile time.
var _ filingchannel.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, base URL and
// API key to interact with the filing channel.
func New(httpClient *http.Client, baseURL string, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}
