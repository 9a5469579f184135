package flightapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dstairlines/flightwatch/internal/config"
	"github.com/dstairlines/flightwatch/internal/httpclient"
)

// DefaultTimeout bounds the single network request when the caller does
// not supply one.
const DefaultTimeout = 15 * time.Second

const maxErrorBodyLen = 300

// Client issues one fetch per call against the flight API. It holds no
// mutable state, so concurrent calls are independent.
type Client struct {
	creds config.Credentials
	http  *httpclient.Client
}

// New creates a Client with resolved credentials and a request timeout.
// A non-positive timeout falls back to DefaultTimeout.
func New(creds config.Credentials, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		creds: creds,
		http:  httpclient.NewWithTimeout(timeout),
	}
}

// Fetch performs one GET against the API and walks the response through
// the ordered checkpoints, returning at the first one that fails. Every
// outcome after credentials are resolved is a FetchStatus, never an
// error: a polling caller branches on which stage failed instead of
// parsing error types. A single attempt is made; retrying is the
// caller's decision.
func (c *Client) Fetch(ctx context.Context) FetchStatus {
	status := FetchStatus{FlightsExtracted: []map[string]any{}}

	resp, err := c.http.GetCtx(ctx, c.creds.Host,
		httpclient.WithQuery("access_key", c.creds.Token),
		httpclient.WithQuery("limit", strconv.Itoa(c.creds.Limit)),
	)
	if err != nil {
		status.ErrorMessage = transportErrorMessage(err)
		return status
	}
	status.Connected = true

	if resp.StatusCode != 200 {
		status.ErrorMessage = fmt.Sprintf("HTTP error %d: %s", resp.StatusCode, truncate(string(resp.Body), maxErrorBodyLen))
		return status
	}
	status.HTTPOK = true

	var payload any
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		status.ErrorMessage = "Response is not valid JSON."
		return status
	}
	status.JSONOK = true
	status.Raw = payload

	if obj, ok := payload.(map[string]any); ok {
		if errVal, present := obj["error"]; present {
			errObj, _ := errVal.(map[string]any)
			status.ErrorMessage = fmt.Sprintf("API error: %v - %v", errObj["code"], errObj["message"])
			return status
		}
	}
	status.APIOK = true

	flights := locateFlights(payload)
	if len(flights) == 0 {
		status.ErrorMessage = `No flights list found (expected "data" or "results").`
		return status
	}
	status.HasFlightsArray = true

	status.FlightsExtracted = extractAirborne(flights)
	status.ExtractedAny = len(status.FlightsExtracted) > 0
	if !status.ExtractedAny {
		status.ErrorMessage = "Request succeeded, but no in-air flights matched criteria."
	}

	return status
}

// locateFlights picks the flights list out of the payload: "data" when it
// is a list, otherwise "results". An empty or missing list is reported as
// nil; when "data" is present but empty, "results" is not consulted.
func locateFlights(payload any) []any {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := obj["data"].([]any); ok {
		return data
	}
	if results, ok := obj["results"].([]any); ok {
		return results
	}
	return nil
}

func transportErrorMessage(err error) string {
	switch {
	case httpclient.IsTimeout(err):
		return "Request timed out."
	case httpclient.IsConnectionError(err):
		return "Connection error (could not reach the API)."
	default:
		return fmt.Sprintf("Unexpected request error: %v", err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
