// Relay to the per-source bridge server. Every call returns the same result
// envelope: success, parsed data, and a failure class that tells "the
// payload never became a request" apart from "the server did not answer",
// because the caller reacts differently to the two.

package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-scraper-bridge/internal/model"
)

// Kind classifies a relay failure.
type Kind int

const (
	KindNone    Kind = iota //no failure
	KindChannel             //the payload never left this process
	KindNetwork             //the server was unreachable or answered non-2xx
)

// Result is the uniform envelope every relay call returns.
type Result struct {
	Success bool
	Data    map[string]any //parsed JSON body, nil when the body was not JSON
	Raw     string         //raw body, kept when parsing failed
	Kind    Kind
	Err     error
}

type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// Relay serializes payload, POSTs it to baseURL+endpoint and parses the
// response. It never returns a bare error; failures are classified in the
// envelope. Holds no state between calls.
func (c *Client) Relay(ctx context.Context, endpoint string, payload any) Result {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Kind: KindChannel, Err: fmt.Errorf("encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Kind: KindChannel, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return Result{Kind: KindNetwork, Err: fmt.Errorf("relay %s: %w", endpoint, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Kind: KindNetwork, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{
			Raw:  string(raw),
			Kind: KindNetwork,
			Err:  fmt.Errorf("relay %s: server returned %s", endpoint, resp.Status),
		}
	}

	res := Result{Success: true}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		//not JSON: keep the raw text, the 2xx still counts as success
		res.Raw = string(raw)
		return res
	}
	res.Data = data
	if ok, present := data["success"].(bool); present {
		res.Success = ok
	}
	return res
}

// UploadList reports one extraction batch.
func (c *Client) UploadList(ctx context.Context, jobs []model.ListingSummary) Result {
	return c.Relay(ctx, "/upload_list", map[string]any{"jobs": jobs})
}

// UploadDetail reports one parsed posting (or the skip sentinel).
func (c *Client) UploadDetail(ctx context.Context, detail *model.PostingDetail) Result {
	return c.Relay(ctx, "/upload_detail", detail)
}

// NextURL asks the task source where to go next. An empty URL on a
// successful result means the queue is exhausted; that is a normal terminal
// condition, not an error.
func (c *Client) NextURL(ctx context.Context) (string, Result) {
	res := c.Relay(ctx, "/get_next_url", map[string]any{})
	if !res.Success {
		return "", res
	}
	url, _ := res.Data["url"].(string)
	return url, res
}
