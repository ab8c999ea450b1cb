package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/internal/logger"
)

// Classification kinds. Anything the classifier returns that is not a usable
// ranked list collapses into Empty or Malformed, so callers never inspect a
// half-shaped payload.
const (
	KindRanked    = "ranked"
	KindEmpty     = "empty"
	KindMalformed = "malformed"
)

const (
	requestTimeout = 15 * time.Second
	maxRetries     = 3
)

type Candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Classification struct {
	Kind       string
	Candidates []Candidate
}

type classifyRequest struct {
	Inputs  string `json:"inputs"`
	Options struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

type Client struct {
	address string
	token   string
	client  *http.Client
}

func NewClient(address, token string) *Client {
	return &Client{
		address: address,
		token:   token,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Classify asks the external model to label the image. The model may still be
// loading, so transient failures are retried with exponential backoff; any
// terminal failure is reported as a Malformed classification rather than an
// error, because the workflow treats classifier trouble as a verification
// failure, never as a fault.
func (c *Client) Classify(ctx context.Context, imageURL string) Classification {

	reqBody := classifyRequest{Inputs: imageURL}
	reqBody.Options.WaitForModel = true

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		logger.Log.Error("Failed to encode classifier request", zap.Error(err))
		return Classification{Kind: KindMalformed}
	}

	var candidates []Candidate

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address, bytes.NewReader(jsonData))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("classifier request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading classifier response: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("classifier returned status %d", resp.StatusCode)
		}

		if err := json.Unmarshal(body, &candidates); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding classifier response: %w", err))
		}

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		logger.Log.Warn("Classifier call failed", zap.Error(err))
		return Classification{Kind: KindMalformed}
	}

	if len(candidates) == 0 {
		logger.Log.Warn("Classifier returned no candidates")
		return Classification{Kind: KindEmpty}
	}

	if candidates[0].Label == "" || candidates[0].Score <= 0 {
		logger.Log.Warn("Classifier returned candidates without label or score")
		return Classification{Kind: KindMalformed}
	}

	return Classification{Kind: KindRanked, Candidates: candidates}
}
