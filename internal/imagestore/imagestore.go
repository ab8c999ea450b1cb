// Package imagestore uploads report and verification photos to the external
// object storage and hands back their public URL.
package imagestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sol1corejz/ecotrack/internal/logger"
)

const uploadTimeout = 30 * time.Second

type Client struct {
	address string
	client  *http.Client
}

func NewClient(address string) *Client {
	return &Client{
		address: address,
		client:  &http.Client{Timeout: uploadTimeout},
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Store uploads the raw image bytes and returns the stored object's URL.
// A failed upload is an error; callers must not create reports or run
// verification without a stored image.
func (c *Client) Store(ctx context.Context, data []byte, contentType string) (string, error) {

	url := fmt.Sprintf("%s/upload", c.address)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Error("Image upload failed", zap.Error(err))
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Log.Error("Image upload rejected", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("image upload returned status %d", resp.StatusCode)
	}

	var uploaded uploadResponse
	if err := json.Unmarshal(body, &uploaded); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}
	if uploaded.URL == "" {
		return "", fmt.Errorf("upload response missing url")
	}

	return uploaded.URL, nil
}
