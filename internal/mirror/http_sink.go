package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// HTTPSink posts records to a collector's single-entry ingestion endpoint.
type HTTPSink struct {
	url    string
	client *http.Client
}

func NewHTTPSink(host string, port uint16) *HTTPSink {
	return &HTTPSink{
		url:    fmt.Sprintf("http://%s:%d/logs", host, port),
		client: &http.Client{},
	}
}

func (s *HTTPSink) Forward(ctx context.Context, record Record) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send record: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("collector rejected record with status code: %d", resp.StatusCode)
	}

	return nil
}

func (s *HTTPSink) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
