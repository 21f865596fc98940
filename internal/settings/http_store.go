package settings

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"streamsched/internal/structures"
)

const maxResponseBodySize = 4 << 20 // 4 MB

// envelope is the wire form of the remote settings API: {"value": ...}.
type envelope struct {
	Value json.RawMessage `json:"value"`
}

// HTTPStore talks to a remote settings API:
//
//	GET {base}/settings/{key} -> {"value": <json>|null}, 404 when unknown
//	PUT {base}/settings/{key} <- {"value": <json>}
type HTTPStore struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewHTTPStore(conf structures.HTTPStoreConfig, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		token:   conf.Token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPStore) endpoint(key string) string {
	return s.baseURL + "/settings/" + url.PathEscape(key)
}

func (s *HTTPStore) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, req.Method, req.URL.Path, err)
	}
	return resp, nil
}

func (s *HTTPStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint(key), nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := s.do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, fmt.Errorf("%w: GET %s returned %d", ErrUnavailable, key, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, false, fmt.Errorf("%w: read %s: %v", ErrUnavailable, key, err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false, fmt.Errorf("decode settings envelope: %w", err)
	}
	if len(env.Value) == 0 || string(env.Value) == "null" {
		return nil, false, nil
	}
	return []byte(env.Value), true, nil
}

func (s *HTTPStore) Save(ctx context.Context, key string, value []byte) error {
	body, err := json.Marshal(envelope{Value: json.RawMessage(value)})
	if err != nil {
		return fmt.Errorf("encode settings envelope: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.endpoint(key), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: PUT %s returned %d", ErrUnavailable, key, resp.StatusCode)
	}
	return nil
}

func (s *HTTPStore) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
