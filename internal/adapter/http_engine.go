package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	m "github.com/mouse-blink/scanctl/internal/model"
)

const (
	invokePath       = "/invoke/"
	requestIDHeader  = "X-Request-ID"
	maxErrorBodySize = 4096
)

// HTTPEngineClient invokes engine commands as POST {base}/invoke/{command}
// with the command arguments as a JSON object and the command result as the
// JSON response body.
type HTTPEngineClient struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// HTTPOption customises an HTTPEngineClient.
type HTTPOption func(*HTTPEngineClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTPEngineClient) {
		h.client = c
	}
}

// WithTimeout bounds each engine call. It applies to a copy of the client,
// so a client passed through WithHTTPClient is never modified.
func WithTimeout(d time.Duration) HTTPOption {
	return func(h *HTTPEngineClient) {
		h.timeout = d
	}
}

// NewHTTPEngineClient builds a client for the engine at baseURL.
func NewHTTPEngineClient(baseURL string, opts ...HTTPOption) *HTTPEngineClient {
	h := &HTTPEngineClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		timeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(h)
	}

	client := *h.client
	client.Timeout = h.timeout
	h.client = &client

	return h
}

// GetProcesses implements EngineClient.
func (h *HTTPEngineClient) GetProcesses(ctx context.Context) ([]m.ProcessView, error) {
	var out []m.ProcessView
	if err := h.invoke(ctx, CmdGetProcesses, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetOpenedProcess implements EngineClient.
func (h *HTTPEngineClient) GetOpenedProcess(ctx context.Context) (*m.ProcessView, error) {
	var out *m.ProcessView
	if err := h.invoke(ctx, CmdGetOpenedProcess, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// FirstScan implements EngineClient.
func (h *HTTPEngineClient) FirstScan(ctx context.Context, vt m.ValueType, pid uint32, info m.ScanInfo) error {
	args := map[string]any{
		"pid":       pid,
		"valueType": vt.Token(),
		"scanInfo":  info,
	}

	return h.invoke(ctx, FirstScanCommand(vt), args, nil)
}

// NextScan implements EngineClient.
func (h *HTTPEngineClient) NextScan(ctx context.Context, vt m.ValueType, info m.ScanInfo) error {
	return h.invoke(ctx, NextScanCommand(vt), map[string]any{"scanInfo": info}, nil)
}

// UndoScan implements EngineClient.
func (h *HTTPEngineClient) UndoScan(ctx context.Context, vt m.ValueType) error {
	return h.invoke(ctx, UndoScanCommand(vt), nil, nil)
}

// GetLastScan implements EngineClient. The response is a two element array:
// the total location count and the list of regions for the requested page.
func (h *HTTPEngineClient) GetLastScan(ctx context.Context, vt m.ValueType, limit, offset int) (m.ScanPage, error) {
	var tuple []json.RawMessage

	args := map[string]any{"limit": limit, "offset": offset}
	if err := h.invoke(ctx, GetLastScanCommand(vt), args, &tuple); err != nil {
		return m.ScanPage{}, err
	}

	if len(tuple) != 2 {
		return m.ScanPage{}, fmt.Errorf("%s: expected [total, page], got %d elements", GetLastScanCommand(vt), len(tuple))
	}

	var page m.ScanPage
	if err := json.Unmarshal(tuple[0], &page.Total); err != nil {
		return m.ScanPage{}, fmt.Errorf("%s: decode total: %w", GetLastScanCommand(vt), err)
	}

	var regions []json.RawMessage
	if err := json.Unmarshal(tuple[1], &regions); err != nil {
		return m.ScanPage{}, fmt.Errorf("%s: decode page: %w", GetLastScanCommand(vt), err)
	}

	page.Regions = make([]m.CandidateLocationSet, 0, len(regions))
	for _, raw := range regions {
		page.Regions = append(page.Regions, DecodeRegion(raw))
	}

	return page, nil
}

// ClearLastScan implements EngineClient.
func (h *HTTPEngineClient) ClearLastScan(ctx context.Context) error {
	return h.invoke(ctx, CmdClearLastScan, nil, nil)
}

// WriteMemory implements EngineClient.
func (h *HTTPEngineClient) WriteMemory(ctx context.Context, vt m.ValueType, address uint64, value m.Value) (*int, error) {
	var written *int

	args := map[string]any{"address": address, "value": value}
	if err := h.invoke(ctx, WriteMemoryCommand(vt), args, &written); err != nil {
		return nil, err
	}

	return written, nil
}

func (h *HTTPEngineClient) invoke(ctx context.Context, command string, args any, out any) error {
	if args == nil {
		args = map[string]any{}
	}

	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("%s: encode arguments: %w", command, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+invokePath+command, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", command, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return fmt.Errorf("%s: engine returned %s: %s", command, resp.Status, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", command, err)
	}

	return nil
}

var _ EngineClient = (*HTTPEngineClient)(nil)
