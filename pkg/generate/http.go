package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPGenerator is a thin client for a remote generation service exposed as
// a JSON POST endpoint. The service owns timeouts and cost computation; this
// client only carries the payload across.
type HTTPGenerator struct {
	URL    string
	Client *http.Client
}

// NewHTTPGenerator builds a client for the given endpoint using the default
// HTTP client when none is supplied.
func NewHTTPGenerator(url string, client *http.Client) *HTTPGenerator {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGenerator{URL: url, Client: client}
}

// Generate posts the request and decodes the service response.
func (g *HTTPGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("generate: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("generate: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := g.Client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("generate: call service: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return Response{}, fmt.Errorf("generate: service returned %s: %s", httpResp.Status, bytes.TrimSpace(snippet))
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return Response{}, fmt.Errorf("generate: decode response: %w", err)
	}
	if resp.CreditsUsed < 0 {
		return Response{}, fmt.Errorf("generate: service reported negative credit usage %d", resp.CreditsUsed)
	}
	return resp, nil
}
