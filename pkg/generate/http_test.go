package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qanoonsoft/docwizard/pkg/schema"
)

func TestHTTPGenerator(t *testing.T) {
	var got Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(Response{Content: "generated letter", CreditsUsed: 2})
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, server.Client())
	resp, err := gen.Generate(context.Background(), Request{
		DocumentType: schema.LegalLetter,
		Details:      map[string]string{"subject": "demurrage charges"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Content != "generated letter" || resp.CreditsUsed != 2 {
		t.Fatalf("response = %+v", resp)
	}
	if got.DocumentType != schema.LegalLetter || got.Details["subject"] != "demurrage charges" {
		t.Fatalf("service saw request %+v", got)
	}
}

func TestHTTPGeneratorNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient credits", http.StatusPaymentRequired)
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, server.Client())
	_, err := gen.Generate(context.Background(), Request{DocumentType: schema.LegalLetter})
	if err == nil {
		t.Fatal("non-200 response accepted")
	}
	if !strings.Contains(err.Error(), "insufficient credits") {
		t.Fatalf("error %q does not carry the response snippet", err)
	}
}

func TestHTTPGeneratorRejectsNegativeCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Content: "x", CreditsUsed: -1})
	}))
	defer server.Close()

	gen := NewHTTPGenerator(server.URL, server.Client())
	if _, err := gen.Generate(context.Background(), Request{DocumentType: schema.LegalLetter}); err == nil {
		t.Fatal("negative credit usage accepted")
	}
}

func TestHTTPGeneratorContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := NewHTTPGenerator(server.URL, server.Client())
	if _, err := gen.Generate(ctx, Request{DocumentType: schema.LegalLetter}); err == nil {
		t.Fatal("cancelled context produced a response")
	}
}
