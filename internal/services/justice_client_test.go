package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gtdn/registry-api/internal/config"
)

func newTestJusticeClient(baseURL string, maxMB int) JusticeClientInterface {
	return NewJusticeClient(config.JusticeConfig{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		MaxPDFSizeMB: maxMB,
	}, testLogger())
}

func TestJusticeClientDownloadDocument(t *testing.T) {
	payload := []byte("%PDF-1.4 fake body")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ias/content/download" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "doc-42" {
			t.Errorf("id = %q", got)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(payload)
	}))
	defer server.Close()

	client := newTestJusticeClient(server.URL, 50)
	data, sourceURL, err := client.DownloadDocument(context.Background(), "doc-42")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, payload) {
		t.Error("body mismatch")
	}
	if sourceURL != server.URL+"/ias/content/download?id=doc-42" {
		t.Errorf("source url = %q", sourceURL)
	}
}

func TestJusticeClientRejectsNonPDFContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html>login page</html>"))
	}))
	defer server.Close()

	client := newTestJusticeClient(server.URL, 50)
	_, _, err := client.DownloadDocument(context.Background(), "doc-42")

	var apiErr *ExternalAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want ExternalAPIError", err)
	}
	if apiErr.Service != "justice" {
		t.Errorf("service tag = %q", apiErr.Service)
	}
}

func TestJusticeClientAcceptsPDFContentTypeVariants(t *testing.T) {
	// Upstream serves both application/pdf and application/x-pdf depending
	// on the document era.
	for _, ct := range []string{"application/pdf", "application/x-pdf", "Application/PDF"} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", ct)
			w.Write([]byte("%PDF"))
		}))

		client := newTestJusticeClient(server.URL, 50)
		_, _, err := client.DownloadDocument(context.Background(), "doc-42")
		if err != nil {
			t.Errorf("content type %q rejected: %v", ct, err)
		}
		server.Close()
	}
}

func TestJusticeClientEnforcesSizeCeiling(t *testing.T) {
	oversize := bytes.Repeat([]byte("a"), 2*1024*1024)

	t.Run("declared length", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Length", strconv.Itoa(len(oversize)))
			w.Write(oversize)
		}))
		defer server.Close()

		client := newTestJusticeClient(server.URL, 1)
		_, _, err := client.DownloadDocument(context.Background(), "doc-42")

		var tooLarge *PayloadTooLargeError
		if !errors.As(err, &tooLarge) {
			t.Fatalf("got %v, want PayloadTooLargeError", err)
		}
		if tooLarge.LimitMB != 1 {
			t.Errorf("limit = %d", tooLarge.LimitMB)
		}
	})

	t.Run("chunked body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			// Flush first so the stdlib does not set Content-Length.
			w.(http.Flusher).Flush()
			w.Write(oversize)
		}))
		defer server.Close()

		client := newTestJusticeClient(server.URL, 1)
		_, _, err := client.DownloadDocument(context.Background(), "doc-42")

		var tooLarge *PayloadTooLargeError
		if !errors.As(err, &tooLarge) {
			t.Fatalf("got %v, want PayloadTooLargeError", err)
		}
	})
}

func TestJusticeClientDownloadCSV(t *testing.T) {
	csv := []byte("ico,nazev\n00006947,Firma\n")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(csv)
	}))
	defer server.Close()

	client := newTestJusticeClient(server.URL, 50)
	data, err := client.DownloadCSV(context.Background(), server.URL+"/export/companies.csv")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, csv) {
		t.Error("body mismatch")
	}
}

func TestJusticeClientCSVUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestJusticeClient(server.URL, 50)
	_, err := client.DownloadCSV(context.Background(), server.URL+"/export/companies.csv")

	var apiErr *ExternalAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want ExternalAPIError", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
}
