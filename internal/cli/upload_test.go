package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"axesarif/internal/config"
	gh "axesarif/internal/github"
)

func newUploadTestClient(t *testing.T, handler http.Handler) *gh.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c, err := gh.NewClient(context.Background(), "test-token", gh.WithAPIURL(server.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func uploadConfig(wait bool) *config.Config {
	c := config.New()
	c.Upload.Repo = "acme/site"
	c.Upload.Ref = "refs/heads/main"
	c.Upload.Commit = "4b6472266afd7b471e86085a6659e8c7f2b119da"
	c.Upload.Wait = wait
	return c
}

func TestRunUpload(t *testing.T) {
	var body map[string]any
	client := newUploadTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/repos/acme/site/code-scanning/sarifs" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"upload-1"}`))
	}))

	out := new(bytes.Buffer)
	if err := runUpload(context.Background(), out, client, uploadConfig(false), sampleSARIF(t)); err != nil {
		t.Fatalf("runUpload: %v", err)
	}

	if !strings.Contains(out.String(), "upload id upload-1") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if body["tool_name"] != "axe-core" {
		t.Fatalf("expected tool_name axe-core, got %v", body["tool_name"])
	}
	if body["ref"] != "refs/heads/main" {
		t.Fatalf("unexpected ref: %v", body["ref"])
	}
}

func TestRunUpload_Wait(t *testing.T) {
	prev := uploadPollInterval
	uploadPollInterval = 10 * time.Millisecond
	t.Cleanup(func() { uploadPollInterval = prev })

	var polls atomic.Int32
	client := newUploadTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"id":"upload-2"}`))
		case r.URL.Path == "/repos/acme/site/code-scanning/sarifs/upload-2":
			if polls.Add(1) < 2 {
				_, _ = w.Write([]byte(`{"processing_status":"pending"}`))
				return
			}
			_, _ = w.Write([]byte(`{"processing_status":"complete","analyses_url":"https://api.github.com/repos/acme/site/code-scanning/analyses?sarif_id=upload-2"}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	out := new(bytes.Buffer)
	if err := runUpload(context.Background(), out, client, uploadConfig(true), sampleSARIF(t)); err != nil {
		t.Fatalf("runUpload: %v", err)
	}
	if !strings.Contains(out.String(), "Processing complete") || !strings.Contains(out.String(), "sarif_id=upload-2") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if polls.Load() < 2 {
		t.Fatalf("expected at least 2 polls, got %d", polls.Load())
	}
}

func TestRunUpload_RejectsBeforeSending(t *testing.T) {
	var calls atomic.Int32
	client := newUploadTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusAccepted)
	}))

	tests := []struct {
		name string
		data []byte
		cfg  *config.Config
	}{
		{name: "not sarif", data: []byte(`{"violations":[]}`), cfg: uploadConfig(false)},
		{name: "no runs", data: []byte(`{"version":"2.1.0","runs":[]}`), cfg: uploadConfig(false)},
		{
			name: "bad repo",
			data: sampleSARIF(t),
			cfg: func() *config.Config {
				c := uploadConfig(false)
				c.Upload.Repo = "acme"
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runUpload(context.Background(), new(bytes.Buffer), client, tt.cfg, tt.data); err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no API calls, got %d", calls.Load())
	}
}
