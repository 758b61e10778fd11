package github

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v81/github"
)

// Processing states reported by the code scanning API.
const (
	ProcessingPending  = "pending"
	ProcessingComplete = "complete"
	ProcessingFailed   = "failed"
)

// UploadRequest describes one SARIF upload to code scanning.
type UploadRequest struct {
	CommitSHA   string
	Ref         string
	CheckoutURI string
	ToolName    string
	StartedAt   time.Time
	SARIF       []byte
}

// UploadState is the processing state of an upload.
type UploadState struct {
	ID          string
	Status      string
	AnalysesURL string
}

// ParseRepo splits "OWNER/REPO".
func ParseRepo(s string) (owner, repo string, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected OWNER/REPO", s)
	}
	return parts[0], parts[1], nil
}

// EncodeSARIF gzips and base64-encodes a SARIF document as the upload
// endpoint expects.
func EncodeSARIF(data []byte) (string, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return "", fmt.Errorf("gzip sarif: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("gzip sarif: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (r UploadRequest) validate() error {
	if strings.TrimSpace(r.CommitSHA) == "" {
		return errors.New("upload: commit sha is required")
	}
	if !strings.HasPrefix(r.Ref, "refs/") {
		return fmt.Errorf("upload: ref %q must be fully qualified (refs/heads/... or refs/pull/.../merge)", r.Ref)
	}
	if len(r.SARIF) == 0 {
		return errors.New("upload: sarif payload is empty")
	}
	return nil
}

// UploadSARIF sends a SARIF log to code scanning and returns the upload id.
func (c *Client) UploadSARIF(ctx context.Context, owner, repo string, req UploadRequest) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}
	encoded, err := EncodeSARIF(req.SARIF)
	if err != nil {
		return "", err
	}

	analysis := &github.SarifAnalysis{
		CommitSHA: github.Ptr(req.CommitSHA),
		Ref:       github.Ptr(req.Ref),
		Sarif:     github.Ptr(encoded),
	}
	if req.CheckoutURI != "" {
		analysis.CheckoutURI = github.Ptr(req.CheckoutURI)
	}
	if req.ToolName != "" {
		analysis.ToolName = github.Ptr(req.ToolName)
	}
	if !req.StartedAt.IsZero() {
		analysis.StartedAt = &github.Timestamp{Time: req.StartedAt.UTC()}
	}

	id, _, err := c.Client.CodeScanning.UploadSarif(ctx, owner, repo, analysis)
	if err != nil {
		return "", fmt.Errorf("upload sarif to %s/%s: %w", owner, repo, err)
	}
	if id == nil || id.GetID() == "" {
		return "", fmt.Errorf("upload sarif to %s/%s: response carried no upload id", owner, repo)
	}
	return id.GetID(), nil
}

// UploadStatus fetches the processing state of a previous upload.
func (c *Client) UploadStatus(ctx context.Context, owner, repo, id string) (*UploadState, error) {
	upload, _, err := c.Client.CodeScanning.GetSARIF(ctx, owner, repo, id)
	if err != nil {
		return nil, fmt.Errorf("get sarif upload %s: %w", id, err)
	}
	return &UploadState{
		ID:          id,
		Status:      upload.GetProcessingStatus(),
		AnalysesURL: upload.GetAnalysesURL(),
	}, nil
}

// WaitForProcessing polls UploadStatus until the upload leaves the pending
// state or ctx is done. A failed upload is returned as an error.
func (c *Client) WaitForProcessing(ctx context.Context, owner, repo, id string, interval time.Duration) (*UploadState, error) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		state, err := c.UploadStatus(ctx, owner, repo, id)
		if err != nil {
			return nil, err
		}
		switch state.Status {
		case ProcessingComplete:
			return state, nil
		case ProcessingFailed:
			return state, fmt.Errorf("sarif upload %s failed processing", id)
		}

		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-ticker.C:
		}
	}
}
