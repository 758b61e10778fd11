package sarif

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// Marshal encodes log as indented JSON. HTML in snippets is written verbatim.
func Marshal(log *Log) ([]byte, error) {
	if log == nil {
		return nil, fmt.Errorf("sarif log is nil")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(log); err != nil {
		return nil, fmt.Errorf("encode sarif: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a SARIF log and checks its version.
func Decode(data []byte) (*Log, error) {
	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("parse sarif json: %w", err)
	}
	if log.Version != Version {
		return nil, fmt.Errorf("parse sarif json: unsupported version %q", log.Version)
	}
	return &log, nil
}

// Canonicalize returns the RFC 8785 (JCS) canonical form of log.
func Canonicalize(log *Log) ([]byte, error) {
	b, err := json.Marshal(log)
	if err != nil {
		return nil, fmt.Errorf("encode sarif: %w", err)
	}
	out, err := jcs.Transform(b)
	if err != nil {
		return nil, fmt.Errorf("canonicalize sarif: %w", err)
	}
	return out, nil
}

// Digest is the sha256 hex digest of the canonical form of log. Two logs
// with equal digests are equal for diffing purposes.
func Digest(log *Log) (string, error) {
	canonical, err := Canonicalize(log)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
