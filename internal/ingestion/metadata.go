package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata describes an ingested job posting.
type Metadata struct {
	Source    string `json:"source"`
	Format    string `json:"format"`    // "text" or "html"
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content, source, format string) *Metadata {
	return &Metadata{
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
