// Package audio stores recorded answer audio and hands back an opaque
// reference the interview core carries on the QA record.
package audio

import (
	"context"
	"io"
)

// Store persists one audio object per answered question.
type Store interface {
	// Upload writes the object under key and returns its reference (URL or
	// pseudo-URL).
	Upload(ctx context.Context, key string, content io.Reader, size int64, contentType string) (string, error)
}
