// Package fetch resolves request payloads, inline bytes or remote URLs, into
// normalized inference inputs.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Error taxonomy. Fetch-stage errors never reach the batch layer; handlers
// short-circuit on them per item.
var (
	// ErrInvalidContentType marks a declared content type that does not
	// match the expected modality.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrDecode marks bytes that do not decode as the declared type.
	ErrDecode = errors.New("decode failed")

	// ErrDownload marks a network error, timeout or non-2xx response on
	// the remote path.
	ErrDownload = errors.New("download failed")
)

// Downloads larger than this are rejected rather than buffered.
const maxBodyBytes = 32 << 20

// Decoder turns raw payload bytes into a normalized input.
type Decoder[I any] func(data []byte) (I, error)

// Fetcher resolves payloads for one modality. contentTypePrefix is the
// accepted content-type family, e.g. "image/" or "text/".
type Fetcher[I any] struct {
	client            *http.Client
	contentTypePrefix string
	decode            Decoder[I]
}

// New creates a Fetcher with a bounded-timeout HTTP client for the remote path.
func New[I any](contentTypePrefix string, timeout time.Duration, decode Decoder[I]) *Fetcher[I] {
	return &Fetcher[I]{
		client:            &http.Client{Timeout: timeout},
		contentTypePrefix: contentTypePrefix,
		decode:            decode,
	}
}

// FromBytes normalizes an inline payload. A declared content type outside the
// expected family fails with ErrInvalidContentType; an empty declaration is
// accepted and the decoder is the gate.
func (f *Fetcher[I]) FromBytes(data []byte, contentType string) (I, error) {
	var zero I
	if contentType != "" && !strings.HasPrefix(contentType, f.contentTypePrefix) {
		return zero, fmt.Errorf("%w: %q is not %s*", ErrInvalidContentType, contentType, f.contentTypePrefix)
	}
	in, err := f.decode(data)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return in, nil
}

// FromURL downloads the payload at url and normalizes it. The response's
// declared content type is validated before any decode attempt. No retries;
// the caller decides whether to retry the whole request.
func (f *Fetcher[I]) FromURL(ctx context.Context, url string) (I, error) {
	var zero I

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, fmt.Errorf("%w: unexpected status %d for %s", ErrDownload, resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, f.contentTypePrefix) {
		return zero, fmt.Errorf("%w: %s declares %q, want %s*", ErrInvalidContentType, url, contentType, f.contentTypePrefix)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	if len(data) > maxBodyBytes {
		return zero, fmt.Errorf("%w: %s exceeds %d bytes", ErrDownload, url, maxBodyBytes)
	}

	in, err := f.decode(data)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return in, nil
}
