package service

import (
	"context"
	"io"

	"storefront/internal/errors"
)

// ErrProofNotFound is returned by OpenProof for an unknown reference.
var ErrProofNotFound = errors.New("proof not found")

// ProofStorage persists payment proof files.
type ProofStorage interface {
	// SaveProof stores the content and returns an opaque public reference to it.
	SaveProof(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// OpenProof opens a previously stored proof by its reference.
	OpenProof(ctx context.Context, ref string) (io.ReadCloser, error)
}
