package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Adapters match on these to pick a transport
// status, so wrapped errors must keep them in the chain.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUpstream         = errors.New("upstream failure")
	ErrTemporary        = errors.New("temporary failure")
)

// WrapError tags err with a kind and the failing operation. A nil err
// stays nil so call sites can wrap unconditionally.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err, kind error) bool {
	return errors.Is(err, kind)
}
