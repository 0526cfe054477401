// Package common defines shared helpers and sentinel errors used across
// the passkeeper core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors, rejected before anything reaches storage.
	ErrorValidation = errors.New("validation error")

	// Storage-level errors (backing store unreachable or unwritable).
	// Never recovered locally; always propagated to the caller.
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Cipher errors. A malformed or undecryptable token means the secret
	// is unrecoverable; read paths degrade it instead of failing the read.
	ErrorCryptoFailure  = errors.New("crypto failure")
	ErrorMalformedToken = errors.New("malformed token")
	ErrorInvalidKeySize = errors.New("invalid key size")
)
