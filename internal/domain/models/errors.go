package models

import "errors"

// Error taxonomy for the orchestrator. Remote-layer failures are wrapped
// around one of these sentinels at the adapter boundary so flows and
// renderers can classify them with errors.Is.
var (
	// ErrWalletUnavailable means no signing key is configured.
	ErrWalletUnavailable = errors.New("wallet unavailable")

	// ErrUserRejected means the user declined to sign.
	ErrUserRejected = errors.New("user rejected the request")

	// ErrInvalidInput is local form validation; it never reaches the
	// remote layer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRegistryUnreachable covers failures listing or batch-reading the
	// offer registry.
	ErrRegistryUnreachable = errors.New("offer registry unreachable")

	// ErrOfferUnreachable covers failures reading a single offer contract.
	ErrOfferUnreachable = errors.New("offer contract unreachable")

	// ErrSubmissionFailed means the network rejected the transaction at
	// submission time.
	ErrSubmissionFailed = errors.New("transaction submission failed")

	// ErrFinalizationFailed means the transaction was submitted but never
	// finalized, or reverted on-chain.
	ErrFinalizationFailed = errors.New("transaction finalization failed")
)
