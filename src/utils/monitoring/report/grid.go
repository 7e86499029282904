package report

import (
	"go.uber.org/atomic"
)

type GridErrors struct {
	QueryErrors         atomic.Uint64 `json:"query_errors"`
	FailedSubmissions   atomic.Uint64 `json:"failed_submissions"`
	CorrelationFailures atomic.Uint64 `json:"correlation_failures"`
	DecodeErrors        atomic.Uint64 `json:"decode_errors"`
	ActivationErrors    atomic.Uint64 `json:"activation_errors"`
}

type GridState struct {
	// Storage reads
	Queries atomic.Uint64 `json:"queries"`

	// Extrinsics broadcast
	Submissions atomic.Uint64 `json:"submissions"`

	// Creations that found an already existing entity and submitted nothing
	IdempotentHits atomic.Uint64 `json:"idempotent_hits"`

	// Ids resolved from events after a successful call
	ResolvedIds atomic.Uint64 `json:"resolved_ids"`

	Activations atomic.Uint64 `json:"activations"`
}

type GridReport struct {
	State  GridState  `json:"state"`
	Errors GridErrors `json:"errors"`
}
