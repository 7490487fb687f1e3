package models

import "github.com/ethereum/go-ethereum/common"

// FlowPhase is one step of a mutating flow's local status machine. The
// contracts are the real state machine; this shadow only sequences the UI.
type FlowPhase uint8

const (
	FlowIdle FlowPhase = iota
	FlowAwaitingApproval
	FlowAwaitingConfirmation
	FlowSucceeded
	FlowFailed
)

// String returns the display name of the phase.
func (p FlowPhase) String() string {
	switch p {
	case FlowIdle:
		return "idle"
	case FlowAwaitingApproval:
		return "awaiting approval"
	case FlowAwaitingConfirmation:
		return "awaiting confirmation"
	case FlowSucceeded:
		return "succeeded"
	case FlowFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FlowStatus is a tagged variant: TxHash is only meaningful once a
// transaction was submitted, Err only when Phase is FlowFailed. Modelling it
// this way keeps impossible combinations ("succeeded but still awaiting
// approval") unrepresentable.
type FlowStatus struct {
	Phase  FlowPhase
	TxHash common.Hash
	Err    error
}

// Terminal reports whether the flow has finished, successfully or not.
func (s FlowStatus) Terminal() bool {
	return s.Phase == FlowSucceeded || s.Phase == FlowFailed
}

// InFlight reports whether a flow occupies the single mutating slot.
func (s FlowStatus) InFlight() bool {
	return s.Phase == FlowAwaitingApproval || s.Phase == FlowAwaitingConfirmation
}

func FlowStatusIdle() FlowStatus {
	return FlowStatus{Phase: FlowIdle}
}

func FlowStatusAwaitingApproval(tx common.Hash) FlowStatus {
	return FlowStatus{Phase: FlowAwaitingApproval, TxHash: tx}
}

func FlowStatusAwaitingConfirmation(tx common.Hash) FlowStatus {
	return FlowStatus{Phase: FlowAwaitingConfirmation, TxHash: tx}
}

func FlowStatusSucceeded(tx common.Hash) FlowStatus {
	return FlowStatus{Phase: FlowSucceeded, TxHash: tx}
}

func FlowStatusFailed(err error) FlowStatus {
	return FlowStatus{Phase: FlowFailed, Err: err}
}
