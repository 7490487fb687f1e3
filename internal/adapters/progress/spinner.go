package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// SpinnerFlowSink renders flow transitions with a terminal spinner while
// a transaction waits to be mined, and a final colored line once the flow
// reaches a terminal phase.
type SpinnerFlowSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerFlowSink creates a new spinner-based flow sink.
func NewSpinnerFlowSink() *SpinnerFlowSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false

	return &SpinnerFlowSink{spinner: s}
}

// OnFlow updates the spinner to match the flow status.
func (r *SpinnerFlowSink) OnFlow(ctx context.Context, status models.FlowStatus) {
	switch status.Phase {
	case models.FlowAwaitingApproval:
		r.spinner.Suffix = fmt.Sprintf(" Awaiting token approval (%s)", shortHash(status.TxHash))
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	case models.FlowAwaitingConfirmation:
		r.spinner.Suffix = fmt.Sprintf(" Awaiting confirmation (%s)", shortHash(status.TxHash))
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	case models.FlowSucceeded:
		r.spinner.Stop()
		color.New(color.FgGreen).Printf("✓ Transaction confirmed: %s\n", status.TxHash)
	case models.FlowFailed:
		r.spinner.Stop()
		color.New(color.FgRed).Printf("✗ Transaction failed: %v\n", status.Err)
	default:
		r.spinner.Stop()
	}
}

func shortHash(h common.Hash) string {
	return h.Hex()[:10] + "…"
}

// PlainFlowSink prints one line per transition, for non-interactive runs
// and piped output.
type PlainFlowSink struct{}

// NewPlainFlowSink creates a new plain-text flow sink.
func NewPlainFlowSink() *PlainFlowSink {
	return &PlainFlowSink{}
}

// OnFlow prints the transition.
func (r *PlainFlowSink) OnFlow(ctx context.Context, status models.FlowStatus) {
	switch status.Phase {
	case models.FlowAwaitingApproval, models.FlowAwaitingConfirmation:
		fmt.Printf("%s: %s\n", status.Phase, status.TxHash)
	case models.FlowSucceeded:
		fmt.Printf("confirmed: %s\n", status.TxHash)
	case models.FlowFailed:
		fmt.Printf("failed: %v\n", status.Err)
	}
}

var _ usecase.FlowSink = (*SpinnerFlowSink)(nil)
var _ usecase.FlowSink = (*PlainFlowSink)(nil)
