package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

var titleCaser = cases.Title(language.English)

// TransactionRenderer renders confirmed transactions and flow outcomes
type TransactionRenderer struct {
	out io.Writer
	cfg *config.RuntimeConfig
}

// NewTransactionRenderer creates a new transaction renderer
func NewTransactionRenderer(out io.Writer, cfg *config.RuntimeConfig) *TransactionRenderer {
	return &TransactionRenderer{out: out, cfg: cfg}
}

// RenderTx renders one confirmed transaction with its explorer link.
func (r *TransactionRenderer) RenderTx(label string, tx common.Hash) {
	fmt.Fprintf(r.out, "%s: %s\n", titleCaser.String(label), tx.Hex())
	if link := r.cfg.Network.ExplorerTxURL(tx); link != "" {
		fmt.Fprintf(r.out, "  %s\n", addressStyle.Sprint(link))
	}
}

// RenderFlowOutcome renders a terminal flow status.
func (r *TransactionRenderer) RenderFlowOutcome(status models.FlowStatus) {
	switch status.Phase {
	case models.FlowSucceeded:
		openStyle.Fprintln(r.out, "✓ "+titleCaser.String(status.Phase.String()))
	case models.FlowFailed:
		failStyle.Fprintf(r.out, "✗ %s: %v\n", titleCaser.String(status.Phase.String()), status.Err)
	}
}
