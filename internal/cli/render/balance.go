package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// BalanceRenderer renders token balance output
type BalanceRenderer struct {
	out io.Writer
}

// NewBalanceRenderer creates a new balance renderer
func NewBalanceRenderer(out io.Writer) *BalanceRenderer {
	return &BalanceRenderer{out: out}
}

// RenderBalance renders the balance and, when queried, the allowance held
// by a spender.
func (r *BalanceRenderer) RenderBalance(owner common.Address, result *usecase.BalanceResult) error {
	fmt.Fprintf(r.out, "Account: %s\n", owner.Hex())
	fmt.Fprintf(r.out, "Balance: %s\n", priceStyle.Sprint(models.FormatAmount(result.Balance)))
	if result.Allowance != nil {
		fmt.Fprintf(r.out, "Allowance for %s: %s\n",
			result.Spender.Hex(), models.FormatAmount(result.Allowance))
	}
	return nil
}
