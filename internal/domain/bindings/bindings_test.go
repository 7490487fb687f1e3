package bindings_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/bindings"
)

func TestSelectors(t *testing.T) {
	manager := bindings.NewGroupBuyManager()
	groupBuy := bindings.NewGroupBuy()
	token := bindings.NewERC20()

	offer := common.HexToAddress("0x905F6d8dAfe0475CcFab45Dfdb759CA81Bd210d9")

	tests := []struct {
		name     string
		calldata []byte
		selector string
	}{
		{"getGroupBuys", manager.PackGetGroupBuys(), "0xbc5a19ce"},
		{"getGroupBuyInfo", manager.PackGetGroupBuyInfo([]common.Address{offer}), "0xa3c26ad3"},
		{"createGroupbuy", manager.PackCreateGroupbuy(big.NewInt(1800), big.NewInt(5_000_000), "a", "b"), "0xa5b04111"},
		{"getAllOrders", groupBuy.PackGetAllOrders(), "0x7bea0d1c"},
		{"placeOrder", groupBuy.PackPlaceOrder(), "0xf5c609e0"},
		{"withdrawFunds", groupBuy.PackWithdrawFunds(), "0x24600fc3"},
		{"approve", token.PackApprove(offer, big.NewInt(1)), "0x095ea7b3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.GreaterOrEqual(t, len(tt.calldata), 4)
			assert.Equal(t, tt.selector, hexutil.Encode(tt.calldata[:4]))
		})
	}
}

func TestUnpackGetGroupBuyInfo(t *testing.T) {
	manager := bindings.NewGroupBuyManager()

	seller := common.HexToAddress("0x1111111111111111111111111111111111111111")
	raw, err := bindings.GroupBuyManagerMetaData.ParseABI()
	require.NoError(t, err)

	encoded, err := raw.Methods["getGroupBuyInfo"].Outputs.Pack(
		[]*big.Int{big.NewInt(1_900_000_000)},
		[]*big.Int{big.NewInt(12_500_000)},
		[]common.Address{seller},
		[]*big.Int{big.NewInt(0)},
		[]string{"Mechanical keyboard"},
		[]string{"Group buy for 10 units"},
	)
	require.NoError(t, err)

	out, err := manager.UnpackGetGroupBuyInfo(encoded)
	require.NoError(t, err)
	assert.Equal(t, []*big.Int{big.NewInt(1_900_000_000)}, out.EndTime)
	assert.Equal(t, []*big.Int{big.NewInt(12_500_000)}, out.Price)
	assert.Equal(t, []common.Address{seller}, out.Seller)
	assert.Equal(t, []string{"Mechanical keyboard"}, out.ProductName)
}
