package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// ErrFlowInFlight means a mutating flow already occupies the single
// in-flight slot; the caller must wait for a terminal status first.
var ErrFlowInFlight = errors.New("another action is still in flight")

// ErrNotEligible means the evaluator denied the requested action for the
// current session.
var ErrNotEligible = errors.New("action not permitted for the current user")

// ErrUnknownOffer means the address is not in the current catalogue.
var ErrUnknownOffer = errors.New("offer not found in catalogue")

// Controller owns the UI-facing state: catalogue, selected offer, session,
// and flow status. It routes user intents to the use cases and adopts their
// results; it computes neither eligibility nor transaction outcomes itself.
// All adopted state is guarded by one mutex; concurrent read refreshes
// resolve last-write-wins by completion order.
type Controller struct {
	mu        sync.RWMutex
	catalogue []*models.Offer
	selected  *models.Offer
	session   models.Session

	connect    *ConnectSession
	listOffers *ListOffers
	loadBuyers *LoadBuyers
	createUC   *CreateOffer
	orderUC    *PlaceOrder
	withdrawUC *WithdrawFunds
	flow       *FlowRecorder
	log        *slog.Logger
}

// Snapshot is the render-ready state tuple. Eligibility is re-derived on
// every call, never cached.
type Snapshot struct {
	Catalogue   []*models.Offer
	Selected    *models.Offer
	Session     models.Session
	Flow        models.FlowStatus
	Eligibility models.Eligibility
}

// NewController creates the controller.
func NewController(
	connect *ConnectSession,
	listOffers *ListOffers,
	loadBuyers *LoadBuyers,
	createUC *CreateOffer,
	orderUC *PlaceOrder,
	withdrawUC *WithdrawFunds,
	flow *FlowRecorder,
	log *slog.Logger,
) *Controller {
	return &Controller{
		connect:    connect,
		listOffers: listOffers,
		loadBuyers: loadBuyers,
		createUC:   createUC,
		orderUC:    orderUC,
		withdrawUC: withdrawUC,
		flow:       flow,
		log:        log,
	}
}

// Bootstrap runs the mount sequence: session first so the UI can label
// itself, then the catalogue. A missing wallet is tolerated — read-only
// calls need no signer.
func (c *Controller) Bootstrap(ctx context.Context) error {
	session, err := c.connect.Run(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrWalletUnavailable) {
			return err
		}
		c.log.Debug("no wallet configured, continuing read-only")
	} else {
		c.mu.Lock()
		c.session = *session
		c.mu.Unlock()
	}

	return c.Refresh(ctx)
}

// Refresh replaces the whole catalogue with a fresh directory fetch. On
// failure the previous catalogue stays published. A still-selected offer is
// re-pointed at its refreshed entry, keeping the already-loaded buyer list
// when the refresh carries none.
func (c *Controller) Refresh(ctx context.Context) error {
	result, err := c.listOffers.Run(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalogue = result.Offers
	if c.selected != nil {
		prev := c.selected
		c.selected = nil
		for _, offer := range c.catalogue {
			if offer.Address == prev.Address {
				if offer.Buyers == nil {
					offer.Buyers = prev.Buyers
				}
				c.selected = offer
				break
			}
		}
	}
	return nil
}

// Select makes the offer at addr the active one and lazily loads its buyer
// list. A detail fetch failure keeps the offer selected with its previous
// (possibly empty) buyer list.
func (c *Controller) Select(ctx context.Context, addr common.Address) error {
	c.mu.Lock()
	var target *models.Offer
	for _, offer := range c.catalogue {
		if offer.Address == addr {
			target = offer
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownOffer, addr)
	}
	c.selected = target
	c.mu.Unlock()

	return c.RefreshBuyers(ctx)
}

// Deselect returns to the catalogue view.
func (c *Controller) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

// RefreshBuyers re-fetches the selected offer's buyer list. The most
// recently completed fetch wins; a result for an offer that is no longer
// selected is discarded. Failures keep the previous list.
func (c *Controller) RefreshBuyers(ctx context.Context) error {
	c.mu.RLock()
	target := c.selected
	c.mu.RUnlock()
	if target == nil {
		return nil
	}

	buyers, err := c.loadBuyers.Run(ctx, target)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected != nil && c.selected.Address == target.Address {
		c.selected.Buyers = buyers
	}
	return nil
}

// CreateOffer runs the create flow and adopts the refreshed catalogue on
// success. The form values stay with the caller, so a failure leaves them
// populated for resubmission.
func (c *Controller) CreateOffer(ctx context.Context, params CreateOfferParams) (*CreateOfferResult, error) {
	if err := c.acquireFlow(); err != nil {
		return nil, err
	}

	result, err := c.createUC.Run(ctx, params)
	if err != nil {
		c.flow.Release()
		return nil, err
	}
	if result.Catalogue != nil {
		c.mu.Lock()
		c.catalogue = result.Catalogue
		c.mu.Unlock()
	}
	return result, nil
}

// PlaceOrder runs the join flow for the selected offer after gating on
// eligibility, and merges the refreshed buyer list on success.
func (c *Controller) PlaceOrder(ctx context.Context) (*PlaceOrderResult, error) {
	if err := c.acquireFlow(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	target := c.selected
	user := c.session.Address
	c.mu.RUnlock()

	if !models.Evaluate(target, user).CanPlaceOrder {
		c.flow.Release()
		return nil, ErrNotEligible
	}

	result, err := c.orderUC.Run(ctx, target)
	if err != nil || result == nil {
		c.flow.Release()
		return nil, err
	}
	if result.Buyers != nil {
		c.mu.Lock()
		if c.selected != nil && c.selected.Address == target.Address {
			c.selected.Buyers = result.Buyers
		}
		c.mu.Unlock()
	}
	return result, nil
}

// WithdrawFunds runs the withdraw flow for the selected offer after gating
// on eligibility.
func (c *Controller) WithdrawFunds(ctx context.Context) (*WithdrawResult, error) {
	if err := c.acquireFlow(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	target := c.selected
	user := c.session.Address
	c.mu.RUnlock()

	if !models.Evaluate(target, user).CanWithdraw {
		c.flow.Release()
		return nil, ErrNotEligible
	}

	result, err := c.withdrawUC.Run(ctx, target)
	if err != nil || result == nil {
		c.flow.Release()
		return nil, err
	}
	return result, nil
}

// AcknowledgeFlow clears a terminal flow status once the UI has shown it.
func (c *Controller) AcknowledgeFlow() {
	c.flow.Reset()
}

// Snapshot returns the current render state. The catalogue slice is copied;
// offers themselves are owned by the controller and read-only for callers.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	catalogue := make([]*models.Offer, len(c.catalogue))
	copy(catalogue, c.catalogue)

	return Snapshot{
		Catalogue:   catalogue,
		Selected:    c.selected,
		Session:     c.session,
		Flow:        c.flow.Status(),
		Eligibility: models.Evaluate(c.selected, c.session.Address),
	}
}

// acquireFlow enforces the single in-flight mutating flow. The recorder
// claims the slot under its own lock, so two concurrent intents cannot
// both pass even before either submits a transaction. This is a UI-level
// exclusion, not a remote lock.
func (c *Controller) acquireFlow() error {
	if !c.flow.TryAcquire() {
		return ErrFlowInFlight
	}
	return nil
}
