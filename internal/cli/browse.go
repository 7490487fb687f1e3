package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// browse messages
type (
	refreshDoneMsg struct{ err error }
	buyersDoneMsg  struct{ err error }
	flowDoneMsg    struct{ err error }
)

// browseModel is the bubbletea model for the interactive catalogue
type browseModel struct {
	ctx    context.Context
	ctrl   *usecase.Controller
	cursor int
	detail bool
	busy   bool
	status string
	err    error
}

func initialBrowseModel(ctx context.Context, ctrl *usecase.Controller) browseModel {
	return browseModel{ctx: ctx, ctrl: ctrl}
}

// Init triggers the first catalogue refresh
func (m browseModel) Init() tea.Cmd {
	return m.refreshCmd()
}

// Update handles messages and updates the model
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.busy = false
		m.err = msg.err
		m.clampCursor()
		return m, nil

	case buyersDoneMsg:
		m.busy = false
		m.err = msg.err
		return m, nil

	case flowDoneMsg:
		m.busy = false
		m.err = msg.err
		if msg.err == nil {
			m.status = "done"
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			// A flow is in flight; only allow bailing out entirely.
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.snapshot().Catalogue)-1 {
				m.cursor++
			}
		case "r":
			m.busy = true
			return m, m.refreshCmd()
		case "enter":
			if m.detail {
				return m, nil
			}
			snap := m.snapshot()
			if m.cursor < len(snap.Catalogue) {
				m.detail = true
				m.busy = true
				addr := snap.Catalogue[m.cursor].Address
				return m, func() tea.Msg {
					return buyersDoneMsg{err: m.ctrl.Select(m.ctx, addr)}
				}
			}
		case "esc":
			m.detail = false
			m.err = nil
			m.status = ""
			m.ctrl.Deselect()
			m.ctrl.AcknowledgeFlow()
		case "o":
			if m.detail && m.snapshot().Eligibility.CanPlaceOrder {
				m.busy = true
				m.status = "joining…"
				return m, func() tea.Msg {
					_, err := m.ctrl.PlaceOrder(m.ctx)
					return flowDoneMsg{err: err}
				}
			}
		case "w":
			if m.detail && m.snapshot().Eligibility.CanWithdraw {
				m.busy = true
				m.status = "withdrawing…"
				return m, func() tea.Msg {
					_, err := m.ctrl.WithdrawFunds(m.ctx)
					return flowDoneMsg{err: err}
				}
			}
		}
	}
	return m, nil
}

// View renders the UI
func (m browseModel) View() string {
	snap := m.snapshot()

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprint("Group Buys"))
	if snap.Session.Connected {
		b.WriteString(color.New(color.Faint).Sprintf("  %s", snap.Session.Address.Hex()))
	}
	b.WriteString("\n\n")

	if m.detail && snap.Selected != nil {
		m.viewDetail(&b, snap)
	} else {
		m.viewCatalogue(&b, snap)
	}

	if m.err != nil {
		b.WriteString(color.New(color.FgRed).Sprintf("\nerror: %v\n", m.err))
	}
	if m.status != "" {
		b.WriteString(color.New(color.FgYellow).Sprintf("\n%s\n", m.status))
	}
	switch snap.Flow.Phase {
	case models.FlowAwaitingApproval, models.FlowAwaitingConfirmation:
		b.WriteString(color.New(color.FgYellow).Sprintf("\n%s %s\n", snap.Flow.Phase, snap.Flow.TxHash.Hex()))
	case models.FlowSucceeded:
		b.WriteString(color.New(color.FgGreen).Sprintf("\n✓ confirmed %s\n", snap.Flow.TxHash.Hex()))
	}

	return b.String()
}

func (m browseModel) viewCatalogue(b *strings.Builder, snap usecase.Snapshot) {
	if len(snap.Catalogue) == 0 {
		b.WriteString("No offers found\n")
	}
	now := time.Now()
	for i, offer := range snap.Catalogue {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}

		stateColor := color.New(color.FgGreen)
		if offer.State != models.OfferOpen {
			stateColor = color.New(color.FgYellow)
		}
		remaining := ""
		if offer.State == models.OfferOpen {
			if left := offer.TimeRemaining(now); left > 0 {
				remaining = color.New(color.Faint).Sprintf(" ends in %s", left.Round(time.Minute))
			}
		}

		b.WriteString(fmt.Sprintf("%s %s %s %s%s\n",
			cursor,
			color.New(color.FgWhite, color.Bold).Sprint(offer.ProductName),
			stateColor.Sprintf("[%s]", offer.State),
			color.New(color.FgCyan).Sprint(offer.DisplayPrice()),
			remaining,
		))
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Enter: open  r: refresh  q: quit\n"))
}

func (m browseModel) viewDetail(b *strings.Builder, snap usecase.Snapshot) {
	offer := snap.Selected

	b.WriteString(color.New(color.FgWhite, color.Bold).Sprintf("%s\n", offer.ProductName))
	if offer.ProductDescription != "" {
		b.WriteString(offer.ProductDescription + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Price:  %s\n", color.New(color.FgCyan).Sprint(offer.DisplayPrice())))
	b.WriteString(fmt.Sprintf("State:  %s\n", offer.State))
	b.WriteString(fmt.Sprintf("Seller: %s\n", offer.Seller.Hex()))
	b.WriteString(fmt.Sprintf("Buyers: %d\n", len(offer.Buyers)))

	var keys []string
	if snap.Eligibility.CanPlaceOrder {
		keys = append(keys, "o: join")
	}
	if snap.Eligibility.CanWithdraw {
		keys = append(keys, "w: withdraw")
	}
	keys = append(keys, "esc: back", "q: quit")

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint(strings.Join(keys, "  ") + "\n"))
}

func (m browseModel) snapshot() usecase.Snapshot {
	return m.ctrl.Snapshot()
}

func (m browseModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.ctrl.Refresh(m.ctx)}
	}
}

func (m *browseModel) clampCursor() {
	if n := len(m.snapshot().Catalogue); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
}

// NewBrowseCmd creates the browse command
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse offers interactively",
		Long: `Browse the offer catalogue in a full-screen terminal UI. Offers can be
opened, joined, and withdrawn from without leaving the view.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.Controller.Bootstrap(cmd.Context()); err != nil {
				return err
			}

			model := initialBrowseModel(cmd.Context(), app.Controller)
			p := tea.NewProgram(model)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browse failed: %w", err)
			}
			return nil
		},
	}
}
