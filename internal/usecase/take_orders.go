package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/makkah-counter/internal/domain"
	"github.com/runoshun/makkah-counter/internal/receipt"
	"github.com/shopspring/decimal"
)

// Prompts shown during an order session.
const (
	optionPrompt   = "Select option number: "
	quantityPrompt = "Enter quantity: "
	anotherPrompt  = "\nDo you want to order another item? (yes/no): "
)

func itemPrompt(count int) string {
	return fmt.Sprintf("\nEnter your choice (1 - %d): ", count)
}

// orderState is a position in the order session.
type orderState int

const (
	stateShowingMenu orderState = iota
	stateAwaitingItem
	stateShowingOptions
	stateAwaitingOption
	stateAwaitingQuantity
	stateSummarizing
	stateAwaitingContinue
	stateDone
)

var orderStateNames = [...]string{
	stateShowingMenu:      "showing_menu",
	stateAwaitingItem:     "awaiting_item",
	stateShowingOptions:   "showing_options",
	stateAwaitingOption:   "awaiting_option",
	stateAwaitingQuantity: "awaiting_quantity",
	stateSummarizing:      "summarizing",
	stateAwaitingContinue: "awaiting_continue",
	stateDone:             "done",
}

func (s orderState) String() string {
	if int(s) < len(orderStateNames) {
		return orderStateNames[s]
	}
	return fmt.Sprintf("orderState(%d)", int(s))
}

// TakeOrdersOutput contains the result of a completed session.
type TakeOrdersOutput struct {
	GrandTotal decimal.Decimal // Sum of every round's total
	Rounds     []domain.Round  // Rounds in the order they were placed
}

// TakeOrders is the use case running one interactive order session:
// menu, item, option, quantity, summary, repeated until the customer is done.
// Fields are ordered to minimize memory padding.
type TakeOrders struct {
	in          domain.LineReader
	out         io.Writer
	logger      domain.Logger
	printer     *receipt.Printer
	prompt      *IntPrompt
	catalog     domain.Catalog
	roundPlaces int32
}

// NewTakeOrders creates a new TakeOrders use case.
// roundPlaces is the number of decimal places kept for tax and totals.
func NewTakeOrders(
	catalog domain.Catalog,
	in domain.LineReader,
	out io.Writer,
	printer *receipt.Printer,
	logger domain.Logger,
	roundPlaces int,
) *TakeOrders {
	return &TakeOrders{
		catalog:     catalog,
		in:          in,
		out:         out,
		printer:     printer,
		logger:      logger,
		prompt:      NewIntPrompt(in, out, printer, logger),
		roundPlaces: int32(roundPlaces), //nolint:gosec // Bounded by Config.Validate
	}
}

// orderSession is the mutable state of one Execute call.
type orderSession struct {
	selection  domain.Selection
	grandTotal decimal.Decimal
	rounds     []domain.Round
	price      domain.PriceBreakdown
	round      int
}

// Execute runs the session until the customer declines another item and
// prints the final receipt. It fails only when input is no longer available
// or ctx is done; in that case no receipt is printed.
func (uc *TakeOrders) Execute(ctx context.Context) (*TakeOrdersOutput, error) {
	s := &orderSession{grandTotal: decimal.Zero}
	uc.logger.Info(0, "session", "session started")

	state := stateShowingMenu
	for state != stateDone {
		next, err := uc.step(ctx, s, state)
		if err != nil {
			uc.logger.Error(s.round, "session", fmt.Sprintf("aborted in %s: %v", state, err))
			return nil, err
		}
		state = next
	}

	_, _ = fmt.Fprint(uc.out, uc.printer.Receipt(s.grandTotal))
	uc.logger.Info(0, "session", fmt.Sprintf("session finished: %d round(s), grand total %s", len(s.rounds), s.grandTotal))

	return &TakeOrdersOutput{
		Rounds:     s.rounds,
		GrandTotal: s.grandTotal,
	}, nil
}

// step performs the work of one state and returns the next one.
func (uc *TakeOrders) step(ctx context.Context, s *orderSession, state orderState) (orderState, error) {
	switch state {
	case stateShowingMenu:
		s.round++
		s.selection = domain.Selection{}
		_, _ = fmt.Fprint(uc.out, uc.printer.Menu(uc.catalog))
		return stateAwaitingItem, nil

	case stateAwaitingItem:
		choice, err := uc.prompt.ForRound(s.round).ReadIntInRange(ctx, itemPrompt(uc.catalog.Count()), 1, uc.catalog.Count())
		if err != nil {
			return state, err
		}
		entry, ok := uc.catalog.EntryAt(choice)
		if !ok {
			return state, fmt.Errorf("menu entry %d: not in catalog", choice)
		}
		s.selection.Entry = entry
		return stateShowingOptions, nil

	case stateShowingOptions:
		_, _ = fmt.Fprint(uc.out, uc.printer.Options(s.selection.Entry))
		return stateAwaitingOption, nil

	case stateAwaitingOption:
		entry := s.selection.Entry
		choice, err := uc.prompt.ForRound(s.round).ReadIntInRange(ctx, optionPrompt, 1, entry.OptionCount())
		if err != nil {
			return state, err
		}
		name, ok := entry.OptionNameAt(choice)
		if !ok {
			return state, fmt.Errorf("option %d of %s: not found", choice, entry.Name)
		}
		s.selection.OptionIndex = choice
		s.selection.OptionName = name
		return stateAwaitingQuantity, nil

	case stateAwaitingQuantity:
		qty, err := uc.prompt.ForRound(s.round).ReadIntInRange(ctx, quantityPrompt, domain.MinQuantity, domain.MaxQuantity)
		if err != nil {
			return state, err
		}
		s.selection.Quantity = qty
		return stateSummarizing, nil

	case stateSummarizing:
		s.price = s.selection.Price(uc.roundPlaces)
		s.grandTotal = s.grandTotal.Add(s.price.Total)
		s.rounds = append(s.rounds, domain.Round{
			Number:    s.round,
			Selection: s.selection,
			Price:     s.price,
		})
		_, _ = fmt.Fprint(uc.out, uc.printer.Summary(s.selection, s.price))
		uc.logger.Info(s.round, "order", fmt.Sprintf("%s (%s) x%d: subtotal %s, tax %s, total %s",
			s.selection.Entry.Name, s.selection.OptionName, s.selection.Quantity,
			s.price.Subtotal, s.price.Tax, s.price.Total))
		return stateAwaitingContinue, nil

	case stateAwaitingContinue:
		if err := ctx.Err(); err != nil {
			return state, err
		}
		_, _ = fmt.Fprint(uc.out, anotherPrompt)
		answer, err := uc.in.ReadLine()
		if err != nil && !errors.Is(err, domain.ErrLineTooLong) {
			return state, fmt.Errorf("read answer: %w", err)
		}
		// An over-long answer is not "yes".
		if strings.EqualFold(strings.TrimSpace(answer), "yes") {
			return stateShowingMenu, nil
		}
		return stateDone, nil

	default:
		return state, fmt.Errorf("unexpected order state %s", state)
	}
}
