package usecase

import (
	"context"

	"github.com/runoshun/makkah-counter/internal/domain"
)

// ShowMenuOutput contains the menu as served.
type ShowMenuOutput struct {
	Entries []domain.MenuEntry // Entries in menu order
	TaxRate int                // GST in percent
}

// ShowMenu is the use case for listing the catalog outside of a session.
type ShowMenu struct {
	catalog domain.Catalog
}

// NewShowMenu creates a new ShowMenu use case.
func NewShowMenu(catalog domain.Catalog) *ShowMenu {
	return &ShowMenu{catalog: catalog}
}

// Execute returns the catalog entries and the tax rate.
func (uc *ShowMenu) Execute(_ context.Context) (*ShowMenuOutput, error) {
	return &ShowMenuOutput{
		Entries: uc.catalog.Entries(),
		TaxRate: domain.GSTRate,
	}, nil
}
