package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/makkah-counter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowMenu_Execute(t *testing.T) {
	uc := NewShowMenu(domain.DefaultCatalog())

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.GSTRate, out.TaxRate)
	require.Len(t, out.Entries, 8)
	assert.Equal(t, "SAMOSA", out.Entries[0].Name)
	assert.Equal(t, "COLDRINK", out.Entries[7].Name)
}

func TestShowMenu_Execute_ReturnsCopy(t *testing.T) {
	catalog := domain.DefaultCatalog()
	uc := NewShowMenu(catalog)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	out.Entries[0].Name = "CHANGED"

	entry, _ := catalog.EntryAt(1)
	assert.Equal(t, "SAMOSA", entry.Name)
}
