package rdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/book-restful-api/internal/domain/bookdetail"
)

func TestBookDetailRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewBookDetailRepository(newTestDB(t))

	d := bookdetail.NewBookDetail("Dune", "Herbert", "", "1965", "Desert planet epic.")
	require.NoError(t, repo.Create(ctx, d))
	require.NotZero(t, d.ID)

	found, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "", found.Genre)
	assert.Equal(t, "Desert planet epic.", found.Description)

	found.Genre = "Sci-Fi"
	require.NoError(t, repo.Update(ctx, found))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sci-Fi", list[0].Genre)

	require.NoError(t, repo.Delete(ctx, d.ID))
	assert.ErrorIs(t, repo.Delete(ctx, d.ID), bookdetail.ErrBookDetailNotFound)
}

func TestBookDetailRepository_UpdateClearsOptionalField(t *testing.T) {
	ctx := context.Background()
	repo := NewBookDetailRepository(newTestDB(t))

	d := bookdetail.NewBookDetail("Dune", "Herbert", "Sci-Fi", "1965", "epic")
	require.NoError(t, repo.Create(ctx, d))

	// PUT语义:零值也要覆盖
	d.Genre = ""
	require.NoError(t, repo.Update(ctx, d))

	found, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Genre)
}
