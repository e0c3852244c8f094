package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/repository"
	"github.com/xbl/lead-tracker/internal/testutil"
)

func TestOfferNumberRepository_MaxInitialOfferNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewOfferNumberRepository(db)
	ctx := context.Background()

	acme := testutil.CreateTestCustomer(t, db, "Acme")
	other := testutil.CreateTestCustomer(t, db, "Other")

	t.Run("no leads yields zero", func(t *testing.T) {
		highest, err := repo.MaxInitialOfferNumber(ctx, "Acme", domain.ProjectCategoryEPC)
		require.NoError(t, err)
		assert.Equal(t, 0, highest)
	})

	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithOffer(3, "R1"))
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithOffer(7, "R1"))
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryISS, testutil.WithOffer(40, "R1"))
	testutil.CreateTestLead(t, db, other, domain.ProjectCategoryEPC, testutil.WithOffer(99, "R1"))

	t.Run("scoped to customer and category", func(t *testing.T) {
		highest, err := repo.MaxInitialOfferNumber(ctx, "Acme", domain.ProjectCategoryEPC)
		require.NoError(t, err)
		assert.Equal(t, 7, highest)

		highest, err = repo.MaxInitialOfferNumber(ctx, "Acme", domain.ProjectCategoryISS)
		require.NoError(t, err)
		assert.Equal(t, 40, highest)

		highest, err = repo.MaxInitialOfferNumber(ctx, "Acme", domain.ProjectCategorySPP)
		require.NoError(t, err)
		assert.Equal(t, 0, highest)
	})

	t.Run("unknown customer yields zero", func(t *testing.T) {
		highest, err := repo.MaxInitialOfferNumber(ctx, "Nobody", domain.ProjectCategoryEPC)
		require.NoError(t, err)
		assert.Equal(t, 0, highest)
	})
}

func TestOfferNumberRepository_MaxRevisionNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewOfferNumberRepository(db)
	ctx := context.Background()

	acme := testutil.CreateTestCustomer(t, db, "Acme")

	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithOffer(7, "R1"))
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithOffer(7, "R2"))
	// R10 must win over R9 numerically, not lexically
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithOffer(8, "R9"))
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithOffer(8, "R10"))

	highest, err := repo.MaxRevisionNumber(ctx, "Acme", domain.ProjectCategoryEPC, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, highest)

	highest, err = repo.MaxRevisionNumber(ctx, "Acme", domain.ProjectCategoryEPC, 8)
	require.NoError(t, err)
	assert.Equal(t, 10, highest)

	highest, err = repo.MaxRevisionNumber(ctx, "Acme", domain.ProjectCategoryEPC, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, highest)

	highest, err = repo.MaxRevisionNumber(ctx, "Acme", domain.ProjectCategoryISS, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, highest)
}
