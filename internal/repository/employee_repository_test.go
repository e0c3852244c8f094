package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/repository"
	"github.com/xbl/lead-tracker/internal/testutil"
	"gorm.io/gorm"
)

func TestEmployeeRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Employee{Name: "Sam"}))
	require.NoError(t, repo.Create(ctx, &domain.Employee{Name: "Alex"}))

	err := repo.Create(ctx, &domain.Employee{Name: "Sam"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alex", "Sam"}, names)

	deleted, err := repo.DeleteByName(ctx, "Sam")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByName(ctx, "Sam")
	require.NoError(t, err)
	assert.False(t, deleted)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestEmployeeRepository_DeleteKeepsLeads(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	testutil.CreateTestEmployee(t, db, "Sam Seller")
	acme := testutil.CreateTestCustomer(t, db, "Acme")
	lead := testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC)

	_, err := repository.NewEmployeeRepository(db).DeleteByName(ctx, "Sam Seller")
	require.NoError(t, err)

	got, err := repository.NewLeadRepository(db).GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam Seller", got.AssignedSalesPerson)
}
