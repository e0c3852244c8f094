package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/repository"
	"github.com/xbl/lead-tracker/internal/testutil"
	"gorm.io/gorm"
)

func TestLeadRepository_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewLeadRepository(db)
	ctx := context.Background()

	acme := testutil.CreateTestCustomer(t, db, "Acme")
	lead := &domain.Lead{
		CustomerID:          acme.ID,
		Customer:            acme,
		ProjectCategory:     domain.ProjectCategoryPSE,
		AssignedSalesPerson: "Sam",
		OfferCreated:        domain.NewDate(2024, time.March, 5),
		LeadThrough:         "Website",
		Status:              domain.LeadStatusConnected,
		InitialOfferNumber:  1,
		OfferRevisionNumber: "R1",
		Priority:            domain.LeadPriorityP3,
		NextFollowUpDate:    domain.NewDate(2024, time.March, 10),
	}
	require.NoError(t, repo.Create(ctx, lead))
	require.NotZero(t, lead.ID)

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CustomerName())
	assert.Equal(t, "2024-03-05", got.OfferCreated.String())
	assert.Equal(t, "2024-03-10", got.NextFollowUpDate.String())
	assert.True(t, got.FollowUpDate.IsZero())
	assert.Nil(t, got.SerialNumber)

	_, err = repo.GetByID(ctx, lead.ID+100)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestLeadRepository_DuplicateSerial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	acme := testutil.CreateTestCustomer(t, db, "Acme")
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithSerial("XBL/EPC/Acme/20240305/1/R1"))

	// Two leads without a serial are fine
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC)
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC)

	dup := "XBL/EPC/Acme/20240305/1/R1"
	err := repository.NewLeadRepository(db).Create(ctx, &domain.Lead{
		CustomerID:          acme.ID,
		ProjectCategory:     domain.ProjectCategoryEPC,
		AssignedSalesPerson: "Sam",
		OfferCreated:        domain.NewDate(2024, time.March, 5),
		LeadThrough:         "Referral",
		Status:              domain.LeadStatusPriceOffered,
		InitialOfferNumber:  1,
		OfferRevisionNumber: "R1",
		Priority:            domain.LeadPriorityP2,
		SerialNumber:        &dup,
	})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestLeadRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewLeadRepository(db)
	ctx := context.Background()

	acme := testutil.CreateTestCustomer(t, db, "Acme")
	first := testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC)
	second := testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryISS, testutil.WithStatus(domain.LeadStatusWon))

	all, err := repo.List(ctx, repository.LeadFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first; ties on created_at fall back to id
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, "Acme", all[0].CustomerName())

	won := domain.LeadStatusWon
	filtered, err := repo.List(ctx, repository.LeadFilter{Status: &won})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.ID, filtered[0].ID)
}

func TestLeadRepository_ListNeedingFollowUp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewLeadRepository(db)
	ctx := context.Background()

	acme := testutil.CreateTestCustomer(t, db, "Acme")
	asOf := domain.NewDate(2024, time.March, 10)

	late := testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC,
		testutil.WithNextFollowUp(domain.NewDate(2024, time.March, 9)))
	early := testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC,
		testutil.WithStatus(domain.LeadStatusPriceOffered),
		testutil.WithNextFollowUp(domain.NewDate(2024, time.March, 1)))
	onTheDay := testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC,
		testutil.WithStatus(domain.LeadStatusTechnicalAnalysis),
		testutil.WithNextFollowUp(asOf))

	// Excluded: future, no date, closed statuses
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC,
		testutil.WithNextFollowUp(domain.NewDate(2024, time.March, 11)))
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC)
	for _, status := range domain.ClosedLeadStatuses() {
		testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC,
			testutil.WithStatus(status),
			testutil.WithNextFollowUp(domain.NewDate(2024, time.March, 2)))
	}

	due, err := repo.ListNeedingFollowUp(ctx, asOf)
	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, []uint{early.ID, late.ID, onTheDay.ID}, []uint{due[0].ID, due[1].ID, due[2].ID})
	assert.Equal(t, "Acme", due[0].CustomerName())
}

func TestLeadRepository_UpdatesAndCounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewLeadRepository(db)
	ctx := context.Background()

	acme := testutil.CreateTestCustomer(t, db, "Acme")
	lead := testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC,
		testutil.WithNextFollowUp(domain.NewDate(2024, time.March, 9)))
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC)

	found, err := repo.Updates(ctx, lead.ID, map[string]interface{}{
		"status":              domain.LeadStatusWon,
		"next_follow_up_date": domain.Date{},
	})
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusWon, got.Status)
	assert.True(t, got.NextFollowUpDate.IsZero())

	found, err = repo.Updates(ctx, lead.ID+100, map[string]interface{}{"status": domain.LeadStatusWon})
	require.NoError(t, err)
	assert.False(t, found)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[domain.LeadStatusWon])
	assert.Equal(t, int64(1), counts[domain.LeadStatusConnected])
	assert.Zero(t, counts[domain.LeadStatusLost])

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
