package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/repository"
	"github.com/xbl/lead-tracker/internal/service"
	"github.com/xbl/lead-tracker/internal/testutil"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestDashboardService_Summary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewDashboardService(
		repository.NewLeadRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewEmployeeRepository(db),
		zap.NewNop(),
	)
	ctx := context.Background()

	testutil.CreateTestEmployee(t, db, "Sam Seller")
	acme := testutil.CreateTestCustomer(t, db, "Acme")
	testutil.CreateTestCustomer(t, db, "Globex")

	for day := 1; day <= 7; day++ {
		testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC,
			testutil.WithNextFollowUp(domain.NewDate(2024, time.March, day)))
	}
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithStatus(domain.LeadStatusWon))
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC, testutil.WithStatus(domain.LeadStatusWon))

	summary, err := svc.Summary(ctx, domain.NewDate(2024, time.March, 10))
	require.NoError(t, err)

	assert.Equal(t, int64(9), summary.TotalLeads)
	assert.Equal(t, int64(2), summary.TotalCustomers)
	assert.Equal(t, int64(1), summary.TotalEmployees)
	assert.Equal(t, int64(2), summary.WonLeads)
	assert.Equal(t, 7, summary.FollowUpsDue)
	require.Len(t, summary.UpcomingFollowUps, 5)
	assert.Equal(t, "2024-03-01", summary.UpcomingFollowUps[0].NextFollowUpDate.String())
	assert.Equal(t, "2024-03-10", summary.AsOf.String())

	require.Len(t, summary.LeadsByStatus, len(domain.LeadStatuses()))
	counts := make(map[domain.LeadStatus]int64)
	for _, sc := range summary.LeadsByStatus {
		counts[sc.Status] = sc.Count
	}
	assert.Equal(t, int64(7), counts[domain.LeadStatusConnected])
	assert.Equal(t, int64(2), counts[domain.LeadStatusWon])
	assert.Equal(t, int64(0), counts[domain.LeadStatusLost])
}

func TestLeadExportService_WriteXLSX(t *testing.T) {
	leadService, db := createLeadService(t)
	svc := service.NewLeadExportService(leadService, zap.NewNop())
	ctx := context.Background()

	acme := testutil.CreateTestCustomer(t, db, "Acme")
	testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryEPC)
	offered := testutil.CreateTestLead(t, db, acme, domain.ProjectCategoryISS,
		testutil.WithStatus(domain.LeadStatusPriceOffered),
		testutil.WithOffer(4, "R2"),
		testutil.WithSerial("XBL/ISS/Acme/20240305/4/R2"))

	t.Run("all leads", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := svc.WriteXLSX(ctx, nil, &buf)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		f, err := excelize.OpenReader(&buf)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		rows, err := f.GetRows(service.LeadExportSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Customer", rows[0][1])
		assert.Equal(t, "Serial Number", rows[0][11])

		// Newest first
		assert.Equal(t, fmt.Sprint(offered.ID), rows[1][0])
		assert.Equal(t, "ISS", rows[1][2])
		assert.Equal(t, "R2", rows[1][7])
		assert.Equal(t, "XBL/ISS/Acme/20240305/4/R2", rows[1][11])
	})

	t.Run("filtered by status", func(t *testing.T) {
		var buf bytes.Buffer
		status := domain.LeadStatusConnected
		n, err := svc.WriteXLSX(ctx, &status, &buf)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}
