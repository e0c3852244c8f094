package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/xbl/lead-tracker/internal/domain"
	"github.com/xbl/lead-tracker/internal/repository"
	"go.uber.org/zap"
)

// SerialPrefix is the fixed company prefix of every offer serial
const SerialPrefix = "XBL"

// RevisionPrefix precedes the numeric part of a revision, as in "R3"
const RevisionPrefix = "R"

// GenerateSerialNumber builds the canonical offer serial
//
// Format: XBL/{CATEGORY}/{CUSTOMER}/{YYYYMMDD}/{INITIAL}/{REVISION}
// Example: XBL/EPC/Acme/20240305/7/R2
//
// The customer name is inserted verbatim; a name containing "/" yields a
// serial with extra segments.
func GenerateSerialNumber(category domain.ProjectCategory, customerName string, offerCreated domain.Date, initialOfferNumber int, revision string) string {
	return strings.Join([]string{
		SerialPrefix,
		string(category),
		customerName,
		offerCreated.Compact(),
		fmt.Sprintf("%d", initialOfferNumber),
		revision,
	}, "/")
}

// FormatRevision renders revision k as "R<k>"
func FormatRevision(k int) string {
	return fmt.Sprintf("%s%d", RevisionPrefix, k)
}

// OfferNumberService derives initial offer and revision numbers from the
// leads already stored for a customer/category pair.
type OfferNumberService struct {
	repo   *repository.OfferNumberRepository
	locks  *groupLocks
	logger *zap.Logger
}

// NewOfferNumberService creates a new OfferNumberService
func NewOfferNumberService(
	repo *repository.OfferNumberRepository,
	logger *zap.Logger,
) *OfferNumberService {
	return &OfferNumberService{
		repo:   repo,
		locks:  newGroupLocks(),
		logger: logger,
	}
}

// NextInitialOfferNumber returns 1 + the highest initial offer number issued
// to the customer in the category, or 1 when there is none. The value is read
// from the store on every call.
func (s *OfferNumberService) NextInitialOfferNumber(ctx context.Context, customerName string, category domain.ProjectCategory) (int, error) {
	if !category.IsValid() {
		return 0, invalidInput("unknown project category %q", category)
	}
	return s.nextInitial(ctx, s.repo, customerName, category)
}

// NextOfferRevisionNumber returns "R<k+1>" where k is the highest revision
// recorded for the offer, or "R1" when the offer has none.
func (s *OfferNumberService) NextOfferRevisionNumber(ctx context.Context, customerName string, category domain.ProjectCategory, initialOfferNumber int) (string, error) {
	if !category.IsValid() {
		return "", invalidInput("unknown project category %q", category)
	}
	if initialOfferNumber <= 0 {
		return "", invalidInput("initial offer number must be positive")
	}
	return s.nextRevision(ctx, s.repo, customerName, category, initialOfferNumber)
}

func (s *OfferNumberService) nextInitial(ctx context.Context, repo *repository.OfferNumberRepository, customerName string, category domain.ProjectCategory) (int, error) {
	highest, err := repo.MaxInitialOfferNumber(ctx, customerName, category)
	if err != nil {
		s.logger.Error("failed to compute next offer number",
			zap.String("customer", customerName),
			zap.String("category", string(category)),
			zap.Error(err))
		return 0, storeError("next offer number", err)
	}
	return highest + 1, nil
}

func (s *OfferNumberService) nextRevision(ctx context.Context, repo *repository.OfferNumberRepository, customerName string, category domain.ProjectCategory, initialOfferNumber int) (string, error) {
	highest, err := repo.MaxRevisionNumber(ctx, customerName, category, initialOfferNumber)
	if err != nil {
		s.logger.Error("failed to compute next revision number",
			zap.String("customer", customerName),
			zap.String("category", string(category)),
			zap.Int("initialOfferNumber", initialOfferNumber),
			zap.Error(err))
		return "", storeError("next revision number", err)
	}
	return FormatRevision(highest + 1), nil
}

// lockGroup serializes number allocation for one customer/category pair
// within this process. The returned func releases the lock.
func (s *OfferNumberService) lockGroup(customerName string, category domain.ProjectCategory) func() {
	return s.locks.lock(string(category) + "\x00" + customerName)
}

// groupLocks is a set of mutexes keyed by string. Entries are never removed;
// the key space is bounded by the number of customer/category pairs.
type groupLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGroupLocks() *groupLocks {
	return &groupLocks{locks: make(map[string]*sync.Mutex)}
}

func (g *groupLocks) lock(key string) func() {
	g.mu.Lock()
	l, ok := g.locks[key]
	if !ok {
		l = &sync.Mutex{}
		g.locks[key] = l
	}
	g.mu.Unlock()

	l.Lock()
	return l.Unlock
}
