package resolve_availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	sportRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/sport"
)

type fakeSportRepo struct {
	sports map[int64]*domain.Sport
	err    error
}

func (f *fakeSportRepo) GetByID(_ context.Context, sportID int64) (*domain.Sport, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sports[sportID]
	if !ok {
		return nil, fmt.Errorf("%w: GetByID - id=%d", sportRepo.ErrSportNotFound, sportID)
	}
	return s, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetActiveBySportAndDate(_ context.Context, sportID int64, date time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.SportID == sportID && b.BookingDate.Equal(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeBlockedSlotRepo struct {
	blocked []*domain.BlockedSlot
	err     error
}

func (f *fakeBlockedSlotRepo) GetBySportAndDate(_ context.Context, sportID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.BlockedSlot
	for _, b := range f.blocked {
		if b.SportID == sportID && b.Date.Equal(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakePricingRuleRepo struct {
	rules []*domain.PricingRule
	err   error
}

func (f *fakePricingRuleRepo) GetActiveBySport(_ context.Context, sportID int64) ([]*domain.PricingRule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.PricingRule
	for _, r := range f.rules {
		if r.SportID == sportID {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes []string
	skipped  []string
}

func (f *fakeMetrics) IncAvailabilityResolved(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome)
}

func (f *fakeMetrics) IncPricingRuleSkipped(ruleType string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.skipped = append(f.skipped, ruleType)
}

type fakeLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *fakeLogger) Info(string, ...interface{})  {}
func (l *fakeLogger) Error(string, ...interface{}) {}
func (l *fakeLogger) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}
