package admin

import (
	"testing"

	providerRepo "urbanfix/database/repository/provider"
	"urbanfix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct{ count int64 }

func (f *fakeUserRepo) Create(*models.User) error               { return nil }
func (f *fakeUserRepo) GetByID(string) (*models.User, error)    { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(string, bson.M) (*models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) UpdateWithDocument(string, bson.M) error { return nil }
func (f *fakeUserRepo) Count() (int64, error)                   { return f.count, nil }

type fakeProviderRepo struct{ count int64 }

func (f *fakeProviderRepo) Create(*models.Provider) error                { return nil }
func (f *fakeProviderRepo) GetByID(string) (*models.Provider, error)     { return nil, nil }
func (f *fakeProviderRepo) GetByUserID(string) (*models.Provider, error) { return nil, nil }
func (f *fakeProviderRepo) Search(providerRepo.SearchCriteria) ([]models.Provider, error) {
	return nil, nil
}
func (f *fakeProviderRepo) UpdateWithDocument(string, bson.M) error { return nil }
func (f *fakeProviderRepo) UpdateRating(string, float64, int) error { return nil }
func (f *fakeProviderRepo) IncrementStat(string, string, int) error { return nil }
func (f *fakeProviderRepo) Count() (int64, error)                   { return f.count, nil }

type fakeBookingRepo struct {
	byStatus map[models.BookingStatus]int64
	revenue  float64
}

func (f *fakeBookingRepo) Create(*models.Booking) error          { return nil }
func (f *fakeBookingRepo) GetByID(string) (*models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) ApplyTransition(string, models.BookingStatus, bson.M, models.TimelineEntry) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) SetHasReview(string) error                       { return nil }
func (f *fakeBookingRepo) ListByUser(string) ([]models.Booking, error)     { return nil, nil }
func (f *fakeBookingRepo) ListByProvider(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) CountByStatus() (map[models.BookingStatus]int64, error) {
	return f.byStatus, nil
}
func (f *fakeBookingRepo) SumCompletedTotals() (float64, error) { return f.revenue, nil }

func TestGetStats(t *testing.T) {
	svc := &DefaultAdminService{
		Users:     &fakeUserRepo{count: 120},
		Providers: &fakeProviderRepo{count: 35},
		Bookings: &fakeBookingRepo{
			byStatus: map[models.BookingStatus]int64{
				models.StatusPending:   4,
				models.StatusCompleted: 20,
				models.StatusCancelled: 6,
			},
			revenue: 45600,
		},
	}

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(35), stats.TotalProviders)
	assert.Equal(t, int64(30), stats.TotalBookings)
	assert.Equal(t, int64(20), stats.ByStatus[models.StatusCompleted])
	assert.Equal(t, 45600.0, stats.TotalRevenue)
}
