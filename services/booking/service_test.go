package booking

import (
	"net/http"
	"strings"
	"testing"
	"time"

	providerRepo "urbanfix/database/repository/provider"
	"urbanfix/models"
	"urbanfix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(seed ...*models.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range seed {
		f.bookings[b.ID] = b
	}
	return f
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) ApplyTransition(id string, status models.BookingStatus, extra bson.M, entry models.TimelineEntry) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Status = status
	b.UpdatedAt = entry.Timestamp
	if c, ok := extra["cancellation"].(models.Cancellation); ok {
		b.Cancellation = &c
	}
	if c, ok := extra["completion"].(models.Completion); ok {
		b.Completion = &c
	}
	if v, ok := extra["payment.status"].(models.PaymentStatus); ok {
		b.Payment.Status = v
	}
	if v, ok := extra["payment.paidAt"].(time.Time); ok {
		b.Payment.PaidAt = &v
	}
	if v, ok := extra["payment.codAmount"].(float64); ok {
		b.Payment.CODAmount = v
	}
	b.Timeline = append(b.Timeline, entry)
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) SetHasReview(id string) error {
	if b, ok := f.bookings[id]; ok {
		b.HasReview = true
	}
	return nil
}

func (f *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByStatus() (map[models.BookingStatus]int64, error) {
	out := make(map[models.BookingStatus]int64)
	for _, b := range f.bookings {
		out[b.Status]++
	}
	return out, nil
}

func (f *fakeBookingRepo) SumCompletedTotals() (float64, error) {
	var sum float64
	for _, b := range f.bookings {
		if b.Status == models.StatusCompleted {
			sum += b.Pricing.TotalAmount
		}
	}
	return sum, nil
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
	statInc   map[string]int
	updates   []bson.M
}

func newFakeProviderRepo(seed ...*models.Provider) *fakeProviderRepo {
	f := &fakeProviderRepo{
		providers: make(map[string]*models.Provider),
		statInc:   make(map[string]int),
	}
	for _, p := range seed {
		f.providers[p.ID] = p
	}
	return f
}

func (f *fakeProviderRepo) Create(p *models.Provider) error {
	f.providers[p.ID] = p
	return nil
}

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProviderRepo) GetByUserID(userID string) (*models.Provider, error) {
	for _, p := range f.providers {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) Search(providerRepo.SearchCriteria) ([]models.Provider, error) {
	return nil, nil
}

func (f *fakeProviderRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	f.updates = append(f.updates, updateDoc)
	return nil
}

func (f *fakeProviderRepo) UpdateRating(id string, average float64, count int) error {
	if p, ok := f.providers[id]; ok {
		p.Rating = models.Rating{Average: average, Count: count}
	}
	return nil
}

func (f *fakeProviderRepo) IncrementStat(id string, field string, delta int) error {
	f.statInc[field] += delta
	return nil
}

func (f *fakeProviderRepo) Count() (int64, error) {
	return int64(len(f.providers)), nil
}

func testProvider() *models.Provider {
	return &models.Provider{
		ID:           "prov-1",
		UserID:       "prov-user-1",
		BusinessName: "Sharma Plumbing Works",
		Categories:   []models.Category{models.CategoryPlumber},
		Pricing:      models.ProviderPricing{Type: models.PricingHourly, HourlyRate: 500, Currency: "INR"},
		IsActive:     true,
	}
}

func validQuickBook() QuickBookInput {
	return QuickBookInput{
		ProviderID: "prov-1",
		Address:    "12 MG Road",
		City:       "Pune",
		State:      "Maharashtra",
		Pincode:    "411001",
	}
}

func assertServiceError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	require.Error(t, err)
	var svcErr *utils.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, status, svcErr.Status)
	assert.Equal(t, msg, svcErr.Message)
}

func TestQuickBookDefaults(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	b, err := svc.QuickBook("cust-1", validQuickBook())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(b.BookingID, "BK"))
	assert.Equal(t, "cust-1", b.UserID)
	assert.Equal(t, "prov-1", b.ProviderID)
	assert.Equal(t, "on-site", b.ServiceType)
	assert.Equal(t, models.CategoryPlumber, b.Category)
	assert.Equal(t, "Booking for Sharma Plumbing Works", b.Description)
	assert.Equal(t, 60, b.Duration)
	assert.Equal(t, "10:00", b.ScheduledTime)
	assert.Equal(t, models.PaymentCOD, b.Payment.Method)
	assert.Equal(t, models.PaymentPending, b.Payment.Status)
	assert.Equal(t, models.StatusPending, b.Status)

	// 500/hr for the default hour: 500 + 50 fee + 90 tax.
	assert.Equal(t, 640.0, b.Pricing.TotalAmount)

	require.Len(t, b.Timeline, 1)
	assert.Equal(t, models.StatusPending, b.Timeline[0].Status)
	assert.Equal(t, "cust-1", b.Timeline[0].UpdatedBy)

	stored, _ := repo.GetByID(b.ID)
	require.NotNil(t, stored)
}

func TestQuickBookNormalizesCoordinates(t *testing.T) {
	svc := &DefaultBookingService{Bookings: newFakeBookingRepo(), Providers: newFakeProviderRepo(testProvider())}

	lat, lng := 18.5204, 73.8567
	in := validQuickBook()
	in.Latitude = &lat
	in.Longitude = &lng

	b, err := svc.QuickBook("cust-1", in)
	require.NoError(t, err)
	require.NotNil(t, b.ServiceLocation.Coordinates)
	assert.Equal(t, "Point", b.ServiceLocation.Coordinates.Type)
	assert.Equal(t, []float64{73.8567, 18.5204}, b.ServiceLocation.Coordinates.Coordinates)
}

func TestQuickBookValidation(t *testing.T) {
	svc := &DefaultBookingService{Bookings: newFakeBookingRepo(), Providers: newFakeProviderRepo(testProvider())}

	_, err := svc.QuickBook("cust-1", QuickBookInput{})
	assertServiceError(t, err, http.StatusBadRequest, "Missing providerId")

	in := validQuickBook()
	in.City = ""
	_, err = svc.QuickBook("cust-1", in)
	assertServiceError(t, err, http.StatusBadRequest, "Address fields are required: address, city, state, pincode")

	in = validQuickBook()
	in.ProviderID = "nope"
	_, err = svc.QuickBook("cust-1", in)
	assertServiceError(t, err, http.StatusNotFound, "Provider not found")

	in = validQuickBook()
	in.Category = "astrologer"
	_, err = svc.QuickBook("cust-1", in)
	assertServiceError(t, err, http.StatusBadRequest, "Invalid category")

	in = validQuickBook()
	in.ScheduledDate = "next tuesday"
	_, err = svc.QuickBook("cust-1", in)
	assertServiceError(t, err, http.StatusBadRequest, "Invalid scheduledDate")
}

func seedBooking(status models.BookingStatus) *models.Booking {
	return &models.Booking{
		ID:         "book-1",
		BookingID:  "BK1X",
		UserID:     "cust-1",
		ProviderID: "prov-1",
		Status:     status,
		Payment:    models.Payment{Method: models.PaymentCOD, Status: models.PaymentPending},
		Pricing:    models.BookingPricing{TotalAmount: 1280, Currency: "INR"},
		Timeline:   []models.TimelineEntry{{Status: models.StatusPending, UpdatedBy: "cust-1"}},
	}
}

func TestManageAcceptByProvider(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusPending))
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	b, err := svc.Manage("prov-user-1", models.RoleProvider, ManageInput{BookingID: "book-1", Action: "accept"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, b.Status)
	require.Len(t, b.Timeline, 2)
	assert.Equal(t, models.StatusConfirmed, b.Timeline[1].Status)
	assert.Equal(t, "prov-user-1", b.Timeline[1].UpdatedBy)
}

func TestManageStartByCustomerForbidden(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusConfirmed))
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	_, err := svc.Manage("cust-1", models.RoleCustomer, ManageInput{BookingID: "book-1", Action: "start"})
	assertServiceError(t, err, http.StatusForbidden, "Only provider can start service")

	stored, _ := repo.GetByID("book-1")
	assert.Equal(t, models.StatusConfirmed, stored.Status)
	assert.Len(t, stored.Timeline, 1)
}

func TestManageDeclineRecordsCancellation(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusPending))
	providers := newFakeProviderRepo(testProvider())
	svc := &DefaultBookingService{Bookings: repo, Providers: providers}

	b, err := svc.Manage("prov-user-1", models.RoleProvider, ManageInput{BookingID: "book-1", Action: "decline", Notes: "Out of town"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, b.Status)
	require.NotNil(t, b.Cancellation)
	assert.Equal(t, "Out of town", b.Cancellation.Reason)
	assert.Equal(t, "prov-user-1", b.Cancellation.CancelledBy)
	assert.Equal(t, 1, providers.statInc["cancelledBookings"])
}

func TestManageDeclineDefaultReason(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusPending))
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	b, err := svc.Manage("prov-user-1", models.RoleProvider, ManageInput{BookingID: "book-1", Action: "decline"})
	require.NoError(t, err)
	require.NotNil(t, b.Cancellation)
	assert.Equal(t, "Declined by service provider", b.Cancellation.Reason)
}

func TestManageCancelDefaultReasons(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusPending))
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	b, err := svc.Manage("cust-1", models.RoleCustomer, ManageInput{BookingID: "book-1", Action: "cancel"})
	require.NoError(t, err)
	require.NotNil(t, b.Cancellation)
	assert.Equal(t, "Cancelled by customer", b.Cancellation.Reason)

	repo = newFakeBookingRepo(seedBooking(models.StatusPending))
	svc = &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}
	b, err = svc.Manage("prov-user-1", models.RoleProvider, ManageInput{BookingID: "book-1", Action: "cancel"})
	require.NoError(t, err)
	require.NotNil(t, b.Cancellation)
	assert.Equal(t, "Cancelled by provider", b.Cancellation.Reason)
}

func TestManageCompleteSettlesCOD(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusInProgress))
	providers := newFakeProviderRepo(testProvider())
	svc := &DefaultBookingService{Bookings: repo, Providers: providers}

	b, err := svc.Manage("prov-user-1", models.RoleProvider, ManageInput{BookingID: "book-1", Action: "complete"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, b.Status)
	require.NotNil(t, b.Completion)
	assert.Equal(t, "Service completed successfully", b.Completion.WorkDescription)
	assert.Equal(t, models.PaymentPaid, b.Payment.Status)
	assert.NotNil(t, b.Payment.PaidAt)
	assert.Equal(t, 1280.0, b.Payment.CODAmount)
	assert.Equal(t, 1, providers.statInc["completedBookings"])
}

func TestManageCancelCompletedRejected(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusCompleted))
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	_, err := svc.Manage("cust-1", models.RoleCustomer, ManageInput{BookingID: "book-1", Action: "cancel"})
	assertServiceError(t, err, http.StatusBadRequest, "Cannot cancel completed bookings")
}

func TestManageStrangerForbidden(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusPending))
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	_, err := svc.Manage("someone-else", models.RoleCustomer, ManageInput{BookingID: "book-1", Action: "cancel"})
	assertServiceError(t, err, http.StatusForbidden, "Unauthorized to manage this booking")
}

func TestManageUnknownBooking(t *testing.T) {
	svc := &DefaultBookingService{Bookings: newFakeBookingRepo(), Providers: newFakeProviderRepo(testProvider())}

	_, err := svc.Manage("cust-1", models.RoleCustomer, ManageInput{BookingID: "missing", Action: "cancel"})
	assertServiceError(t, err, http.StatusNotFound, "Booking not found")
}

func TestManageAdminOverride(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusPending))
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	b, err := svc.Manage("admin-1", models.RoleAdmin, ManageInput{BookingID: "book-1", Action: "accept"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, b.Status)
}

func TestGetForParticipant(t *testing.T) {
	repo := newFakeBookingRepo(seedBooking(models.StatusPending))
	svc := &DefaultBookingService{Bookings: repo, Providers: newFakeProviderRepo(testProvider())}

	b, err := svc.GetForParticipant("cust-1", models.RoleCustomer, "book-1")
	require.NoError(t, err)
	assert.Equal(t, "book-1", b.ID)

	b, err = svc.GetForParticipant("prov-user-1", models.RoleCustomer, "book-1")
	require.NoError(t, err)
	assert.Equal(t, "book-1", b.ID)

	_, err = svc.GetForParticipant("someone-else", models.RoleCustomer, "book-1")
	assertServiceError(t, err, http.StatusForbidden, "Not a participant of this booking")
}

func TestListForProviderRequiresProfile(t *testing.T) {
	svc := &DefaultBookingService{Bookings: newFakeBookingRepo(), Providers: newFakeProviderRepo()}

	_, err := svc.ListForProvider("no-profile-user")
	assertServiceError(t, err, http.StatusNotFound, "Provider profile not found")
}

func TestNewInquiryPlaceholder(t *testing.T) {
	b := NewInquiry("cust-1", testProvider())

	assert.Equal(t, "inquiry", b.ServiceType)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, models.CategoryPlumber, b.Category)
	assert.Equal(t, 30, b.Duration)
	assert.Equal(t, "Not provided", b.ServiceLocation.Address)
	assert.Equal(t, "000000", b.ServiceLocation.Pincode)
	assert.Zero(t, b.Pricing.TotalAmount)
	require.Len(t, b.Timeline, 1)
	assert.Equal(t, models.StatusPending, b.Timeline[0].Status)
}
