package provider

import (
	"net/http"
	"testing"

	providerRepo "urbanfix/database/repository/provider"
	"urbanfix/models"
	"urbanfix/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeProviderRepo struct {
	providers    map[string]*models.Provider
	searchResult []models.Provider
	lastCriteria providerRepo.SearchCriteria
	updates      []bson.M
}

func newFakeProviderRepo(seed ...*models.Provider) *fakeProviderRepo {
	f := &fakeProviderRepo{providers: make(map[string]*models.Provider)}
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

func (f *fakeProviderRepo) Search(criteria providerRepo.SearchCriteria) ([]models.Provider, error) {
	f.lastCriteria = criteria
	return f.searchResult, nil
}

func (f *fakeProviderRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	f.updates = append(f.updates, updateDoc)
	return nil
}

func (f *fakeProviderRepo) UpdateRating(string, float64, int) error { return nil }
func (f *fakeProviderRepo) IncrementStat(string, string, int) error { return nil }
func (f *fakeProviderRepo) Count() (int64, error)                   { return int64(len(f.providers)), nil }

type fakeUserRepo struct {
	updates map[string][]bson.M
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{updates: make(map[string][]bson.M)}
}

func (f *fakeUserRepo) Create(*models.User) error                    { return nil }
func (f *fakeUserRepo) GetByID(string) (*models.User, error)         { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error)      { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(string, bson.M) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	f.updates[id] = append(f.updates[id], updateDoc)
	return nil
}

func (f *fakeUserRepo) Count() (int64, error) { return 0, nil }

func assertServiceError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	require.Error(t, err)
	var svcErr *utils.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, status, svcErr.Status)
	assert.Equal(t, msg, svcErr.Message)
}

func validRegister() RegisterInput {
	return RegisterInput{
		BusinessName: "Sharma Plumbing Works",
		Description:  "Residential plumbing and fittings",
		Categories:   []string{"plumber"},
		Pricing:      models.ProviderPricing{HourlyRate: 500},
	}
}

func TestSanitizeServiceAreas(t *testing.T) {
	point := models.NewGeoPoint(18.52, 73.85)
	broken := models.GeoPoint{Type: "Point", Coordinates: []float64{73.85}}

	areas := []models.ServiceArea{
		{Location: &point, RadiusKm: 5, AreaName: "Shivajinagar"},
		{Location: nil, AreaName: "no point"},
		{Location: &broken, AreaName: "bad point"},
		{Location: &point, AreaName: "defaults radius"},
	}
	cleaned := sanitizeServiceAreas(areas)

	require.Len(t, cleaned, 2)
	assert.Equal(t, 5.0, cleaned[0].RadiusKm)
	assert.Equal(t, 10.0, cleaned[1].RadiusKm)
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultProviderService{Repo: newFakeProviderRepo(), Users: newFakeUserRepo()}

	in := validRegister()
	in.BusinessName = ""
	_, err := svc.Register("user-1", in)
	assertServiceError(t, err, http.StatusBadRequest, "Missing businessName or description")

	in = validRegister()
	in.Categories = nil
	_, err = svc.Register("user-1", in)
	assertServiceError(t, err, http.StatusBadRequest, "At least one category is required")

	in = validRegister()
	in.Categories = []string{"astrologer"}
	_, err = svc.Register("user-1", in)
	assertServiceError(t, err, http.StatusBadRequest, "Invalid category: astrologer")
}

func TestRegisterRejectsSecondProfile(t *testing.T) {
	existing := &models.Provider{ID: "prov-1", UserID: "user-1"}
	svc := &DefaultProviderService{Repo: newFakeProviderRepo(existing), Users: newFakeUserRepo()}

	_, err := svc.Register("user-1", validRegister())
	assertServiceError(t, err, http.StatusBadRequest, "Provider profile already exists for this user")
}

func TestRegisterCreatesProfileAndFlipsRole(t *testing.T) {
	repo := newFakeProviderRepo()
	users := newFakeUserRepo()
	svc := &DefaultProviderService{Repo: repo, Users: users}

	p, err := svc.Register("user-1", validRegister())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, []models.Category{models.CategoryPlumber}, p.Categories)
	assert.True(t, p.IsActive)
	assert.Equal(t, models.VerificationPending, p.VerificationStatus)
	assert.Equal(t, models.PricingHourly, p.Pricing.Type)
	assert.Equal(t, "INR", p.Pricing.Currency)
	assert.False(t, p.Stats.JoinedDate.IsZero())

	require.Len(t, users.updates["user-1"], 1)
	set, ok := users.updates["user-1"][0]["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, models.RoleProvider, set["role"])
}

func TestSearchInvalidCategory(t *testing.T) {
	svc := &DefaultProviderService{Repo: newFakeProviderRepo(), Users: newFakeUserRepo()}

	_, err := svc.Search(SearchFilters{Category: "astrologer"})
	assertServiceError(t, err, http.StatusBadRequest, "Invalid category: astrologer")
}

func TestSearchSetsDistanceKm(t *testing.T) {
	repo := newFakeProviderRepo()
	repo.searchResult = []models.Provider{
		{ID: "prov-1", Distance: 2440},
		{ID: "prov-2", Distance: 7890},
	}
	svc := &DefaultProviderService{Repo: repo, Users: newFakeUserRepo()}

	point := models.NewGeoPoint(18.52, 73.85)
	out, err := svc.Search(SearchFilters{Point: &point, RadiusMeters: 10000})
	require.NoError(t, err)

	require.Len(t, out, 2)
	require.NotNil(t, out[0].DistanceKm)
	assert.Equal(t, 2.4, *out[0].DistanceKm)
	require.NotNil(t, out[1].DistanceKm)
	assert.Equal(t, 7.9, *out[1].DistanceKm)
	assert.Equal(t, &point, repo.lastCriteria.Point)
}

func TestSearchNoMatchesReturnsEmptySlice(t *testing.T) {
	svc := &DefaultProviderService{Repo: newFakeProviderRepo(), Users: newFakeUserRepo()}

	out, err := svc.Search(SearchFilters{Category: "plumber"})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRoundDistanceKm(t *testing.T) {
	tests := []struct {
		meters float64
		want   float64
	}{
		{0, 0},
		{2440, 2.4},
		{2460, 2.5},
		{999, 1.0},
		{10500, 10.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundDistanceKm(tt.meters))
	}
}

func TestAddPhoto(t *testing.T) {
	existing := &models.Provider{ID: "prov-1", UserID: "user-1"}
	repo := newFakeProviderRepo(existing)
	svc := &DefaultProviderService{Repo: repo, Users: newFakeUserRepo()}

	p, err := svc.AddPhoto("user-1", "https://cdn.example.com/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/p.jpg"}, p.Photos)
	require.Len(t, repo.updates, 1)

	_, err = svc.AddPhoto("no-profile", "https://cdn.example.com/p.jpg")
	assertServiceError(t, err, http.StatusNotFound, "Provider profile not found")
}

func TestGetByIDNotFound(t *testing.T) {
	svc := &DefaultProviderService{Repo: newFakeProviderRepo(), Users: newFakeUserRepo()}

	_, err := svc.GetByID("missing")
	assertServiceError(t, err, http.StatusNotFound, "Provider not found")
}
