package admin

import (
	bookingRepo "urbanfix/database/repository/booking"
	providerRepo "urbanfix/database/repository/provider"
	userRepo "urbanfix/database/repository/user"
	"urbanfix/models"
)

// Stats is the simple counts/sums summary shown on the admin dashboard.
type Stats struct {
	TotalUsers     int64                          `json:"totalUsers"`
	TotalProviders int64                          `json:"totalProviders"`
	TotalBookings  int64                          `json:"totalBookings"`
	ByStatus       map[models.BookingStatus]int64 `json:"bookingsByStatus"`
	TotalRevenue   float64                        `json:"totalRevenue"`
}

// AdminService exposes platform-level aggregates.
type AdminService interface {
	GetStats() (*Stats, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Users     userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	Bookings  bookingRepo.BookingRepository
}

func (s *DefaultAdminService) GetStats() (*Stats, error) {
	users, err := s.Users.Count()
	if err != nil {
		return nil, err
	}
	providers, err := s.Providers.Count()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Bookings.CountByStatus()
	if err != nil {
		return nil, err
	}
	var total int64
	for _, n := range byStatus {
		total += n
	}
	revenue, err := s.Bookings.SumCompletedTotals()
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalUsers:     users,
		TotalProviders: providers,
		TotalBookings:  total,
		ByStatus:       byStatus,
		TotalRevenue:   revenue,
	}, nil
}
