package get_stats

import getStats "github.com/m04kA/KDR-BookingService/internal/usecase/get_stats"

// StatsResponse HTTP response model
type StatsResponse struct {
	TotalBookings     int64   `json:"total_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	PendingBookings   int64   `json:"pending_bookings"`
	UpcomingBookings  int64   `json:"upcoming_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	RevenueFormatted  string  `json:"revenue_formatted"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStats.Response) *StatsResponse {
	return &StatsResponse{
		TotalBookings:     resp.TotalBookings,
		ConfirmedBookings: resp.ConfirmedBookings,
		PendingBookings:   resp.PendingBookings,
		UpcomingBookings:  resp.UpcomingBookings,
		TotalRevenue:      resp.TotalRevenue,
		RevenueFormatted:  resp.RevenueFormatted,
	}
}
