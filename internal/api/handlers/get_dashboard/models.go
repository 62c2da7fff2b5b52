package get_dashboard

import (
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
	"github.com/m04kA/BookEasy-Service/internal/service/reports"
)

// DashboardResponse HTTP модель сводки
type DashboardResponse struct {
	Today             int                              `json:"today"`
	Week              int                              `json:"week"`
	Month             int                              `json:"month"`
	CancelledThisWeek int                              `json:"cancelledThisWeek"`
	Pending           int                              `json:"pending"`
	Recent            []*bookingModels.BookingResponse `json:"recent"`
}

// FromDashboard конвертирует сводку сервиса отчетов
func FromDashboard(d *reports.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Today:             d.Today,
		Week:              d.Week,
		Month:             d.Month,
		CancelledThisWeek: d.CancelledThisWeek,
		Pending:           d.Pending,
		Recent:            bookingModels.FromDomainBookings(d.Recent),
	}
}
