package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	getAvailableSlots "github.com/m04kA/BookEasy-Service/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	Available         bool      `json:"available"`
	RemainingCapacity int       `json:"remainingCapacity"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами даты
type AvailableSlotsResponse struct {
	ServiceID uuid.UUID      `json:"serviceId"`
	Date      string         `json:"date"` // YYYY-MM-DD
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:         s.StartTime,
			EndTime:           s.EndTime,
			Available:         s.Available,
			RemainingCapacity: s.RemainingCapacity,
		})
	}

	return &AvailableSlotsResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
