package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	ServiceID uuid.UUID // ID услуги
	Date      time.Time // Дата в часовом поясе сервиса (время суток игнорируется)
}

// Response модель ответа со списком слотов
type Response struct {
	ServiceID uuid.UUID
	Date      time.Time // Полночь запрошенной даты
	Slots     []domain.Slot
}
