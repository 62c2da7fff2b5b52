package domain

// Значения по умолчанию
const (
	DefaultSlotStepMin = 30
	DefaultCapacity    = 1
	DefaultPage        = 1
	DefaultPageLimit   = 20
	RecentBookingsSize = 5
)

// Ограничения бизнес-валидации
const (
	MinServiceDuration = 5
	MaxServiceDuration = 480 // 8 часов
	MinSlotStepMin     = 5
	MaxSlotStepMin     = 120
	MinCapacity        = 1
	MaxCapacity        = 100
	MaxPageLimit       = 100
	MaxDescriptionLen  = 500
	MaxCustomerNoteLen = 500
	MaxBookingNoteLen  = 1000
	MinNameLen         = 2
	MaxNameLen         = 100
)

// Форматы
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
