package domain

// Slot granularities used by the product views
const (
	// OverviewSlotMinutes шаг сетки недельного обзора плотности записей
	OverviewSlotMinutes = 10

	// ManagementSlotMinutes шаг сетки дневного управления местами
	ManagementSlotMinutes = 30
)

// Fallback window
// Используется, когда ни один день недели не включен в расписании:
// UI всегда должен иметь строки для отрисовки. Это UX-решение, а не данные
// о реальных часах работы, поэтому флаг UsedFallback обязан доходить до клиента
const (
	FallbackOpenTime  = "09:00"
	FallbackCloseTime = "18:00"
)

// Density bucket thresholds
const (
	// LowDensityThreshold граница между low и high: доля занятости <= 0.5 - low
	LowDensityThreshold = 0.5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DaysPerWeek количество дат в недельном обзоре
const DaysPerWeek = 7
