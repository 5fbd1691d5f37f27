package get_week_overview

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("get_week_overview: salon not found")

	// ErrBranchNotFound возвращается, когда филиал не найден в салоне
	ErrBranchNotFound = errors.New("get_week_overview: branch not found")

	// ErrMalformedSchedule возвращается при некорректном расписании филиала
	// Ошибка конфигурации доводится до вызывающего, а не маскируется
	ErrMalformedSchedule = errors.New("get_week_overview: malformed branch schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_week_overview: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_overview: internal error")
)
