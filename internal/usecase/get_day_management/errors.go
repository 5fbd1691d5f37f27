package get_day_management

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("get_day_management: salon not found")

	// ErrBranchNotFound возвращается, когда филиал не найден в салоне
	ErrBranchNotFound = errors.New("get_day_management: branch not found")

	// ErrMalformedSchedule возвращается при некорректном расписании филиала
	ErrMalformedSchedule = errors.New("get_day_management: malformed branch schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_management: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_management: internal error")
)
