package assign_master

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("assign_master: salon not found")

	// ErrPlaceNotFound возвращается, когда место не найдено в салоне
	ErrPlaceNotFound = errors.New("assign_master: place not found")

	// ErrPlaceNotSchedulable возвращается, когда место не привязано к филиалу
	// и потому исключено из планирования
	ErrPlaceNotSchedulable = errors.New("assign_master: place has no branch")

	// ErrMasterNotFound возвращается, когда мастер не найден в салоне
	ErrMasterNotFound = errors.New("assign_master: master not found")

	// ErrMasterAlreadyAssigned возвращается, когда мастер уже закреплен за
	// другим местом на эту дату. Нарушение бизнес-правила сообщается
	// оператору как отклоненное действие - другое место никогда не
	// освобождается автоматически
	ErrMasterAlreadyAssigned = errors.New("assign_master: master is already assigned to another place on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assign_master: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("assign_master: internal error")
)
