package assignment

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда закрепление не найдено
	ErrAssignmentNotFound = errors.New("assignment.repository: assignment not found")

	// ErrExclusivityViolation возвращается, когда уникальный индекс по
	// (salon_id, master_id, assignment_date) отклонил запись - мастер уже
	// закреплен за другим местом на эту дату. Последний рубеж защиты
	// инварианта, основная проверка выполняется в usecase внутри транзакции
	ErrExclusivityViolation = errors.New("assignment.repository: master already assigned on this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assignment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assignment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("assignment.repository: failed to scan row")
)
