package hours

import "errors"

var (
	// ErrMalformedSchedule возвращается при некорректном времени в расписании
	// (не HH:MM, часы вне 0-23, минуты вне 0-59, open >= close).
	// Ошибка конфигурации не маскируется дефолтами - владелец настроек
	// должен увидеть проблему, а не получить неверно отрисованную сетку
	ErrMalformedSchedule = errors.New("hours: malformed schedule")
)
