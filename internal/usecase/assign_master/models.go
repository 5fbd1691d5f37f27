package assign_master

import "time"

// Request модель запроса на закрепление мастера за местом
type Request struct {
	UserID   int64     // ID оператора (для логирования, не влияет на результат)
	SalonID  int64     // ID салона
	PlaceID  int64     // ID места
	MasterID int64     // ID мастера
	Date     time.Time // Дата закрепления (без времени)
}

// Response модель ответа с созданным или подтвержденным закреплением
type Response struct {
	ID       int64     // ID закрепления
	SalonID  int64     // ID салона
	PlaceID  int64     // ID места
	MasterID int64     // ID мастера
	Date     time.Time // Дата закрепления

	CreatedAt time.Time
	UpdatedAt time.Time
}
