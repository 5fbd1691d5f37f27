package domain

import "time"

// Assignment закрепление мастера за местом на конкретную календарную дату
//
// Единственная сущность, которой владеет сервис расписания: создается командой
// assign, удаляется командой unassign, других переходов жизненного цикла нет
// (не истекает, не каскадится от изменений записей).
//
// Бизнес-инвариант: на фиксированную дату отображение место -> мастер
// инъективно по мастеру - один мастер не может быть закреплен за двумя
// местами в один день. Инвариант обеспечивается сериализуемой транзакцией
// команды assign и уникальным индексом в схеме БД
type Assignment struct {
	ID       int64
	SalonID  int64
	PlaceID  int64
	MasterID int64
	Date     time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DensityBucket трехуровневая классификация заполненности слота
type DensityBucket string

const (
	// BucketFree слот без записей
	BucketFree DensityBucket = "free"

	// BucketLow занято не больше половины мест
	BucketLow DensityBucket = "low"

	// BucketHigh занято больше половины мест
	BucketHigh DensityBucket = "high"

	// BucketUnknown суммарная вместимость равна нулю - заполненность
	// не определена; отличается от free, чтобы UI не показывал
	// "свободно" там, где просто нет данных о вместимости
	BucketUnknown DensityBucket = "unknown"
)
