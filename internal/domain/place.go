package domain

// Place рабочее место салона (кресло, кабинет), физический ресурс для записи
type Place struct {
	ID       int64
	SalonID  int64
	BranchID int64 // Место всегда принадлежит ровно одному филиалу
	Name     string
	Capacity int // Количество мастеров, которые могут работать одновременно (>= 0)
}

// IsSchedulable возвращает true, если место участвует в планировании
// Место без филиала невалидно и исключается из всех сеток
func (p *Place) IsSchedulable() bool {
	return p.BranchID > 0
}

// Master мастер салона, поставщик услуг
type Master struct {
	ID       int64
	SalonID  int64
	BranchID *int64 // nil = мастер не закреплен за филиалом и относится к общему пулу
	Name     string
}

// BelongsToBranch проверяет, относится ли мастер к указанному филиалу
// Мастера из общего пула (без филиала) относятся к любому филиалу
func (m *Master) BelongsToBranch(branchID int64) bool {
	return m.BranchID == nil || *m.BranchID == branchID
}
