package models

import "time"

// Row - результат одного прогона (размер, распределение, алгоритм)
type Row struct {
	Size              int           `json:"size"`
	Distribution      string        `json:"distribution"`       // тег распределения, например RANDOM
	DistributionLabel string        `json:"distribution_label"` // подпись для таблицы
	Algorithm         string        `json:"algorithm"`          // название алгоритма
	Elapsed           time.Duration `json:"elapsed_ns"`         // время только вызова Sort
	Valid             bool          `json:"valid"`              // прошла ли проверка порядка
}

// ElapsedMs возвращает время в миллисекундах с дробной частью
func (r Row) ElapsedMs() float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1e6
}

// Status возвращает "ok" или "error" по результату проверки
func (r Row) Status() string {

	if r.Valid {
		return "ok"
	}

	return "error"
}

// Summary - итог по всей сетке прогонов
type Summary struct {
	Trials         int           `json:"trials"`
	Failures       int           `json:"failures"`
	ElementsSorted int64         `json:"elements_sorted"`
	TotalElapsed   time.Duration `json:"total_elapsed_ns"`
}

// Add учитывает строку в итоге
func (s *Summary) Add(row Row) {

	s.Trials++
	if !row.Valid {
		s.Failures++
	}
	s.ElementsSorted += int64(row.Size)
	s.TotalElapsed += row.Elapsed
}
