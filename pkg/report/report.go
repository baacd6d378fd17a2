// Package report печатает строки бенчмарка таблицей или JSON
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/IPampurin/sort-benchmark/pkg/models"
)

// ErrUnknownFormat возвращается для неизвестного формата вывода
var ErrUnknownFormat = errors.New("неизвестный формат отчёта")

// форматы вывода
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Printer выводит заголовок, строки и итог
type Printer interface {
	Header() error
	Row(row models.Row) error
	Summary(s models.Summary) error
}

// New выбирает принтер по формату, colored влияет только на таблицу
func New(format string, w io.Writer, colored bool) (Printer, error) {

	switch format {
	case FormatTable, "":
		return NewTable(w, colored), nil
	case FormatJSON:
		return NewJSON(w), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ширины колонок таблицы
const (
	headerFormat = "%-10s %-20s %-35s %-15s %-10s\n"
	rowFormat    = "%-10d %-20s %-35s %-15.3f %s\n"
	statusWidth  = 10
)

// Table - таблица фиксированной ширины
type Table struct {
	w    io.Writer
	ok   *color.Color
	fail *color.Color
}

// NewTable создаёт табличный принтер
func NewTable(w io.Writer, colored bool) *Table {

	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	if colored {
		ok.EnableColor()
		fail.EnableColor()
	} else {
		ok.DisableColor()
		fail.DisableColor()
	}

	return &Table{w: w, ok: ok, fail: fail}
}

// Header печатает шапку таблицы
func (t *Table) Header() error {

	_, err := fmt.Fprintf(t.w, headerFormat, "Size", "Distribution", "Algorithm", "Time (ms)", "Status")
	return err
}

// Row печатает одну строку, статус выравнивается до раскраски, чтобы escape-коды не ломали ширину
func (t *Table) Row(row models.Row) error {

	status := fmt.Sprintf("%-*s", statusWidth, row.Status())
	if row.Valid {
		status = t.ok.Sprint(status)
	} else {
		status = t.fail.Sprint(status)
	}

	_, err := fmt.Fprintf(t.w, rowFormat, row.Size, row.DistributionLabel, row.Algorithm, row.ElapsedMs(), status)
	return err
}

// Summary печатает итоговую строку
func (t *Table) Summary(s models.Summary) error {

	_, err := fmt.Fprintf(t.w, "\ntrials: %d, failures: %d, elements sorted: %s, total sort time: %.3f ms\n",
		s.Trials, s.Failures, humanize.Comma(s.ElementsSorted), float64(s.TotalElapsed.Nanoseconds())/1e6)
	return err
}

// JSON - по одному объекту на строку
type JSON struct {
	enc *json.Encoder
}

// NewJSON создаёт JSON принтер
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Header у JSON отсутствует
func (j *JSON) Header() error {
	return nil
}

// jsonRow добавляет к строке поля, которые в таблице вычисляются
type jsonRow struct {
	models.Row
	ElapsedMs float64 `json:"elapsed_ms"`
	Status    string  `json:"status"`
}

// Row пишет строку отдельным объектом
func (j *JSON) Row(row models.Row) error {
	return j.enc.Encode(jsonRow{Row: row, ElapsedMs: row.ElapsedMs(), Status: row.Status()})
}

// Summary пишет итог последним объектом
func (j *JSON) Summary(s models.Summary) error {
	return j.enc.Encode(struct {
		Summary models.Summary `json:"summary"`
	}{Summary: s})
}
