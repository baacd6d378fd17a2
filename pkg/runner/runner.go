// Package runner прогоняет сетку размер x распределение x алгоритм
package runner

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/IPampurin/sort-benchmark/pkg/generator"
	"github.com/IPampurin/sort-benchmark/pkg/models"
	"github.com/IPampurin/sort-benchmark/pkg/sorting"
)

// Logger - то, что раннер использует от логгера (logger.Logger из wbf подходит)
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Recorder учитывает прогоны в метриках
type Recorder interface {
	Observe(row models.Row)
}

// Options - всё, что нужно раннеру
type Options struct {
	Sizes         []int
	Distributions []generator.Distribution
	Algorithms    []sorting.Algorithm
	Seed          uint64

	Log      Logger
	Recorder Recorder     // может быть nil
	Tracer   trace.Tracer // может быть nil
}

// Runner последовательно выполняет прогоны
type Runner struct {
	opts Options
}

// New создаёт раннер
func New(opts Options) *Runner {
	return &Runner{opts: opts}
}

// Run для каждой пары (размер, распределение) генерирует один массив,
// каждому алгоритму отдаёт свою копию, замеряет только вызов Sort и передаёт строку в emit.
// Невалидный результат не останавливает сетку.
// Отмена ctx проверяется между прогонами, возвращается частичный итог и ctx.Err()
func (r *Runner) Run(ctx context.Context, emit func(models.Row) error) (models.Summary, error) {

	var summary models.Summary

	r.opts.Log.Info("запуск бенчмарка",
		"sizes", r.opts.Sizes,
		"distributions", len(r.opts.Distributions),
		"algorithms", len(r.opts.Algorithms),
		"seed", r.opts.Seed)

	for _, size := range r.opts.Sizes {
		for _, dist := range r.opts.Distributions {

			// генератор пересоздаётся на каждую пару, чтобы данные не зависели от порядка сетки
			testData := generator.Generate(size, dist, generator.NewSource(r.opts.Seed))

			for _, alg := range r.opts.Algorithms {
				if err := ctx.Err(); err != nil {
					r.opts.Log.Warn("бенчмарк прерван", "done", summary.Trials)
					return summary, err
				}

				row := r.trial(ctx, size, dist, alg, testData)
				summary.Add(row)

				if err := emit(row); err != nil {
					r.opts.Log.Error("ошибка вывода строки отчёта", "error", err)
					return summary, fmt.Errorf("ошибка вывода строки отчёта: %w", err)
				}
			}
		}
	}

	r.opts.Log.Info("бенчмарк завершён",
		"trials", summary.Trials,
		"failures", summary.Failures,
		"total", summary.TotalElapsed.String())

	return summary, nil
}

// trial - один прогон алгоритма на копии данных
func (r *Runner) trial(ctx context.Context, size int, dist generator.Distribution, alg sorting.Algorithm, testData []int) models.Row {

	var span trace.Span
	if r.opts.Tracer != nil {
		_, span = r.opts.Tracer.Start(ctx, "bench.trial", trace.WithAttributes(
			attribute.Int("size", size),
			attribute.String("distribution", string(dist)),
			attribute.String("algorithm", alg.Name()),
		))
		defer span.End()
	}

	dataCopy := slices.Clone(testData)

	start := time.Now()
	alg.Sort(dataCopy)
	elapsed := time.Since(start)

	row := models.Row{
		Size:              size,
		Distribution:      string(dist),
		DistributionLabel: dist.Label(),
		Algorithm:         alg.Name(),
		Elapsed:           elapsed,
		Valid:             sorting.Validate(alg.Sort, dataCopy),
	}

	if !row.Valid {
		r.opts.Log.Warn("результат сортировки не упорядочен",
			"size", size, "distribution", string(dist), "algorithm", alg.Name())
	}

	if span != nil {
		span.SetAttributes(
			attribute.Float64("elapsed_ms", row.ElapsedMs()),
			attribute.Bool("valid", row.Valid),
		)
		if !row.Valid {
			span.SetStatus(codes.Error, "unsorted output")
		}
	}

	if r.opts.Recorder != nil {
		r.opts.Recorder.Observe(row)
	}

	return row
}
