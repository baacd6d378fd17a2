package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/IPampurin/sort-benchmark/pkg/generator"
	"github.com/IPampurin/sort-benchmark/pkg/models"
	"github.com/IPampurin/sort-benchmark/pkg/sorting"
)

// nopLogger глушит логи в тестах, но считает предупреждения
type nopLogger struct {
	warns int
}

func (l *nopLogger) Info(string, ...any)  {}
func (l *nopLogger) Warn(string, ...any)  { l.warns++ }
func (l *nopLogger) Error(string, ...any) {}

// countingRecorder запоминает все учтённые строки
type countingRecorder struct {
	rows []models.Row
}

func (c *countingRecorder) Observe(row models.Row) {
	c.rows = append(c.rows, row)
}

// brokenSort ничего не сортирует
type brokenSort struct{}

func (brokenSort) Sort([]int)   {}
func (brokenSort) Name() string { return "Broken" }

func allAlgorithms(t *testing.T) []sorting.Algorithm {

	algorithms, err := sorting.NewSet(sorting.Keys(), 1)
	require.NoError(t, err)

	return algorithms
}

func TestRunGrid(t *testing.T) {

	recorder := &countingRecorder{}
	r := New(Options{
		Sizes:         []int{0, 10, 200},
		Distributions: generator.All(),
		Algorithms:    allAlgorithms(t),
		Seed:          12345,
		Log:           &nopLogger{},
		Recorder:      recorder,
	})

	var rows []models.Row
	summary, err := r.Run(context.Background(), func(row models.Row) error {
		rows = append(rows, row)
		return nil
	})
	require.NoError(t, err)

	// 3 размера x 4 распределения x 5 алгоритмов
	require.Len(t, rows, 60)
	assert.Equal(t, 60, summary.Trials)
	assert.Equal(t, 0, summary.Failures)
	assert.Equal(t, int64((0+10+200)*4*5), summary.ElementsSorted)
	assert.Len(t, recorder.rows, 60)

	for _, row := range rows {
		assert.True(t, row.Valid, "%d %s %s", row.Size, row.Distribution, row.Algorithm)
	}

	// порядок: размер, затем распределение, затем алгоритм
	assert.Equal(t, 0, rows[0].Size)
	assert.Equal(t, "RANDOM", rows[0].Distribution)
	assert.Equal(t, "Random", rows[0].DistributionLabel)
	assert.Equal(t, "Deterministic QuickSort", rows[0].Algorithm)
	assert.Equal(t, "Randomized QuickSort", rows[1].Algorithm)
	assert.Equal(t, "SORTED_ASC", rows[5].Distribution)
	assert.Equal(t, 10, rows[20].Size)
	assert.Equal(t, "MergeSort", rows[59].Algorithm)
	assert.Equal(t, "KILLER_SEQUENCE", rows[59].Distribution)
}

// TestRunInvalidRowDoesNotStop проверяет, что ошибка проверки только печатается
func TestRunInvalidRowDoesNotStop(t *testing.T) {

	log := &nopLogger{}
	r := New(Options{
		Sizes:         []int{5},
		Distributions: []generator.Distribution{generator.SortedDesc, generator.SortedAsc},
		Algorithms:    []sorting.Algorithm{brokenSort{}, sorting.HeapSort{}},
		Seed:          1,
		Log:           log,
	})

	var rows []models.Row
	summary, err := r.Run(context.Background(), func(row models.Row) error {
		rows = append(rows, row)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.False(t, rows[0].Valid)
	assert.Equal(t, "error", rows[0].Status())
	assert.True(t, rows[1].Valid)
	assert.True(t, rows[2].Valid, "отсортированный вход валиден и без сортировки")
	assert.True(t, rows[3].Valid)
	assert.Equal(t, 1, summary.Failures)
	assert.Equal(t, 1, log.warns)
}

func TestRunCancelled(t *testing.T) {

	ctx, cancel := context.WithCancel(context.Background())

	r := New(Options{
		Sizes:         []int{10, 20},
		Distributions: generator.All(),
		Algorithms:    allAlgorithms(t),
		Seed:          1,
		Log:           &nopLogger{},
	})

	emitted := 0
	summary, err := r.Run(ctx, func(row models.Row) error {
		emitted++
		if emitted == 3 {
			cancel()
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, emitted)
	assert.Equal(t, 3, summary.Trials)
}

func TestRunEmitError(t *testing.T) {

	errWrite := errors.New("write failed")

	r := New(Options{
		Sizes:         []int{10},
		Distributions: generator.All(),
		Algorithms:    allAlgorithms(t),
		Seed:          1,
		Log:           &nopLogger{},
	})

	calls := 0
	_, err := r.Run(context.Background(), func(row models.Row) error {
		calls++
		return errWrite
	})

	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 1, calls)
}

func TestRunSpans(t *testing.T) {

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	r := New(Options{
		Sizes:         []int{5},
		Distributions: []generator.Distribution{generator.SortedDesc},
		Algorithms:    []sorting.Algorithm{sorting.MergeSort{}, brokenSort{}},
		Seed:          1,
		Log:           &nopLogger{},
		Tracer:        tp.Tracer("test"),
	})

	_, err := r.Run(context.Background(), func(models.Row) error { return nil })
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "bench.trial", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
