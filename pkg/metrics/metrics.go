// Package metrics собирает прометеус метрики прогонов и выгружает их в textfile формате
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/IPampurin/sort-benchmark/pkg/models"
)

// Metrics держит собственный реестр, чтобы не смешиваться с глобальным
type Metrics struct {
	registry *prometheus.Registry

	// время сортировки по алгоритмам и распределениям
	trialDuration *prometheus.HistogramVec
	// количество прогонов по статусу: ok, error
	trials *prometheus.CounterVec
	// сколько всего элементов прошло через сортировки
	elementsSorted prometheus.Counter
}

// New создаёт реестр и регистрирует в нём метрики
func New() *Metrics {

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		trialDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sort_benchmark_trial_duration_seconds",
			Help:    "Время одного вызова сортировки",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"algorithm", "distribution"}),
		trials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sort_benchmark_trials_total",
			Help: "Количество прогонов по результату проверки",
		}, []string{"status"}),
		elementsSorted: factory.NewCounter(prometheus.CounterOpts{
			Name: "sort_benchmark_elements_sorted_total",
			Help: "Суммарное количество отсортированных элементов",
		}),
	}
}

// Observe учитывает один прогон
func (m *Metrics) Observe(row models.Row) {

	m.trialDuration.WithLabelValues(row.Algorithm, row.Distribution).Observe(row.Elapsed.Seconds())
	m.trials.WithLabelValues(row.Status()).Inc()
	m.elementsSorted.Add(float64(row.Size))
}

// Registry отдаёт реестр (для тестов и возможного promhttp)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile записывает метрики в файл для textfile коллектора node_exporter,
// при пустом пути ничего не делает
func (m *Metrics) WriteTextfile(path string) error {

	if path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("ошибка выгрузки метрик в %s: %w", path, err)
	}

	return nil
}
