// Package generator строит тестовые массивы заданного размера и распределения
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrUnknownDistribution возвращается для неизвестного имени распределения
var ErrUnknownDistribution = errors.New("неизвестное распределение")

// Distribution - тип входных данных
type Distribution string

const (
	Random         Distribution = "RANDOM"          // равномерно из [0, 10*size)
	SortedAsc      Distribution = "SORTED_ASC"      // 0, 1, ..., size-1
	SortedDesc     Distribution = "SORTED_DESC"     // size-1, ..., 1, 0
	KillerSequence Distribution = "KILLER_SEQUENCE" // i % 100
)

// killerPeriod - период повторяющегося паттерна
const killerPeriod = 100

// подписи для таблицы
var labels = map[Distribution]string{
	Random:         "Random",
	SortedAsc:      "Sorted (asc)",
	SortedDesc:     "Sorted (desc)",
	KillerSequence: "Killer sequence",
}

// All возвращает все распределения в порядке вывода
func All() []Distribution {

	return []Distribution{Random, SortedAsc, SortedDesc, KillerSequence}
}

// Parse распознаёт имя распределения без учёта регистра
func Parse(name string) (Distribution, error) {

	d := Distribution(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := labels[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}

	return d, nil
}

// ParseList распознаёт список имён с сохранением порядка
func ParseList(names []string) ([]Distribution, error) {

	dists := make([]Distribution, 0, len(names))
	for _, name := range names {
		d, err := Parse(name)
		if err != nil {
			return nil, err
		}
		dists = append(dists, d)
	}

	return dists, nil
}

// Label возвращает подпись распределения для отчёта
func (d Distribution) Label() string {

	if label, ok := labels[d]; ok {
		return label
	}

	return string(d)
}

// NewSource создаёт явный генератор случайных чисел с фиксированным seed
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate возвращает новый массив длины size,
// rng нужен только для Random, для остальных может быть nil
func Generate(size int, dist Distribution, rng *rand.Rand) []int {

	if size < 0 {
		size = 0
	}
	arr := make([]int, size)

	switch dist {
	case Random:
		for i := range arr {
			arr[i] = rng.IntN(size * 10)
		}
	case SortedAsc:
		for i := range arr {
			arr[i] = i
		}
	case SortedDesc:
		for i := range arr {
			arr[i] = size - i - 1
		}
	case KillerSequence:
		for i := range arr {
			arr[i] = i % killerPeriod
		}
	}

	return arr
}
