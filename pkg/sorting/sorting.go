// Package sorting содержит сравниваемые в бенчмарке алгоритмы сортировки
package sorting

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownAlgorithm возвращается для неизвестного ключа алгоритма
var ErrUnknownAlgorithm = errors.New("неизвестный алгоритм")

// Algorithm - сортировка на месте в неубывающем порядке
type Algorithm interface {
	Sort(arr []int)
	Name() string
}

// ключи алгоритмов в порядке вывода по умолчанию
const (
	KeyDeterministic = "deterministic"
	KeyRandomized    = "randomized"
	KeyMedianOfThree = "median3"
	KeyHeap          = "heap"
	KeyMerge         = "merge"
)

// Keys возвращает ключи всех алгоритмов в порядке по умолчанию,
// используется как значение BENCH_ALGORITHMS, если оно не задано
func Keys() []string {

	return []string{KeyDeterministic, KeyRandomized, KeyMedianOfThree, KeyHeap, KeyMerge}
}

// New создаёт алгоритм по ключу, seed используется только рандомизированным quicksort
func New(key string, seed uint64) (Algorithm, error) {

	switch key {
	case KeyDeterministic:
		return DeterministicQuickSort{}, nil
	case KeyRandomized:
		return NewRandomizedQuickSort(seed), nil
	case KeyMedianOfThree:
		return MedianOfThreeQuickSort{}, nil
	case KeyHeap:
		return HeapSort{}, nil
	case KeyMerge:
		return MergeSort{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
}

// NewSet создаёт набор алгоритмов в порядке ключей
func NewSet(keys []string, seed uint64) ([]Algorithm, error) {

	algorithms := make([]Algorithm, 0, len(keys))
	for _, key := range keys {
		alg, err := New(key, seed)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, alg)
	}

	return algorithms, nil
}

// Validate сортирует копию arr переданной функцией и проверяет порядок,
// исходный слайс не меняется
func Validate(sort func([]int), arr []int) bool {

	clone := slices.Clone(arr)
	sort(clone)

	return IsSorted(clone)
}

// IsSorted проверяет, что соседние элементы не убывают
func IsSorted(arr []int) bool {

	for i := 0; i < len(arr)-1; i++ {
		if arr[i] > arr[i+1] {
			return false
		}
	}

	return true
}

func swap(arr []int, i, j int) {
	arr[i], arr[j] = arr[j], arr[i]
}
