package sorting

import "math/rand/v2"

// DeterministicQuickSort - quicksort с опорным последним элементом (схема Ломуто),
// на отсортированных данных деградирует до O(n²)
type DeterministicQuickSort struct{}

// Sort сортирует arr на месте
func (DeterministicQuickSort) Sort(arr []int) {

	if len(arr) == 0 {
		return
	}
	quickSort(arr, 0, len(arr)-1, nil)
}

// Name возвращает название для отчёта
func (DeterministicQuickSort) Name() string {
	return "Deterministic QuickSort"
}

// RandomizedQuickSort перед разбиением ставит в позицию опорного случайный элемент диапазона
type RandomizedQuickSort struct {
	rng *rand.Rand
}

// NewRandomizedQuickSort создаёт сортировку со своим генератором, seed даёт воспроизводимость
func NewRandomizedQuickSort(seed uint64) *RandomizedQuickSort {

	return &RandomizedQuickSort{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Sort сортирует arr на месте
func (r *RandomizedQuickSort) Sort(arr []int) {

	if len(arr) == 0 {
		return
	}
	quickSort(arr, 0, len(arr)-1, func(arr []int, low, high int) int {
		return low + r.rng.IntN(high-low+1)
	})
}

// Name возвращает название для отчёта
func (*RandomizedQuickSort) Name() string {
	return "Randomized QuickSort"
}

// MedianOfThreeQuickSort берёт опорным медиану первого, среднего и последнего элементов
type MedianOfThreeQuickSort struct{}

// Sort сортирует arr на месте
func (MedianOfThreeQuickSort) Sort(arr []int) {

	if len(arr) == 0 {
		return
	}
	quickSort(arr, 0, len(arr)-1, medianOfThree)
}

// Name возвращает название для отчёта
func (MedianOfThreeQuickSort) Name() string {
	return "Median-of-three QuickSort"
}

// pivotSelector возвращает индекс в [low, high], который уйдёт в позицию опорного,
// nil означает последний элемент
type pivotSelector func(arr []int, low, high int) int

// quickSort - общая рекурсия для всех вариантов quicksort
func quickSort(arr []int, low, high int, selectPivot pivotSelector) {

	if low >= high {
		return
	}

	if selectPivot != nil {
		swap(arr, selectPivot(arr, low, high), high)
	}

	p := partition(arr, low, high)
	quickSort(arr, low, p-1, selectPivot)
	quickSort(arr, p+1, high, selectPivot)
}

// partition разбивает [low, high] по схеме Ломуто: элементы <= arr[high] уходят влево,
// возвращает итоговую позицию опорного
func partition(arr []int, low, high int) int {

	pivot := arr[high]
	i := low - 1

	for j := low; j < high; j++ {
		if arr[j] <= pivot {
			i++
			swap(arr, i, j)
		}
	}

	swap(arr, i+1, high)
	return i + 1
}

// medianOfThree упорядочивает arr[low], arr[mid], arr[high] тремя обменами
// и возвращает mid, где теперь лежит медиана
func medianOfThree(arr []int, low, high int) int {

	mid := low + (high-low)/2

	if arr[low] > arr[mid] {
		swap(arr, low, mid)
	}
	if arr[low] > arr[high] {
		swap(arr, low, high)
	}
	if arr[mid] > arr[high] {
		swap(arr, mid, high)
	}

	return mid
}
