package sorting

// MergeSort - нисходящая сортировка слиянием, на каждое слияние выделяет O(n) памяти
type MergeSort struct{}

// Sort сортирует arr на месте
func (MergeSort) Sort(arr []int) {

	if len(arr) <= 1 {
		return
	}
	mergeSort(arr, 0, len(arr)-1)
}

// Name возвращает название для отчёта
func (MergeSort) Name() string {
	return "MergeSort"
}

func mergeSort(arr []int, left, right int) {

	if left >= right {
		return
	}

	mid := left + (right-left)/2
	mergeSort(arr, left, mid)
	mergeSort(arr, mid+1, right)
	merge(arr, left, mid, right)
}

// merge сливает отсортированные [left, mid] и [mid+1, right] через временные копии,
// при равенстве берётся левый элемент (сортировка устойчива)
func merge(arr []int, left, mid, right int) {

	leftPart := append([]int(nil), arr[left:mid+1]...)
	rightPart := append([]int(nil), arr[mid+1:right+1]...)

	i, j, k := 0, 0, left
	for i < len(leftPart) && j < len(rightPart) {
		if leftPart[i] <= rightPart[j] {
			arr[k] = leftPart[i]
			i++
		} else {
			arr[k] = rightPart[j]
			j++
		}
		k++
	}

	// дописываем хвосты
	k += copy(arr[k:], leftPart[i:])
	copy(arr[k:], rightPart[j:])
}
