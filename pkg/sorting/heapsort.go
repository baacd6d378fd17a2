package sorting

// HeapSort строит max-кучу на месте и переносит корень в конец, O(n log n) всегда
type HeapSort struct{}

// Sort сортирует arr на месте
func (HeapSort) Sort(arr []int) {

	n := len(arr)

	// строим кучу снизу вверх от последнего внутреннего узла
	for i := n/2 - 1; i >= 0; i-- {
		heapify(arr, n, i)
	}

	// по одному переносим максимум в конец и восстанавливаем кучу
	for i := n - 1; i > 0; i-- {
		swap(arr, 0, i)
		heapify(arr, i, 0)
	}
}

// Name возвращает название для отчёта
func (HeapSort) Name() string {
	return "HeapSort"
}

// heapify восстанавливает свойство max-кучи для поддерева с корнем i в первых n элементах
func heapify(arr []int, n, i int) {

	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && arr[left] > arr[largest] {
			largest = left
		}
		if right < n && arr[right] > arr[largest] {
			largest = right
		}

		if largest == i {
			return
		}
		swap(arr, i, largest)
		i = largest
	}
}
