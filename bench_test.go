package cowslice

import "testing"

const benchLen = 100

func benchInput() []int64 {
	elems := make([]int64, benchLen)
	for i := range elems {
		elems[i] = 32
	}
	return elems
}

func BenchmarkIterMut(b *testing.B) {
	cow := Borrow(benchInput())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		iter := cow.IterMut()
		for item, ok := iter.Next(); ok; item, ok = iter.Next() {
			sum += item.Value()
			item.Release()
		}
		_ = sum
	}
}

func BenchmarkIterMutForEach(b *testing.B) {
	cow := Borrow(benchInput())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		cow.IterMut().ForEach(func(item *Item[int64]) {
			sum += item.Value()
		})
		_ = sum
	}
}

func BenchmarkVisitEach(b *testing.B) {
	cow := Borrow(benchInput())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		cow.VisitEach(func(e Elem[int64]) {
			sum += e.Value()
		})
		_ = sum
	}
}

func BenchmarkVisitEachOwned(b *testing.B) {
	cow := Borrow(benchInput())
	cow.EnsureOwned()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		cow.VisitEach(func(e Elem[int64]) {
			sum += e.Value()
		})
		_ = sum
	}
}

func BenchmarkEagerElems(b *testing.B) {
	cow := Borrow(benchInput())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		for _, v := range cow.EagerElems() {
			sum += v
		}
		_ = sum
	}
}

func BenchmarkPlainSlice(b *testing.B) {
	elems := benchInput()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		for _, v := range elems {
			sum += v
		}
		_ = sum
	}
}
