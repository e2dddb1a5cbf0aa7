package combination_test

import (
	"fmt"

	"github.com/katalvlaran/lvreach/combination"
)

// ExampleIterator walks every pair drawn from four buttons.
func ExampleIterator() {
	it := combination.New(4, 2)
	for it.Next() {
		fmt.Println(it.Indices())
	}
	// Output:
	// [0 1]
	// [0 2]
	// [0 3]
	// [1 2]
	// [1 3]
	// [2 3]
}

// ExampleCount sizes the worst-case mask search over twelve buttons.
func ExampleCount() {
	var total uint64
	for k := 1; k < 12; k++ {
		total += combination.Count(12, k)
	}
	fmt.Println(total)
	// Output:
	// 4094
}
