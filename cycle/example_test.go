package cycle_test

import (
	"fmt"

	"github.com/Taxel/everybody-codes-2024/cycle"
)

// ExampleFind walks the orbit of x → x² mod 13 until it closes.
func ExampleFind() {
	orbit := func(yield func(int) bool) {
		for x := 2; yield(x); x = x * x % 13 {
		}
	}
	for v := range cycle.Find[int](orbit) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 2 4 3 9
}
