// SPDX-License-Identifier: Apache-2.0

// Test target for the decompilation workflow. Invokes every function of
// the reference suite with fixed sample inputs and prints the results, so
// the compiled binary exercises known code shapes in a known order.
package main

import (
	"fmt"

	"github.com/quantbagel/Claude-reverse/internal/refsuite"
)

func main() {
	fmt.Println("Testing decompilation target")

	fmt.Printf("add_numbers(3, 4) = %d\n", refsuite.AddNumbers(3, 4))

	fmt.Printf("square(5) = %d\n", refsuite.Square(5))

	arr := []refsuite.S32{1, 2, 3, 4, 5}
	fmt.Printf("sum_array([1,2,3,4,5]) = %d\n", refsuite.SumArray(arr))

	fmt.Printf("max_of_three(3, 7, 2) = %d\n", refsuite.MaxOfThree(3, 7, 2))

	fmt.Printf("string_length(\"hello\") = %d\n", refsuite.StringLength([]byte("hello\x00")))

	ones := [3][3]refsuite.S32{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	fmt.Printf("matrix_sum(ones) = %d\n", refsuite.MatrixSum(ones))

	fmt.Printf("fibonacci(10) = %d\n", refsuite.Fibonacci(10))

	a, b := refsuite.S32(1), refsuite.S32(2)
	refsuite.Swap(&a, &b)
	fmt.Printf("swap: a=%d b=%d\n", a, b)

	toSort := []refsuite.S32{5, 2, 8, 1, 9}
	refsuite.BubbleSort(toSort)
	fmt.Printf("sorted: %d %d %d %d %d\n",
		toSort[0], toSort[1], toSort[2], toSort[3], toSort[4])
}
