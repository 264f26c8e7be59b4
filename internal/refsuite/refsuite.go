// SPDX-License-Identifier: Apache-2.0

// Package refsuite holds the reference function suite of the
// decompilation target. Each function reproduces the observable behavior
// of its counterpart in the target binary bit-for-bit on the success
// path, so decompiled candidates can be checked against it.
package refsuite

// AddNumbers returns a + b, wrapping on overflow.
func AddNumbers(a, b S32) S32 {
	return a + b
}

// Square returns x * x, wrapping on overflow.
func Square(x S32) S32 {
	return x * x
}

// SumArray returns the sum of all elements. An empty slice sums to 0.
func SumArray(arr []S32) S32 {
	var total S32
	for _, v := range arr {
		total += v
	}
	return total
}

// MaxOfThree returns the largest of the three values.
func MaxOfThree(a, b, c S32) S32 {
	max := a
	if b > max {
		max = b
	}
	if c > max {
		max = c
	}
	return max
}

// StringLength returns the number of bytes before the first NUL. A slice
// without a NUL terminator counts in full; the scan never leaves the slice.
func StringLength(s []byte) S32 {
	var n S32
	for _, c := range s {
		if c == 0 {
			break
		}
		n++
	}
	return n
}

// MatrixSum returns the sum of all nine elements, walking row-major.
func MatrixSum(m [3][3]S32) S32 {
	var sum S32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += m[i][j]
		}
	}
	return sum
}

// Fibonacci returns the n-th Fibonacci number by naive double recursion.
// The target binary computes it the same exponential way, so no
// memoization here either.
func Fibonacci(n S32) S32 {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}

// Swap exchanges the two addressed values.
func Swap(a, b *S32) {
	*a, *b = *b, *a
}

// BubbleSort sorts arr ascending in place. Classic bubble sort: n-1 outer
// passes, inner pass up to the unsorted frontier, swap on strict >. No
// early exit on an already sorted slice; the target doesn't have one.
func BubbleSort(arr []S32) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if arr[j] > arr[j+1] {
				Swap(&arr[j], &arr[j+1])
			}
		}
	}
}
