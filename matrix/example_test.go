package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/primefield/field"
	"github.com/katalvlaran/primefield/matrix"
)

// ExampleLift reduces an integer grid into F2 and squares it.
func ExampleLift() {
	f2, _ := field.New(2)
	m, _ := matrix.Lift(f2, [][]int64{{0, 1}, {1, 1}})
	sq, _ := m.Pow(2)

	fmt.Println(m)
	fmt.Println(sq)
	// Output:
	// [[0, 1]
	//  [1, 1]]
	// [[1, 1]
	//  [1, 0]]
}
