package builder_test

import (
	"fmt"

	"github.com/katalvlaran/primefield/builder"
	"github.com/katalvlaran/primefield/field"
	"github.com/katalvlaran/primefield/matrix"
	"github.com/katalvlaran/primefield/poly"
)

// ExampleCompanion builds the companion matrix of 1 + x + x^2 over F2.
func ExampleCompanion() {
	f2, _ := field.New(2)
	p, _ := poly.Over(f2, 1, 1, 1)

	m, _ := builder.Companion(p)
	fmt.Println(m)
	// Output:
	// [[0, 1]
	//  [1, 1]]
}

// ExampleBlockDiagonal composes two companion matrices along the diagonal.
func ExampleBlockDiagonal() {
	f2, _ := field.New(2)
	p1, _ := poly.Over(f2, 1, 1, 1) // 1 + x + x^2
	p2, _ := poly.Over(f2, 1, 0, 1) // 1 + x^2
	a, _ := builder.Companion(p1)
	b, _ := builder.Companion(p2)

	d, _ := builder.BlockDiagonal([]*matrix.Matrix{a, b})
	fmt.Println(d)
	// Output:
	// [[0, 1, 0, 0]
	//  [1, 1, 0, 0]
	//  [0, 0, 0, 1]
	//  [0, 0, 1, 0]]
}
