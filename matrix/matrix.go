// SPDX-License-Identifier: MIT

// Package matrix - immutable square matrices over field.Scalar.
//
// Storage is a flat row-major buffer with the explicit index formula
// i*size + j. A matrix either carries a prime field (every cell is a
// residue of that field) or carries none (every cell is a raw integer);
// the constructor establishes that invariant once and operations preserve
// it. Matrices are never mutated after construction: every operation
// allocates its result.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/primefield/field"
)

// Formatting literals for String.
const (
	fmtRowOpen  = "["
	fmtRowClose = "]"
	fmtCellSep  = ", "
	fmtRowSep   = "\n "
)

// matrixErrorf wraps an error with a uniform method context.
// Keep wrapping at the facade; kernels return plain sentinels.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// Matrix is an immutable n×n grid of scalars.
// Invariant: size >= 1; len(cells) == size*size; if fp != nil every cell is
// a residue of fp, otherwise every cell is raw.
type Matrix struct {
	size  int
	fp    *field.Fp      // nil for an unfielded integer matrix
	cells []field.Scalar // row-major, cells[i*size+j] is row i, column j
}

// New builds a square matrix from a grid of rows.
// Stage 1 (Validate): the grid must be non-empty and square.
// Stage 2 (Resolve): determine the field. With f non-nil, f wins and any
// cell already tied to a different prime is an error (residues are never
// silently reinterpreted in another field). With f nil, the field is
// inferred from the cells: all fielded cells must agree; an all-raw grid
// stays an unfielded integer matrix.
// Stage 3 (Lift): when a field is present, raw cells are reduced into it.
// Errors: ErrNonSquare, field.ErrFieldMismatch.
// Complexity: O(n^2).
func New(f *field.Fp, rows [][]field.Scalar) (*Matrix, error) {
	// 1) Shape.
	n := len(rows)
	if n == 0 {
		return nil, matrixErrorf("New", ErrNonSquare)
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, matrixErrorf("New", ErrNonSquare)
		}
	}

	// 2) Field resolution.
	fp := f
	for _, row := range rows {
		for _, c := range row {
			if !c.IsField() {
				continue
			}
			if fp == nil {
				fp = c.Field()
				continue
			}
			if !fp.Equal(c.Field()) {
				return nil, fmt.Errorf("Matrix.New: F%d vs F%d: %w",
					fp.Prime(), c.Field().Prime(), field.ErrFieldMismatch)
			}
		}
	}

	// 3) Flatten, lifting raws when fielded.
	cells := make([]field.Scalar, 0, n*n)
	for _, row := range rows {
		for _, c := range row {
			if fp != nil {
				lifted, err := field.Lift(fp, c)
				if err != nil {
					return nil, matrixErrorf("New", err)
				}
				c = lifted
			}
			cells = append(cells, c)
		}
	}

	return &Matrix{size: n, fp: fp, cells: cells}, nil
}

// FromInt64s builds an unfielded integer matrix from a grid of int64 rows.
// Errors: ErrNonSquare.
// Complexity: O(n^2).
func FromInt64s(rows [][]int64) (*Matrix, error) {
	grid := make([][]field.Scalar, len(rows))
	for i, row := range rows {
		grid[i] = make([]field.Scalar, len(row))
		for j, v := range row {
			grid[i][j] = field.Raw(v)
		}
	}

	return New(nil, grid)
}

// Lift builds a matrix over f from a grid of int64 rows, reducing every
// entry into the field.
// Errors: ErrNonSquare, field.ErrNilField.
// Complexity: O(n^2).
func Lift(f *field.Fp, rows [][]int64) (*Matrix, error) {
	if f == nil {
		return nil, matrixErrorf("Lift", field.ErrNilField)
	}
	grid := make([][]field.Scalar, len(rows))
	for i, row := range rows {
		grid[i] = make([]field.Scalar, len(row))
		for j, v := range row {
			grid[i][j] = field.Raw(v)
		}
	}

	return New(f, grid)
}

// Identity returns the n×n identity matrix, over f when f is non-nil.
// Errors: ErrInvalidSize for n < 1.
// Complexity: O(n^2).
func Identity(n int, f *field.Fp) (*Matrix, error) {
	if n < 1 {
		return nil, matrixErrorf("Identity", ErrInvalidSize)
	}
	m, err := Zero(n, f)
	if err != nil {
		return nil, err
	}
	one := field.Raw(1)
	if f != nil {
		one, err = field.Lift(f, one)
		if err != nil {
			return nil, matrixErrorf("Identity", err)
		}
	}
	for i := 0; i < n; i++ {
		m.cells[i*n+i] = one
	}

	return m, nil
}

// Zero returns the n×n all-zero matrix, over f when f is non-nil.
// Errors: ErrInvalidSize for n < 1.
// Complexity: O(n^2).
func Zero(n int, f *field.Fp) (*Matrix, error) {
	if n < 1 {
		return nil, matrixErrorf("Zero", ErrInvalidSize)
	}
	zero := field.Raw(0)
	if f != nil {
		var err error
		zero, err = field.Lift(f, zero)
		if err != nil {
			return nil, matrixErrorf("Zero", err)
		}
	}
	cells := make([]field.Scalar, n*n)
	for i := range cells {
		cells[i] = zero
	}

	return &Matrix{size: n, fp: f, cells: cells}, nil
}

// Size returns the row (= column) count.
// Complexity: O(1).
func (m *Matrix) Size() int { return m.size }

// Fp returns the matrix's field, or nil for an unfielded integer matrix.
// Complexity: O(1).
func (m *Matrix) Fp() *field.Fp { return m.fp }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.size + col, nil
}

// At retrieves the cell at (row, col).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (field.Scalar, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return field.Scalar{}, err
	}

	return m.cells[idx], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(n).
func (m *Matrix) Row(i int) ([]field.Scalar, error) {
	if i < 0 || i >= m.size {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]field.Scalar, m.size)
	copy(out, m.cells[i*m.size:(i+1)*m.size])

	return out, nil
}

// Equal reports structural equality: same size, same field (or both
// unfielded), same cells.
// Complexity: O(n^2).
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.size != other.size || !m.fp.Equal(other.fp) {
		return false
	}
	for i := range m.cells {
		if !m.cells[i].Equal(other.cells[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: bracketed newline-separated rows, each
// row a comma-separated list of cell values, e.g. "[[0, 1]\n [1, 1]]".
func (m *Matrix) String() string {
	rows := make([]string, m.size)
	cells := make([]string, m.size)
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			cells[j] = m.cells[i*m.size+j].String()
		}
		rows[i] = fmtRowOpen + strings.Join(cells, fmtCellSep) + fmtRowClose
	}

	return fmtRowOpen + strings.Join(rows, fmtRowSep) + fmtRowClose
}
