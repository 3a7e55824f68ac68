// SPDX-License-Identifier: MIT

// Package matrix - arithmetic kernels.
//
// All binary operations validate through one compatibility check before
// touching any cell: nil operands, size mismatch, field mismatch. The check
// is identical for Add, Sub and Mul, so multiplication is exactly as strict
// as element-wise addition. Validation failures abort the whole operation;
// no partial matrix is ever returned.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/primefield/field"
)

// checkCompat verifies that m and other can enter a binary operation.
// Errors: ErrNilMatrix, ErrDimensionMismatch, field.ErrFieldMismatch.
// Complexity: O(1).
func (m *Matrix) checkCompat(other *Matrix, op string) error {
	if m == nil || other == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if m.size != other.size {
		return fmt.Errorf("Matrix.%s: %dx%d vs %dx%d: %w",
			op, m.size, m.size, other.size, other.size, ErrDimensionMismatch)
	}
	if !m.fp.Equal(other.fp) {
		return matrixErrorf(op, field.ErrFieldMismatch)
	}

	return nil
}

// addSub is the shared body of Add and Sub.
func (m *Matrix) addSub(other *Matrix, op func(a, b field.Scalar) (field.Scalar, error), tag string) (*Matrix, error) {
	if err := m.checkCompat(other, tag); err != nil {
		return nil, err
	}
	cells := make([]field.Scalar, len(m.cells))
	for i := range m.cells {
		c, err := op(m.cells[i], other.cells[i])
		if err != nil {
			return nil, matrixErrorf(tag, err)
		}
		cells[i] = c
	}

	return &Matrix{size: m.size, fp: m.fp, cells: cells}, nil
}

// Add returns the element-wise sum of two matrices of equal size and field.
// Errors: ErrNilMatrix, ErrDimensionMismatch, field.ErrFieldMismatch.
// Complexity: O(n^2).
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.addSub(other, field.Add, "Add")
}

// Sub returns the element-wise difference of two matrices of equal size and
// field.
// Errors: ErrNilMatrix, ErrDimensionMismatch, field.ErrFieldMismatch.
// Complexity: O(n^2).
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.addSub(other, field.Sub, "Sub")
}

// Mul returns the matrix product: cell (i,j) is the dot product of row i of
// m with column j of other. Compatibility is checked exactly like Add/Sub.
// Errors: ErrNilMatrix, ErrDimensionMismatch, field.ErrFieldMismatch.
// Complexity: O(n^3).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := m.checkCompat(other, "Mul"); err != nil {
		return nil, err
	}
	n := m.size
	cells := make([]field.Scalar, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			acc := zeroCell(m.fp)
			for k := 0; k < n; k++ {
				prod, err := field.Mul(m.cells[i*n+k], other.cells[k*n+j])
				if err != nil {
					return nil, matrixErrorf("Mul", err)
				}
				acc, err = field.Add(acc, prod)
				if err != nil {
					return nil, matrixErrorf("Mul", err)
				}
			}
			cells[i*n+j] = acc
		}
	}

	return &Matrix{size: n, fp: m.fp, cells: cells}, nil
}

// Scale returns the matrix with every cell multiplied by s. Scaling an
// unfielded matrix by a field scalar lifts the whole result into that
// scalar's field; scaling a fielded matrix by a residue of another prime is
// a field.ErrFieldMismatch.
// Complexity: O(n^2).
func (m *Matrix) Scale(s field.Scalar) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf("Scale", ErrNilMatrix)
	}
	rows := make([][]field.Scalar, m.size)
	for i := 0; i < m.size; i++ {
		rows[i] = make([]field.Scalar, m.size)
		for j := 0; j < m.size; j++ {
			c, err := field.Mul(m.cells[i*m.size+j], s)
			if err != nil {
				return nil, matrixErrorf("Scale", err)
			}
			rows[i][j] = c
		}
	}

	// Rebuild through New so the result's field is re-resolved when a raw
	// matrix was scaled by a field scalar.
	return New(m.fp, rows)
}

// ScaleInt returns the matrix with every cell multiplied by the bare
// integer n (coerced into the matrix's field when one is present).
// Complexity: O(n^2).
func (m *Matrix) ScaleInt(n int64) (*Matrix, error) {
	return m.Scale(field.Raw(n))
}

// Pow returns m raised to a non-negative integer power by repeated
// multiplication. Pow(0) is the identity matrix of the same size and field.
// Errors: field.ErrNegativeExponent for n < 0.
// Complexity: O(n^3 * exponent).
func (m *Matrix) Pow(n int) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf("Pow", ErrNilMatrix)
	}
	if n < 0 {
		return nil, fmt.Errorf("Matrix.Pow(%d): %w", n, field.ErrNegativeExponent)
	}
	if n == 0 {
		return Identity(m.size, m.fp)
	}

	result := m
	for i := 1; i < n; i++ {
		next, err := result.Mul(m)
		if err != nil {
			return nil, err
		}
		result = next
	}

	return result, nil
}

// zeroCell returns the additive identity in the matrix's cell domain.
func zeroCell(fp *field.Fp) field.Scalar {
	if fp == nil {
		return field.Raw(0)
	}
	z, _ := field.Lift(fp, field.Raw(0))

	return z
}
