// SPDX-License-Identifier: MIT

// Package builder - block-diagonal composition.
package builder

import (
	"fmt"

	"github.com/katalvlaran/primefield/field"
	"github.com/katalvlaran/primefield/matrix"
)

// BlockDiagonal composes square matrices into one block-diagonal matrix:
// the k-th input occupies the diagonal block starting at the sum of the
// sizes before it, and every cell outside the blocks is zero.
//
// All inputs must agree on the field of the first matrix (unfielded
// matrices must all be unfielded); the result carries that common field.
//
// Errors: ErrNoMatrices, ErrNilInput, field.ErrFieldMismatch.
// Complexity: O(total^2) where total is the sum of the input sizes.
func BlockDiagonal(ms []*matrix.Matrix) (*matrix.Matrix, error) {
	// 1) Input contract.
	if len(ms) == 0 {
		return nil, fmt.Errorf("BlockDiagonal: %w", ErrNoMatrices)
	}
	for _, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("BlockDiagonal: %w", ErrNilInput)
		}
	}

	// 2) Field agreement against the first matrix.
	fp := ms[0].Fp()
	total := 0
	for _, m := range ms {
		if !fp.Equal(m.Fp()) {
			return nil, fmt.Errorf("BlockDiagonal: %w", field.ErrFieldMismatch)
		}
		total += m.Size()
	}

	// 3) Place blocks along the diagonal; off-block cells stay the Scalar
	// zero value, which matrix.New lifts into fp when present.
	rows := make([][]field.Scalar, total)
	for i := range rows {
		rows[i] = make([]field.Scalar, total)
	}
	offset := 0
	for _, m := range ms {
		for i := 0; i < m.Size(); i++ {
			row, err := m.Row(i)
			if err != nil {
				return nil, fmt.Errorf("BlockDiagonal: %w", err)
			}
			copy(rows[offset+i][offset:], row)
		}
		offset += m.Size()
	}

	return matrix.New(fp, rows)
}
