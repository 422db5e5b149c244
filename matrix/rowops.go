// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - The three mutations every reduction engine is built from:
//     swap two rows, scale one row, add a multiple of one row to another.
//   - No pivoting, tolerance or tracing policy lives here.
//
// Determinism:
//   - Fixed left-to-right column order; the same inputs always produce the
//     same bits.

package matrix

// checkRow validates a row index for the given op tag.
func (m *Dense) checkRow(tag string, i int) error {
	if i < 0 || i >= m.r {
		return matrixErrorf(tag, denseErrorf(tag, i, 0, ErrOutOfRange))
	}

	return nil
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if err := m.checkRow(opSwapRows, i); err != nil {
		return err
	}
	if err := m.checkRow(opSwapRows, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}

	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by factor.
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, factor float64) error {
	if err := m.checkRow(opScaleRow, i); err != nil {
		return err
	}

	base := i * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k] *= factor
	}

	return nil
}

// AddScaledRow performs dst[c] += factor * src[c] for every column c.
// dst == src is allowed and equals ScaleRow(dst, 1+factor).
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, factor float64) error {
	if err := m.checkRow(opAddScaledRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(opAddScaledRow, src); err != nil {
		return err
	}

	bd, bs := dst*m.c, src*m.c
	for k := 0; k < m.c; k++ {
		m.data[bd+k] += factor * m.data[bs+k]
	}

	return nil
}

// ApplyRow replaces every entry v of row i with fn(v).
func (m *Dense) ApplyRow(i int, fn func(v float64) float64) error {
	if err := m.checkRow(opApplyRow, i); err != nil {
		return err
	}

	base := i * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k] = fn(m.data[base+k])
	}

	return nil
}
