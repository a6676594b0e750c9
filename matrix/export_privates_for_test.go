// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED helpers and panic messages to matrix_test ONLY.
//   - File name ends in _test.go, so it never ships in production builds.

var (
	// ExportedValidatorErrorf exposes validatorErrorf for tag-format checks.
	ExportedValidatorErrorf = validatorErrorf
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
)

// FlatData_TestOnly returns the backing buffer of m (shared, not copied).
func FlatData_TestOnly(m *Dense[float64]) []float64 { return m.data }
