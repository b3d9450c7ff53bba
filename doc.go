// Package cofactor is a small dense-matrix toolkit over integers, built
// around the classical cofactor (adjugate) method for inverses.
//
// What is inside?
//
//	• Validation: IsMatrix / IsIdentity for any candidate value
//	• Arithmetic: Add, Sub, MulMatrix, MulScalar and the Operand-based Multiply
//	• Minors: DeleteRowAndColumn and FirstRowMinor
//	• Determinant: recursive Laplace expansion along the first row,
//	  optionally fanned out across goroutines
//	• Inverse: cofactor matrix, adjugate, scale by 1/det, rounded to
//	  3 decimals by default
//	• Codecs: whitespace text (Parse), YAML and a row-per-line printer (Format)
//
// Everything lives in the matrix subpackage:
//
//	matrix/   - Matrix (int) and Dense (float64) types, validators, kernels
//	examples/ - a runnable walkthrough
//
// Quick example:
//
//	m, _ := matrix.New([][]int{{4, 7}, {2, 6}})
//	inv, _ := matrix.Inverse(m)
//	fmt.Println(inv) // [[0.6, -0.7], [-0.2, 0.4]]
//
// Laplace expansion is O(n!): the package targets small matrices where exact
// integer cofactors matter more than speed.
//
//	go get github.com/katalvlaran/cofactor/matrix
package cofactor
