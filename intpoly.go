/*
Package intpoly is a pure Go library of sparse univariate polynomials with
int64 coefficients.

The arithmetic lives in the poly package: addition, scalar and polynomial
multiplication, and the remainder of the long division. Products of two
polynomials are computed by a bounded pool of goroutines, each accumulating
the partial products of a contiguous range of terms of the left operand.
*/
package intpoly
