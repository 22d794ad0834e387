/*
Package integral approximates definite integrals of tabulated functions with
the classical quadrature rules: left, middle and right rectangles, the
trapezoidal rule, Simpson's rule and Newton's 3/8 rule.

The rules live in the quadrature package; cmd/integral is the console
program built on top of it.
*/
package integral
