// Package numtheory holds the small exact-integer kernels worksheet topics
// need to keep their answers exact: GCD/LCM and the common-factor ladder,
// primality and prime factorization, factorial and counting numbers.
//
// Everything here is pure, allocation-light and deterministic. Functions that
// have a domain return sentinel errors from errors.go wrapped with the method
// name ("Ladder: a=0: numtheory: value must be positive"); branch on them
// with errors.Is.
//
// Ladder illustration for (12, 18):
//
//	2 | 12  18
//	3 |  6   9
//	  |  2   3
//
//	GCD = 2·3 = 6, LCM = 2·3·2·3 = 36
package numtheory
