package crypto

import (
	"fmt"
	"math/big"
	"math/bits"

	"minicrypt/internal/domain"
)

// ModExp returns base^exponent mod modulus using square-and-multiply.
func ModExp(base, exponent, modulus domain.Integer) (domain.Integer, error) {
	if modulus <= 0 {
		return 0, fmt.Errorf("%w: modulus %d must be positive", ErrArithmetic, modulus)
	}
	if exponent < 0 {
		return 0, fmt.Errorf("%w: negative exponent %d", ErrArithmetic, exponent)
	}

	m := uint64(modulus)
	b := normalize(base, modulus)
	result := 1 % m
	for e := uint64(exponent); e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mulMod(result, b, m)
		}
		b = mulMod(b, b, m)
	}
	return domain.Integer(result), nil
}

// GCD returns the greatest common divisor of a and b. GCD(a, 0) == |a|.
func GCD(a, b domain.Integer) domain.Integer {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ModInverse returns x in [0, modulus) with (a*x) mod modulus == 1.
func ModInverse(a, modulus domain.Integer) (domain.Integer, error) {
	if modulus <= 0 {
		return 0, fmt.Errorf("%w: modulus %d must be positive", ErrArithmetic, modulus)
	}

	// Extended Euclid tracking only the coefficient of a.
	r0, r1 := modulus, domain.Integer(normalize(a, modulus))
	t0, t1 := domain.Integer(0), domain.Integer(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if r0 != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, modulus, r0)
	}

	x := t0 % modulus
	if x < 0 {
		x += modulus
	}
	return x, nil
}

// IsPrime reports whether n is prime. The Baillie-PSW test behind
// big.Int.ProbablyPrime(0) is exact for every value that fits in an int64.
func IsPrime(n domain.Integer) bool {
	if n < 2 {
		return false
	}
	return big.NewInt(n).ProbablyPrime(0)
}

// normalize maps a into [0, m) for m > 0.
func normalize(a, m domain.Integer) uint64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return uint64(r)
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
