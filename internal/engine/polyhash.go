package engine

import (
	"math/bits"

	"strtrace/internal/trace"
)

// Hash parameters used when the caller does not override them. The modulus is
// deliberately small so collisions (spurious hits) show up in short inputs.
const (
	DefaultBase    int64 = 256
	DefaultModulus int64 = 101
)

// mulMod returns a*b mod m without overflow for any m > 0.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// addMod returns (a+b) mod m for a, b < m <= MaxInt64.
func addMod(a, b, m uint64) uint64 {
	return (a + b) % m
}

// horner folds c into h: (h*base + c) mod m.
func horner(h uint64, c byte, base, m uint64) uint64 {
	return addMod(mulMod(h, base, m), uint64(c)%m, m)
}

// highOrder returns base^(k) mod m by repeated multiplication.
func highOrder(k int, base, m uint64) uint64 {
	h := uint64(1) % m
	for i := 0; i < k; i++ {
		h = mulMod(h, base, m)
	}
	return h
}

// windowHash hashes s from scratch with Horner's scheme.
func windowHash(s []byte, base, m uint64) uint64 {
	var h uint64
	for _, c := range s {
		h = horner(h, c, base, m)
	}
	return h
}

// rollHash slides the window one position: drop removed (weighted by high)
// and append added. The subtraction is lifted by m before reducing so the
// intermediate never goes negative.
func rollHash(old uint64, removed, added byte, high, base, m uint64) uint64 {
	drop := mulMod(uint64(removed)%m, high, m)
	lifted := (old + m - drop) % m
	return addMod(mulMod(base%m, lifted, m), uint64(added)%m, m)
}

// HashPattern computes sum(code(pattern[k]) * base^(m-1-k)) mod modulus with
// Horner's scheme, emitting one step per character.
func HashPattern(pattern []byte, base, modulus int64) (int64, []trace.Step, error) {
	if len(pattern) == 0 {
		return 0, nil, invalid("pattern is empty")
	}
	if err := ValidateHashParams(base, modulus); err != nil {
		return 0, nil, err
	}
	b, m := uint64(base), uint64(modulus)

	var log trace.Log
	log.Add(trace.HashInit{
		Note:    trace.Notef("start pattern hash of %q with base %d, modulus %d: hash = 0", pattern, base, modulus),
		Base:    base,
		Modulus: modulus,
	})

	var h uint64
	for i, c := range pattern {
		before := h
		h = horner(h, c, b, m)
		log.Add(trace.HashStep{
			Note:   trace.Notef("hash = (%d * %d + %d) mod %d = %d for pattern[%d] = %q", before, base, c, modulus, h, i, c),
			I:      i,
			Char:   c,
			Before: int64(before),
			After:  int64(h),
		})
	}

	log.Add(trace.HashComplete{
		Note: trace.Notef("pattern hash complete: %d", h),
		Hash: int64(h),
	})
	return int64(h), log.Steps(), nil
}
