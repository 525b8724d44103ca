package sorting

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/puzpuzpuz/xsync/v2"
)

// The Fibonacci routines count from F(0) = F(1) = 1. Results wrap around
// past F(92).

// Fibonacci computes F(n) by naive recursion.
func Fibonacci(n int) uint64 {
	if n <= 1 {
		return 1
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}

// FibonacciIter computes F(n) iteratively.
func FibonacciIter(n int) uint64 {
	var a, b, res uint64 = 1, 1, 1

	for i := 1; i < n; i++ {
		res = a + b
		a = b
		b = res
	}

	return res
}

// FibonacciPair returns F(n) and F(n-1), with F(-1) = 0.
func FibonacciPair(n int) (result, previous uint64) {
	if n <= 0 {
		return 1, 0
	}

	a, b := FibonacciPair(n - 1)

	return a + b, a
}

var memo = xsync.NewTypedMapOf[int, uint64](func(seed maphash.Seed, n int) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	_, _ = h.Write(buf[:])

	return h.Sum64()
})

// FibonacciMemo computes F(n) by recursion over a memo table shared by all callers.
// It is safe for concurrent use.
func FibonacciMemo(n int) uint64 {
	if n <= 1 {
		return 1
	}

	if v, ok := memo.Load(n); ok {
		return v
	}

	v := FibonacciMemo(n-1) + FibonacciMemo(n-2)
	memo.Store(n, v)

	return v
}
