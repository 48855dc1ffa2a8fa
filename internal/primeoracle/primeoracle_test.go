package primeoracle

import (
	"math/big"
	"testing"

	"vdfmint/internal/codec"
)

func mustY(t *testing.T) *big.Int {
	t.Helper()
	yHex := "9cf29c5108763beeb964557e1e89ea90d441c9b6e2286d0c4c50ca1e8b3b4bf" +
		"2a4c5be5a9ee31b0202f4e35748c82c81c00c4311299546ab360a4699e451cf" +
		"8207dee2d43594f13a0c090f8bb28d207f567d08e190079f167f199f5d02b8d" +
		"8bab768f6e386a4b031e6990f18b57fd3dba7531540466e4bcf13cb8104604f" +
		"48c0f65bca7832465c5e93187c2c4643d34ed0923d8a3b7535b18693d540b1b" +
		"5ac0973a6730732a10202da9d5bf7dc704bf5bea0fb8896d7baae027df66e98" +
		"a9aa43632f7a55a2208f024779b452a8988ed88f24b9e5f118b8b0a8952d0c3" +
		"66abb3b822c2a3d43ae467ca38c379bd50b4964aecb104a3803aa2c372261dd" +
		"4dd17c6c"
	y, ok := new(big.Int).SetString(yHex, 16)
	if !ok {
		t.Fatalf("failed to parse test vector y")
	}
	return y
}

func TestFindPrimeAfterAuthoritativeVector(t *testing.T) {
	y := mustY(t)

	L, err := FindPrimeAfter(y)
	if err != nil {
		t.Fatalf("FindPrimeAfter error: %v", err)
	}

	want := "9cf29c5108763beeb964557e1e89ea90d441c9b6e2286d0c4c50ca1e8b3b4c21"
	if got := L.Text(16); got != want {
		t.Fatalf("L mismatch:\nwant %s\n got %s", want, got)
	}
}

func TestFoundPrimeIsPrimeAndAtLeastSeed(t *testing.T) {
	y := mustY(t)

	seed, err := Seed(y)
	if err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	seedInt := codec.BytesToInt(seed)

	L, err := FindPrimeAfter(y)
	if err != nil {
		t.Fatalf("FindPrimeAfter error: %v", err)
	}

	// Independent primality oracle, per spec.md §8 property 4.
	if !L.ProbablyPrime(40) {
		t.Fatalf("L is not prime per independent check: %s", L)
	}
	if L.Cmp(seedInt) < 0 {
		t.Fatalf("L is smaller than the seed: L=%s seed=%s", L, seedInt)
	}
	if L.Bit(0) == 0 {
		t.Fatalf("L is even")
	}
}

func TestFindPrimeAfterDeterministic(t *testing.T) {
	y := big.NewInt(123456789)
	L1, err := FindPrimeAfter(y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	L2, err := FindPrimeAfter(y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if L1.Cmp(L2) != 0 {
		t.Fatalf("FindPrimeAfter is not deterministic")
	}
}

func TestIsProbablePrimeAgreesWithStdlib(t *testing.T) {
	candidates := []int64{97, 98, 99, 100, 101, 997, 998, 1000003, 1000033}
	for _, c := range candidates {
		n := big.NewInt(c)
		got := isProbablePrime(n, MillerRabinRounds)
		want := n.ProbablyPrime(40)
		if got != want {
			t.Errorf("isProbablePrime(%d) = %v, stdlib says %v", c, got, want)
		}
	}
}

func TestDivisibleBySmallPrimeSkipsSelf(t *testing.T) {
	for _, p := range smallPrimes {
		if divisibleBySmallPrime(big.NewInt(p)) {
			t.Errorf("small prime %d incorrectly flagged as divisible by itself", p)
		}
	}
	if !divisibleBySmallPrime(big.NewInt(9)) {
		t.Errorf("9 should be divisible by small prime 3")
	}
}
