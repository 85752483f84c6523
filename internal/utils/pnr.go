package utils

import (
	"math/rand"
	"strconv"
)

// GeneratePNR returns a 10-digit booking reference drawn uniformly
// from [1000000000, 9999999999]. Practically unique; the bookings
// table carries a unique index so a collision surfaces as a
// duplicate-key error instead of corrupting data.
func GeneratePNR() string {
	n := 1_000_000_000 + rand.Int63n(9_000_000_000)
	return strconv.FormatInt(n, 10)
}
