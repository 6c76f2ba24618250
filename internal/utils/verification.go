package utils

import (
	"math/rand"
	"strconv"
)

// GenerateVerificationCode produces a uniformly random 6-digit code in
// [100000, 999999], so the code never carries a leading zero
func GenerateVerificationCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
