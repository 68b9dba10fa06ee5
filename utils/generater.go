package utils

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GeneratePetTag builds a collar-tag identifier like "PETK3J2A90042".
// Base-36 timestamp keeps tags short, the random suffix keeps collisions
// unlikely enough for the unique index to catch the rest.
func GeneratePetTag() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	var b [2]byte
	rand.Read(b[:])
	n := (int(b[0])<<8 | int(b[1])) % 10000

	return fmt.Sprintf("PET%s%04d", ts, n)
}
