package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateID generates a unique ID with the given prefix.
// Format: prefix-timestamp-random
func GenerateID(prefix string) string {
	timestamp := time.Now().UnixNano() / int64(time.Millisecond)
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	random := hex.EncodeToString(randomBytes)
	return fmt.Sprintf("%s-%d-%s", prefix, timestamp, random)
}

// GenerateInvokeID generates a unique ID for a single command invocation.
func GenerateInvokeID() string {
	return GenerateID("inv")
}

// GenerateAuthToken generates a random token for the bridge when none is configured.
func GenerateAuthToken() string {
	return GenerateRandomID(32)
}

// GenerateRandomID generates a random ID of the specified length.
func GenerateRandomID(length int) string {
	bytes := make([]byte, length/2+1)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)[:length]
}
