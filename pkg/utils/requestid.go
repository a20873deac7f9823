// pkg/utils/requestid.go
package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

const requestIDLength = 16

// GenerateRequestID generates a random request ID
func GenerateRequestID() string {
	bytes := make([]byte, requestIDLength)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based ID
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)[:requestIDLength]
}

// ValidateRequestID validates if a request ID format is correct
func ValidateRequestID(requestID string) bool {
	if len(requestID) != requestIDLength {
		return false
	}

	// Check if it's a valid hex string
	_, err := hex.DecodeString(requestID)
	return err == nil
}
