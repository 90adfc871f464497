// Package util holds small formatting helpers shared by the command-line tools.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Checksum returns the hex SHA256 of data, shortened to n characters when n > 0.
func Checksum(data []byte, n int) string {
	sum := sha256.Sum256(data)
	encoded := hex.EncodeToString(sum[:])
	if n > 0 && n < len(encoded) {
		return encoded[:n]
	}

	return encoded
}

// FormatBytes formats a byte count for humans, e.g. "1.5 KB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
