package protocol

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeInlineData decodes a base64 inline media payload. Servers are
// inconsistent about the alphabet, so the URL-safe variant is accepted
// too: '-'/'_' are mapped back to '+'/'/' and padding is restored to a
// multiple of 4 before decoding.
func DecodeInlineData(data string) ([]byte, error) {
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(data)
	if rem := len(normalized) % 4; rem != 0 {
		normalized += strings.Repeat("=", 4-rem)
	}

	decoded, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to decode inline data: %w", err)
	}
	return decoded, nil
}

// EncodeInlineData encodes binary media for an outbound frame.
func EncodeInlineData(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// decodedSizeEstimate derives the binary size of an inline payload
// from its encoded length without decoding it.
func decodedSizeEstimate(encoded string) int {
	padding := strings.Count(encoded, "=")
	size := len(encoded)*3/4 - padding
	if size < 0 {
		return 0
	}
	return size
}
