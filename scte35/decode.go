package scte35

import (
	"encoding/hex"
	"strings"
)

// TryFromBytes decodes a raw splice_info_section buffer.
func TryFromBytes(buf []byte) (*SpliceInfoSection, error) {
	br := newBitReader(buf)
	return decodeSpliceInfoSection(br)
}

// TryFromHexString decodes a splice_info_section from a hex string, with or
// without a leading "0x"/"0X" prefix.
func TryFromHexString(s string) (*SpliceInfoSection, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	buf, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, &DecodeHexError{Input: s, Cause: err}
	}
	return TryFromBytes(buf)
}
