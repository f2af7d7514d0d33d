package scte35

import "fmt"

// EncryptionAlgorithm is the 6-bit encryption_algorithm wire code. Values
// 32-63 are user-private and retain their raw value.
type EncryptionAlgorithm uint8

const (
	EncryptionAlgorithmNone             EncryptionAlgorithm = 0x00
	EncryptionAlgorithmDESECB           EncryptionAlgorithm = 0x01
	EncryptionAlgorithmDESCBC           EncryptionAlgorithm = 0x02
	EncryptionAlgorithmTripleDESEDE3ECB EncryptionAlgorithm = 0x03
)

// String returns the human name for the algorithm, matching the teacher's
// encryptionAlgorithmName convention.
func (a EncryptionAlgorithm) String() string {
	switch {
	case a == EncryptionAlgorithmNone:
		return "None"
	case a == EncryptionAlgorithmDESECB:
		return "DES - ECB Mode"
	case a == EncryptionAlgorithmDESCBC:
		return "DES - CBC Mode"
	case a == EncryptionAlgorithmTripleDESEDE3ECB:
		return "Triple DES EDE3 - ECB Mode"
	case a >= 32 && a <= 63:
		return fmt.Sprintf("User Private (0x%02x)", uint8(a))
	default:
		return fmt.Sprintf("Reserved (0x%02x)", uint8(a))
	}
}

// EncryptedPacket carries the encryption parameters of a splice_info_section
// whose encrypted_packet_flag was set. The decoder never decrypts these
// sections; it only records enough to raise EncryptedMessageNotSupportedError
// with a descriptive algorithm name.
type EncryptedPacket struct {
	EncryptionAlgorithm EncryptionAlgorithm
	CWIndex             uint8
	AlignmentStuffing   uint8
	ECRC32              uint32
}

// EncryptionAlgorithmName returns the human-readable algorithm name.
func (p EncryptedPacket) EncryptionAlgorithmName() string {
	return p.EncryptionAlgorithm.String()
}
