package scte35

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonFatalErrorKind_String(t *testing.T) {
	assert.Equal(t, "UnexpectedSpliceCommandLength", UnexpectedSpliceCommandLength.String())
	assert.Equal(t, "UnexpectedDescriptorLoopLength", UnexpectedDescriptorLoopLength.String())
	assert.Equal(t, "UnexpectedSpliceDescriptorLength", UnexpectedSpliceDescriptorLength.String())
}

func TestNonFatalError_ErrorIncludesCommandOrTag(t *testing.T) {
	cmdErr := NonFatalError{
		Kind:          UnexpectedSpliceCommandLength,
		DeclaredBits:  32760,
		ActualBits:    0,
		SpliceCommand: SpliceCommandTypeSpliceNull,
	}
	assert.Contains(t, cmdErr.Error(), "splice_null")

	descErr := NonFatalError{
		Kind:          UnexpectedSpliceDescriptorLength,
		DeclaredBits:  16,
		ActualBits:    8,
		DescriptorTag: SpliceDescriptorTagAvail,
	}
	assert.Contains(t, descErr.Error(), "avail_descriptor")
}

func TestEncryptedMessageNotSupportedError_NamesAlgorithm(t *testing.T) {
	err := &EncryptedMessageNotSupportedError{Algorithm: EncryptionAlgorithmDESCBC}
	assert.Contains(t, err.Error(), "DES - CBC Mode")
}

func TestDecodeHexError_Unwraps(t *testing.T) {
	_, err := TryFromHexString("zz")
	var hexErr *DecodeHexError
	if assert.ErrorAs(t, err, &hexErr) {
		assert.NotNil(t, hexErr.Unwrap())
	}
}
