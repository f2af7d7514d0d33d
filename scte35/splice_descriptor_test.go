package scte35

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSpliceDescriptors_Avail(t *testing.T) {
	// tag=avail(0x00), length=8, identifier=CUEI, provider_avail_id=1.
	buf := []byte{0x00, 0x08, 0x43, 0x55, 0x45, 0x49, 0x00, 0x00, 0x00, 0x01}
	br := newBitReader(buf)
	descs, err := decodeSpliceDescriptors(br, len(buf))
	require.NoError(t, err)
	require.Len(t, descs, 1)
	avail, ok := descs[0].(AvailDescriptor)
	require.True(t, ok)
	assert.Equal(t, uint32(CUEIdentifier), avail.Identifier)
	assert.Equal(t, uint32(1), avail.ProviderAvailID)
	assert.Empty(t, br.nonFatal)
}

func TestDecodeSpliceDescriptors_UnrecognisedTagIsFatal(t *testing.T) {
	buf := []byte{0xAA, 0x00}
	br := newBitReader(buf)
	_, err := decodeSpliceDescriptors(br, len(buf))
	require.Error(t, err)
	var tagErr *UnrecognisedSpliceDescriptorTagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, uint32(0xAA), tagErr.Raw)
}

func TestDecodeSpliceCommand_PrivateCommand(t *testing.T) {
	buf := []byte{'C', 'U', 'E', 'I', 0xDE, 0xAD}
	br := newBitReader(buf)
	cmd, err := decodeSpliceCommand(br, uint32(SpliceCommandTypePrivateCommand), len(buf))
	require.NoError(t, err)
	pc, ok := cmd.(PrivateCommand)
	require.True(t, ok)
	assert.Equal(t, "CUEI", pc.Identifier)
	assert.Equal(t, []byte{0xDE, 0xAD}, pc.PrivateBytes)
}

func TestDecodeSpliceCommand_UnrecognisedTypeIsFatal(t *testing.T) {
	br := newBitReader(nil)
	_, err := decodeSpliceCommand(br, 0x42, 0)
	require.Error(t, err)
	var typeErr *UnrecognisedSpliceCommandTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, uint32(0x42), typeErr.Raw)
}
