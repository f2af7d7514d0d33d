package scte35

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uint64Ptr(v uint64) *uint64 { return &v }

// S1: time_signal + provider_placement_opportunity_start.
func TestTryFromHexString_TimeSignalProviderPlacementOpportunityStart(t *testing.T) {
	sis, err := TryFromHexString("FC3034000000000000FFFFF00506FE72BD0050001E021C435545494800008E7FCF0001A599B00808000000002CA0A18A3402009AC9D17E")
	require.NoError(t, err)

	assert.Equal(t, uint8(TableID), sis.TableID)
	assert.Equal(t, SAPTypeUnspecified, sis.SAPType)
	assert.Equal(t, uint16(0xFFF), sis.Tier)
	assert.Equal(t, uint32(0x9AC9D17E), sis.CRC32)
	assert.Empty(t, sis.NonFatalErrors)

	ts, ok := sis.SpliceCommand.(TimeSignal)
	require.True(t, ok)
	require.NotNil(t, ts.SpliceTime.PTSTime)
	assert.Equal(t, uint64(1924989008), *ts.SpliceTime.PTSTime)

	require.Len(t, sis.SpliceDescriptors, 1)
	seg, ok := sis.SpliceDescriptors[0].(SegmentationDescriptor)
	require.True(t, ok)
	assert.Equal(t, uint32(CUEIdentifier), seg.Identifier)
	assert.Equal(t, uint32(1207959694), seg.EventID)
	require.NotNil(t, seg.ScheduledEvent)
	se := seg.ScheduledEvent
	require.NotNil(t, se.DeliveryRestrictions)
	assert.False(t, se.DeliveryRestrictions.WebDeliveryAllowed)
	assert.True(t, se.DeliveryRestrictions.NoRegionalBlackout)
	assert.True(t, se.DeliveryRestrictions.ArchiveAllowed)
	assert.Equal(t, DeviceRestrictionsNone, se.DeliveryRestrictions.DeviceRestrictions)
	require.NotNil(t, se.SegmentationDuration)
	assert.Equal(t, uint64(27630000), *se.SegmentationDuration)
	assert.Equal(t, SegmentationTypeProviderPlacementOpportunityStart, se.SegmentationTypeID)
	assert.Equal(t, uint8(2), se.SegmentNum)

	ti, ok := se.SegmentationUPID.(TIUPID)
	require.True(t, ok)
	assert.Equal(t, "0x000000002CA0A18A", ti.Value)
}

// S2: splice_insert + avail_descriptor.
func TestTryFromHexString_SpliceInsertAvailDescriptor(t *testing.T) {
	sis, err := TryFromHexString("FC302F000000000000FFFFF014054800008F7FEFFE7369C02EFE0052CCF500000000000A0008435545490000013562DBA30A")
	require.NoError(t, err)

	assert.Equal(t, uint32(0x62DBA30A), sis.CRC32)
	assert.Empty(t, sis.NonFatalErrors)

	si, ok := sis.SpliceCommand.(SpliceInsert)
	require.True(t, ok)
	assert.Equal(t, uint32(1207959695), si.EventID)
	require.NotNil(t, si.ScheduledEvent)
	se := si.ScheduledEvent
	assert.True(t, se.OutOfNetworkIndicator)
	require.NotNil(t, se.BreakDuration)
	assert.True(t, se.BreakDuration.AutoReturn)
	assert.Equal(t, uint64(5426421), se.BreakDuration.Duration)
	assert.Equal(t, uint16(0), se.UniqueProgramID)

	program, ok := se.SpliceMode.(ProgramSpliceInsert)
	require.True(t, ok)
	require.NotNil(t, program.SpliceTime)
	require.NotNil(t, program.SpliceTime.PTSTime)
	assert.Equal(t, uint64(1936310318), *program.SpliceTime.PTSTime)

	require.Len(t, sis.SpliceDescriptors, 1)
	avail, ok := sis.SpliceDescriptors[0].(AvailDescriptor)
	require.True(t, ok)
	assert.Equal(t, uint32(CUEIdentifier), avail.Identifier)
	assert.Equal(t, uint32(309), avail.ProviderAvailID)
}

// S5: a segmentation_descriptor declaring an EIDR UPID with upid_length=1
// instead of the fixed 12 bytes EIDR requires; this is fatal.
func TestTryFromHexString_InvalidEIDRLengthIsFatal(t *testing.T) {
	_, err := TryFromHexString("FC30280000000000000000700506FF1252E9220012021043554549000000007F9F0A013050000015871049")
	require.Error(t, err)
	var lenErr *UnexpectedSegmentationUPIDLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 1, lenErr.Declared)
	assert.Equal(t, 12, lenErr.Expected)
	assert.Equal(t, SegmentationUPIDTypeEIDR, lenErr.UPIDType)
}

// S6: a splice_null with splice_command_length set to the legacy 0xFFF
// "unset" sentinel. The command itself decodes fine (no body), so the
// mismatch between the declared length and the zero bits actually consumed
// is a non-fatal anomaly, not a parse failure.
func TestTryFromHexString_SpliceCommandLengthSentinelIsNonFatal(t *testing.T) {
	sis, err := TryFromHexString("FC301100000000000000FFFFFF0000004F253396")
	require.NoError(t, err)

	assert.Equal(t, SAPTypeUnspecified, sis.SAPType)
	assert.Equal(t, uint16(0xFFF), sis.Tier)
	assert.Equal(t, uint32(0x4F253396), sis.CRC32)

	_, ok := sis.SpliceCommand.(SpliceNull)
	require.True(t, ok)

	require.Len(t, sis.NonFatalErrors, 1)
	nf := sis.NonFatalErrors[0]
	assert.Equal(t, UnexpectedSpliceCommandLength, nf.Kind)
	assert.Equal(t, int64(0xFFF*8), nf.DeclaredBits)
	assert.Equal(t, int64(0), nf.ActualBits)
	assert.Equal(t, SpliceCommandTypeSpliceNull, nf.SpliceCommand)
}

func TestTryFromHexString_0xPrefixTolerated(t *testing.T) {
	withPrefix, err := TryFromHexString("0xFC301100000000000000FFFFFF0000004F253396")
	require.NoError(t, err)
	withoutPrefix, err := TryFromHexString("FC301100000000000000FFFFFF0000004F253396")
	require.NoError(t, err)
	assert.Equal(t, withoutPrefix.CRC32, withPrefix.CRC32)
}

func TestTryFromHexString_InvalidHexIsFatal(t *testing.T) {
	_, err := TryFromHexString("not-hex")
	require.Error(t, err)
	var hexErr *DecodeHexError
	require.ErrorAs(t, err, &hexErr)
}

func TestTryFromBytes_TruncatedInputIsFatal(t *testing.T) {
	truncated := mustHexBytes(t, "FC301100000000000000FFFFFF0000004F253396")
	truncated = truncated[:len(truncated)-1]
	_, err := TryFromBytes(truncated)
	require.Error(t, err)
	var eodErr *UnexpectedEndOfDataError
	require.ErrorAs(t, err, &eodErr)
}

func TestTryFromBytes_EncryptedPacketIsFatal(t *testing.T) {
	b := mustHexBytes(t, "FC301100000000000000FFFFFF0000004F253396")
	// byte index 4 carries encrypted_packet_flag as its top bit, immediately
	// after protocol_version (byte index 3).
	b[4] |= 0x80
	_, err := TryFromBytes(b)
	require.Error(t, err)
	var encErr *EncryptedMessageNotSupportedError
	require.ErrorAs(t, err, &encErr)
}

func TestSAPType_DecodeAnomaly(t *testing.T) {
	// Raw 0x2 decodes to Type3, raw 0x3 decodes to Unspecified: the natural
	// 1:1 mapping, not the source's collapsed value() accessor.
	assert.Equal(t, SAPType3, decodeSAPType(0x2))
	assert.Equal(t, SAPTypeUnspecified, decodeSAPType(0x3))
	assert.Equal(t, uint8(0x2), SAPType3.Value())
	assert.Equal(t, uint8(0x3), SAPTypeUnspecified.Value())
}

func mustHexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
