package scte35

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSegmentationUPID_EIDRChecksum(t *testing.T) {
	// upid_type=EIDR(0x0a), upid_length=12: registrant(16)=5239, then five
	// 16-bit hex groups. The sixth, single-character group is a computed
	// ISAN v2 check digit, not read from the wire.
	buf := []byte{
		0x0a, 0x0c,
		0x14, 0x77, // registrant 5239
		0x8b, 0xe5,
		0xe3, 0xf6,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
	}
	br := newBitReader(buf)
	upid, err := decodeSegmentationUPID(br)
	require.NoError(t, err)
	eidr, ok := upid.(EIDRUPID)
	require.True(t, ok)
	assert.Equal(t, "10.5239/8BE5-E3F6-0000-0000-0000-B", eidr.Value)
}

func TestDecodeSegmentationUPID_NotUsedBoundary(t *testing.T) {
	br := newBitReader([]byte{0x00, 0x00})
	upid, err := decodeSegmentationUPID(br)
	require.NoError(t, err)
	assert.Equal(t, NotUsedUPID{}, upid)
}

func TestDecodeSegmentationUPID_FixedLengthMismatchIsFatal(t *testing.T) {
	// ISCI requires exactly 8 bytes; declaring 0 is fatal.
	br := newBitReader([]byte{0x02, 0x00})
	_, err := decodeSegmentationUPID(br)
	require.Error(t, err)
	var lenErr *UnexpectedSegmentationUPIDLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 0, lenErr.Declared)
	assert.Equal(t, 8, lenErr.Expected)
	assert.Equal(t, SegmentationUPIDTypeISCI, lenErr.UPIDType)
}

func TestDecodeSegmentationUPID_UnrecognisedTypeIsFatal(t *testing.T) {
	br := newBitReader([]byte{0xff, 0x00})
	_, err := decodeSegmentationUPID(br)
	require.Error(t, err)
	var typeErr *UnrecognisedSegmentationUPIDTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, uint32(0xff), typeErr.Raw)
}

func TestDecodeSegmentationUPID_MIDRecursesChildren(t *testing.T) {
	// MID(0x0d) wrapping two NotUsed(0x00) children, each declaring length 0.
	buf := []byte{0x0d, 0x04, 0x00, 0x00, 0x00, 0x00}
	br := newBitReader(buf)
	upid, err := decodeSegmentationUPID(br)
	require.NoError(t, err)
	mid, ok := upid.(MIDUPID)
	require.True(t, ok)
	require.Len(t, mid.Value, 2)
	assert.Equal(t, NotUsedUPID{}, mid.Value[0])
	assert.Equal(t, NotUsedUPID{}, mid.Value[1])
}

func TestDecodeSegmentationUPID_MIDWithEIDRAndADIChildren(t *testing.T) {
	// MID(0x0d) wrapping two identical EIDR(0x0a) children and one ADI(0x09)
	// child carrying a SIGNAL: value.
	adi := "SIGNAL:Ly9EMGxKR0hFZUtpMHdCUVZnRUFnZz0"
	eidr := []byte{
		0x0a, 0x0c,
		0x14, 0x77,
		0x8b, 0xe5,
		0xe3, 0xf6,
		0x00, 0x00,
		0x00, 0x00,
		0x00, 0x00,
	}
	var buf []byte
	buf = append(buf, eidr...)
	buf = append(buf, eidr...)
	buf = append(buf, 0x09, byte(len(adi)))
	buf = append(buf, []byte(adi)...)

	header := []byte{0x0d, byte(len(buf))}
	br := newBitReader(append(header, buf...))
	upid, err := decodeSegmentationUPID(br)
	require.NoError(t, err)
	mid, ok := upid.(MIDUPID)
	require.True(t, ok)
	require.Len(t, mid.Value, 3)

	eidr0, ok := mid.Value[0].(EIDRUPID)
	require.True(t, ok)
	assert.Equal(t, "10.5239/8BE5-E3F6-0000-0000-0000-B", eidr0.Value)

	eidr1, ok := mid.Value[1].(EIDRUPID)
	require.True(t, ok)
	assert.Equal(t, eidr0.Value, eidr1.Value)

	adiUPID, ok := mid.Value[2].(ADIUPID)
	require.True(t, ok)
	assert.Equal(t, adi, adiUPID.Value)
}

func TestDecodeSegmentationUPID_MPUWithNBCUFormatSpecifier(t *testing.T) {
	// MPU(0x0c): format_specifier="NBCU" followed by opaque private_data.
	privateData := []byte(`{"hw":1}`)
	buf := append([]byte{0x0c, byte(4 + len(privateData))}, []byte("NBCU")...)
	buf = append(buf, privateData...)

	br := newBitReader(buf)
	upid, err := decodeSegmentationUPID(br)
	require.NoError(t, err)
	mpu, ok := upid.(MPUUPID)
	require.True(t, ok)
	assert.Equal(t, "NBCU", mpu.FormatSpecifier)
	assert.Equal(t, privateData, mpu.PrivateData)
}
