package scte35

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitReader_ValidateFailsOnShortfall(t *testing.T) {
	br := newBitReader([]byte{0xff})
	err := br.validate(9, "test")
	require.Error(t, err)
	var eodErr *UnexpectedEndOfDataError
	require.ErrorAs(t, err, &eodErr)
	assert.Equal(t, uint(9), eodErr.ExpectedMinimumBitsLeft)
	assert.Equal(t, uint(8), eodErr.ActualBitsLeft)
}

func TestBitReader_ValidateSucceedsAtExactBoundary(t *testing.T) {
	br := newBitReader([]byte{0xff})
	require.NoError(t, br.validate(8, "test"))
}

func TestBitReader_ReadsAndConsume(t *testing.T) {
	br := newBitReader([]byte{0b10110000, 0x42})
	assert.True(t, br.bool())
	assert.Equal(t, uint8(0b0110000), br.u8(7))
	assert.Equal(t, uint8(0x42), br.byteVal())
	assert.Equal(t, uint(0), br.bitsRemaining())
}

func TestBitReader_StrRejectsInvalidUTF8(t *testing.T) {
	br := newBitReader([]byte{0xff, 0xfe})
	_, err := br.str(2, "test")
	require.Error(t, err)
	var utf8Err *Utf8ConversionError
	require.ErrorAs(t, err, &utf8Err)
}

func TestBitReader_PeekDoesNotAdvance(t *testing.T) {
	br := newBitReader([]byte{0x01, 0x02})
	p := br.peek()
	assert.Equal(t, uint16(0x0102), p.u16(16))
	assert.Equal(t, uint(16), br.bitsRemaining())
}

func TestBitReader_PushNonFatalAccumulates(t *testing.T) {
	br := newBitReader([]byte{0x00})
	br.pushNonFatal(NonFatalError{Kind: UnexpectedSpliceCommandLength})
	br.pushNonFatal(NonFatalError{Kind: UnexpectedDescriptorLoopLength})
	require.Len(t, br.nonFatal, 2)
}

func TestBitReader_PushNonFatalWritesToLogger(t *testing.T) {
	var buf bytes.Buffer
	old := Logger.Writer()
	Logger.SetOutput(&buf)
	defer Logger.SetOutput(old)

	br := newBitReader([]byte{0x00})
	br.pushNonFatal(NonFatalError{Kind: UnexpectedSpliceCommandLength})
	assert.True(t, strings.Contains(buf.String(), "non-fatal"))
}
