package scte35

import (
	"io"
	"log"
	"unicode/utf8"

	"github.com/bamiaux/iobit"
)

// Logger receives diagnostics for non-fatal anomalies encountered during
// decode (see NonFatalError). It discards output by default; callers that
// want visibility redirect it, e.g. Logger.SetOutput(os.Stderr).
var Logger = log.New(io.Discard, "", log.LstdFlags)

// bitReader is a big-endian, MSB-first bit cursor over a byte slice. It
// wraps iobit.Reader with the bounded-consumption checks and the non-fatal
// anomaly sideband the decoder needs; nothing here mutates the caller's
// buffer.
type bitReader struct {
	r           iobit.Reader
	nonFatal    []NonFatalError
	description string
}

func newBitReader(b []byte) *bitReader {
	return &bitReader{r: iobit.NewReader(b)}
}

// validate fails with UnexpectedEndOfDataError when fewer than
// expectedBits remain.
func (br *bitReader) validate(expectedBits uint, description string) error {
	if br.bitsRemaining() < expectedBits {
		return &UnexpectedEndOfDataError{
			ExpectedMinimumBitsLeft: expectedBits,
			ActualBitsLeft:          br.bitsRemaining(),
			Description:             description,
		}
	}
	return nil
}

func (br *bitReader) bitsRemaining() uint { return br.r.LeftBits() }

func (br *bitReader) bool() bool { return br.r.Bit() }

func (br *bitReader) u8(n uint) uint8 { return uint8(br.r.Uint32(n)) }

func (br *bitReader) u16(n uint) uint16 { return uint16(br.r.Uint32(n)) }

func (br *bitReader) u32(n uint) uint32 { return br.r.Uint32(n) }

func (br *bitReader) u64(n uint) uint64 { return br.r.Uint64(n) }

func (br *bitReader) byteVal() uint8 { return br.u8(8) }

func (br *bitReader) consume(n uint) { br.r.Skip(n) }

func (br *bitReader) bytes(n int) []byte { return br.r.Bytes(n) }

// str reads n whole bytes and validates the result as UTF-8, returning a
// fatal Utf8ConversionError on failure.
func (br *bitReader) str(n int, description string) (string, error) {
	b := br.r.Bytes(n)
	if !utf8.Valid(b) {
		return "", &Utf8ConversionError{Description: description}
	}
	return string(b), nil
}

// peek returns a reader over the remaining bits that can be consumed
// independently of br; br's own position is unaffected.
func (br *bitReader) peek() *bitReader {
	p := br.r.Peek()
	return &bitReader{r: p}
}

func (br *bitReader) leftBytes() []byte { return br.r.LeftBytes() }

func (br *bitReader) pushNonFatal(err NonFatalError) {
	Logger.Printf("non-fatal anomaly: %s", err.Error())
	br.nonFatal = append(br.nonFatal, err)
}
