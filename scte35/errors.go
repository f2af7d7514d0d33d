package scte35

import "fmt"

// UnexpectedEndOfDataError is returned when a read requires more bits than
// remain in the buffer.
type UnexpectedEndOfDataError struct {
	ExpectedMinimumBitsLeft uint
	ActualBitsLeft          uint
	Description             string
}

func (e *UnexpectedEndOfDataError) Error() string {
	return fmt.Sprintf("unexpected end of data: expected at least %d bits left, have %d (%s)",
		e.ExpectedMinimumBitsLeft, e.ActualBitsLeft, e.Description)
}

// DecodeHexError is returned when a hex string cannot be decoded.
type DecodeHexError struct {
	Input string
	Cause error
}

func (e *DecodeHexError) Error() string {
	return fmt.Sprintf("decode hex %q: %s", e.Input, e.Cause)
}

func (e *DecodeHexError) Unwrap() error { return e.Cause }

// Utf8ConversionError is returned when a string field is not valid UTF-8.
type Utf8ConversionError struct {
	Description string
}

func (e *Utf8ConversionError) Error() string {
	return fmt.Sprintf("invalid utf-8 in %s", e.Description)
}

// InvalidSectionSyntaxIndicatorError is returned when section_syntax_indicator is not 0.
type InvalidSectionSyntaxIndicatorError struct{}

func (e *InvalidSectionSyntaxIndicatorError) Error() string {
	return "invalid section_syntax_indicator: expected 0"
}

// InvalidPrivateIndicatorError is returned when private_indicator is not 0.
type InvalidPrivateIndicatorError struct{}

func (e *InvalidPrivateIndicatorError) Error() string {
	return "invalid private_indicator: expected 0"
}

// UnrecognisedSpliceCommandTypeError is returned for an unknown splice_command_type.
type UnrecognisedSpliceCommandTypeError struct {
	Raw uint32
}

func (e *UnrecognisedSpliceCommandTypeError) Error() string {
	return fmt.Sprintf("unrecognised splice_command_type: 0x%02x", e.Raw)
}

// UnrecognisedSpliceDescriptorTagError is returned for an unknown splice_descriptor_tag.
type UnrecognisedSpliceDescriptorTagError struct {
	Raw uint32
}

func (e *UnrecognisedSpliceDescriptorTagError) Error() string {
	return fmt.Sprintf("unrecognised splice_descriptor_tag: 0x%02x", e.Raw)
}

// UnrecognisedSegmentationUPIDTypeError is returned for an unknown segmentation_upid_type.
type UnrecognisedSegmentationUPIDTypeError struct {
	Raw uint32
}

func (e *UnrecognisedSegmentationUPIDTypeError) Error() string {
	return fmt.Sprintf("unrecognised segmentation_upid_type: 0x%02x", e.Raw)
}

// UnrecognisedSegmentationTypeIDError is returned for an unknown segmentation_type_id.
type UnrecognisedSegmentationTypeIDError struct {
	Raw uint32
}

func (e *UnrecognisedSegmentationTypeIDError) Error() string {
	return fmt.Sprintf("unrecognised segmentation_type_id: 0x%02x", e.Raw)
}

// UnrecognisedAudioCodingModeError is returned for an unknown acmod value.
type UnrecognisedAudioCodingModeError struct {
	Raw uint32
}

func (e *UnrecognisedAudioCodingModeError) Error() string {
	return fmt.Sprintf("unrecognised audio coding mode: 0x%x", e.Raw)
}

// InvalidBitStreamModeError is returned when bsmod==7 carries an acmod that
// does not resolve to VoiceOver or Karaoke.
type InvalidBitStreamModeError struct {
	Bsmod uint32
	Acmod uint32
}

func (e *InvalidBitStreamModeError) Error() string {
	return fmt.Sprintf("invalid bit_stream_mode: bsmod=0x%x acmod=0x%x", e.Bsmod, e.Acmod)
}

// InvalidSegmentationDescriptorIdentifierError is returned when a
// segmentation_descriptor's identifier is not "CUEI".
type InvalidSegmentationDescriptorIdentifierError struct {
	Actual uint32
}

func (e *InvalidSegmentationDescriptorIdentifierError) Error() string {
	return fmt.Sprintf("invalid segmentation_descriptor identifier: 0x%08x (expected 0x43554549)", e.Actual)
}

// InvalidATSCContentIdentifierInUPIDError is returned when an
// ATSCContentIdentifier UPID's declared length cannot hold the fixed header.
type InvalidATSCContentIdentifierInUPIDError struct {
	UPIDLength int
}

func (e *InvalidATSCContentIdentifierInUPIDError) Error() string {
	return fmt.Sprintf("invalid ATSCContentIdentifier upid_length: %d", e.UPIDLength)
}

// InvalidMPUInSegmentationUPIDError is returned when an MPU UPID's declared
// length cannot hold the 4-byte format_specifier.
type InvalidMPUInSegmentationUPIDError struct {
	UPIDLength int
}

func (e *InvalidMPUInSegmentationUPIDError) Error() string {
	return fmt.Sprintf("invalid MPU upid_length: %d", e.UPIDLength)
}

// UnexpectedSegmentationUPIDLengthError is returned when a fixed-length UPID
// variant's declared length does not match its expected length.
type UnexpectedSegmentationUPIDLengthError struct {
	Declared int
	Expected int
	UPIDType SegmentationUPIDType
}

func (e *UnexpectedSegmentationUPIDLengthError) Error() string {
	return fmt.Sprintf("unexpected segmentation_upid length for %s: declared %d, expected %d",
		e.UPIDType, e.Declared, e.Expected)
}

// EncryptedMessageNotSupportedError is returned when encrypted_packet_flag is set.
type EncryptedMessageNotSupportedError struct {
	Algorithm EncryptionAlgorithm
}

func (e *EncryptedMessageNotSupportedError) Error() string {
	return fmt.Sprintf("encrypted splice_info_section not supported: %s", e.Algorithm)
}

// NonFatalErrorKind identifies the shape of a NonFatalError without requiring
// a type switch at every call site.
type NonFatalErrorKind int

const (
	// UnexpectedSpliceCommandLength records a splice_command_length that did
	// not match the number of bits the command decoder actually consumed.
	UnexpectedSpliceCommandLength NonFatalErrorKind = iota
	// UnexpectedDescriptorLoopLength records a descriptor_loop_length that
	// did not match the bits consumed by the descriptor loop.
	UnexpectedDescriptorLoopLength
	// UnexpectedSpliceDescriptorLength records a descriptor_length that did
	// not match the bits consumed by that descriptor's body decoder.
	UnexpectedSpliceDescriptorLength
)

func (k NonFatalErrorKind) String() string {
	switch k {
	case UnexpectedSpliceCommandLength:
		return "UnexpectedSpliceCommandLength"
	case UnexpectedDescriptorLoopLength:
		return "UnexpectedDescriptorLoopLength"
	case UnexpectedSpliceDescriptorLength:
		return "UnexpectedSpliceDescriptorLength"
	default:
		return "Unknown"
	}
}

// NonFatalError is a parse anomaly that did not prevent the section from
// being fully decoded. These are data, appended to a section's
// NonFatalErrors, never raised as an error return.
type NonFatalError struct {
	Kind          NonFatalErrorKind
	DeclaredBits  int64
	ActualBits    int64
	SpliceCommand SpliceCommandType
	DescriptorTag SpliceDescriptorTag
}

func (e NonFatalError) Error() string {
	switch e.Kind {
	case UnexpectedSpliceCommandLength:
		return fmt.Sprintf("%s: declared=%d actual=%d command=%s", e.Kind, e.DeclaredBits, e.ActualBits, e.SpliceCommand)
	case UnexpectedSpliceDescriptorLength:
		return fmt.Sprintf("%s: declared=%d actual=%d tag=%s", e.Kind, e.DeclaredBits, e.ActualBits, e.DescriptorTag)
	default:
		return fmt.Sprintf("%s: declared=%d actual=%d", e.Kind, e.DeclaredBits, e.ActualBits)
	}
}
