package scte35

import "fmt"

// CUEIdentifier is the ASCII "CUEI" splice_descriptor identifier every
// SCTE-35 descriptor carries (0x43554549).
const CUEIdentifier = 0x43554549

// SpliceDescriptorTag is the 8-bit splice_descriptor_tag wire code.
type SpliceDescriptorTag uint8

const (
	SpliceDescriptorTagAvail        SpliceDescriptorTag = 0x00
	SpliceDescriptorTagDTMF         SpliceDescriptorTag = 0x01
	SpliceDescriptorTagSegmentation SpliceDescriptorTag = 0x02
	SpliceDescriptorTagTime         SpliceDescriptorTag = 0x03
	SpliceDescriptorTagAudio        SpliceDescriptorTag = 0x04
)

func (t SpliceDescriptorTag) String() string {
	switch t {
	case SpliceDescriptorTagAvail:
		return "avail_descriptor"
	case SpliceDescriptorTagDTMF:
		return "DTMF_descriptor"
	case SpliceDescriptorTagSegmentation:
		return "segmentation_descriptor"
	case SpliceDescriptorTagTime:
		return "time_descriptor"
	case SpliceDescriptorTagAudio:
		return "audio_descriptor"
	default:
		return fmt.Sprintf("splice_descriptor(0x%02x)", uint8(t))
	}
}

// SpliceDescriptor is the tagged-union interface implemented by every
// splice descriptor variant.
type SpliceDescriptor interface {
	DescriptorTag() SpliceDescriptorTag
}

// decodeSpliceDescriptors parses the descriptor loop: tag(8) | length(8) |
// body(length bytes), repeated until the declared loop length is consumed.
// Unrecognised tags are fatal; a length mismatch between what a body decoder
// consumed and the declared length is recorded as a non-fatal anomaly.
func decodeSpliceDescriptors(br *bitReader, loopLengthBytes int) ([]SpliceDescriptor, error) {
	expectedEnd := br.bitsRemaining() - uint(loopLengthBytes*8)
	var descriptors []SpliceDescriptor
	for br.bitsRemaining() > expectedEnd {
		if err := br.validate(16, "splice_descriptor.tag+length"); err != nil {
			return nil, err
		}
		tag := br.u32(8)
		length := int(br.u32(8))
		if err := br.validate(uint(length*8), "splice_descriptor.body"); err != nil {
			return nil, err
		}
		bitsBeforeBody := br.bitsRemaining()

		desc, err := decodeSpliceDescriptorBody(br, SpliceDescriptorTag(tag), length)
		if err != nil {
			return nil, err
		}

		consumed := int64(bitsBeforeBody) - int64(br.bitsRemaining())
		if consumed != int64(length)*8 {
			br.pushNonFatal(NonFatalError{
				Kind:          UnexpectedSpliceDescriptorLength,
				DeclaredBits:  int64(length) * 8,
				ActualBits:    consumed,
				DescriptorTag: SpliceDescriptorTag(tag),
			})
		}
		descriptors = append(descriptors, desc)
	}
	return descriptors, nil
}

func decodeSpliceDescriptorBody(br *bitReader, tag SpliceDescriptorTag, length int) (SpliceDescriptor, error) {
	switch tag {
	case SpliceDescriptorTagAvail:
		return decodeAvailDescriptor(br)
	case SpliceDescriptorTagDTMF:
		return decodeDTMFDescriptor(br)
	case SpliceDescriptorTagSegmentation:
		return decodeSegmentationDescriptor(br, length)
	case SpliceDescriptorTagTime:
		return decodeTimeDescriptor(br)
	case SpliceDescriptorTagAudio:
		return decodeAudioDescriptor(br)
	default:
		return nil, &UnrecognisedSpliceDescriptorTagError{Raw: uint32(tag)}
	}
}
