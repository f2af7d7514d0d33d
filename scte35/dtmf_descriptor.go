package scte35

// DTMFDescriptor carries a DTMF sequence to be emitted at the splice point.
// Allowed characters are 0-9, *, # — not enforced, surfaced as-is.
type DTMFDescriptor struct {
	Identifier uint32
	Preroll    uint8
	DTMFChars  string
}

func (DTMFDescriptor) DescriptorTag() SpliceDescriptorTag { return SpliceDescriptorTagDTMF }

func decodeDTMFDescriptor(br *bitReader) (DTMFDescriptor, error) {
	if err := br.validate(48, "DTMF_descriptor"); err != nil {
		return DTMFDescriptor{}, err
	}
	identifier := br.u32(32)
	preroll := br.byteVal()
	count := int(br.u32(3))
	br.consume(5)
	if err := br.validate(uint(count*8), "DTMF_descriptor.DTMF_char"); err != nil {
		return DTMFDescriptor{}, err
	}
	chars, err := br.str(count, "DTMF_descriptor.DTMF_char")
	if err != nil {
		return DTMFDescriptor{}, err
	}
	return DTMFDescriptor{Identifier: identifier, Preroll: preroll, DTMFChars: chars}, nil
}
