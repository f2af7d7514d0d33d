package scte35

// TimeDescriptor carries a TAI timestamp correlated with the splice point.
type TimeDescriptor struct {
	Identifier uint32
	TAISeconds uint64
	TAINS      uint32
	UTCOffset  uint16
}

func (TimeDescriptor) DescriptorTag() SpliceDescriptorTag { return SpliceDescriptorTagTime }

func decodeTimeDescriptor(br *bitReader) (TimeDescriptor, error) {
	if err := br.validate(128, "time_descriptor"); err != nil {
		return TimeDescriptor{}, err
	}
	return TimeDescriptor{
		Identifier: br.u32(32),
		TAISeconds: br.u64(48),
		TAINS:      br.u32(32),
		UTCOffset:  br.u16(16),
	}, nil
}
