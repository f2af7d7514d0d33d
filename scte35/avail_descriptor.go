package scte35

// AvailDescriptor carries a provider-defined avail identifier.
type AvailDescriptor struct {
	Identifier      uint32
	ProviderAvailID uint32
}

func (AvailDescriptor) DescriptorTag() SpliceDescriptorTag { return SpliceDescriptorTagAvail }

func decodeAvailDescriptor(br *bitReader) (AvailDescriptor, error) {
	if err := br.validate(64, "avail_descriptor"); err != nil {
		return AvailDescriptor{}, err
	}
	return AvailDescriptor{
		Identifier:      br.u32(32),
		ProviderAvailID: br.u32(32),
	}, nil
}
