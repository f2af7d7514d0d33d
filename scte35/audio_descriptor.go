package scte35

// AudioDescriptor enumerates the audio components present at the splice
// point, for receivers that need to select among them.
type AudioDescriptor struct {
	Identifier uint32
	Components []AudioComponent
}

func (AudioDescriptor) DescriptorTag() SpliceDescriptorTag { return SpliceDescriptorTagAudio }

// AudioComponent is one entry of an AudioDescriptor. Exactly one of
// AudioCodingMode or MaxNumberOfEncodedChannels is set, mirroring
// NumChannelsFlag.
type AudioComponent struct {
	ComponentTag               uint8
	ISOCode                    uint32
	NumChannelsFlag            bool
	AudioCodingMode            *AudioCodingMode
	MaxNumberOfEncodedChannels *MaxNumberOfEncodedChannels
	BitStreamMode              BitStreamMode
	FullServiceAudio           bool
}

func decodeAudioDescriptor(br *bitReader) (AudioDescriptor, error) {
	if err := br.validate(40, "audio_descriptor"); err != nil {
		return AudioDescriptor{}, err
	}
	identifier := br.u32(32)
	count := int(br.u32(4))
	br.consume(4)

	components := make([]AudioComponent, 0, count)
	for i := 0; i < count; i++ {
		if err := br.validate(36, "audio_descriptor.component"); err != nil {
			return AudioDescriptor{}, err
		}
		tag := br.byteVal()
		isoCode := br.u32(24)
		bsmod := br.u32(3)
		numChannelsFlag := br.bool()

		var acm *AudioCodingMode
		var maxChannels *MaxNumberOfEncodedChannels
		var acmodForBsmod *uint32
		if numChannelsFlag {
			if err := br.validate(3, "audio_descriptor.acmod"); err != nil {
				return AudioDescriptor{}, err
			}
			acmodRaw := br.u32(3)
			mode, err := decodeAudioCodingMode(acmodRaw)
			if err != nil {
				return AudioDescriptor{}, err
			}
			acm = &mode
			acmodForBsmod = &acmodRaw
		} else {
			if err := br.validate(3, "audio_descriptor.maximum_number_of_channels"); err != nil {
				return AudioDescriptor{}, err
			}
			max := decodeMaxNumberOfEncodedChannels(br.u32(3))
			maxChannels = &max
		}

		bsm, err := decodeBitStreamMode(bsmod, acmodForBsmod)
		if err != nil {
			return AudioDescriptor{}, err
		}

		if err := br.validate(1, "audio_descriptor.full_srvc_audio"); err != nil {
			return AudioDescriptor{}, err
		}
		fullService := br.bool()

		components = append(components, AudioComponent{
			ComponentTag:               tag,
			ISOCode:                    isoCode,
			NumChannelsFlag:            numChannelsFlag,
			AudioCodingMode:            acm,
			MaxNumberOfEncodedChannels: maxChannels,
			BitStreamMode:              bsm,
			FullServiceAudio:           fullService,
		})
	}

	return AudioDescriptor{Identifier: identifier, Components: components}, nil
}
