package scte35

import "fmt"

// ATSCContentIdentifier is the structured content identifier nested inside a
// SegmentationUPID of type ATSCContentIdentifier. See ATSC A/57B.
type ATSCContentIdentifier struct {
	TSID      uint16
	EndOfDay  uint8
	UniqueFor uint16
	ContentID string
}

func decodeATSCContentIdentifier(br *bitReader, upidLength int) (ATSCContentIdentifier, error) {
	contentIDLength := upidLength - 4
	if contentIDLength < 0 {
		return ATSCContentIdentifier{}, &InvalidATSCContentIdentifierInUPIDError{UPIDLength: upidLength}
	}
	if err := br.validate(uint(32+contentIDLength*8), "atsc_content_identifier"); err != nil {
		return ATSCContentIdentifier{}, err
	}
	tsid := br.u16(16)
	br.consume(2)
	endOfDay := br.u8(5)
	uniqueFor := br.u16(9)
	contentID, err := br.str(contentIDLength, "atsc_content_identifier.content_id")
	if err != nil {
		return ATSCContentIdentifier{}, err
	}
	return ATSCContentIdentifier{
		TSID:      tsid,
		EndOfDay:  endOfDay,
		UniqueFor: uniqueFor,
		ContentID: contentID,
	}, nil
}

// AudioCodingMode is the ATSC A/52 Table 5.8 acmod value, describing the
// channel configuration of an audio component.
type AudioCodingMode uint8

const (
	AudioCodingModeOneAndOne AudioCodingMode = iota // 1+1: dual mono
	AudioCodingModeOne                              // 1/0: mono
	AudioCodingModeTwoZero                          // 2/0: stereo
	AudioCodingModeThreeZero                        // 3/0
	AudioCodingModeTwoOne                           // 2/1
	AudioCodingModeThreeOne                         // 3/1
	AudioCodingModeTwoTwo                           // 2/2
	AudioCodingModeThreeTwo                         // 3/2
)

func decodeAudioCodingMode(raw uint32) (AudioCodingMode, error) {
	if raw > uint32(AudioCodingModeThreeTwo) {
		return 0, &UnrecognisedAudioCodingModeError{Raw: raw}
	}
	return AudioCodingMode(raw), nil
}

func (m AudioCodingMode) String() string {
	switch m {
	case AudioCodingModeOneAndOne:
		return "1+1"
	case AudioCodingModeOne:
		return "1/0"
	case AudioCodingModeTwoZero:
		return "2/0"
	case AudioCodingModeThreeZero:
		return "3/0"
	case AudioCodingModeTwoOne:
		return "2/1"
	case AudioCodingModeThreeOne:
		return "3/1"
	case AudioCodingModeTwoTwo:
		return "2/2"
	case AudioCodingModeThreeTwo:
		return "3/2"
	default:
		return fmt.Sprintf("AudioCodingMode(%d)", uint8(m))
	}
}

// MaxNumberOfEncodedChannels is the 3-bit maximum channel count code used
// when num_channels_flag is unset.
type MaxNumberOfEncodedChannels struct {
	// Count is 1..6 for the named codes 0..5; for raw values 6 and 7 (which
	// ATSC reserves) Count is 0 and Unknown carries the raw value.
	Count   uint8
	Unknown *uint8
}

func decodeMaxNumberOfEncodedChannels(raw uint32) MaxNumberOfEncodedChannels {
	if raw <= 5 {
		return MaxNumberOfEncodedChannels{Count: uint8(raw) + 1}
	}
	u := uint8(raw)
	return MaxNumberOfEncodedChannels{Unknown: &u}
}

// BitStreamMode is the ATSC A/52 Table 5.3 bsmod value, qualified by acmod
// when bsmod == 7.
type BitStreamMode int

const (
	BitStreamModeCompleteMain BitStreamMode = iota
	BitStreamModeMusicAndEffects
	BitStreamModeVisuallyImpaired
	BitStreamModeHearingImpaired
	BitStreamModeDialogue
	BitStreamModeCommentary
	BitStreamModeEmergency
	BitStreamModeVoiceOver
	BitStreamModeKaraoke
)

func decodeBitStreamMode(bsmod uint32, acmod *uint32) (BitStreamMode, error) {
	if bsmod <= 6 {
		return BitStreamMode(bsmod), nil
	}
	if acmod == nil {
		return 0, &InvalidBitStreamModeError{Bsmod: bsmod}
	}
	switch {
	case *acmod == 1:
		return BitStreamModeVoiceOver, nil
	case *acmod >= 2 && *acmod <= 7:
		return BitStreamModeKaraoke, nil
	default:
		return 0, &InvalidBitStreamModeError{Bsmod: bsmod, Acmod: *acmod}
	}
}
