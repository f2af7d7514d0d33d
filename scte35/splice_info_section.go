package scte35

import "fmt"

// TableID is the fixed table_id every splice_info_section carries.
const TableID = 0xFC

// SAPType is the 2-bit sap_type wire code.
type SAPType uint8

const (
	SAPType1           SAPType = 0x00
	SAPType2           SAPType = 0x01
	SAPType3           SAPType = 0x02
	SAPTypeUnspecified SAPType = 0x03
)

// decodeSAPType maps the 2-bit raw field to a SAPType using the natural 1:1
// correspondence (0x2 -> Type3, 0x3 -> Unspecified). The source's value()
// accessor collapses Type3 and Unspecified onto the same raw value 0x3, an
// apparent typo this decoder does not reproduce on the decode side.
func decodeSAPType(raw uint32) SAPType {
	switch raw {
	case 0x00:
		return SAPType1
	case 0x01:
		return SAPType2
	case 0x02:
		return SAPType3
	default:
		return SAPTypeUnspecified
	}
}

// Value returns the 2-bit wire code for the SAPType.
func (t SAPType) Value() uint8 { return uint8(t) }

func (t SAPType) String() string {
	switch t {
	case SAPType1:
		return "Type 1"
	case SAPType2:
		return "Type 2"
	case SAPType3:
		return "Type 3"
	case SAPTypeUnspecified:
		return "Not Specified"
	default:
		return fmt.Sprintf("sap_type(0x%x)", uint8(t))
	}
}

// SpliceInfoSection is the fully decoded top-level SCTE-35 frame. CRC32 is
// captured verbatim and never recomputed. EncryptedPacket is always nil on a
// successful decode: an encrypted_packet_flag of 1 fails fatally before any
// SpliceInfoSection is assembled, so the field exists only to mirror the
// wire's optionality.
type SpliceInfoSection struct {
	TableID           uint8
	SAPType           SAPType
	ProtocolVersion   uint8
	EncryptedPacket   *EncryptedPacket
	PTSAdjustment     uint64
	CWIndex           uint8
	Tier              uint16
	SpliceCommand     SpliceCommand
	SpliceDescriptors []SpliceDescriptor
	CRC32             uint32
	NonFatalErrors    []NonFatalError
}

// Duration reports the duration implied by the section: a SpliceInsert's
// break_duration if present, otherwise the sum of every
// SegmentationDescriptor's segmentation_duration, in 90kHz ticks.
func (sis *SpliceInfoSection) Duration() uint64 {
	if si, ok := sis.SpliceCommand.(SpliceInsert); ok && si.ScheduledEvent != nil && si.ScheduledEvent.BreakDuration != nil {
		return si.ScheduledEvent.BreakDuration.Duration
	}
	var ticks uint64
	for _, sd := range sis.SpliceDescriptors {
		if seg, ok := sd.(SegmentationDescriptor); ok && seg.ScheduledEvent != nil && seg.ScheduledEvent.SegmentationDuration != nil {
			ticks += *seg.ScheduledEvent.SegmentationDuration
		}
	}
	return ticks
}

// decodeSpliceInfoSection implements the 8-step top-level frame algorithm:
// header, protocol_version, the encryption gate, pts_adjustment/cw_index/
// tier/splice_command_length, command dispatch, the descriptor loop,
// alignment stuffing, and the verbatim crc_32 capture.
func decodeSpliceInfoSection(br *bitReader) (*SpliceInfoSection, error) {
	if err := br.validate(24, "splice_info_section.header"); err != nil {
		return nil, err
	}
	tableID := br.byteVal()
	if br.bool() { // section_syntax_indicator
		return nil, &InvalidSectionSyntaxIndicatorError{}
	}
	if br.bool() { // private_indicator
		return nil, &InvalidPrivateIndicatorError{}
	}
	sapType := decodeSAPType(br.u32(2))
	sectionLength := br.u32(12)
	if err := br.validate(uint(sectionLength)*8, "splice_info_section.section_length"); err != nil {
		return nil, err
	}

	if err := br.validate(8, "splice_info_section.protocol_version"); err != nil {
		return nil, err
	}
	protocolVersion := br.byteVal()

	if err := br.validate(7, "splice_info_section.encrypted_packet_flag+encryption_algorithm"); err != nil {
		return nil, err
	}
	encryptedPacketFlag := br.bool()
	encryptionAlgorithm := EncryptionAlgorithm(br.u8(6))
	if encryptedPacketFlag {
		return nil, &EncryptedMessageNotSupportedError{Algorithm: encryptionAlgorithm}
	}

	if err := br.validate(33+8+12+12, "splice_info_section.pts_adjustment+cw_index+tier+splice_command_length"); err != nil {
		return nil, err
	}
	ptsAdjustment := br.u64(33)
	cwIndex := br.byteVal()
	tier := br.u16(12)
	spliceCommandLength := br.u32(12)

	if err := br.validate(8, "splice_info_section.splice_command_type"); err != nil {
		return nil, err
	}
	spliceCommandType := br.u32(8)
	bitsBeforeCommand := br.bitsRemaining()
	spliceCommand, err := decodeSpliceCommand(br, spliceCommandType, int(spliceCommandLength))
	if err != nil {
		return nil, err
	}
	commandConsumed := int64(bitsBeforeCommand) - int64(br.bitsRemaining())
	if commandConsumed != int64(spliceCommandLength)*8 {
		br.pushNonFatal(NonFatalError{
			Kind:          UnexpectedSpliceCommandLength,
			DeclaredBits:  int64(spliceCommandLength) * 8,
			ActualBits:    commandConsumed,
			SpliceCommand: SpliceCommandType(spliceCommandType),
		})
	}

	if err := br.validate(16, "splice_info_section.descriptor_loop_length"); err != nil {
		return nil, err
	}
	descriptorLoopLength := br.u32(16)
	if err := br.validate(uint(descriptorLoopLength)*8, "splice_info_section.descriptor_loop"); err != nil {
		return nil, err
	}
	bitsBeforeDescriptors := br.bitsRemaining()
	descriptors, err := decodeSpliceDescriptors(br, int(descriptorLoopLength))
	if err != nil {
		return nil, err
	}
	descriptorsConsumed := int64(bitsBeforeDescriptors) - int64(br.bitsRemaining())
	if descriptorsConsumed != int64(descriptorLoopLength)*8 {
		br.pushNonFatal(NonFatalError{
			Kind:         UnexpectedDescriptorLoopLength,
			DeclaredBits: int64(descriptorLoopLength) * 8,
			ActualBits:   descriptorsConsumed,
		})
	}

	// alignment_stuffing: whatever is left beyond the trailing crc_32.
	if br.bitsRemaining() > 32 {
		br.consume(br.bitsRemaining() - 32)
	}
	if err := br.validate(32, "splice_info_section.crc_32"); err != nil {
		return nil, err
	}
	crc32 := br.u32(32)

	return &SpliceInfoSection{
		TableID:           tableID,
		SAPType:           sapType,
		ProtocolVersion:   protocolVersion,
		PTSAdjustment:     ptsAdjustment,
		CWIndex:           cwIndex,
		Tier:              tier,
		SpliceCommand:     spliceCommand,
		SpliceDescriptors: descriptors,
		CRC32:             crc32,
		NonFatalErrors:    br.nonFatal,
	}, nil
}
