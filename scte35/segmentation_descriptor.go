package scte35

// DeviceRestrictions is the 2-bit device_restrictions code of a
// DeliveryRestrictions block.
type DeviceRestrictions uint8

const (
	DeviceRestrictionsGroup0 DeviceRestrictions = 0x00
	DeviceRestrictionsGroup1 DeviceRestrictions = 0x01
	DeviceRestrictionsGroup2 DeviceRestrictions = 0x02
	DeviceRestrictionsNone   DeviceRestrictions = 0x03
)

func (d DeviceRestrictions) String() string {
	switch d {
	case DeviceRestrictionsGroup0:
		return "Restrict Group 0"
	case DeviceRestrictionsGroup1:
		return "Restrict Group 1"
	case DeviceRestrictionsGroup2:
		return "Restrict Group 2"
	case DeviceRestrictionsNone:
		return "None"
	default:
		return "Unknown"
	}
}

// DeliveryRestrictions carries the delivery policy bits of a
// SegmentationDescriptor's scheduled event, present only when
// delivery_not_restricted_flag is unset on the wire.
type DeliveryRestrictions struct {
	WebDeliveryAllowed bool
	NoRegionalBlackout bool
	ArchiveAllowed     bool
	DeviceRestrictions DeviceRestrictions
}

// SegmentationDescriptorComponent is one entry of the component loop, used
// when the scheduled event is not program-wide.
type SegmentationDescriptorComponent struct {
	ComponentTag uint8
	PTSOffset    uint64
}

// SegmentationDescriptor is the single most complex descriptor variant: it
// carries the program boundary/ad-avail semantics that drive splice
// decisions, keyed by a polymorphic SegmentationUPID.
type SegmentationDescriptor struct {
	Identifier     uint32
	EventID        uint32
	Canceled       bool
	ScheduledEvent *SegmentationScheduledEvent
}

func (SegmentationDescriptor) DescriptorTag() SpliceDescriptorTag {
	return SpliceDescriptorTagSegmentation
}

// SegmentationScheduledEvent is the body of a non-cancelled
// segmentation_descriptor.
type SegmentationScheduledEvent struct {
	ProgramSegmentation  bool
	DeliveryRestrictions *DeliveryRestrictions
	Components           []SegmentationDescriptorComponent
	SegmentationDuration *uint64
	SegmentationUPID     SegmentationUPID
	SegmentationTypeID   SegmentationTypeID
	SegmentNum           uint8
	SegmentsExpected     uint8
	SubSegmentNum        *uint8
	SubSegmentsExpected  *uint8
}


func decodeSegmentationDescriptor(br *bitReader, declaredLength int) (SegmentationDescriptor, error) {
	if err := br.validate(64, "segmentation_descriptor.identifier+event_id"); err != nil {
		return SegmentationDescriptor{}, err
	}
	identifier := br.u32(32)
	if identifier != CUEIdentifier {
		return SegmentationDescriptor{}, &InvalidSegmentationDescriptorIdentifierError{Actual: identifier}
	}
	eventID := br.u32(32)

	if err := br.validate(8, "segmentation_descriptor.cancel_indicator"); err != nil {
		return SegmentationDescriptor{}, err
	}
	canceled := br.bool()
	br.consume(7)
	if canceled {
		return SegmentationDescriptor{Identifier: identifier, EventID: eventID, Canceled: true}, nil
	}

	// expectedEnd anchors the sub-segment gate: bits_remaining after this
	// descriptor's body should reach this many bits left in the overall
	// stream. declaredLength is the descriptor_length read by the frame
	// before invoking this decoder, so bits consumed so far (64+8=72 for
	// identifier+event_id+flags) must be subtracted.
	expectedEnd := br.bitsRemaining() - (uint(declaredLength)*8 - 72)

	if err := br.validate(8, "segmentation_descriptor.scheduled_event flags"); err != nil {
		return SegmentationDescriptor{}, err
	}
	programSegmentation := br.bool()
	durationFlag := br.bool()
	deliveryNotRestricted := br.bool()

	var restrictions *DeliveryRestrictions
	if !deliveryNotRestricted {
		webDeliveryAllowed := br.bool()
		noRegionalBlackout := br.bool()
		archiveAllowed := br.bool()
		device := DeviceRestrictions(br.u32(2))
		restrictions = &DeliveryRestrictions{
			WebDeliveryAllowed: webDeliveryAllowed,
			NoRegionalBlackout: noRegionalBlackout,
			ArchiveAllowed:     archiveAllowed,
			DeviceRestrictions: device,
		}
	} else {
		br.consume(5)
	}

	var components []SegmentationDescriptorComponent
	if !programSegmentation {
		if err := br.validate(8, "segmentation_descriptor.component_count"); err != nil {
			return SegmentationDescriptor{}, err
		}
		count := br.byteVal()
		components = make([]SegmentationDescriptorComponent, 0, count)
		for i := uint8(0); i < count; i++ {
			if err := br.validate(48, "segmentation_descriptor.component"); err != nil {
				return SegmentationDescriptor{}, err
			}
			tag := br.byteVal()
			br.consume(7)
			offset := br.u64(33)
			components = append(components, SegmentationDescriptorComponent{ComponentTag: tag, PTSOffset: offset})
		}
	}

	var duration *uint64
	if durationFlag {
		if err := br.validate(40, "segmentation_descriptor.segmentation_duration"); err != nil {
			return SegmentationDescriptor{}, err
		}
		d := br.u64(40)
		duration = &d
	}

	upid, err := decodeSegmentationUPID(br)
	if err != nil {
		return SegmentationDescriptor{}, err
	}

	if err := br.validate(24, "segmentation_descriptor.type+segment_num+segments_expected"); err != nil {
		return SegmentationDescriptor{}, err
	}
	typeID, err := decodeSegmentationTypeID(br.u32(8))
	if err != nil {
		return SegmentationDescriptor{}, err
	}
	segmentNum := br.byteVal()
	segmentsExpected := br.byteVal()

	var subSegmentNum, subSegmentsExpected *uint8
	if typeID.hasSubSegment() && br.bitsRemaining() >= 16 && br.bitsRemaining()-16 >= expectedEnd {
		n := br.byteVal()
		e := br.byteVal()
		subSegmentNum = &n
		subSegmentsExpected = &e
	}

	return SegmentationDescriptor{
		Identifier: identifier,
		EventID:    eventID,
		ScheduledEvent: &SegmentationScheduledEvent{
			ProgramSegmentation:  programSegmentation,
			DeliveryRestrictions: restrictions,
			Components:           components,
			SegmentationDuration: duration,
			SegmentationUPID:     upid,
			SegmentationTypeID:   typeID,
			SegmentNum:           segmentNum,
			SegmentsExpected:     segmentsExpected,
			SubSegmentNum:        subSegmentNum,
			SubSegmentsExpected:  subSegmentsExpected,
		},
	}, nil
}
