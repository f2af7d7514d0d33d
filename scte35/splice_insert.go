package scte35

// SpliceInsert signals a single splice point: either a live splice event
// (ScheduledEvent present) or a cancellation of a previously-signalled one.
type SpliceInsert struct {
	EventID        uint32
	Canceled       bool
	ScheduledEvent *SpliceInsertScheduledEvent
}

func (SpliceInsert) CommandType() SpliceCommandType { return SpliceCommandTypeSpliceInsert }

// SpliceInsertScheduledEvent is the body of a non-cancelled splice_insert.
// Invariant: if IsImmediateSplice, no SpliceTime within SpliceMode carries a
// PTSTime.
type SpliceInsertScheduledEvent struct {
	OutOfNetworkIndicator bool
	IsImmediateSplice     bool
	SpliceMode            InsertSpliceMode
	BreakDuration         *BreakDuration
	UniqueProgramID       uint16
	AvailNum              uint8
	AvailsExpected        uint8
}

// InsertSpliceMode distinguishes a program-wide splice point from a
// per-component one, for SpliceInsert events.
type InsertSpliceMode interface {
	isInsertSpliceMode()
}

// ProgramSpliceInsert is the program-wide splice mode. SpliceTime is nil
// when the event is an immediate splice.
type ProgramSpliceInsert struct {
	SpliceTime *SpliceTime
}

func (ProgramSpliceInsert) isInsertSpliceMode() {}

// ComponentSpliceInsert is the per-component splice mode.
type ComponentSpliceInsert struct {
	Components []ComponentSplice
}

func (ComponentSpliceInsert) isInsertSpliceMode() {}

// ComponentSplice pairs a component_tag with its own splice time; SpliceTime
// is nil when the event is an immediate splice.
type ComponentSplice struct {
	ComponentTag uint8
	SpliceTime   *SpliceTime
}

func decodeSpliceInsert(br *bitReader) (SpliceInsert, error) {
	if err := br.validate(40, "splice_insert.event"); err != nil {
		return SpliceInsert{}, err
	}
	eventID := br.u32(32)
	canceled := br.bool()
	br.consume(7)
	if canceled {
		return SpliceInsert{EventID: eventID, Canceled: true}, nil
	}

	if err := br.validate(8, "splice_insert.event flags"); err != nil {
		return SpliceInsert{}, err
	}
	outOfNetwork := br.bool()
	programSplice := br.bool()
	durationFlag := br.bool()
	immediate := br.bool()
	br.consume(4)

	var mode InsertSpliceMode
	if programSplice {
		var st *SpliceTime
		if !immediate {
			t, err := decodeSpliceTime(br)
			if err != nil {
				return SpliceInsert{}, err
			}
			st = &t
		}
		mode = ProgramSpliceInsert{SpliceTime: st}
	} else {
		if err := br.validate(8, "splice_insert.component_count"); err != nil {
			return SpliceInsert{}, err
		}
		componentCount := br.byteVal()
		components := make([]ComponentSplice, 0, componentCount)
		for i := uint8(0); i < componentCount; i++ {
			if err := br.validate(8, "splice_insert.component_tag"); err != nil {
				return SpliceInsert{}, err
			}
			tag := br.byteVal()
			var st *SpliceTime
			if !immediate {
				t, err := decodeSpliceTime(br)
				if err != nil {
					return SpliceInsert{}, err
				}
				st = &t
			}
			components = append(components, ComponentSplice{ComponentTag: tag, SpliceTime: st})
		}
		mode = ComponentSpliceInsert{Components: components}
	}

	var duration *BreakDuration
	if durationFlag {
		bd, err := decodeBreakDuration(br)
		if err != nil {
			return SpliceInsert{}, err
		}
		duration = &bd
	}

	if err := br.validate(32, "splice_insert.trailer"); err != nil {
		return SpliceInsert{}, err
	}
	uniqueProgramID := br.u16(16)
	availNum := br.byteVal()
	availsExpected := br.byteVal()

	return SpliceInsert{
		EventID: eventID,
		ScheduledEvent: &SpliceInsertScheduledEvent{
			OutOfNetworkIndicator: outOfNetwork,
			IsImmediateSplice:     immediate,
			SpliceMode:            mode,
			BreakDuration:         duration,
			UniqueProgramID:       uniqueProgramID,
			AvailNum:              availNum,
			AvailsExpected:        availsExpected,
		},
	}, nil
}
