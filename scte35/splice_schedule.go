package scte35

// SpliceSchedule carries a batch of scheduled splice events, each timed by a
// 32-bit UTC value (seconds since the GPS epoch) rather than a PTS.
type SpliceSchedule struct {
	Events []SpliceScheduleEvent
}

func (SpliceSchedule) CommandType() SpliceCommandType { return SpliceCommandTypeSpliceSchedule }

// SpliceScheduleEvent is one entry of a SpliceSchedule. ScheduledEvent is
// absent when the event has been cancelled.
type SpliceScheduleEvent struct {
	EventID        uint32
	Canceled       bool
	ScheduledEvent *SpliceScheduleScheduledEvent
}

// SpliceScheduleScheduledEvent is the body of a non-cancelled schedule event.
type SpliceScheduleScheduledEvent struct {
	OutOfNetworkIndicator bool
	SpliceMode            ScheduleSpliceMode
	BreakDuration         *BreakDuration
	UniqueProgramID       uint16
	AvailNum              uint8
	AvailsExpected        uint8
}

// ScheduleSpliceMode distinguishes a program-wide splice point from a
// per-component one, for SpliceSchedule events.
type ScheduleSpliceMode interface {
	isScheduleSpliceMode()
}

// ProgramSpliceSchedule is the program-wide splice mode.
type ProgramSpliceSchedule struct {
	UTCSpliceTime UTCSpliceTime
}

func (ProgramSpliceSchedule) isScheduleSpliceMode() {}

// ComponentSpliceSchedule is the per-component splice mode.
type ComponentSpliceSchedule struct {
	Components []ComponentUTCSplice
}

func (ComponentSpliceSchedule) isScheduleSpliceMode() {}

// ComponentUTCSplice pairs a component_tag with its own UTC splice time.
type ComponentUTCSplice struct {
	ComponentTag  uint8
	UTCSpliceTime UTCSpliceTime
}

func decodeSpliceSchedule(br *bitReader) (SpliceSchedule, error) {
	if err := br.validate(8, "splice_schedule.splice_count"); err != nil {
		return SpliceSchedule{}, err
	}
	count := br.byteVal()
	events := make([]SpliceScheduleEvent, 0, count)
	for i := uint8(0); i < count; i++ {
		ev, err := decodeSpliceScheduleEvent(br)
		if err != nil {
			return SpliceSchedule{}, err
		}
		events = append(events, ev)
	}
	return SpliceSchedule{Events: events}, nil
}

func decodeSpliceScheduleEvent(br *bitReader) (SpliceScheduleEvent, error) {
	if err := br.validate(40, "splice_schedule.event"); err != nil {
		return SpliceScheduleEvent{}, err
	}
	eventID := br.u32(32)
	canceled := br.bool()
	br.consume(7)
	if canceled {
		return SpliceScheduleEvent{EventID: eventID, Canceled: true}, nil
	}

	if err := br.validate(8, "splice_schedule.event flags"); err != nil {
		return SpliceScheduleEvent{}, err
	}
	outOfNetwork := br.bool()
	programSplice := br.bool()
	durationFlag := br.bool()
	br.consume(5)

	var mode ScheduleSpliceMode
	if programSplice {
		if err := br.validate(32, "splice_schedule.utc_splice_time"); err != nil {
			return SpliceScheduleEvent{}, err
		}
		mode = ProgramSpliceSchedule{UTCSpliceTime: NewUTCSpliceTime(br.u32(32))}
	} else {
		if err := br.validate(8, "splice_schedule.component_count"); err != nil {
			return SpliceScheduleEvent{}, err
		}
		componentCount := br.byteVal()
		components := make([]ComponentUTCSplice, 0, componentCount)
		for i := uint8(0); i < componentCount; i++ {
			if err := br.validate(40, "splice_schedule.component"); err != nil {
				return SpliceScheduleEvent{}, err
			}
			tag := br.byteVal()
			components = append(components, ComponentUTCSplice{
				ComponentTag:  tag,
				UTCSpliceTime: NewUTCSpliceTime(br.u32(32)),
			})
		}
		mode = ComponentSpliceSchedule{Components: components}
	}

	var duration *BreakDuration
	if durationFlag {
		bd, err := decodeBreakDuration(br)
		if err != nil {
			return SpliceScheduleEvent{}, err
		}
		duration = &bd
	}

	if err := br.validate(32, "splice_schedule.trailer"); err != nil {
		return SpliceScheduleEvent{}, err
	}
	uniqueProgramID := br.u16(16)
	availNum := br.byteVal()
	availsExpected := br.byteVal()

	return SpliceScheduleEvent{
		EventID: eventID,
		ScheduledEvent: &SpliceScheduleScheduledEvent{
			OutOfNetworkIndicator: outOfNetwork,
			SpliceMode:            mode,
			BreakDuration:         duration,
			UniqueProgramID:       uniqueProgramID,
			AvailNum:              availNum,
			AvailsExpected:        availsExpected,
		},
	}, nil
}
