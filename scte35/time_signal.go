package scte35

// TimeSignal wraps a single SpliceTime, typically paired with a
// SegmentationDescriptor to carry the actual semantics of the event.
type TimeSignal struct {
	SpliceTime SpliceTime
}

func (TimeSignal) CommandType() SpliceCommandType { return SpliceCommandTypeTimeSignal }

func decodeTimeSignal(br *bitReader) (TimeSignal, error) {
	st, err := decodeSpliceTime(br)
	if err != nil {
		return TimeSignal{}, err
	}
	return TimeSignal{SpliceTime: st}, nil
}
