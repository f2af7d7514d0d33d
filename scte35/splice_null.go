package scte35

// SpliceNull carries no body; it is used as a heartbeat/no-op command.
type SpliceNull struct{}

func (SpliceNull) CommandType() SpliceCommandType { return SpliceCommandTypeSpliceNull }
