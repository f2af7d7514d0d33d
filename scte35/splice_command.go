package scte35

import "fmt"

// SpliceCommandType is the 8-bit splice_command_type wire code.
type SpliceCommandType uint8

const (
	SpliceCommandTypeSpliceNull           SpliceCommandType = 0x00
	SpliceCommandTypeSpliceSchedule       SpliceCommandType = 0x04
	SpliceCommandTypeSpliceInsert         SpliceCommandType = 0x05
	SpliceCommandTypeTimeSignal           SpliceCommandType = 0x06
	SpliceCommandTypeBandwidthReservation SpliceCommandType = 0x07
	SpliceCommandTypePrivateCommand       SpliceCommandType = 0xFF
)

func (t SpliceCommandType) String() string {
	switch t {
	case SpliceCommandTypeSpliceNull:
		return "splice_null"
	case SpliceCommandTypeSpliceSchedule:
		return "splice_schedule"
	case SpliceCommandTypeSpliceInsert:
		return "splice_insert"
	case SpliceCommandTypeTimeSignal:
		return "time_signal"
	case SpliceCommandTypeBandwidthReservation:
		return "bandwidth_reservation"
	case SpliceCommandTypePrivateCommand:
		return "private_command"
	default:
		return fmt.Sprintf("splice_command(0x%02x)", uint8(t))
	}
}

// SpliceCommand is the tagged-union interface implemented by every splice
// command variant. Dispatch is by CommandType, never by type assertion
// chains outside this package.
type SpliceCommand interface {
	CommandType() SpliceCommandType
}

// decodeSpliceCommand dispatches on the 8-bit splice_command_type and
// returns the decoded variant. The caller measures the bits consumed.
func decodeSpliceCommand(br *bitReader, commandType uint32, commandLength int) (SpliceCommand, error) {
	switch SpliceCommandType(commandType) {
	case SpliceCommandTypeSpliceNull:
		return SpliceNull{}, nil
	case SpliceCommandTypeSpliceSchedule:
		return decodeSpliceSchedule(br)
	case SpliceCommandTypeSpliceInsert:
		return decodeSpliceInsert(br)
	case SpliceCommandTypeTimeSignal:
		return decodeTimeSignal(br)
	case SpliceCommandTypeBandwidthReservation:
		return BandwidthReservation{}, nil
	case SpliceCommandTypePrivateCommand:
		return decodePrivateCommand(br, commandLength)
	default:
		return nil, &UnrecognisedSpliceCommandTypeError{Raw: commandType}
	}
}
