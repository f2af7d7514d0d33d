package scte35

// PrivateCommand carries a 4-byte ASCII identifier and an opaque
// vendor-private payload.
type PrivateCommand struct {
	Identifier   string
	PrivateBytes []byte
}

func (PrivateCommand) CommandType() SpliceCommandType { return SpliceCommandTypePrivateCommand }

func decodePrivateCommand(br *bitReader, commandLength int) (PrivateCommand, error) {
	if err := br.validate(32, "private_command.identifier"); err != nil {
		return PrivateCommand{}, err
	}
	identifier, err := br.str(4, "private_command.identifier")
	if err != nil {
		return PrivateCommand{}, err
	}
	remaining := commandLength - 4
	if remaining < 0 {
		remaining = 0
	}
	if err := br.validate(uint(remaining*8), "private_command.private_bytes"); err != nil {
		return PrivateCommand{}, err
	}
	return PrivateCommand{Identifier: identifier, PrivateBytes: br.bytes(remaining)}, nil
}
