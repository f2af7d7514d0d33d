package scte35

// BandwidthReservation carries no body; it reserves bandwidth for a future
// splice without signalling any splice point itself.
type BandwidthReservation struct{}

func (BandwidthReservation) CommandType() SpliceCommandType {
	return SpliceCommandTypeBandwidthReservation
}
