package scte35

import (
	"math"
	"time"
)

// TicksPerSecond is the number of 90kHz PTS ticks per second.
const TicksPerSecond = 90000

// unixEpochToGPSEpoch is the number of seconds between the Unix epoch
// (1970-01-01T00:00:00Z) and the GPS epoch (1980-01-06T00:00:00Z).
const unixEpochToGPSEpoch = uint32(315964800)

// SpliceTime carries an optional 33-bit PTS value. Absence (TimeSpecifiedFlag
// false) means the splice point is not tied to a PTS, as with an immediate
// splice.
type SpliceTime struct {
	PTSTime *uint64
}

// TimeSpecifiedFlag reports whether PTSTime is present.
func (t SpliceTime) TimeSpecifiedFlag() bool { return t.PTSTime != nil }

func decodeSpliceTime(br *bitReader) (SpliceTime, error) {
	if err := br.validate(1, "splice_time.time_specified_flag"); err != nil {
		return SpliceTime{}, err
	}
	if !br.bool() {
		br.consume(7)
		return SpliceTime{}, nil
	}
	if err := br.validate(39, "splice_time.pts_time"); err != nil {
		return SpliceTime{}, err
	}
	br.consume(6)
	pts := br.u64(33)
	return SpliceTime{PTSTime: &pts}, nil
}

// BreakDuration specifies the duration of a break, with an auto-return flag
// indicating whether the network will return automatically at its end.
type BreakDuration struct {
	AutoReturn bool
	Duration   uint64
}

func decodeBreakDuration(br *bitReader) (BreakDuration, error) {
	if err := br.validate(40, "break_duration"); err != nil {
		return BreakDuration{}, err
	}
	autoReturn := br.bool()
	br.consume(6)
	duration := br.u64(33)
	return BreakDuration{AutoReturn: autoReturn, Duration: duration}, nil
}

// UTCSpliceTime represents utc_splice_time: seconds since the GPS epoch.
type UTCSpliceTime struct {
	time.Time
}

// NewUTCSpliceTime builds a UTCSpliceTime from seconds since the GPS epoch.
func NewUTCSpliceTime(sec uint32) UTCSpliceTime {
	return UTCSpliceTime{time.Unix(int64(sec+unixEpochToGPSEpoch), 0).UTC()}
}

// GPSSeconds returns the seconds since the GPS epoch.
func (t UTCSpliceTime) GPSSeconds() uint32 {
	return uint32(t.Time.Unix()) - unixEpochToGPSEpoch
}

// DurationToTicks converts a duration to 90kHz ticks.
func DurationToTicks(d time.Duration) uint64 {
	return uint64(math.Ceil(float64(d) * TicksPerSecond / float64(time.Second)))
}

// TicksToDuration converts 90kHz ticks to a duration.
func TicksToDuration(ticks uint64) time.Duration {
	s := float64(ticks) / float64(TicksPerSecond)
	return time.Duration(int64(s * float64(time.Second)))
}
