// Package navframe decodes the fixed-length navigation frames written by the
// logger. Each frame is
//
//	offset size field
//	0      1    sync (0xE7)
//	1      1    kind
//	2      1    validity flags
//	3      1    reserved
//	4      8    GPS seconds (float64)
//	12     4    UTC-GPS offset in milliseconds (int32)
//	16     8    latitude, degrees (float64)
//	24     8    longitude, degrees (float64)
//	32     8    horizontal distance travelled (float64)
//	40     1    checksum: sum of bytes 1..39 modulo 256
//
// Multi-byte fields are little endian.
package navframe

import (
	"encoding/binary"
	"math"
)

const (
	Sync      = 0xE7
	FrameSize = 41
)

// Frame kinds.
const (
	KindStatus         = 0x00
	KindRegular        = 0x01
	KindTriggerFalling = 0x02
	KindTriggerRising  = 0x03
)

// Validity flags.
const (
	FlagTime      = 0x01
	FlagUTCOffset = 0x02
	FlagLat       = 0x04
	FlagLon       = 0x08
	FlagDist2D    = 0x10
)

// Frame is the decoded content of one frame.
type Frame struct {
	Kind      uint8
	Flags     uint8
	Time      float64
	UTCOffset float64
	Lat       float64
	Lon       float64
	Dist2D    float64
}

// Encode builds the wire representation of f including sync and checksum.
func Encode(f Frame) []byte {
	buf := make([]byte, FrameSize)
	buf[0] = Sync
	buf[1] = f.Kind
	buf[2] = f.Flags
	binary.LittleEndian.PutUint64(buf[4:12], math.Float64bits(f.Time))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(int32(math.Round(f.UTCOffset*1000))))
	binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(f.Lat))
	binary.LittleEndian.PutUint64(buf[24:32], math.Float64bits(f.Lon))
	binary.LittleEndian.PutUint64(buf[32:40], math.Float64bits(f.Dist2D))
	buf[FrameSize-1] = checksum(buf)
	return buf
}

func parseFrame(buf []byte) Frame {
	return Frame{
		Kind:      buf[1],
		Flags:     buf[2],
		Time:      math.Float64frombits(binary.LittleEndian.Uint64(buf[4:12])),
		UTCOffset: float64(int32(binary.LittleEndian.Uint32(buf[12:16]))) / 1000.0,
		Lat:       math.Float64frombits(binary.LittleEndian.Uint64(buf[16:24])),
		Lon:       math.Float64frombits(binary.LittleEndian.Uint64(buf[24:32])),
		Dist2D:    math.Float64frombits(binary.LittleEndian.Uint64(buf[32:40])),
	}
}

func checksum(buf []byte) uint8 {
	var sum uint8
	for _, b := range buf[1 : FrameSize-1] {
		sum += b
	}
	return sum
}
