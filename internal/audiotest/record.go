// SPDX-License-Identifier: EPL-2.0

package audiotest

import "github.com/ik5/tensoraudio/audio"

// Read is one scripted result of a Record read. A non-zero Status is
// returned instead of data.
type Read struct {
	Float32 []float32
	Int16   []int16
	Status  audio.ReadStatus
}

// Record is a scripted audio.Record. Each read consumes the next Read; once
// the script is exhausted reads return 0.
type Record struct {
	format   audio.Format
	encoding audio.Encoding
	frames   int
	script   []Read

	// Requested holds len(dst) of every read call, in order.
	Requested []int
}

func NewRecord(format audio.Format, encoding audio.Encoding, bufferFrames int, script ...Read) *Record {
	return &Record{
		format:   format,
		encoding: encoding,
		frames:   bufferFrames,
		script:   script,
	}
}

func (r *Record) Format() audio.Format     { return r.format }
func (r *Record) Encoding() audio.Encoding { return r.encoding }
func (r *Record) BufferSizeInFrames() int  { return r.frames }

func (r *Record) next(size int) (Read, bool) {
	r.Requested = append(r.Requested, size)
	if len(r.script) == 0 {
		return Read{}, false
	}
	rd := r.script[0]
	r.script = r.script[1:]

	return rd, true
}

func (r *Record) ReadFloat32(dst []float32) int {
	rd, ok := r.next(len(dst))
	if !ok {
		return 0
	}
	if rd.Status != 0 {
		return int(rd.Status)
	}

	return copy(dst, rd.Float32)
}

func (r *Record) ReadInt16(dst []int16) int {
	rd, ok := r.next(len(dst))
	if !ok {
		return 0
	}
	if rd.Status != 0 {
		return int(rd.Status)
	}

	return copy(dst, rd.Int16)
}
