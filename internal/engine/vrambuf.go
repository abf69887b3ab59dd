package engine

import "fmt"

// Update run flags, encoded in the high byte of a run's address.
const (
	UpdateHorz = 0x40
	UpdateVert = 0x80
	UpdateEOF  = 0xFF
)

// WriteQueue is the fixed-size buffer of tile memory updates produced
// during a frame and applied between frames. Runs are stored as
// hi|flag, lo, len, data... and the buffer is kept terminated by UpdateEOF.
type WriteQueue struct {
	buf [WriteQueueSize]byte
	n   int
}

func NewWriteQueue() *WriteQueue {
	q := &WriteQueue{}
	q.Clear()
	return q
}

// Clear drops every queued run.
func (q *WriteQueue) Clear() {
	q.n = 0
	q.buf[0] = UpdateEOF
}

// Put appends a run of data starting at addr. Vertical runs step 32
// addresses per byte. The queue is sized to the largest frame, so running
// out of room is a programming error and panics.
func (q *WriteQueue) Put(addr uint16, data []byte, vertical bool) {
	need := 3 + len(data)
	if len(data) == 0 || len(data) > 0xFF {
		panic(fmt.Sprintf("write queue: bad run length %d", len(data)))
	}
	if q.n+need+1 > len(q.buf) {
		panic(fmt.Sprintf("write queue: overflow (%d used, %d needed)", q.n, need))
	}
	flag := byte(UpdateHorz)
	if vertical {
		flag = UpdateVert
	}
	q.buf[q.n] = byte(addr>>8)&0x3F | flag
	q.buf[q.n+1] = byte(addr)
	q.buf[q.n+2] = byte(len(data))
	copy(q.buf[q.n+3:], data)
	q.n += need
	q.buf[q.n] = UpdateEOF
}

// Len returns the number of queued bytes, excluding the terminator.
func (q *WriteQueue) Len() int {
	return q.n
}

// Bytes returns the terminated update buffer. It is only valid until the
// next Put or Clear.
func (q *WriteQueue) Bytes() []byte {
	return q.buf[:q.n+1]
}
