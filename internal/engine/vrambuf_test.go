package engine

import (
	"bytes"
	"testing"
)

func TestWriteQueuePut(t *testing.T) {
	q := NewWriteQueue()
	if !bytes.Equal(q.Bytes(), []byte{UpdateEOF}) {
		t.Fatalf("empty queue = % x", q.Bytes())
	}

	q.Put(0x23CA, []byte{0xAA}, false)
	q.Put(0x2488, []byte{1, 2, 3}, true)
	want := []byte{
		0x63, 0xCA, 1, 0xAA,
		0xA4, 0x88, 3, 1, 2, 3,
		UpdateEOF,
	}
	if !bytes.Equal(q.Bytes(), want) {
		t.Errorf("Bytes() = % x, want % x", q.Bytes(), want)
	}
	if q.Len() != len(want)-1 {
		t.Errorf("Len() = %d, want %d", q.Len(), len(want)-1)
	}

	q.Clear()
	if q.Len() != 0 || !bytes.Equal(q.Bytes(), []byte{UpdateEOF}) {
		t.Errorf("after Clear: Len=%d Bytes=% x", q.Len(), q.Bytes())
	}
}

func TestWriteQueueWorstFrameFits(t *testing.T) {
	q := NewWriteQueue()
	var column [ObstacleRows]byte
	q.Put(NTAddr(NametableB, 24, StatusRows), column[:], true)
	for r := 0; r < attrRows; r++ {
		q.Put(0x27C0+uint16(r*AttributeStride), []byte{0xFF}, false)
	}
	if q.Len()+1 > WriteQueueSize {
		t.Fatalf("worst frame uses %d bytes of %d", q.Len()+1, WriteQueueSize)
	}
}

func TestWriteQueueOverflowPanics(t *testing.T) {
	q := NewWriteQueue()
	var column [ObstacleRows]byte
	for i := 0; i < 5; i++ {
		q.Put(NametableA, column[:], true)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()
	q.Put(NametableA, column[:], true)
}

func TestWriteQueueEmptyRunPanics(t *testing.T) {
	q := NewWriteQueue()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty run")
		}
	}()
	q.Put(NametableA, nil, false)
}
