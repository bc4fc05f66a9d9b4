package bigint

import (
	"errors"
	"testing"
)

func TestHeapAllocatorAllocateZeroFills(t *testing.T) {
	a := HeapAllocator{}
	buf, err := a.Allocate(8)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 8 {
		t.Fatalf("len(buf) = %d, want 8", len(buf))
	}
	for i, v := range buf {
		if v != 0 {
			t.Errorf("buf[%d] = %d, want 0", i, v)
		}
	}
}

func TestHeapAllocatorReallocatePreservesData(t *testing.T) {
	a := HeapAllocator{}
	buf, _ := a.Allocate(4)
	buf[0], buf[1], buf[2], buf[3] = 1, 2, 3, 4

	grown, err := a.Reallocate(buf, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(grown) != 8 {
		t.Fatalf("len(grown) = %d, want 8", len(grown))
	}
	for i, want := range []Digit{1, 2, 3, 4} {
		if grown[i] != want {
			t.Errorf("grown[%d] = %d, want %d", i, grown[i], want)
		}
	}
	for i := 4; i < 8; i++ {
		if grown[i] != 0 {
			t.Errorf("grown[%d] = %d, want 0", i, grown[i])
		}
	}
}

func TestHeapAllocatorNegativeSizeRejected(t *testing.T) {
	a := HeapAllocator{}
	if _, err := a.Allocate(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Allocate(-1) = %v, want ErrInvalidArgument", err)
	}
}

func TestHeapAllocatorFreeIsNoOp(t *testing.T) {
	a := HeapAllocator{}
	buf, _ := a.Allocate(4)
	a.Free(buf) // must not panic
}
