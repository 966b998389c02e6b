package bitseq

import "testing"

func TestFromBoolsAndBit(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, false, true}
	s := FromBools(bits)
	if s.Len() != len(bits) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(bits))
	}
	for i, want := range bits {
		got := s.Bit(i) == 1
		if got != want {
			t.Errorf("Bit(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestFromString(t *testing.T) {
	s := FromString("01101x01", 0)
	want := []int{0, 1, 1, 0, 1, 0, 1}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for i, w := range want {
		if got := s.Bit(i); got != w {
			t.Errorf("Bit(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestFromStringMaxBits(t *testing.T) {
	s := FromString("0101010101", 4)
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	raw := []byte{0b10110010, 0b01000001}
	s := FromBytes(raw)
	if s.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", s.Len())
	}
	want := []int{1, 0, 1, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1}
	for i, w := range want {
		if got := s.Bit(i); got != w {
			t.Errorf("Bit(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestCropDoesNotAffectPrefix(t *testing.T) {
	raw := []byte{0xAB, 0xCD, 0xEF}
	s := FromBytes(raw)
	original := make([]int, s.Len())
	for i := range original {
		original[i] = s.Bit(i)
	}

	s.Crop(10)
	if s.Len() != 10 {
		t.Fatalf("Len() after Crop(10) = %d, want 10", s.Len())
	}
	for i := 0; i < 10; i++ {
		if s.Bit(i) != original[i] {
			t.Errorf("Bit(%d) changed after Crop: got %d, want %d", i, s.Bit(i), original[i])
		}
	}
}

func TestCropNoOpWhenLarger(t *testing.T) {
	s := FromBytes([]byte{0xFF})
	s.Crop(100)
	if s.Len() != 8 {
		t.Fatalf("Len() = %d, want 8 (Crop with k >= n must be a no-op)", s.Len())
	}
}

func TestBytesRoundTripAfterCrop(t *testing.T) {
	raw := []byte{0b11110000}
	s := FromBytes(raw)
	s.Crop(8)
	got := s.Bytes()
	if len(got) != 1 || got[0] != raw[0] {
		t.Fatalf("Bytes() = %v, want %v", got, raw)
	}
}

func TestFromStringEqualsFromBools(t *testing.T) {
	str := "0101100110"
	bits := make([]bool, len(str))
	for i, c := range str {
		bits[i] = c == '1'
	}
	a := FromString(str, 0)
	b := FromBools(bits)
	if a.Len() != b.Len() {
		t.Fatalf("Len mismatch: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.Bit(i) != b.Bit(i) {
			t.Errorf("Bit(%d) mismatch: %d vs %d", i, a.Bit(i), b.Bit(i))
		}
	}
}

func TestOnes(t *testing.T) {
	s := FromString("111000", 0)
	if got := s.Ones(); got != 3 {
		t.Fatalf("Ones() = %d, want 3", got)
	}
}

func TestBitOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Bit out of range did not panic")
		}
	}()
	s := FromString("01", 0)
	_ = s.Bit(5)
}
