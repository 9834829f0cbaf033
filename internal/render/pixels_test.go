package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	if !fillBinaryRGBA(buf, []uint8{1, 0}, color.Black, color.White) {
		t.Fatal("fill rejected a correctly sized buffer")
	}
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBAShortBuffer(t *testing.T) {
	buf := make([]byte, 4)
	if fillBinaryRGBA(buf, []uint8{1, 1}, color.Black, color.White) {
		t.Fatal("fill accepted a short buffer")
	}
	if !slices.Equal(buf, make([]byte, 4)) {
		t.Fatal("short buffer was modified")
	}
}
