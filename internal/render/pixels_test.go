package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	for i := 0; i < 4; i++ {
		if buf[i] != 255 {
			t.Fatalf("alive pixel byte %d = %d, want 255", i, buf[i])
		}
	}
	for i := 4; i < 7; i++ {
		if buf[i] != 0 {
			t.Fatalf("dead pixel byte %d = %d, want 0", i, buf[i])
		}
	}
	if buf[7] != 255 {
		t.Fatalf("dead pixel alpha = %d, want 255", buf[7])
	}
}
