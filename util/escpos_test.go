package util

import (
	"bytes"
	"testing"
)

func TestIntLowHigh(t *testing.T) {
	tests := []struct {
		n, b int
		want []byte
	}{
		{0, 2, []byte{0, 0}},
		{2, 2, []byte{2, 0}},
		{300, 2, []byte{0x2C, 0x01}},
		{65535, 2, []byte{0xFF, 0xFF}},
		{1, 1, []byte{1}},
		{0x01020304, 4, []byte{4, 3, 2, 1}},
	}
	for _, tt := range tests {
		got, err := IntLowHigh(tt.n, tt.b)
		if err != nil {
			t.Fatalf("IntLowHigh(%d, %d): %v", tt.n, tt.b, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("IntLowHigh(%d, %d) = %v, want %v", tt.n, tt.b, got, tt.want)
		}
	}
}

func TestIntLowHighRejects(t *testing.T) {
	for _, tt := range []struct{ n, b int }{{1, 0}, {1, 5}, {65536, 2}, {256, 1}, {-1, 2}} {
		if _, err := IntLowHigh(tt.n, tt.b); err == nil {
			t.Errorf("IntLowHigh(%d, %d) should fail", tt.n, tt.b)
		}
	}
}

func TestBool(t *testing.T) {
	if Bool(true) != 1 || Bool(false) != 0 {
		t.Fatal("Bool must map to 1/0")
	}
}
