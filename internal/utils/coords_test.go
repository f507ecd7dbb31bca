package utils

import (
	"image"
	"testing"
)

func TestDeviceToRender(t *testing.T) {
	const h = 600
	tests := []struct {
		in, want image.Point
	}{
		{image.Pt(120, 0), image.Pt(120, h)},
		{image.Pt(120, h), image.Pt(120, 0)},
		{image.Pt(400, 300), image.Pt(400, 300)},
		{image.Pt(0, 10), image.Pt(0, 590)},
	}
	for _, tc := range tests {
		if got := DeviceToRender(tc.in, h); got != tc.want {
			t.Errorf("DeviceToRender(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if back := RenderToDevice(DeviceToRender(tc.in, h), h); back != tc.in {
			t.Errorf("round trip of %v gave %v", tc.in, back)
		}
	}
}

func TestFlipY(t *testing.T) {
	if got := FlipY(0, 600); got != 600 {
		t.Errorf("FlipY(0) = %v, want 600", got)
	}
	if got := FlipY(150.5, 600); got != 449.5 {
		t.Errorf("FlipY(150.5) = %v, want 449.5", got)
	}
}

func TestApproachSnapsToTarget(t *testing.T) {
	v := 600.0
	for i := 0; i < 40 && v != 508; i++ {
		v = Approach(v, 508, 0.25, 0.5)
	}
	if v != 508 {
		t.Errorf("expected to reach 508, got %v", v)
	}
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
}
