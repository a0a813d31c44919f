//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"errors"
	"testing"
)

func TestEncodingValuesMatchSDL(t *testing.T) {
	tests := []struct {
		enc  Encoding
		want uint32
	}{
		{EncodingUnknown, 0},
		{EncodingIndex1LSB, 0x11100100},
		{EncodingIndex1MSB, 0x11200100},
		{EncodingIndex4LSB, 0x12100400},
		{EncodingIndex4MSB, 0x12200400},
		{EncodingIndex8, 0x13000801},
		{EncodingRGB332, 0x14110801},
		{EncodingRGB444, 0x15120c02},
		{EncodingRGB555, 0x15130f02},
		{EncodingBGR555, 0x15530f02},
		{EncodingARGB4444, 0x15321002},
		{EncodingRGBA4444, 0x15421002},
		{EncodingABGR4444, 0x15721002},
		{EncodingBGRA4444, 0x15821002},
		{EncodingARGB1555, 0x15331002},
		{EncodingRGBA5551, 0x15441002},
		{EncodingABGR1555, 0x15731002},
		{EncodingBGRA5551, 0x15841002},
		{EncodingRGB565, 0x15151002},
		{EncodingBGR565, 0x15551002},
		{EncodingRGB24, 0x17101803},
		{EncodingBGR24, 0x17401803},
		{EncodingRGB888, 0x16161804},
		{EncodingRGBX8888, 0x16261804},
		{EncodingBGR888, 0x16561804},
		{EncodingBGRX8888, 0x16661804},
		{EncodingARGB8888, 0x16362004},
		{EncodingRGBA8888, 0x16462004},
		{EncodingABGR8888, 0x16762004},
		{EncodingBGRA8888, 0x16862004},
		{EncodingARGB2101010, 0x16372004},
		{EncodingYV12, 0x32315659},
		{EncodingIYUV, 0x56555949},
		{EncodingYUY2, 0x32595559},
		{EncodingUYVY, 0x59565955},
		{EncodingYVYU, 0x55595659},
	}
	if len(tests) != len(Encodings()) {
		t.Fatalf("expected %d encodings, got %d", len(tests), len(Encodings()))
	}
	for _, tt := range tests {
		if uint32(tt.enc) != tt.want {
			t.Errorf("%s: expected %#08x, got %#08x", tt.enc, tt.want, uint32(tt.enc))
		}
	}
}

func TestEncodingsAreDistinct(t *testing.T) {
	seen := make(map[Encoding]bool)
	for _, e := range Encodings() {
		if seen[e] {
			t.Errorf("duplicate encoding %s", e)
		}
		seen[e] = true
	}
	if len(seen) != 36 {
		t.Errorf("expected 36 encodings, got %d", len(seen))
	}
}

func TestEncodingFromValue(t *testing.T) {
	for _, e := range Encodings() {
		got, err := EncodingFromValue(uint32(e))
		if err != nil {
			t.Errorf("EncodingFromValue(%#08x) failed: %v", uint32(e), err)
			continue
		}
		if got != e {
			t.Errorf("EncodingFromValue(%#08x): expected %s, got %s", uint32(e), e, got)
		}
	}

	_, err := EncodingFromValue(0xdeadbeef)
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("expected ErrUnsupportedEncoding, got %v", err)
	}
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		name string
		want Encoding
	}{
		{"ARGB8888", EncodingARGB8888},
		{"argb8888", EncodingARGB8888},
		{"yv12", EncodingYV12},
		{"Index8", EncodingIndex8},
		{"RGB24", EncodingRGB24},
	}
	for _, tt := range tests {
		got, err := ParseEncoding(tt.name)
		if err != nil {
			t.Errorf("ParseEncoding(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEncoding(%q): expected %s, got %s", tt.name, tt.want, got)
		}
	}

	if _, err := ParseEncoding("RGB48"); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("expected ErrUnsupportedEncoding for unknown name, got %v", err)
	}
}

func TestEncodingStringRoundTrip(t *testing.T) {
	for _, e := range Encodings() {
		got, err := ParseEncoding(e.String())
		if err != nil || got != e {
			t.Errorf("ParseEncoding(%q) = %s, %v", e.String(), got, err)
		}
	}
	if got := Encoding(0x1234).String(); got != "Encoding(0x00001234)" {
		t.Errorf("unexpected String for unknown value: %q", got)
	}
}

func TestEncodingFamily(t *testing.T) {
	tests := []struct {
		enc  Encoding
		want Family
	}{
		{EncodingUnknown, FamilyUnknown},
		{EncodingIndex1LSB, FamilyIndexed},
		{EncodingIndex4MSB, FamilyIndexed},
		{EncodingIndex8, FamilyIndexed},
		{EncodingRGB332, FamilyPackedRGB},
		{EncodingRGB565, FamilyPackedRGB},
		{EncodingBGR24, FamilyPackedRGB},
		{EncodingARGB2101010, FamilyPackedRGB},
		{EncodingYV12, FamilyPlanarYUV},
		{EncodingIYUV, FamilyPlanarYUV},
		{EncodingYUY2, FamilyPackedYUV},
		{EncodingUYVY, FamilyPackedYUV},
		{EncodingYVYU, FamilyPackedYUV},
		{Encoding(0xffffffff), FamilyUnknown},
	}
	for _, tt := range tests {
		if got := tt.enc.Family(); got != tt.want {
			t.Errorf("%s.Family(): expected %s, got %s", tt.enc, tt.want, got)
		}
	}

	if !EncodingIndex8.IsIndexed() || EncodingRGB24.IsIndexed() {
		t.Error("IsIndexed mismatch")
	}
	if !EncodingIYUV.IsPlanar() || EncodingYUY2.IsPlanar() {
		t.Error("IsPlanar mismatch")
	}
	if Encoding(42).Valid() {
		t.Error("Encoding(42) should not be valid")
	}
}
