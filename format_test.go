//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"errors"
	"sync"
	"testing"
	"unsafe"
)

func TestAllocFormat(t *testing.T) {
	svc := newFakeService()
	lib, hook := newTestLibrary(t, svc)

	f, err := lib.AllocFormat(EncodingRGB565)
	if err != nil {
		t.Fatalf("AllocFormat failed: %v", err)
	}
	if !f.Valid() {
		t.Fatal("new format should be valid")
	}
	enc, err := f.Encoding()
	if err != nil {
		t.Fatalf("Encoding failed: %v", err)
	}
	if enc != EncodingRGB565 {
		t.Errorf("expected RGB565, got %s", enc)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Message != "allocated pixel format" {
		t.Error("expected a debug entry for the allocation")
	}

	ptr := f.Ptr()
	f.Free()
	if len(svc.freed) != 1 || svc.freed[0] != ptr {
		t.Errorf("expected FreeFormat(%p), freed %v", ptr, svc.freed)
	}
	f.Free()
	if len(svc.freed) != 1 {
		t.Error("second Free must not reach the native service")
	}
}

func TestAllocFormatFailure(t *testing.T) {
	svc := newFakeService()
	svc.failAlloc = true
	lib, hook := newTestLibrary(t, svc)

	_, err := lib.AllocFormat(EncodingARGB8888)
	var nErr *NativeError
	if !errors.As(err, &nErr) {
		t.Fatalf("expected *NativeError, got %v", err)
	}
	if nErr.Op != "SDL_AllocFormat" || nErr.Message != "Out of memory" {
		t.Errorf("unexpected NativeError: %+v", nErr)
	}
	if NativeMessage(err) != "Out of memory" {
		t.Errorf("NativeMessage: got %q", NativeMessage(err))
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level.String() != "warning" {
		t.Error("expected a warning entry for the native failure")
	}
}

func TestReleasedFormatIsDetected(t *testing.T) {
	lib, _ := newTestLibrary(t, newFakeService())
	f, err := lib.AllocFormat(EncodingARGB8888)
	if err != nil {
		t.Fatalf("AllocFormat failed: %v", err)
	}
	copies := []Format{f.Format, f.Format}
	f.Free()

	for _, c := range copies {
		if c.Valid() {
			t.Error("borrowed copy should be invalid after Free")
		}
		if _, err := c.Encoding(); !errors.Is(err, ErrReleased) {
			t.Errorf("expected ErrReleased, got %v", err)
		}
		if _, err := c.Palette(); !errors.Is(err, ErrReleased) {
			t.Errorf("expected ErrReleased, got %v", err)
		}
	}
}

func TestZeroFormat(t *testing.T) {
	var f Format
	if f.Valid() || f.Ptr() != nil {
		t.Error("zero Format should be invalid")
	}
	if _, err := f.Encoding(); !errors.Is(err, ErrNilHandle) {
		t.Errorf("expected ErrNilHandle, got %v", err)
	}

	lib, _ := newTestLibrary(t, newFakeService())
	if lib.BorrowFormat(nil) != (Format{}) {
		t.Error("BorrowFormat(nil) should return the zero Format")
	}
}

func TestBorrowFormat(t *testing.T) {
	lib, _ := newTestLibrary(t, newFakeService())
	native := &fakeFormat{format: uint32(EncodingBGR24)}

	a := lib.BorrowFormat(unsafe.Pointer(native))
	b := lib.BorrowFormat(unsafe.Pointer(native))
	if !a.Equal(b) {
		t.Error("borrows of the same descriptor should be Equal")
	}
	if enc, err := a.Encoding(); err != nil || enc != EncodingBGR24 {
		t.Errorf("expected BGR24, got %s, %v", enc, err)
	}
	if a.Equal(Format{}) {
		t.Error("live format should not equal the zero Format")
	}
}

func TestFormatSetPalette(t *testing.T) {
	svc := newFakeService()
	lib, _ := newTestLibrary(t, svc)

	f, err := lib.AllocFormat(EncodingIndex8)
	if err != nil {
		t.Fatalf("AllocFormat failed: %v", err)
	}
	defer f.Free()
	pal, err := lib.AllocPalette(256)
	if err != nil {
		t.Fatalf("AllocPalette failed: %v", err)
	}
	defer pal.Free()

	if err := f.SetPalette(pal.Palette); err != nil {
		t.Fatalf("SetPalette failed: %v", err)
	}
	attached, err := f.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if !attached.Equal(pal.Palette) {
		t.Error("attached palette should equal the one set")
	}

	svc.failSet = true
	err = f.SetPalette(pal.Palette)
	if NativeMessage(err) == "" {
		t.Errorf("expected a NativeError with a message, got %v", err)
	}

	if err := f.SetPalette(Palette{}); !errors.Is(err, ErrNilHandle) {
		t.Errorf("expected ErrNilHandle, got %v", err)
	}
}

func TestAttachedPaletteReleasedWithFormat(t *testing.T) {
	svc := newFakeService()
	lib, _ := newTestLibrary(t, svc)

	f, err := lib.AllocFormat(EncodingIndex8)
	if err != nil {
		t.Fatalf("AllocFormat failed: %v", err)
	}
	pal, err := lib.AllocPalette(4)
	if err != nil {
		t.Fatalf("AllocPalette failed: %v", err)
	}
	if err := f.SetPalette(pal.Palette); err != nil {
		t.Fatalf("SetPalette failed: %v", err)
	}
	attached, err := f.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}

	// The descriptor holds its own reference to the palette.
	pal.Free()
	if !attached.Valid() {
		t.Fatal("attached palette should stay valid while the format is live")
	}
	if n, err := attached.Len(); err != nil || n != 4 {
		t.Errorf("expected 4 colors, got %d, %v", n, err)
	}

	f.Free()
	if attached.Valid() {
		t.Error("attached palette should be invalid after its format is freed")
	}
	if _, err := attached.Len(); !errors.Is(err, ErrReleased) {
		t.Errorf("Len: expected ErrReleased, got %v", err)
	}
	if _, err := attached.Colors(); !errors.Is(err, ErrReleased) {
		t.Errorf("Colors: expected ErrReleased, got %v", err)
	}
	if attached.Ptr() != nil {
		t.Error("released palette should report a nil pointer")
	}
}

func TestFormatFreeConcurrentWithReaders(t *testing.T) {
	svc := newFakeService()
	lib, _ := newTestLibrary(t, svc)
	f, err := lib.AllocFormat(EncodingARGB8888)
	if err != nil {
		t.Fatalf("AllocFormat failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(borrowed Format) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := borrowed.Encoding(); err != nil && !errors.Is(err, ErrReleased) {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}(f.Format)
	}
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			f.Free()
		}()
	}
	wg.Wait()

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.freed) != 1 {
		t.Errorf("expected exactly one FreeFormat, got %d", len(svc.freed))
	}
}

func TestNativeFormat(t *testing.T) {
	skipIfNoSDL(t)

	f, err := sdlLib.AllocFormat(EncodingIndex8)
	if err != nil {
		t.Fatalf("AllocFormat failed: %v", err)
	}
	defer f.Free()

	enc, err := f.Encoding()
	if err != nil || enc != EncodingIndex8 {
		t.Errorf("expected Index8, got %s, %v", enc, err)
	}
	attached, err := f.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if attached.Valid() {
		t.Error("a fresh descriptor has no palette")
	}

	pal, err := sdlLib.AllocPalette(256)
	if err != nil {
		t.Fatalf("AllocPalette failed: %v", err)
	}
	defer pal.Free()
	if err := f.SetPalette(pal.Palette); err != nil {
		t.Fatalf("SetPalette failed: %v", err)
	}
	attached, err = f.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if !attached.Equal(pal.Palette) {
		t.Error("descriptor should report the palette just set")
	}
}
