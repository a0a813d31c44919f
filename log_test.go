//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogPriorityLevel(t *testing.T) {
	tests := []struct {
		priority LogPriority
		level    logrus.Level
		name     string
	}{
		{LogPriorityVerbose, logrus.DebugLevel, "verbose"},
		{LogPriorityDebug, logrus.DebugLevel, "debug"},
		{LogPriorityInfo, logrus.InfoLevel, "info"},
		{LogPriorityWarn, logrus.WarnLevel, "warn"},
		{LogPriorityError, logrus.ErrorLevel, "error"},
		{LogPriorityCritical, logrus.ErrorLevel, "critical"},
	}
	for _, tt := range tests {
		if got := tt.priority.Level(); got != tt.level {
			t.Errorf("%s: expected level %s, got %s", tt.name, tt.level, got)
		}
		if got := tt.priority.String(); got != tt.name {
			t.Errorf("expected %q, got %q", tt.name, got)
		}
	}
}

func TestLogCategoryString(t *testing.T) {
	tests := []struct {
		category LogCategory
		want     string
	}{
		{LogCategoryApplication, "application"},
		{LogCategoryVideo, "video"},
		{LogCategoryTest, "test"},
		{12, "reserved(12)"},
		{LogCategoryCustom + 1, "custom(20)"},
	}
	for _, tt := range tests {
		if got := tt.category.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestRouteNativeLogsUnsupported(t *testing.T) {
	lib, _ := newTestLibrary(t, newFakeService())
	if _, err := lib.RouteNativeLogs(); !errors.Is(err, ErrLogRoutingUnsupported) {
		t.Errorf("expected ErrLogRoutingUnsupported, got %v", err)
	}
	if err := lib.SetNativeLogPriority(LogPriorityDebug); !errors.Is(err, ErrLogRoutingUnsupported) {
		t.Errorf("expected ErrLogRoutingUnsupported, got %v", err)
	}
}

func TestRouteNativeLogs(t *testing.T) {
	router := &fakeRouter{fakeService: newFakeService(), callback: 0xc0ffee, userdata: 7}
	lib, hook := newTestLibrary(t, router)

	restore, err := lib.RouteNativeLogs()
	if err != nil {
		t.Fatalf("RouteNativeLogs failed: %v", err)
	}
	if router.callback == 0 || router.callback == 0xc0ffee {
		t.Fatal("callback was not installed")
	}
	id := router.userdata
	if _, ok := logTargets.Lookup(id); !ok {
		t.Fatal("userdata should be a registered handle")
	}

	again, err := lib.RouteNativeLogs()
	if err != nil || again == nil {
		t.Fatalf("second RouteNativeLogs failed: %v", err)
	}
	if router.userdata != id {
		t.Error("second RouteNativeLogs should keep the existing route")
	}

	hook.Reset()
	dispatchLog(id, LogCategoryVideo, LogPriorityWarn, "vsync unavailable")
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a routed log entry")
	}
	if entry.Message != "vsync unavailable" || entry.Level != logrus.WarnLevel {
		t.Errorf("unexpected entry %q at %s", entry.Message, entry.Level)
	}
	if entry.Data["category"] != LogCategoryVideo || entry.Data["priority"] != LogPriorityWarn {
		t.Errorf("unexpected fields %v", entry.Data)
	}

	restore()
	restore()
	if router.callback != 0xc0ffee || router.userdata != 7 {
		t.Errorf("previous output not restored: %#x, %d", router.callback, router.userdata)
	}
	if _, ok := logTargets.Lookup(id); ok {
		t.Error("handle should be released on restore")
	}

	hook.Reset()
	dispatchLog(id, LogCategoryVideo, LogPriorityError, "late message")
	if len(hook.AllEntries()) != 0 {
		t.Error("messages after restore must be dropped")
	}
}

func TestCloseRestoresRoute(t *testing.T) {
	router := &fakeRouter{fakeService: newFakeService()}
	lib, _ := newTestLibrary(t, router)

	if _, err := lib.RouteNativeLogs(); err != nil {
		t.Fatalf("RouteNativeLogs failed: %v", err)
	}
	if err := lib.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if router.callback != 0 {
		t.Error("Close should restore the previous output function")
	}

	if _, err := lib.RouteNativeLogs(); err != nil {
		t.Fatalf("RouteNativeLogs after Close failed: %v", err)
	}
	if router.callback == 0 {
		t.Error("routing should be possible again after Close")
	}
	_ = lib.Close()
}

func TestSetNativeLogPriority(t *testing.T) {
	router := &fakeRouter{fakeService: newFakeService()}
	lib, _ := newTestLibrary(t, router)
	if err := lib.SetNativeLogPriority(LogPriorityVerbose); err != nil {
		t.Fatalf("SetNativeLogPriority failed: %v", err)
	}
	if router.priority != int32(LogPriorityVerbose) {
		t.Errorf("expected priority %d, got %d", LogPriorityVerbose, router.priority)
	}
}

func TestDispatchLogUnknownHandle(t *testing.T) {
	// Must not panic.
	dispatchLog(^uintptr(0), LogCategoryApplication, LogPriorityInfo, "nobody listening")
}
