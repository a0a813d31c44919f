//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/sdlpix/internal/cstring"
	"github.com/obinnaokechukwu/sdlpix/internal/handles"
	"github.com/sirupsen/logrus"
)

// LogPriority is an SDL_LogPriority.
type LogPriority int32

const (
	LogPriorityVerbose LogPriority = iota + 1
	LogPriorityDebug
	LogPriorityInfo
	LogPriorityWarn
	LogPriorityError
	LogPriorityCritical
)

// String returns the string representation of the priority.
func (p LogPriority) String() string {
	switch p {
	case LogPriorityVerbose:
		return "verbose"
	case LogPriorityDebug:
		return "debug"
	case LogPriorityInfo:
		return "info"
	case LogPriorityWarn:
		return "warn"
	case LogPriorityError:
		return "error"
	case LogPriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int32(p))
	}
}

// Level returns the logrus level SDL messages of this priority are logged at.
// Critical maps to Error so routed messages never exit or panic.
func (p LogPriority) Level() logrus.Level {
	switch {
	case p <= LogPriorityDebug:
		return logrus.DebugLevel
	case p == LogPriorityInfo:
		return logrus.InfoLevel
	case p == LogPriorityWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// LogCategory is an SDL_LogCategory.
type LogCategory int32

const (
	LogCategoryApplication LogCategory = iota
	LogCategoryError
	LogCategoryAssert
	LogCategorySystem
	LogCategoryAudio
	LogCategoryVideo
	LogCategoryRender
	LogCategoryInput
	LogCategoryTest

	// LogCategoryCustom is the first category free for applications.
	LogCategoryCustom LogCategory = 19
)

var logCategoryNames = [...]string{
	"application", "error", "assert", "system", "audio", "video", "render", "input", "test",
}

// String returns the string representation of the category.
func (c LogCategory) String() string {
	if c >= 0 && int(c) < len(logCategoryNames) {
		return logCategoryNames[c]
	}
	if c >= LogCategoryCustom {
		return fmt.Sprintf("custom(%d)", int32(c))
	}
	return fmt.Sprintf("reserved(%d)", int32(c))
}

var (
	// logTargets maps the userdata SDL passes back to the logger it belongs to.
	logTargets handles.Registry[logrus.FieldLogger]

	logCBOnce   sync.Once
	logCBHandle uintptr
)

// logRoute is an installed SDL log output function.
type logRoute struct {
	lib      *Library
	router   LogRouter
	id       uintptr
	prevCB   uintptr
	prevData uintptr
	once     sync.Once
}

func (r *logRoute) restore() {
	r.once.Do(func() {
		r.router.SetLogOutput(r.prevCB, r.prevData)
		logTargets.Unregister(r.id)

		r.lib.routeMu.Lock()
		if r.lib.route == r {
			r.lib.route = nil
		}
		r.lib.routeMu.Unlock()
		r.lib.log.Debug("SDL log output restored")
	})
}

// RouteNativeLogs replaces SDL's log output function so that SDL's own
// messages reach the library logger, with "category" and "priority" fields.
// The returned restore function reinstates the previous output function; it
// is safe to call more than once. Calling RouteNativeLogs while a route is
// active returns the existing restore function.
//
// Returns ErrLogRoutingUnsupported if the Service does not implement LogRouter.
func (l *Library) RouteNativeLogs() (restore func(), err error) {
	router, ok := l.svc.(LogRouter)
	if !ok {
		return nil, ErrLogRoutingUnsupported
	}

	l.routeMu.Lock()
	defer l.routeMu.Unlock()
	if l.route != nil {
		return l.route.restore, nil
	}

	logCBOnce.Do(func() {
		logCBHandle = purego.NewCallback(logOutputTrampoline)
	})

	prevCB, prevData := router.LogOutput()
	id := logTargets.Register(l.log)
	router.SetLogOutput(logCBHandle, id)

	l.route = &logRoute{
		lib:      l,
		router:   router,
		id:       id,
		prevCB:   prevCB,
		prevData: prevData,
	}
	l.log.Debug("SDL log output routed")
	return l.route.restore, nil
}

// SetNativeLogPriority sets the minimum priority SDL emits in every category.
// SDL's default drops everything below info outside the application category.
func (l *Library) SetNativeLogPriority(p LogPriority) error {
	router, ok := l.svc.(LogRouter)
	if !ok {
		return ErrLogRoutingUnsupported
	}
	router.SetLogPriority(int32(p))
	return nil
}

// logOutputTrampoline is called by SDL for every log message.
// Signature: void (*)(void *userdata, int category, SDL_LogPriority priority, const char *message)
func logOutputTrampoline(_ purego.CDecl, userdata uintptr, category int32, priority int32, message *byte) {
	dispatchLog(userdata, LogCategory(category), LogPriority(priority), cstring.GoString(message))
}

func dispatchLog(id uintptr, category LogCategory, priority LogPriority, message string) {
	logger, ok := logTargets.Lookup(id)
	if !ok {
		return
	}
	logger.WithFields(logrus.Fields{
		"category": category,
		"priority": priority,
	}).Log(priority.Level(), message)
}
