package vango

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state of one goroutine.
type trackingContext struct {
	currentOwner    *Owner
	currentListener Listener
}

var trackingContexts sync.Map

// getGoroutineID parses the current goroutine id out of the stack header
// ("goroutine <id> [running]:").
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

func getTrackingContext() *trackingContext {
	gid := getGoroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}
	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// releaseTrackingContext drops the goroutine's context once nothing is set,
// so short-lived request goroutines do not accumulate entries.
func releaseTrackingContext(ctx *trackingContext) {
	if ctx.currentOwner == nil && ctx.currentListener == nil {
		trackingContexts.Delete(getGoroutineID())
	}
}

func getCurrentListener() Listener {
	if ctx, ok := trackingContexts.Load(getGoroutineID()); ok {
		return ctx.(*trackingContext).currentListener
	}
	return nil
}

func getCurrentOwner() *Owner {
	if ctx, ok := trackingContexts.Load(getGoroutineID()); ok {
		return ctx.(*trackingContext).currentOwner
	}
	return nil
}

// CurrentOwner returns the owner set by WithOwner, or nil.
func CurrentOwner() *Owner {
	return getCurrentOwner()
}

// WithOwner runs fn with owner as the current owner of the goroutine.
func WithOwner(owner *Owner, fn func()) {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = owner
	defer func() {
		ctx.currentOwner = old
		releaseTrackingContext(ctx)
	}()
	fn()
}

// WithListener runs fn with l tracking every signal read by Get.
func WithListener(l Listener, fn func()) {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	defer func() {
		ctx.currentListener = old
		releaseTrackingContext(ctx)
	}()
	fn()
}

// Untracked runs fn without a current listener.
func Untracked(fn func()) {
	WithListener(nil, fn)
}
