// Package scaler keeps an arbitrary-height rendered page fully visible
// inside a variable-size on-screen frame. It computes a uniform shrink
// factor from observed content and viewport sizes; the print path never
// goes through it and always renders 1:1.
package scaler

import (
	"math"
	"sync"
	"time"
)

// Epsilon is the minimum scale change worth publishing. Sub-pixel
// measurement noise produces smaller deltas; suppressing them avoids
// visible jitter.
const Epsilon = 1e-3

// settleDelay is the one-shot re-check after startup, absorbing layout
// and font settling that shifts the content's natural size.
const settleDelay = 80 * time.Millisecond

// Size is a measured width/height pair in arbitrary but consistent units.
type Size struct {
	Width  float64
	Height float64
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// FitScale returns the uniform factor that fits content inside viewport:
// min(viewportW/contentW, viewportH/contentH, 1). The page is never
// upscaled past 1.0, and any zero or non-finite dimension yields the safe
// fallback 1.0 rather than Inf or NaN.
func FitScale(content, viewport Size) float64 {
	if !positive(content.Width) || !positive(content.Height) ||
		!positive(viewport.Width) || !positive(viewport.Height) {
		return 1
	}
	scale := math.Min(viewport.Width/content.Width, viewport.Height/content.Height)
	scale = math.Min(scale, 1)
	if !positive(scale) {
		return 1
	}
	return scale
}

// AutoFitScaler observes size-change notifications and publishes accepted
// scale values to a callback. Reactions are idempotent and last-write-wins;
// after Close returns, the callback never fires again.
type AutoFitScaler struct {
	mu       sync.Mutex
	content  Size
	viewport Size
	scale    float64
	onScale  func(float64)
	settle   *time.Timer
	closed   bool
}

// New starts a scaler publishing to onScale. The initial scale is 1.0; a
// one-shot settle re-check runs shortly after construction.
func New(onScale func(float64)) *AutoFitScaler {
	s := &AutoFitScaler{scale: 1, onScale: onScale}
	s.settle = time.AfterFunc(settleDelay, s.refit)
	return s
}

// SetViewport records a new viewport measurement and refits.
func (s *AutoFitScaler) SetViewport(size Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewport = size
	s.refitLocked()
}

// SetContent records a new content measurement (e.g. the page grew
// because line items were added) and refits.
func (s *AutoFitScaler) SetContent(size Size) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = size
	s.refitLocked()
}

// Scale returns the last accepted scale.
func (s *AutoFitScaler) Scale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

// Close tears the scaler down. It stops the settle timer and guarantees
// the callback does not fire after Close returns.
func (s *AutoFitScaler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.settle != nil {
		s.settle.Stop()
	}
}

func (s *AutoFitScaler) refit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refitLocked()
}

func (s *AutoFitScaler) refitLocked() {
	if s.closed {
		return
	}
	next := FitScale(s.content, s.viewport)
	if math.Abs(next-s.scale) < Epsilon {
		return
	}
	s.scale = next
	if s.onScale != nil {
		s.onScale(next)
	}
}
