package scaler

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitScale(t *testing.T) {
	tests := []struct {
		name     string
		content  Size
		viewport Size
		want     float64
	}{
		{
			name:     "width constrained",
			content:  Size{800, 1200},
			viewport: Size{400, 1200},
			want:     0.5,
		},
		{
			name:     "height constrained",
			content:  Size{400, 1200},
			viewport: Size{800, 600},
			want:     0.5,
		},
		{
			name:     "never upscale",
			content:  Size{400, 600},
			viewport: Size{800, 1200},
			want:     1,
		},
		{
			name:     "zero viewport falls back to 1",
			content:  Size{800, 1200},
			viewport: Size{0, 1200},
			want:     1,
		},
		{
			name:     "zero content falls back to 1",
			content:  Size{0, 0},
			viewport: Size{800, 1200},
			want:     1,
		},
		{
			name:     "non-finite dimension falls back to 1",
			content:  Size{math.NaN(), 1200},
			viewport: Size{800, 1200},
			want:     1,
		},
		{
			name:     "infinite viewport falls back to 1",
			content:  Size{800, 1200},
			viewport: Size{math.Inf(1), 1200},
			want:     1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitScale(tt.content, tt.viewport)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

type scaleRecorder struct {
	mu     sync.Mutex
	values []float64
}

func (r *scaleRecorder) record(v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *scaleRecorder) snapshot() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.values...)
}

func TestScalerPublishesOnChange(t *testing.T) {
	rec := &scaleRecorder{}
	s := New(rec.record)
	defer s.Close()

	s.SetContent(Size{800, 1200})
	s.SetViewport(Size{400, 1200})

	require.Len(t, rec.snapshot(), 1)
	assert.InDelta(t, 0.5, rec.snapshot()[0], 1e-9)
	assert.InDelta(t, 0.5, s.Scale(), 1e-9)

	// Content reflow: more line items, taller page.
	s.SetContent(Size{800, 2400})
	got := rec.snapshot()
	require.Len(t, got, 2)
	assert.InDelta(t, 0.25, got[1], 1e-9)
}

func TestScalerSuppressesJitter(t *testing.T) {
	rec := &scaleRecorder{}
	s := New(rec.record)
	defer s.Close()

	s.SetContent(Size{800, 1200})
	s.SetViewport(Size{400, 1200})
	require.Len(t, rec.snapshot(), 1)

	// Sub-pixel measurement noise: delta below epsilon, no update.
	s.SetViewport(Size{400.2, 1200})
	assert.Len(t, rec.snapshot(), 1)
	assert.InDelta(t, 0.5, s.Scale(), 1e-3)
}

func TestScalerDefaultsToFullScale(t *testing.T) {
	s := New(nil)
	defer s.Close()
	assert.Equal(t, 1.0, s.Scale())

	// Fitting content that already fits publishes nothing (still 1.0).
	rec := &scaleRecorder{}
	s2 := New(rec.record)
	defer s2.Close()
	s2.SetContent(Size{400, 600})
	s2.SetViewport(Size{800, 1200})
	assert.Empty(t, rec.snapshot())
}

func TestScalerSettleRecheck(t *testing.T) {
	rec := &scaleRecorder{}
	s := New(rec.record)
	defer s.Close()

	// Record sizes without triggering: simulate measurements arriving
	// while fonts settle by setting both before the settle timer fires.
	s.SetContent(Size{800, 1200})
	s.SetViewport(Size{400, 1200})

	time.Sleep(3 * settleDelay)
	// Settle re-check is idempotent: same inputs, no duplicate publish.
	assert.Len(t, rec.snapshot(), 1)
}

func TestScalerCloseStopsUpdates(t *testing.T) {
	rec := &scaleRecorder{}
	s := New(rec.record)
	s.SetContent(Size{800, 1200})
	s.Close()

	s.SetViewport(Size{400, 1200})
	assert.Empty(t, rec.snapshot(), "no callback after Close")

	time.Sleep(2 * settleDelay)
	assert.Empty(t, rec.snapshot(), "settle timer must not fire after Close")
}
