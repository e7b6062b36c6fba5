package canvas

import (
	"image/color"
	"log/slog"

	"FingerPaint/internal/gesture"
	"FingerPaint/internal/state"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c := canvas.New(1080, 2340,
//		canvas.WithBackground(color.NRGBA{A: 255}),
//		canvas.WithDeadZone(state.DeadZone{Top: 80, Bottom: 120}))
type Option func(*options)

type options struct {
	background color.NRGBA
	palette    state.Palette
	colour     string
	width      int
	factor     float32
	minWidth   float32
	maxWidth   float32
	tolerance  float32
	deadZone   state.DeadZone
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		colour:     state.DefaultColorName,
		width:      gesture.DefaultWidth,
		factor:     gesture.DefaultFactor,
		minWidth:   gesture.MinWidth,
		maxWidth:   gesture.MaxWidth,
		tolerance:  state.DefaultTolerance,
		deadZone:   state.DefaultDeadZone,
	}
}

// WithBackground sets the colour the picture is cleared to. The palette's
// erase entry paints with it.
func WithBackground(c color.NRGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithPalette replaces the built-in palette.
func WithPalette(p state.Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithColour picks the starting pen colour by palette name.
func WithColour(name string) Option {
	return func(o *options) {
		o.colour = name
	}
}

// WithPen sets the starting width, the pinch scale it starts from, and the
// limits a pinch is clamped to.
func WithPen(width int, factor, minWidth, maxWidth float32) Option {
	return func(o *options) {
		o.width = width
		o.factor = factor
		o.minWidth = minWidth
		o.maxWidth = maxWidth
	}
}

// WithTolerance sets the jitter threshold in pixels.
func WithTolerance(px float32) Option {
	return func(o *options) {
		o.tolerance = px
	}
}

func WithDeadZone(dz state.DeadZone) Option {
	return func(o *options) {
		o.deadZone = dz
	}
}

// WithLogger overrides the package logger for one canvas.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
