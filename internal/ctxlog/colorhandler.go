// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/conlog/internal/color"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

const (
	// TimeFormat is the default format used for timestamps in log messages.
	TimeFormat = "[15:04:05.000]"

	// DefaultLineFormat is the default line template. Recognized tokens
	// are {time}, {level}, {name} and {message}; attributes are appended
	// after the rendered template.
	DefaultLineFormat = "{time} {level} {name} {message}"
)

// DefaultLevelColors maps the five classic severities to their foreground
// colors. Lookup is by exact level: a record logged at a custom level
// renders uncolored rather than borrowing the nearest entry.
var DefaultLevelColors = map[slog.Level]color.Code{
	slog.LevelDebug: color.FgWhite,
	slog.LevelInfo:  color.FgCyan,
	slog.LevelWarn:  color.FgYellow,
	slog.LevelError: color.FgRed,
	LevelCritical:   color.FgHiMagenta,
}

// ColorHandler is a slog handler that renders each record as a single
// console line and wraps the whole line, embedded newlines included, in
// the color mapped to the record's severity followed by a reset.
type ColorHandler struct {
	h                slog.Handler
	r                func([]string, slog.Attr) slog.Attr
	b                *bytes.Buffer
	m                *sync.Mutex
	writer           io.Writer
	colour           bool
	outputEmptyAttrs bool
	name             string
	timeFormat       string
	lineFormat       string
	levelColors      map[slog.Level]color.Code
}

// Enabled checks if the handler is enabled for the given level.
func (h *ColorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *ColorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.clone(h.h.WithAttrs(attrs))
}

// WithGroup creates a new handler with the given group name.
func (h *ColorHandler) WithGroup(name string) slog.Handler {
	return h.clone(h.h.WithGroup(name))
}

func (h *ColorHandler) clone(inner slog.Handler) *ColorHandler {
	return &ColorHandler{
		h:                inner,
		r:                h.r,
		b:                h.b,
		m:                h.m,
		writer:           h.writer,
		colour:           h.colour,
		outputEmptyAttrs: h.outputEmptyAttrs,
		name:             h.name,
		timeFormat:       h.timeFormat,
		lineFormat:       h.lineFormat,
		levelColors:      h.levelColors,
	}
}

func (h *ColorHandler) computeAttrs(
	ctx context.Context,
	r slog.Record,
) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	err := json.Unmarshal(h.b.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

// levelLabel renders a severity the way classic logging frameworks spell
// it. Levels outside the classic five fall back to the slog spelling.
func levelLabel(l slog.Level) string {
	switch l {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return l.String()
	}
}

// Handle implements the slog.Handler interface for ColorHandler.
func (h *ColorHandler) Handle(ctx context.Context, r slog.Record) error {
	var level string

	levelAttr := slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.StringValue(levelLabel(r.Level)),
	}
	if h.r != nil {
		levelAttr = h.r([]string{}, levelAttr)
	}

	if !levelAttr.Equal(slog.Attr{}) {
		level = levelAttr.Value.String()
	}

	var timestamp string

	timeAttr := slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.StringValue(r.Time.Format(h.timeFormat)),
	}
	if h.r != nil {
		timeAttr = h.r([]string{}, timeAttr)
	}

	if !timeAttr.Equal(slog.Attr{}) {
		timestamp = timeAttr.Value.String()
	}

	var msg string

	msgAttr := slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	}
	if h.r != nil {
		msgAttr = h.r([]string{}, msgAttr)
	}

	if !msgAttr.Equal(slog.Attr{}) {
		msg = msgAttr.Value.String()
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte

	if h.outputEmptyAttrs || len(attrs) > 0 {
		// The formatter provides stable key ordering. Its own JSON
		// coloring stays off so the line carries at most one color wrap.
		jsonFormatter := colorjson.NewFormatter()
		jsonFormatter.DisabledColor = true

		attrsAsBytes, err = jsonFormatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}
	}

	line := strings.NewReplacer(
		"{time}", timestamp,
		"{level}", level,
		"{name}", h.name,
		"{message}", msg,
	).Replace(h.lineFormat)

	if len(attrsAsBytes) > 0 {
		line += " " + string(attrsAsBytes)
	}

	if code, ok := h.levelColors[r.Level]; ok && h.colour {
		line = color.ControlString(code) + line + color.ControlString(color.Reset)
	}

	_, err = io.WriteString(h.writer, line+"\n")
	if err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// NewColorHandler creates a new ColorHandler with the given options.
func NewColorHandler(handlerOptions *slog.HandlerOptions, options ...Option) *ColorHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &ColorHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r:           handlerOptions.ReplaceAttr,
		m:           &sync.Mutex{},
		writer:      os.Stdout,
		timeFormat:  TimeFormat,
		lineFormat:  DefaultLineFormat,
		levelColors: DefaultLevelColors,
	}

	for _, opt := range options {
		opt(handler)
	}

	if handler.name == "" {
		handler.lineFormat = strings.ReplaceAll(handler.lineFormat, "{name} ", "")
		handler.lineFormat = strings.ReplaceAll(handler.lineFormat, "{name}", "")
	}

	return handler
}

// Option implements a functional options pattern for ColorHandler.
type Option func(h *ColorHandler)

// WithDestinationWriter sets the destination writer for the ColorHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *ColorHandler) {
		h.writer = writer
	}
}

// WithColor enables color output for the ColorHandler regardless of the
// detected terminal capability.
func WithColor() Option {
	return func(h *ColorHandler) {
		h.colour = true
	}
}

// WithAutoColor enables color output when stdout is a terminal and the
// NO_COLOR / FORCE_COLOR environment variables allow it.
func WithAutoColor() Option {
	return func(h *ColorHandler) {
		h.colour = color.Enabled()
	}
}

// WithOutputEmptyAttrs enables output of empty attributes for the ColorHandler.
func WithOutputEmptyAttrs() Option {
	return func(h *ColorHandler) {
		h.outputEmptyAttrs = true
	}
}

// WithName sets the logger name rendered by the {name} line format token.
func WithName(name string) Option {
	return func(h *ColorHandler) {
		h.name = name
	}
}

// WithTimeFormat sets the timestamp format rendered by the {time} token.
func WithTimeFormat(format string) Option {
	return func(h *ColorHandler) {
		h.timeFormat = format
	}
}

// WithLineFormat sets the line template. Tokens {time}, {level}, {name}
// and {message} are substituted; anything else is emitted verbatim.
func WithLineFormat(format string) Option {
	return func(h *ColorHandler) {
		h.lineFormat = format
	}
}

// WithLevelColors replaces the severity-to-color map. Levels absent from
// the map render uncolored.
func WithLevelColors(colors map[slog.Level]color.Code) Option {
	return func(h *ColorHandler) {
		if colors != nil {
			h.levelColors = colors
		}
	}
}

// Replaced describes what an Install call displaced on the process
// default logger slot.
type Replaced struct {
	// Prev is the handler that was installed before the call.
	Prev slog.Handler
	// Removed is the number of handlers taken out of service: one, since
	// a slog logger carries exactly one handler.
	Removed int
}

// Install builds a ColorHandler and makes it the handler of the process
// default logger, discarding whatever was installed before. This is
// destructive by design: any previously configured handler, file-backed
// or otherwise, stops receiving records. Calling Install again simply
// replaces the previous installation, so exactly one handler is ever
// attached.
//
// The returned Replaced identifies the displaced handler so callers can
// assert on the side effect instead of discovering it implicitly.
func Install(opts ...Option) Replaced {
	prev := slog.Default().Handler()

	removed := 0
	if prev != nil {
		removed = 1
	}

	defaults := []Option{
		WithName(DefaultLoggerName),
		WithAutoColor(),
		WithDestinationWriter(os.Stdout),
	}

	h := NewColorHandler(&slog.HandlerOptions{Level: LevelVar}, append(defaults, opts...)...)
	slog.SetDefault(slog.New(h))

	return Replaced{Prev: prev, Removed: removed}
}
