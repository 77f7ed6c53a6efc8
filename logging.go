package vvector

import (
	"context"

	"golang.org/x/exp/slog"
)

// discardHandler drops every record. It backs the logger used when
// CreateOptions.Logger is nil, keeping logging calls in the engine
// unconditional.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
