// Package iologdb provides a slog.Handler that keeps log records in
// the logs table.
package iologdb

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/winedb/pkg/schema"
	"gorm.io/gorm"
)

// PackKey is the attribute stored in the pack column instead of attrs.
const PackKey = "pack"

type handler struct {
	db     *gorm.DB
	level  slog.Leveler
	pack   string
	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a slog.Handler writing records with level or
// above into the logs table.
func NewHandler(db *gorm.DB, level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &handler{db: db, level: level}
}

func (h *handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	pack := h.pack
	attrs := make(map[string]any)
	for _, a := range h.attrs {
		attrs[a.Key] = attrValue(a.Value)
	}

	prefix := h.prefix()
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == PackKey && prefix == "" {
			pack = a.Value.String()
			return true
		}
		addAttr(attrs, prefix, a)
		return true
	})

	rec := schema.Log{
		Level: r.Level.String(),
		Msg:   r.Message,
	}
	if pack != "" {
		rec.Pack = &pack
	}
	if len(attrs) > 0 {
		enc := gnfmt.GNjson{}
		bs, err := enc.Encode(attrs)
		if err != nil {
			return LogWriteError(err)
		}
		s := string(bs)
		rec.Attrs = &s
	}

	if err := h.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return LogWriteError(err)
	}
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := h.clone()
	prefix := h.prefix()
	m := make(map[string]any)
	for _, a := range attrs {
		if a.Key == PackKey && prefix == "" {
			res.pack = a.Value.String()
			continue
		}
		addAttr(m, prefix, a)
	}
	for k, v := range m {
		res.attrs = append(res.attrs, slog.Any(k, v))
	}
	return res
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	res := h.clone()
	res.groups = append(res.groups, name)
	return res
}

func (h *handler) clone() *handler {
	return &handler{
		db:     h.db,
		level:  h.level,
		pack:   h.pack,
		attrs:  slices.Clone(h.attrs),
		groups: slices.Clone(h.groups),
	}
}

func (h *handler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// addAttr flattens groups into dotted keys.
func addAttr(m map[string]any, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range v.Group() {
			addAttr(m, p, ga)
		}
		return
	}
	m[prefix+a.Key] = attrValue(v)
}

func attrValue(v slog.Value) any {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindTime, slog.KindDuration:
		return v.String()
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
	}
	return v.Any()
}
