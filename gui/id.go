package gui

import "hash/fnv"

// ID identifies a widget across frames.
type ID uint64

// GetID derives an ID from label and the current ID stack. The same label
// under the same parent yields the same ID every frame, so labels must be
// unique within a parent; use PushID to disambiguate repeated labels.
func (ctx *Context) GetID(label string) ID {
	h := fnv.New64a()
	var parent [8]byte
	p := uint64(ctx.CurrentID())
	for i := range parent {
		parent[i] = byte(p >> (8 * i))
	}
	h.Write(parent[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID scopes following GetID calls under label.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID ends the innermost PushID scope.
func (ctx *Context) PopID() {
	if n := len(ctx.idStack); n > 0 {
		ctx.idStack = ctx.idStack[:n-1]
	}
}

// CurrentID returns the innermost scope ID, or 0 at the top level.
func (ctx *Context) CurrentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}
