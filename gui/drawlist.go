package gui

import "sync"

// The whole UI is rebuilt every frame, so draw lists are pooled to keep
// their backing arrays.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList takes a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList hands dl back to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// noClip is the clip rectangle used when nothing is pushed.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// DrawList collects the triangles of one frame, batched into commands that
// share a texture and clip rectangle. Indices are relative to the owning
// command's VertexOffset.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack [][4]float32
	clip      [4]float32
	textureID uint32
	vtxStart  uint32 // VertexOffset of the open command
	idxStart  uint32 // IndexOffset of the open command
}

// Clear empties the list but keeps capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
	dl.textureID = 0
	dl.vtxStart = 0
	dl.idxStart = 0
}

// PushClipRect restricts following primitives to the given rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	dl.clip = [4]float32{x1, y1, x2, y2}
	dl.split()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.clip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.split()
}

// SetTexture switches the texture used by following primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.split()
}

// split closes the open command and starts a new one with the current state.
func (dl *DrawList) split() {
	dl.closeCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.vtxStart = uint32(len(dl.VtxBuffer))
	dl.idxStart = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCommand() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxStart
	}
}

// addQuad appends four corners and the two triangles covering them.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.split()
	}
	base := uint16(uint32(len(dl.VtxBuffer)) - dl.vtxStart)
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
}

// AddRect draws a filled rectangle. Fully transparent colors draw nothing.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws the four edges of a rectangle.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// Font atlas layout of the built-in bitmap font: ASCII 32..127 in a 16x6
// grid of 8x8 cells.
const (
	FontAtlasWidth  = 128
	FontAtlasHeight = 48
	fontCell        = 8
	fontColumns     = 16
)

// AddText draws monospace text with the built-in font atlas, which must be
// bound through SetTexture. Characters outside ASCII are drawn as '?'.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}
	cw := charWidth * scale
	ch := charHeight * scale

	i := 0
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}
		cell := int(r - 32)
		col := float32(cell % fontColumns)
		row := float32(cell / fontColumns)
		u0 := col * fontCell / FontAtlasWidth
		v0 := row * fontCell / FontAtlasHeight
		u1 := (col + 1) * fontCell / FontAtlasWidth
		v1 := (row + 1) * fontCell / FontAtlasHeight

		px := x + float32(i)*cw
		dl.addQuad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		i++
	}
}

// InsertRect puts a filled rectangle at the very start of the list so it is
// drawn behind everything already added. Panels use it for their background,
// whose size is only known after the content ran.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	if len(dl.CmdBuffer) == 0 {
		dl.AddRect(x, y, w, h, color)
		return
	}
	dl.closeCommand()
	verts := []Vertex{
		{Pos: [2]float32{x, y}, Color: color},
		{Pos: [2]float32{x + w, y}, Color: color},
		{Pos: [2]float32{x + w, y + h}, Color: color},
		{Pos: [2]float32{x, y + h}, Color: color},
	}
	dl.VtxBuffer = append(verts, dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	// Existing indices are command-relative, so only the offsets move.
	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	dl.vtxStart += 4
	dl.idxStart += 6

	bg := DrawCmd{ElemCount: 6, ClipRect: dl.clip}
	dl.CmdBuffer = append([]DrawCmd{bg}, dl.CmdBuffer...)
}

// Finalize closes the open command and drops empty ones.
// Renderers call it before uploading.
func (dl *DrawList) Finalize() {
	dl.closeCommand()
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
