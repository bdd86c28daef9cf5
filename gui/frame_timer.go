package gui

// frameTimerWindow is the number of frames averaged by FrameTimer.
const frameTimerWindow = 60

// FrameTimer reports a framerate averaged over the last 60 frames, the way
// Dear ImGui computes io.Framerate.
type FrameTimer struct {
	deltas [frameTimerWindow]float32
	next   int
	count  int
	sum    float32
}

// Add records the duration of one frame in seconds. Non-positive deltas are
// ignored.
func (t *FrameTimer) Add(dt float32) {
	if dt <= 0 {
		return
	}
	if t.count == frameTimerWindow {
		t.sum -= t.deltas[t.next]
	} else {
		t.count++
	}
	t.deltas[t.next] = dt
	t.sum += dt
	t.next = (t.next + 1) % frameTimerWindow
}

// Framerate returns frames per second, or 0 before the first frame.
func (t *FrameTimer) Framerate() float32 {
	if t.count == 0 || t.sum <= 0 {
		return 0
	}
	return float32(t.count) / t.sum
}

// FrameTime returns the average frame duration in milliseconds.
func (t *FrameTimer) FrameTime() float32 {
	fps := t.Framerate()
	if fps == 0 {
		return 0
	}
	return 1000 / fps
}
