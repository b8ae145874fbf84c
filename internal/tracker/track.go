package tracker

// Track is the per-label transient motion state. It exists only while the
// label is continuously observed; the engine destroys it the moment a
// frame's detection set omits the label, discarding any accumulated motion.
type Track struct {
	FrameCount     int
	DirectionScore int
	LastCenterY    int
	HasLastY       bool

	// Largest-area crop seen during this track episode. Resets with the
	// track, so a stale crop from a previous episode never leaks into an
	// event.
	bestCrop []byte
	bestArea int
}

// observe advances the track by one frame. Increasing centerY is downward
// motion in image coordinates ("placed into cart"); the first observation
// establishes position without contributing a delta.
func (t *Track) observe(centerY int) {
	t.FrameCount++
	if t.HasLastY {
		t.DirectionScore += centerY - t.LastCenterY
	}
	t.LastCenterY = centerY
	t.HasLastY = true
}

func (t *Track) updateCrop(crop []byte, area int) {
	if crop != nil && area > t.bestArea {
		t.bestArea = area
		t.bestCrop = crop
	}
}
