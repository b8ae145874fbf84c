package tracker

// frameHistory is a bounded log of per-frame label sets, one entry per
// processed frame. It backs the "is new detection" check that suppresses
// repeated add events for a label that has merely been flickering in and
// out of view.
type frameHistory struct {
	entries []map[string]bool
	size    int
}

// newFrameHistory clamps non-positive sizes to the default window so a
// zero-value EngineConfig cannot produce a history that panics on append.
func newFrameHistory(size int) *frameHistory {
	if size <= 0 {
		size = 30
	}
	return &frameHistory{size: size}
}

func (h *frameHistory) append(labels map[string]bool) {
	if len(h.entries) >= h.size {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, labels)
}

// seenBefore reports whether label appears in any entry older than the
// newest `recent` entries. Those newest entries are excluded so that the
// confirmation run leading up to an add does not block the add itself.
func (h *frameHistory) seenBefore(label string, recent int) bool {
	cutoff := len(h.entries) - recent
	for i := 0; i < cutoff; i++ {
		if h.entries[i][label] {
			return true
		}
	}
	return false
}
