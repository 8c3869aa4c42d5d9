package component

import "image/color"

// Highlight tints an entity. Animals drive it through ai.FeedbackSink; the
// player gets timed flashes with Remaining > 0.
type Highlight struct {
	Color     color.Color
	On        bool
	Remaining float64
	// Count is how many times the highlight was switched on.
	Count int
}

var HighlightComponent = NewComponent[Highlight]()

func (h *Highlight) SetHighlight(c color.Color) {
	h.Color = c
	h.On = true
	h.Count++
}

func (h *Highlight) ResetHighlight() {
	h.Color = nil
	h.On = false
	h.Remaining = 0
}

// Flash switches the highlight on for d seconds.
func (h *Highlight) Flash(c color.Color, d float64) {
	h.SetHighlight(c)
	h.Remaining = d
}
