package chart

import "strconv"

// Hover is either NoHover or HoverAt(index). The zero value is NoHover.
type Hover struct {
	index  int
	active bool
}

// NoHover is the idle state: no pointer over the chart.
func NoHover() Hover { return Hover{} }

// HoverAt marks index as hovered.
func HoverAt(index int) Hover { return Hover{index: index, active: true} }

// Index reports the hovered index and whether the hover is active.
func (h Hover) Index() (int, bool) { return h.index, h.active }

func (h Hover) Active() bool { return h.active }

func (h Hover) String() string {
	if !h.active {
		return "none"
	}
	return strconv.Itoa(h.index)
}

// EffectiveIndex resolves the index shown by the legend and tooltip: the
// hovered index, or the last index when idle. It reports false when there
// are no points. An active index outside [0, n) resolves like idle.
func EffectiveIndex(h Hover, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	if i, ok := h.Index(); ok && i >= 0 && i < n {
		return i, true
	}
	return n - 1, true
}
