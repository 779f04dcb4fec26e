package board

import (
	"cmp"
	"slices"
)

// Sort returns elements newest first. Equal start times keep insertion order
// so tiles do not jitter between refreshes. If focusedID names one of the
// elements it is moved to the front. The input slice is not modified.
func Sort(elements []*Element, focusedID string) []*Element {
	out := slices.Clone(elements)
	slices.SortStableFunc(out, func(a, b *Element) int {
		if c := b.lastStartTime.Compare(a.lastStartTime); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	if focusedID == "" {
		return out
	}
	for i, el := range out {
		if el.BuildID() == focusedID {
			copy(out[1:i+1], out[:i])
			out[0] = el
			break
		}
	}
	return out
}
