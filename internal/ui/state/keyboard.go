package state

import (
	"strings"

	"github.com/atomicstack/tmux-context-menu/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Highlighted returns the item under the keyboard cursor.
func (p *Panel) Highlighted() *Item {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return nil
	}
	return p.Items[p.Cursor]
}

// MoveCursor moves the highlight by delta selectable rows, wrapping at the
// ends. Separators are skipped.
func (p *Panel) MoveCursor(delta int) bool {
	if delta == 0 {
		return false
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	old := p.Cursor
	cursor := p.Cursor
	for i := 0; i < delta; i++ {
		next := p.nextSelectable(cursor, step)
		if next < 0 {
			break
		}
		cursor = next
	}
	p.Cursor = cursor
	p.query = ""
	return p.Cursor != old
}

// MoveCursorHome highlights the first selectable row.
func (p *Panel) MoveCursorHome() bool {
	old := p.Cursor
	p.Cursor = p.nextSelectable(-1, 1)
	return p.Cursor != old
}

// MoveCursorEnd highlights the last selectable row.
func (p *Panel) MoveCursorEnd() bool {
	old := p.Cursor
	p.Cursor = p.nextSelectable(len(p.Items), -1)
	return p.Cursor != old
}

func (p *Panel) nextSelectable(from, step int) int {
	n := len(p.Items)
	if n == 0 {
		return -1
	}
	idx := from
	for i := 0; i < n; i++ {
		idx += step
		if idx >= n {
			idx = 0
		}
		if idx < 0 {
			idx = n - 1
		}
		if p.Items[idx].Selectable() {
			return idx
		}
	}
	return -1
}

// KeyOpen opens the highlighted submenu without waiting on the safe zone
// and moves keyboard focus into it.
func (p *Panel) KeyOpen() bool {
	item := p.Highlighted()
	if p.released || item == nil {
		return false
	}
	if _, ok := item.Submenu(); !ok {
		return false
	}
	p.openSubmenu(item)
	if item.child == nil {
		return false
	}
	p.root.focus = item.child
	return true
}

// KeyActivate invokes the highlighted action, or opens the highlighted
// submenu. Disabled actions do nothing.
func (p *Panel) KeyActivate() bool {
	item := p.Highlighted()
	if p.released || item == nil {
		return false
	}
	if _, ok := item.Submenu(); ok {
		return p.KeyOpen()
	}
	a, ok := item.Action()
	if !ok || !a.Enabled() {
		return false
	}
	p.CloseSubmenus(nil)
	p.root.activate(a)
	return true
}

// KeyBack closes the panel and hands focus back to its parent.
func (p *Panel) KeyBack() {
	p.closeWith(events.CloseReasonEscape)
}

// Query returns the typeahead text.
func (p *Panel) Query() string { return p.query }

// Type appends text to the typeahead query and highlights the best match.
func (p *Panel) Type(text string) bool {
	if text == "" {
		return false
	}
	p.query += text
	return p.applyQuery()
}

// Backspace removes the last rune of the typeahead query.
func (p *Panel) Backspace() bool {
	runes := []rune(p.query)
	if len(runes) == 0 {
		return false
	}
	p.query = string(runes[:len(runes)-1])
	return p.applyQuery()
}

// ClearQuery drops the typeahead query.
func (p *Panel) ClearQuery() {
	p.query = ""
}

func (p *Panel) applyQuery() bool {
	if strings.TrimSpace(p.query) == "" {
		return false
	}
	labels := make([]string, 0, len(p.Items))
	index := make([]int, 0, len(p.Items))
	for i, item := range p.Items {
		if !item.Selectable() {
			continue
		}
		labels = append(labels, item.Node.Label())
		index = append(index, i)
	}
	best := BestMatchIndex(labels, p.query)
	if best < 0 {
		return false
	}
	old := p.Cursor
	p.Cursor = index[best]
	return p.Cursor != old
}

// BestMatchIndex returns the index of the label that best matches query:
// an exact match, then a prefix, then a substring, then the closest fuzzy
// match. It returns -1 when nothing matches.
func BestMatchIndex(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex
}
