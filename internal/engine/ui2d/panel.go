package ui2d

// Panel is the scroll state of the overlay content. The page is keyed so
// the offset survives redraws but resets when the content changes.
type Panel struct {
	key    string
	page   *Page
	offset float32
	view   float32 // Visible content height in pixels
}

// Key identifies the page currently held, empty when none.
func (p *Panel) Key() string { return p.key }

// Page returns the rasterized page, or nil.
func (p *Panel) Page() *Page { return p.page }

// Offset returns the scroll offset in pixels from the top of the page.
func (p *Panel) Offset() float32 { return p.offset }

// SetPage replaces the page. A new key scrolls back to the top.
func (p *Panel) SetPage(key string, page *Page) {
	if key != p.key {
		p.offset = 0
	}
	p.key = key
	p.page = page
	p.clamp()
}

// Clear drops the page.
func (p *Panel) Clear() {
	p.key = ""
	p.page = nil
	p.offset = 0
}

// SetViewport sets the visible content height.
func (p *Panel) SetViewport(h float32) {
	p.view = max(h, 0)
	p.clamp()
}

// MaxOffset is how far the page can scroll.
func (p *Panel) MaxOffset() float32 {
	if p.page == nil {
		return 0
	}
	return max(float32(p.page.Height())-p.view, 0)
}

// Scroll moves the page by dy pixels and reports whether it moved.
func (p *Panel) Scroll(dy float32) bool {
	before := p.offset
	p.offset += dy
	p.clamp()
	return p.offset != before
}

func (p *Panel) clamp() {
	p.offset = min(max(p.offset, 0), p.MaxOffset())
}

// LinkAt returns the href under the screen point (x, y), given the layout
// the page is shown in.
func (p *Panel) LinkAt(l Layout, x, y float32) (string, bool) {
	if p.page == nil || !l.PanelVisible || !l.Content.Contains(x, y) {
		return "", false
	}
	return p.page.LinkAt(x-l.Content.X, y-l.Content.Y+p.offset)
}
