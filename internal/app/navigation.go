package app

// PageID identifies a top-level page.
type PageID int

const (
	PageHourly PageID = iota
	PageDaily
	PageDetails
)

// Page is a navigable body page.
type Page struct {
	ID    PageID
	Title string
	Icon  string
}

// Navigation holds the ordered pages and the active one.
type Navigation struct {
	pages  []Page
	active PageID
}

// NewNavigation returns the standard page set with Hourly active.
func NewNavigation() Navigation {
	return Navigation{
		pages: []Page{
			{ID: PageHourly, Title: "Hourly", Icon: "◷"},
			{ID: PageDaily, Title: "Daily", Icon: "▦"},
			{ID: PageDetails, Title: "Details", Icon: "ⓘ"},
		},
		active: PageHourly,
	}
}

// Pages returns the pages in display order.
func (n Navigation) Pages() []Page {
	return append([]Page(nil), n.pages...)
}

// Active returns the active page id.
func (n Navigation) Active() PageID {
	return n.active
}

// Page looks up a page by id.
func (n Navigation) Page(id PageID) (Page, bool) {
	for _, p := range n.pages {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}

// Activate makes id the active page. Unknown ids are rejected and leave the
// selection unchanged.
func (n *Navigation) Activate(id PageID) bool {
	if _, ok := n.Page(id); !ok {
		return false
	}
	n.active = id
	return true
}

// Next activates the page after the active one, wrapping around.
func (n *Navigation) Next() {
	n.step(1)
}

// Prev activates the page before the active one, wrapping around.
func (n *Navigation) Prev() {
	n.step(-1)
}

func (n *Navigation) step(delta int) {
	if len(n.pages) == 0 {
		return
	}
	idx := 0
	for i, p := range n.pages {
		if p.ID == n.active {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(n.pages)) % len(n.pages)
	n.active = n.pages[idx].ID
}
