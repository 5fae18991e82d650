package bookcompiler

// BookmarkEntry is one chapter heading's jump target: where it landed and
// where it sits in reading order.
type BookmarkEntry struct {
	ID        string
	Title     string
	PageIndex int
	Order     int
}

// BookmarkRegistry is an append-only, document-ordered list of bookmark
// entries. It grows during composition and is read-only afterwards. Duplicate
// headings stay distinct: ids derive from source line positions.
type BookmarkRegistry struct {
	entries []BookmarkEntry
	byID    map[string]int
}

func NewBookmarkRegistry() *BookmarkRegistry {
	return &BookmarkRegistry{byID: make(map[string]int)}
}

// Add appends an entry bound to the page it was placed on.
func (r *BookmarkRegistry) Add(id, title string, pageIndex int) {
	r.byID[id] = len(r.entries)
	r.entries = append(r.entries, BookmarkEntry{
		ID:        id,
		Title:     title,
		PageIndex: pageIndex,
		Order:     len(r.entries),
	})
}

// Len reports the number of entries.
func (r *BookmarkRegistry) Len() int { return len(r.entries) }

// Entries returns all entries in document order.
func (r *BookmarkRegistry) Entries() []BookmarkEntry {
	out := make([]BookmarkEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup finds an entry by id.
func (r *BookmarkRegistry) Lookup(id string) (BookmarkEntry, bool) {
	i, ok := r.byID[id]
	if !ok {
		return BookmarkEntry{}, false
	}
	return r.entries[i], true
}

// ForPage returns, in document order, the entries bound to one page.
func (r *BookmarkRegistry) ForPage(pageIndex int) []BookmarkEntry {
	var out []BookmarkEntry
	for _, e := range r.entries {
		if e.PageIndex == pageIndex {
			out = append(out, e)
		}
	}
	return out
}
