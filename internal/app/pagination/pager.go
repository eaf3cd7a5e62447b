// Package pagination is a pure client-side pagination engine. Indices are
// always recomputed from (page, page size) against the current collection
// length, never cached, so a page cannot point past the end after the
// underlying collection shrinks.
package pagination

// View is the result of paginating a collection.
type View[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate returns the 1-based page of items. TotalPages is at least 1 even
// for an empty collection. An out-of-range page yields an empty slice rather
// than panicking; stateful navigation guards in Pager keep pages in range.
func Paginate[T any](items []T, page, pageSize int) View[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}
	total := totalPages(len(items), pageSize)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return View[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalPages: total,
		HasPrev:    page > 1,
		HasNext:    page < total,
	}
}

func totalPages(n, pageSize int) int {
	total := (n + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	return total
}

// Pager holds the page cursor for one collection. Each independently-paginated
// collection gets its own instance; the pager never stores the collection
// itself.
type Pager struct {
	page     int
	pageSize int
}

// NewPager returns a pager positioned on page 1.
func NewPager(pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager{page: 1, pageSize: pageSize}
}

func (p *Pager) Page() int     { return p.page }
func (p *Pager) PageSize() int { return p.pageSize }

// SetPageSize changes the page size and resets to page 1.
func (p *Pager) SetPageSize(size int) {
	if size < 1 {
		return
	}
	p.pageSize = size
	p.page = 1
}

// Next advances one page if the collection of length n has one. Navigating
// past the last page is a no-op, not an error.
func (p *Pager) Next(n int) {
	if p.page < totalPages(n, p.pageSize) {
		p.page++
	}
}

// Prev steps back one page. Navigating before page 1 is a no-op.
func (p *Pager) Prev() {
	if p.page > 1 {
		p.page--
	}
}

// Clamp pulls the cursor back into range for a collection of length n. It must
// be called after every structural change to the collection.
func (p *Pager) Clamp(n int) {
	if total := totalPages(n, p.pageSize); p.page > total {
		p.page = total
	}
}

// ViewOf paginates items at the pager's current cursor.
func ViewOf[T any](p *Pager, items []T) View[T] {
	return Paginate(items, p.page, p.pageSize)
}
