package roster

import (
	"github.com/google/uuid"
)

// View is the list state of one dashboard: filter inputs plus the current page.
// Changing any filter input moves back to page 1, so a narrowed result never
// shows an empty page left over from a previous, longer list.
type View struct {
	query         string
	userID        uuid.NullUUID
	favoritesOnly bool
	page          int
	pageSize      int
}

// NewView starts at page 1 with the given page size, or the smallest allowed one.
func NewView(pageSize int) View {
	if !ValidPageSize(pageSize) {
		pageSize = PageSizes[0]
	}

	return View{page: 1, pageSize: pageSize}
}

func (v *View) SetQuery(q string) {
	if q != v.query {
		v.query = q
		v.page = 1
	}
}

func (v *View) SetUser(id uuid.NullUUID) {
	if id != v.userID {
		v.userID = id
		v.page = 1
	}
}

func (v *View) SetFavoritesOnly(on bool) {
	if on != v.favoritesOnly {
		v.favoritesOnly = on
		v.page = 1
	}
}

// SetPageSize changes the page size and returns to page 1.
// A size outside PageSizes returns ErrInvalidPageSize and leaves the view unchanged.
func (v *View) SetPageSize(size int) error {
	if !ValidPageSize(size) {
		return ErrInvalidPageSize
	}

	if size != v.pageSize {
		v.pageSize = size
		v.page = 1
	}

	return nil
}

// SetPage moves to page p.
func (v *View) SetPage(p int) error {
	if p < 1 {
		return ErrInvalidPage
	}

	v.page = p

	return nil
}

func (v View) Page() int     { return v.page }
func (v View) PageSize() int { return v.pageSize }

// Filter returns the predicate for this view with the caller's favorites.
func (v View) Filter(favorites map[uuid.UUID]struct{}) Filter {
	return Filter{
		Query:         v.query,
		UserID:        v.userID,
		FavoritesOnly: v.favoritesOnly,
		Favorites:     favorites,
	}
}
