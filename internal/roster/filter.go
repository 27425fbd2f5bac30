package roster

import (
	"strings"

	"github.com/google/uuid"

	"github.com/aliskhannn/estate-crm/internal/model"
)

// Filter is the combined search, user and favorites predicate.
type Filter struct {
	Query         string
	UserID        uuid.NullUUID
	FavoritesOnly bool
	Favorites     map[uuid.UUID]struct{}
}

// Match reports whether c passes every active filter.
func (f Filter) Match(c model.Client) bool {
	if f.UserID.Valid && !c.BelongsTo(f.UserID.UUID) {
		return false
	}

	if f.FavoritesOnly {
		if _, ok := f.Favorites[c.ID]; !ok {
			return false
		}
	}

	return matchQuery(c, strings.ToLower(strings.TrimSpace(f.Query)))
}

func matchQuery(c model.Client, q string) bool {
	if q == "" {
		return true
	}

	for _, v := range c.SearchValues() {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}

	return false
}

// Apply returns the clients matching f, in input order. The input is not modified.
func (f Filter) Apply(clients []model.Client) []model.Client {
	out := make([]model.Client, 0, len(clients))
	for _, c := range clients {
		if f.Match(c) {
			out = append(out, c)
		}
	}

	return out
}

// FavoriteSet builds the lookup set Filter expects.
func FavoriteSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
