package roster

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/estate-crm/internal/model"
)

func client(name string) model.Client {
	return model.Client{
		ID:        uuid.New(),
		Name:      name,
		Phone:     "050" + name,
		Status:    model.StatusNew,
		UserID:    uuid.New(),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFilter_Favorites(t *testing.T) {
	a, b, c := client("A"), client("B"), client("C")
	f := Filter{FavoritesOnly: true, Favorites: FavoriteSet([]uuid.UUID{b.ID})}

	got := f.Apply([]model.Client{a, b, c})
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
}

func TestFilter_FavoritesIgnoredWhenOff(t *testing.T) {
	a, b := client("A"), client("B")
	f := Filter{Favorites: FavoriteSet([]uuid.UUID{b.ID})}

	assert.Len(t, f.Apply([]model.Client{a, b}), 2)
}

func TestFilter_SearchIsCaseInsensitiveOverAllFields(t *testing.T) {
	a := client("Omar")
	a.City = "Riyadh"
	b := client("Sara")
	b.Campaign = "Summer-Launch"
	c := client("Ali")

	list := []model.Client{a, b, c}

	assert.Equal(t, []model.Client{a}, Filter{Query: "riyADH"}.Apply(list))
	assert.Equal(t, []model.Client{b}, Filter{Query: "summer"}.Apply(list))
	assert.Equal(t, []model.Client{c}, Filter{Query: c.ID.String()[:8]}.Apply(list))
	assert.Equal(t, list, Filter{Query: "  "}.Apply(list))
	assert.Empty(t, Filter{Query: "nobody"}.Apply(list))
}

func TestFilter_UserMatchesCreatorOrAssignee(t *testing.T) {
	user := uuid.New()

	created := client("A")
	created.UserID = user
	assigned := client("B")
	assigned.AssignedTo = uuid.NullUUID{UUID: user, Valid: true}
	other := client("C")

	f := Filter{UserID: uuid.NullUUID{UUID: user, Valid: true}}
	got := f.Apply([]model.Client{created, other, assigned})
	assert.Equal(t, []model.Client{created, assigned}, got)
}

func TestFilter_Idempotent(t *testing.T) {
	list := []model.Client{client("Omar"), client("Omari"), client("Sara"), client("omar2")}
	f := Filter{Query: "omar", FavoritesOnly: true, Favorites: FavoriteSet([]uuid.UUID{list[0].ID, list[3].ID})}

	once := f.Apply(list)
	twice := f.Apply(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, once, f.Apply(list))
	assert.Len(t, list, 4)
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_Boundary(t *testing.T) {
	list := ints(25)

	p1, err := Paginate(list, 1, 10)
	require.NoError(t, err)
	assert.Len(t, p1.Items, 10)
	assert.Equal(t, 3, p1.TotalPages)

	p3, err := Paginate(list, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, p3.Items)

	p4, err := Paginate(list, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, p4.Items)
	assert.Equal(t, 3, p4.TotalPages)
}

func TestPaginate_Coverage(t *testing.T) {
	for _, size := range PageSizes {
		for _, n := range []int{0, 1, size - 1, size, size + 1, 3*size + 7} {
			list := ints(n)

			first, err := Paginate(list, 1, size)
			require.NoError(t, err)

			var joined []int
			for page := 1; page <= first.TotalPages; page++ {
				p, err := Paginate(list, page, size)
				require.NoError(t, err)
				joined = append(joined, p.Items...)
			}

			if n == 0 {
				assert.Zero(t, first.TotalPages)
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, list, joined, "size=%d n=%d", size, n)
		}
	}
}

func TestPaginate_Invalid(t *testing.T) {
	_, err := Paginate(ints(5), 0, 10)
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = Paginate(ints(5), 1, 7)
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestView_FilterChangeResetsPage(t *testing.T) {
	v := NewView(10)
	require.NoError(t, v.SetPage(3))

	v.SetQuery("omar")
	assert.Equal(t, 1, v.Page())

	require.NoError(t, v.SetPage(2))
	v.SetQuery("omar")
	assert.Equal(t, 2, v.Page(), "same query keeps the page")

	v.SetFavoritesOnly(true)
	assert.Equal(t, 1, v.Page())

	require.NoError(t, v.SetPage(4))
	v.SetUser(uuid.NullUUID{UUID: uuid.New(), Valid: true})
	assert.Equal(t, 1, v.Page())

	require.NoError(t, v.SetPage(4))
	require.NoError(t, v.SetPageSize(25))
	assert.Equal(t, 1, v.Page())
	assert.ErrorIs(t, v.SetPageSize(30), ErrInvalidPageSize)
	assert.Equal(t, 25, v.PageSize())
}

func TestNewView_DefaultsPageSize(t *testing.T) {
	assert.Equal(t, 10, NewView(0).PageSize())
	assert.Equal(t, 50, NewView(50).PageSize())
}

func TestStore_ReplaceUpsertRemove(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Loaded())

	a, b, c := client("A"), client("B"), client("C")
	s.Replace([]model.Client{a, b, c})
	assert.True(t, s.Loaded())
	assert.Equal(t, 3, s.Len())

	b.Name = "B2"
	s.Upsert(b)
	got, ok := s.Get(b.ID)
	require.True(t, ok)
	assert.Equal(t, "B2", got.Name)

	d := client("D")
	s.Upsert(d)

	assert.Equal(t, 2, s.Remove(a.ID, c.ID, uuid.New()))
	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, b.ID, snap[0].ID)
	assert.Equal(t, d.ID, snap[1].ID)

	s.Reset()
	assert.Zero(t, s.Len())
	assert.False(t, s.Loaded())
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := NewStore()
	a := client("A")
	s.Replace([]model.Client{a})

	snap := s.Snapshot()
	snap[0].Name = "changed"

	got, _ := s.Get(a.ID)
	assert.Equal(t, "A", got.Name)
}
