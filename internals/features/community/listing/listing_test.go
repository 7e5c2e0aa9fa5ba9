package listing

import (
	"testing"
	"time"

	postModel "alumnihub_backend/internals/features/community/posts/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func item(title string, occursAt *time.Time, src SourceType) Item {
	return Item{
		SourceType: src,
		SourceID:   uuid.New(),
		Title:      title,
		OccursAt:   occursAt,
	}
}

func titles(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestCombineAscendingMergesBothSources(t *testing.T) {
	structured := []Item{
		item("D1", ts("2026-01-10"), SourceStructured),
		item("D4", ts("2026-03-01"), SourceStructured),
	}
	posts := []Item{
		item("D3", ts("2026-02-05"), SourcePost),
	}

	res := Combine(structured, posts, OrderAsc, 1, 10)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, []string{"D1", "D3", "D4"}, titles(res.Items))
	assert.False(t, res.Degraded)
}

func TestCombineDescendingReversesOrder(t *testing.T) {
	structured := []Item{
		item("old", ts("2025-01-01"), SourceStructured),
		item("new", ts("2026-06-01"), SourceStructured),
	}
	posts := []Item{
		item("mid", ts("2025-12-01"), SourcePost),
	}

	res := Combine(structured, posts, OrderDesc, 1, 10)
	assert.Equal(t, []string{"new", "mid", "old"}, titles(res.Items))
}

func TestCombineNilDateSortsAsEpochZero(t *testing.T) {
	structured := []Item{
		item("dated", ts("2026-01-01"), SourceStructured),
		item("undated", nil, SourceStructured),
	}

	asc := Combine(structured, nil, OrderAsc, 1, 10)
	require.Len(t, asc.Items, 2)
	assert.Equal(t, "undated", asc.Items[0].Title)

	desc := Combine(structured, nil, OrderDesc, 1, 10)
	require.Len(t, desc.Items, 2)
	assert.Equal(t, "undated", desc.Items[1].Title)
}

func TestCombineStableOnEqualTimestamps(t *testing.T) {
	when := ts("2026-05-01")
	structured := []Item{
		item("s1", when, SourceStructured),
		item("s2", when, SourceStructured),
	}
	posts := []Item{
		item("p1", when, SourcePost),
	}

	// Equal keys keep concatenation order: structured first, then posts.
	res := Combine(structured, posts, OrderAsc, 1, 10)
	assert.Equal(t, []string{"s1", "s2", "p1"}, titles(res.Items))

	again := Combine(structured, posts, OrderAsc, 1, 10)
	assert.Equal(t, titles(res.Items), titles(again.Items))
}

func TestCombinePagination(t *testing.T) {
	var structured []Item
	for i := 0; i < 7; i++ {
		d := time.Date(2026, 1, i+1, 0, 0, 0, 0, time.UTC)
		structured = append(structured, item("e", &d, SourceStructured))
	}

	p1 := Combine(structured, nil, OrderAsc, 1, 3)
	assert.Equal(t, 7, p1.Total)
	assert.Equal(t, 3, p1.TotalPages)
	assert.Len(t, p1.Items, 3)

	p3 := Combine(structured, nil, OrderAsc, 3, 3)
	assert.Len(t, p3.Items, 1)

	// Totals are computed before slicing: a page past the end is empty but
	// still reports the same totals.
	p9 := Combine(structured, nil, OrderAsc, 9, 3)
	assert.Empty(t, p9.Items)
	assert.Equal(t, 7, p9.Total)
	assert.Equal(t, 3, p9.TotalPages)
}

func TestCombinePaginationCoversEveryItemExactlyOnce(t *testing.T) {
	var structured, posts []Item
	for i := 0; i < 8; i++ {
		d := time.Date(2026, 2, i+1, 0, 0, 0, 0, time.UTC)
		structured = append(structured, item("s", &d, SourceStructured))
	}
	for i := 0; i < 5; i++ {
		d := time.Date(2026, 3, i+1, 0, 0, 0, 0, time.UTC)
		posts = append(posts, item("p", &d, SourcePost))
	}

	seen := map[uuid.UUID]int{}
	total := 0
	for page := 1; page <= 4; page++ {
		res := Combine(structured, posts, OrderDesc, page, 4)
		total += len(res.Items)
		for _, it := range res.Items {
			seen[it.SourceID]++
		}
	}

	assert.Equal(t, 13, total)
	for id, n := range seen {
		assert.Equalf(t, 1, n, "item %s appeared %d times", id, n)
	}
}

func TestCombineEmptySources(t *testing.T) {
	res := Combine(nil, nil, OrderAsc, 1, 10)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 0, res.TotalPages)
}

func TestCombineDefaultsBadPaging(t *testing.T) {
	structured := []Item{item("only", ts("2026-01-01"), SourceStructured)}

	res := Combine(structured, nil, OrderAsc, 0, 0)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.TotalPages)
}

func TestNormalizePostDefaults(t *testing.T) {
	it := NormalizePost(postModel.PostModel{
		PostID:       uuid.New(),
		PostSchoolID: uuid.New(),
		PostAuthorID: uuid.New(),
		PostTitle:    "Reunion planning",
		PostContent:  "Who is in?",
		PostType:     postModel.PostTypeEvent,
	})

	assert.Equal(t, SourcePost, it.SourceType)
	assert.Equal(t, "general", it.TypeTag)
	assert.Equal(t, "active", it.Status)
	assert.Equal(t, 0, it.InterestCount)
	assert.Nil(t, it.ViewerResponse)
	assert.False(t, it.RegistrationRequired)
}

func TestIdentityIsSourceTypePlusID(t *testing.T) {
	// The two backing tables can hand out the same uuid; the pair must
	// still tell them apart.
	id := uuid.New()
	a := Item{SourceType: SourceStructured, SourceID: id}
	b := Item{SourceType: SourcePost, SourceID: id}

	assert.Equal(t, a.SourceID, b.SourceID)
	assert.NotEqual(t, a.SourceType, b.SourceType)
}
