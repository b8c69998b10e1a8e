package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortColumn(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SortColumn
		wantErr bool
	}{
		{name: "seed text", input: "seed_text", want: SortBySeedText},
		{name: "created at", input: "created_at", want: SortByCreatedAt},
		{name: "empty defaults to created at", input: "", want: SortByCreatedAt},
		{name: "unknown column", input: "password", wantErr: true},
		{name: "injection attempt", input: "created_at; DROP TABLE passwords", wantErr: true},
		{name: "case mismatch", input: "SEED_TEXT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortColumn(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSortColumn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultListQuery(t *testing.T) {
	q := DefaultListQuery()
	assert.Equal(t, SortByCreatedAt, q.OrderBy)
	assert.False(t, q.Ascending)
	assert.Empty(t, q.Search)
}

func TestCharacterPool(t *testing.T) {
	assert.Len(t, CharacterPool, 78)
	assert.Equal(t, "a", CharacterPool[:1])
	assert.Equal(t, "~", CharacterPool[len(CharacterPool)-1:])
}

func TestParseListQuery(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		order   string
		search  string
		want    ListQuery
		wantErr error
	}{
		{name: "defaults", want: ListQuery{OrderBy: SortByCreatedAt}},
		{name: "seed ascending", sort: "seed_text", order: "asc", want: ListQuery{OrderBy: SortBySeedText, Ascending: true}},
		{name: "created descending with search", sort: "created_at", order: "desc", search: "abc",
			want: ListQuery{OrderBy: SortByCreatedAt, Search: "abc"}},
		{name: "bad column", sort: "password", wantErr: ErrInvalidSortColumn},
		{name: "bad order", sort: "seed_text", order: "sideways", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseListQuery(tt.sort, tt.order, tt.search)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListQuery_Order(t *testing.T) {
	assert.Equal(t, "asc", ListQuery{Ascending: true}.Order())
	assert.Equal(t, "desc", ListQuery{}.Order())
}
