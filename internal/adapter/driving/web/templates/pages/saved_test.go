package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vm "github.com/ericfisherdev/seedpass/internal/adapter/driving/web/viewmodel"
)

func TestSortHeader(t *testing.T) {
	tests := []struct {
		name   string
		header vm.SortHeaderViewModel
		want   string
	}{
		{
			name:   "active with arrow",
			header: vm.SortHeaderViewModel{Label: "Date/Time", Href: "/saved?order=asc&sort=created_at", Active: true, Arrow: "▼"},
			want:   `<th class="active"><a href="/saved?order=asc&amp;sort=created_at">Date/Time ▼</a></th>`,
		},
		{
			name:   "inactive",
			header: vm.SortHeaderViewModel{Label: "Seed Text", Href: "/saved?order=asc&sort=seed_text"},
			want:   `<th><a href="/saved?order=asc&amp;sort=seed_text">Seed Text </a></th>`,
		},
		{
			name:   "unsafe href is neutralized",
			header: vm.SortHeaderViewModel{Label: "x", Href: "javascript:alert(1)"},
			want:   `<th><a href="about:invalid#TemplFailedSanitizationURL">x </a></th>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, sortHeader(tt.header).Render(context.Background(), &sb))
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestSaved_EmptyAndRows(t *testing.T) {
	var empty strings.Builder
	require.NoError(t, Saved(vm.SavedPageViewModel{}).Render(context.Background(), &empty))
	assert.Contains(t, empty.String(), "No saved passwords")

	var full strings.Builder
	page := vm.SavedPageViewModel{Rows: []vm.PasswordRowViewModel{
		{SeedText: "a\"b", Password: "pw<1>", CreatedAt: "2024-05-17 09:30:00"},
	}}
	require.NoError(t, Saved(page).Render(context.Background(), &full))
	out := full.String()
	assert.NotContains(t, out, "No saved passwords")
	assert.Contains(t, out, "<td>a&#34;b</td>")
	assert.Contains(t, out, `data-copy="pw&lt;1&gt;"`)
}
