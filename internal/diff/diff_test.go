package diff

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/nacre/internal/enum"
)

func mustEnum(t *testing.T, name string, raws ...any) *enum.Enum {
	t.Helper()
	e, err := enum.New(name, raws...)
	require.NoError(t, err)
	return e
}

func TestCompare_Identical(t *testing.T) {
	a := []*enum.Enum{mustEnum(t, "statuses", "draft", "published")}
	b := []*enum.Enum{mustEnum(t, "statuses", "draft", "published")}

	require.True(t, Compare(a, b).Empty())
}

func TestCompare_AddedAndRemovedEnums(t *testing.T) {
	before := []*enum.Enum{mustEnum(t, "statuses", "draft")}
	after := []*enum.Enum{mustEnum(t, "roles", "admin")}

	report := Compare(before, after)
	require.Equal(t, []string{"roles"}, report.AddedEnums)
	require.Equal(t, []string{"statuses"}, report.RemovedEnums)
	require.Empty(t, report.Changed)
}

func TestCompare_ValueChanges(t *testing.T) {
	before := []*enum.Enum{mustEnum(t, "statuses", "draft", "in_review")}
	after := []*enum.Enum{mustEnum(t, "statuses", "draft", "published")}

	report := Compare(before, after)
	require.Len(t, report.Changed, 1)
	require.Equal(t, "statuses", report.Changed[0].Name)
	require.Equal(t, []string{"published"}, report.Changed[0].AddedValues)
	require.Equal(t, []string{"in_review"}, report.Changed[0].RemovedValues)
}

func TestCompare_FormatChanges(t *testing.T) {
	before := []*enum.Enum{mustEnum(t, "statuses",
		map[string]any{"value": "draft", "short": "D"})}
	after := []*enum.Enum{mustEnum(t, "statuses",
		map[string]any{"value": "draft", "short": "DR"})}

	report := Compare(before, after)
	require.Len(t, report.Changed, 1)
	require.Len(t, report.Changed[0].Changed, 1)

	change := report.Changed[0].Changed[0]
	require.Equal(t, "draft", change.Value)
	require.Equal(t, map[string]string{"short": "D"}, change.Before)
	require.Equal(t, map[string]string{"short": "DR"}, change.After)
}

func TestCompare_NameIndifference(t *testing.T) {
	before := []*enum.Enum{mustEnum(t, "Statuses", "draft")}
	after := []*enum.Enum{mustEnum(t, "statuses", "draft")}

	require.True(t, Compare(before, after).Empty())
}

func TestCompareSources(t *testing.T) {
	dir := t.TempDir()
	beforePath := filepath.Join(dir, "before.yml")
	afterPath := filepath.Join(dir, "after.yml")
	require.NoError(t, os.WriteFile(beforePath, []byte("statuses:\n  - draft\n"), 0644))
	require.NoError(t, os.WriteFile(afterPath, []byte("statuses:\n  - draft\n  - published\n"), 0644))

	report, err := CompareSources(context.Background(), beforePath, afterPath)
	require.NoError(t, err)
	require.Len(t, report.Changed, 1)
	require.Equal(t, []string{"published"}, report.Changed[0].AddedValues)
}

func TestCompareSources_MissingFile(t *testing.T) {
	dir := t.TempDir()
	goodPath := filepath.Join(dir, "ok.yml")
	require.NoError(t, os.WriteFile(goodPath, []byte("statuses:\n  - draft\n"), 0644))

	_, err := CompareSources(context.Background(), filepath.Join(dir, "missing.yml"), goodPath)
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	report := Report{
		AddedEnums:   []string{"roles"},
		RemovedEnums: []string{"kinds"},
		Changed: []EnumDiff{{
			Name:          "statuses",
			AddedValues:   []string{"published"},
			RemovedValues: []string{"in_review"},
			Changed: []ValueChange{{
				Value:  "draft",
				Before: map[string]string{"short": "D"},
				After:  map[string]string{"short": "DR"},
			}},
		}},
	}

	out := ansi.Strip(Render(report))
	require.Contains(t, out, "+ roles")
	require.Contains(t, out, "- kinds")
	require.Contains(t, out, "~ statuses")
	require.Contains(t, out, "+ published")
	require.Contains(t, out, "- in_review")
	require.Contains(t, out, "~ draft:")
}

func TestRender_Empty(t *testing.T) {
	out := ansi.Strip(Render(Report{}))
	require.Contains(t, out, "No differences")
}
