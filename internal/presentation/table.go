package presentation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/zjrosen/nacre/internal/ui/styles"
)

const (
	defaultTableWidth = 100
	cellGap           = 2
)

// TableRenderer renders enums as aligned terminal tables.
type TableRenderer struct {
	width       int
	showFormats bool
	headerStyle lipgloss.Style
	nameStyle   lipgloss.Style
	mutedStyle  lipgloss.Style
}

// TableOption configures a TableRenderer.
type TableOption func(*TableRenderer)

// WithWidth caps the rendered table width.
func WithWidth(width int) TableOption {
	return func(r *TableRenderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithoutFormats hides the formats column.
func WithoutFormats() TableOption {
	return func(r *TableRenderer) { r.showFormats = false }
}

// NewTableRenderer builds a renderer. Styling degrades to plain text on
// dumb terminals via termenv profile detection.
func NewTableRenderer(opts ...TableOption) *TableRenderer {
	r := &TableRenderer{
		width:       defaultTableWidth,
		showFormats: true,
		headerStyle: lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor),
		nameStyle:   lipgloss.NewStyle().Foreground(styles.AccentColor),
		mutedStyle:  lipgloss.NewStyle().Foreground(styles.TextMutedColor),
	}
	if termenv.ColorProfile() == termenv.Ascii {
		r.headerStyle = lipgloss.NewStyle().Bold(true)
		r.nameStyle = lipgloss.NewStyle()
		r.mutedStyle = lipgloss.NewStyle()
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderEnums renders the enum overview table: one row per enum with its
// member names and count.
func (r *TableRenderer) RenderEnums(dtos []EnumDTO) string {
	rows := make([][]string, 0, len(dtos))
	for _, dto := range dtos {
		names := make([]string, len(dto.Values))
		for i, v := range dto.Values {
			names[i] = v.Value
		}
		rows = append(rows, []string{dto.Name, strings.Join(names, ", "), countLabel(len(dto.Values))})
	}
	return r.render([]string{"NAME", "VALUES", "COUNT"}, rows)
}

// RenderEnum renders the value detail table for one enum.
func (r *TableRenderer) RenderEnum(dto EnumDTO) string {
	headers := []string{"VALUE"}
	if r.showFormats {
		headers = append(headers, "FORMATS")
	}
	hasLabels := false
	for _, v := range dto.Values {
		if v.Label != "" {
			hasLabels = true
			break
		}
	}
	if hasLabels {
		headers = append(headers, "LABEL")
	}

	rows := make([][]string, 0, len(dto.Values))
	for _, v := range dto.Values {
		row := []string{v.Value}
		if r.showFormats {
			row = append(row, formatPairs(v.Formats))
		}
		if hasLabels {
			row = append(row, v.Label)
		}
		rows = append(rows, row)
	}

	title := r.nameStyle.Render(dto.Name)
	return title + "\n" + r.render(headers, rows)
}

// render lays out a header row plus body rows with measured columns. Cells
// are clipped to the column budget with an ellipsis.
func (r *TableRenderer) render(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Shrink the widest column until the row fits the overall budget.
	for total(widths) > r.width {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 8 {
			break
		}
		widths[widest]--
	}

	var b strings.Builder
	b.WriteString(r.renderRow(headers, widths, r.headerStyle))
	for _, row := range rows {
		b.WriteString(r.renderRow(row, widths, lipgloss.NewStyle()))
	}
	return b.String()
}

func (r *TableRenderer) renderRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		clipped := truncate.StringWithTail(cell, uint(widths[i]), "…")
		parts[i] = style.Render(runewidth.FillRight(clipped, widths[i]))
	}
	return strings.TrimRight(strings.Join(parts, strings.Repeat(" ", cellGap)), " ") + "\n"
}

func formatPairs(formats map[string]string) string {
	if len(formats) == 0 {
		return ""
	}
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = name + "=" + formats[name]
	}
	return strings.Join(pairs, " ")
}

func countLabel(n int) string {
	return runewidth.FillLeft(strconv.Itoa(n), 2)
}

func total(widths []int) int {
	sum := 0
	for _, w := range widths {
		sum += w
	}
	return sum + cellGap*(len(widths)-1)
}
