package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chanpick/internal/config"
	"chanpick/internal/domain"
	"chanpick/internal/ui/logic"
)

// widgetWidth is the drawn width of the picker, borders included
const widgetWidth = 44

// ViewState contains all the state needed for rendering. Rendering is a
// pure projection of this struct; it never feeds state back.
type ViewState struct {
	Width  int
	Height int

	TextInput string
	Spinner   string
	HelpView  string

	Entries        []logic.Entry
	Cursor         int
	ViewportOffset int
	ViewportHeight int

	DropdownOpen  bool
	Loading       bool
	Loaded        bool
	LoadErr       error
	NoResults     bool
	Authenticated bool

	Selection domain.Selection
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer using the configured style hooks
func NewRenderer(hooks config.StyleHooks) *Renderer {
	return &Renderer{styles: NewStyles(hooks)}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.titleLine(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Prompt.Render("Search: "))
	content.WriteString(state.TextInput)
	content.WriteString("\n")

	if state.DropdownOpen {
		content.WriteString(r.renderList(state))
		content.WriteString("\n")
	}

	if state.HelpView != "" {
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return content.String()
}

func (r *Renderer) titleLine(state ViewState) string {
	logo := r.styles.Title.Render("chanpick")

	right := ""
	if !state.Selection.IsEmpty() {
		right = r.styles.Selected.Render(
			fmt.Sprintf("%s ▸ #%s", state.Selection.Team.Name, state.Selection.Channel.Name))
	}
	if right == "" {
		return logo
	}

	pad := widgetWidth - lipgloss.Width(logo) - lipgloss.Width(right)
	if pad < 2 {
		pad = 2
	}
	return logo + strings.Repeat(" ", pad) + right
}

// renderList draws the dropdown body: the visible window of entries, or a
// single status line while there is nothing to list.
func (r *Renderer) renderList(state ViewState) string {
	innerWidth := widgetWidth
	if r.styles.HasBorder() {
		innerWidth -= 2
	}

	var rows []string
	switch {
	case state.Loading:
		rows = append(rows, state.Spinner+" "+r.styles.Dim.Render("Loading teams…"))
	case state.LoadErr != nil && len(state.Entries) == 0:
		rows = append(rows, r.styles.Error.Render("Could not load teams"))
		rows = append(rows, r.styles.Dim.Render("press ctrl+r to retry"))
	case state.LoadErr != nil:
		// A failed reload keeps the last good roster on screen
		rows = append(rows, r.styles.Error.Render("Could not load teams"))
		rows = append(rows, r.entryRows(state, innerWidth)...)
	case state.NoResults:
		rows = append(rows, r.styles.NoResults.Render("No matching channels"))
	case len(state.Entries) == 0:
		rows = append(rows, r.styles.Dim.Render("No teams"))
	default:
		rows = r.entryRows(state, innerWidth)
	}

	for i, row := range rows {
		if lipgloss.Width(row) < innerWidth {
			rows[i] = row + strings.Repeat(" ", innerWidth-lipgloss.Width(row))
		}
	}

	return r.styles.List.Render(strings.Join(rows, "\n"))
}

func (r *Renderer) entryRows(state ViewState, innerWidth int) []string {
	start := state.ViewportOffset
	if start < 0 {
		start = 0
	}
	end := start + state.ViewportHeight
	if end > len(state.Entries) {
		end = len(state.Entries)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, r.entryRow(state, i, innerWidth))
	}
	return rows
}

func (r *Renderer) entryRow(state ViewState, index, innerWidth int) string {
	e := state.Entries[index]
	onCursor := index == state.Cursor

	var plain string
	switch e.Kind {
	case logic.EntryTeamHeader:
		mark := "▸"
		if e.Expanded {
			mark = "▾"
		}
		plain = fmt.Sprintf("%s %s", mark, e.Team.Name)
	default:
		plain = fmt.Sprintf("   #%s", e.Channel.Name)
	}

	if onCursor {
		// The cursor row gets a uniform background; span styling would
		// break the run.
		line := "> " + plain
		if len(line) < innerWidth {
			line += strings.Repeat(" ", innerWidth-len(line))
		}
		return r.styles.CursorMark.Render("> ") + r.styles.CursorRow.Render(line[2:])
	}

	switch e.Kind {
	case logic.EntryTeamHeader:
		return "  " + r.styles.Team.Render(plain)
	default:
		name := e.Channel.Name
		if e.Matched {
			return "     #" + r.highlight(name, e.Span)
		}
		selected := !state.Selection.IsEmpty() &&
			state.Selection.Team.ID == e.Team.ID &&
			state.Selection.Channel.ID == e.Channel.ID
		if selected {
			return "     #" + r.styles.Selected.Render(name)
		}
		return "     #" + r.styles.Channel.Render(name)
	}
}

// highlight splits a channel name around the matched span so the match
// renders emphasized between its prefix and suffix.
func (r *Renderer) highlight(name string, span logic.MatchSpan) string {
	start, end := span.Start, span.End()
	if start < 0 {
		start = 0
	}
	if start > len(name) {
		start = len(name)
	}
	if end < start {
		end = start
	}
	if end > len(name) {
		end = len(name)
	}
	return r.styles.Channel.Render(name[:start]) +
		r.styles.Match.Render(name[start:end]) +
		r.styles.Channel.Render(name[end:])
}

// listTop is the screen row where dropdown content begins: title row,
// search row, then the border's top edge if one is drawn.
func (r *Renderer) listTop() int {
	top := 2
	if r.styles.HasBorder() {
		top++
	}
	return top
}

// EntryIndexAt maps a terminal cell to an index into the visible list.
// Returns logic.NoCursor when the cell is not on an entry row.
func (r *Renderer) EntryIndexAt(state ViewState, x, y int) int {
	if !state.DropdownOpen || state.Loading {
		return logic.NoCursor
	}
	if state.LoadErr != nil && len(state.Entries) == 0 {
		return logic.NoCursor
	}
	if x < 0 || x >= widgetWidth {
		return logic.NoCursor
	}
	rel := y - r.listTop()
	if state.LoadErr != nil {
		// the failure notice occupies the first list row
		rel--
	}
	if rel < 0 || rel >= state.ViewportHeight {
		return logic.NoCursor
	}
	index := state.ViewportOffset + rel
	if index < 0 || index >= len(state.Entries) {
		return logic.NoCursor
	}
	return index
}

// InComponent reports whether a terminal cell lies inside the rendered
// picker, used for outside-click detection.
func (r *Renderer) InComponent(state ViewState, x, y int) bool {
	if x < 0 || x >= widgetWidth || y < 0 {
		return false
	}
	bottom := 2 // title + search rows
	if state.DropdownOpen {
		rows := state.ViewportHeight
		if rows < 1 {
			rows = 1
		}
		bottom += rows
		if r.styles.HasBorder() {
			bottom += 2
		}
	}
	return y < bottom
}
