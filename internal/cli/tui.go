package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/radii/pkg/editor"
	"github.com/matzehuels/radii/pkg/radius"
)

// TUI styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	ruleBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

const maxInputLen = 4

// =============================================================================
// EditorModel - Interactive radius editor
// =============================================================================

// EditorModel is the bubbletea model behind `radii edit`. Every key that
// changes the state goes through the editor, so each change is saved as it
// happens.
type EditorModel struct {
	ctx     context.Context
	ed      *editor.Editor
	changes <-chan struct{}
	copy    func(string) error

	Corner radius.Corner // focused corner
	Axis   radius.Axis   // focused axis

	editing bool
	input   string

	status    string
	statusErr bool
	preset    int // index of the preset "p" applies next
}

// NewEditorModel creates an editor model. changes, when non-nil, signals
// that the saved state was modified by someone else.
func NewEditorModel(ctx context.Context, ed *editor.Editor, changes <-chan struct{}) EditorModel {
	return EditorModel{
		ctx:     ctx,
		ed:      ed,
		changes: changes,
		copy:    copyToClipboard,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		before := m.ed.State()
		m.ed.Reload(m.ctx)
		if m.ed.State() != before {
			m.setStatus("Reloaded from disk", nil)
		}
		m.clampFocus()
		return m, waitForChange(m.changes)
	case tea.KeyMsg:
		if m.editing {
			return m.updateInput(msg), nil
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m EditorModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.moveFocus(-1)
	case "right", "l":
		m.moveFocus(1)
	case "tab", "shift+tab":
		m.Axis = 1 - m.Axis
	case "up", "k":
		m.step(1)
	case "down", "j":
		m.step(-1)
	case "pgup", "K":
		m.step(10)
	case "pgdown", "J":
		m.step(-10)
	case "enter", "e":
		m.editing = true
		m.input = ""
	case "u":
		m.setStatus("", m.ed.ToggleUnit(ctx, m.Corner, m.Axis))
	case " ":
		m.setStatus("", m.ed.ToggleLink(ctx, m.Corner))
	case "1", "2", "3", "4":
		mode, err := radius.ParseMode(key)
		if err == nil {
			err = m.ed.SetMode(ctx, mode)
		}
		m.setStatus("", err)
		m.clampFocus()
	case "m":
		st := m.ed.State()
		m.setStatus("", m.ed.SetMode(ctx, st.Mode.Normalize()%radius.ModeIndependent+1))
		m.clampFocus()
	case "s":
		st := m.ed.State()
		m.setStatus("", m.ed.SetShape(ctx, 1-st.Shape))
	case "p":
		p := radius.Presets[m.preset%len(radius.Presets)]
		m.preset++
		m.setStatus("Applied "+p.Name, m.ed.ApplyPreset(ctx, p.Name))
		m.clampFocus()
	case "r":
		m.ed.Reset(ctx)
		m.setStatus("Reset", nil)
		m.clampFocus()
	case "c", "y":
		css := m.ed.Snapshot().CSS
		m.setStatus("Copied "+css, m.copy(css))
	}
	return m, nil
}

// updateInput handles keys while a value is being typed.
func (m EditorModel) updateInput(msg tea.KeyMsg) EditorModel {
	switch key := msg.String(); key {
	case "esc", "ctrl+c":
		m.editing = false
	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
	case "enter":
		m.editing = false
		if m.input != "" {
			m.setStatus("", m.ed.SetValue(m.ctx, m.Corner, m.Axis, m.input))
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' && len(m.input) < maxInputLen {
			m.input += key
		}
	}
	return m
}

// step nudges the focused value by delta, stopping at zero.
func (m *EditorModel) step(delta int) {
	st := m.ed.State()
	next := st.DisplayValue(m.Corner, m.Axis) + delta
	if next < 0 {
		next = 0
	}
	m.setStatus("", m.ed.SetValue(m.ctx, m.Corner, m.Axis, strconv.Itoa(next)))
}

// moveFocus cycles through the corners the current mode shows.
func (m *EditorModel) moveFocus(delta int) {
	st := m.ed.State()
	visible := st.Mode.VisibleCorners()
	i := 0
	for j, c := range visible {
		if c == m.Corner {
			i = j
		}
	}
	m.Corner = visible[(i+delta+len(visible))%len(visible)]
}

// clampFocus moves focus back onto a visible corner after a mode change.
func (m *EditorModel) clampFocus() {
	st := m.ed.State()
	if mode := st.Mode.Normalize(); !mode.Visible(m.Corner) {
		visible := mode.VisibleCorners()
		m.Corner = visible[len(visible)-1]
	}
}

func (m *EditorModel) setStatus(msg string, err error) {
	if err != nil {
		m.status, m.statusErr = err.Error(), true
		return
	}
	m.status, m.statusErr = msg, false
}

func (m EditorModel) View() string {
	snap := m.ed.Snapshot()
	st := snap.State
	mode := st.Mode.Normalize()
	w, h := st.Size()

	var b strings.Builder
	b.WriteString(StyleTitle.Render("radii"))
	b.WriteString(listDimStyle.Render("  border-radius editor"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s · %s %dx%d", mode, st.Shape, w, h)))
	b.WriteString("\n\n")

	visible := mode.VisibleCorners()
	rows := make([][]string, 0, len(visible))
	for _, c := range visible {
		cursor := "  "
		if c == m.Corner {
			cursor = "▸ "
		}
		link := ""
		if st.Corners[c].Linked {
			link = iconLinked
		}
		rows = append(rows, []string{
			cursor,
			radius.CornerLabel(c, mode),
			valueOf(&st, c, radius.Horizontal),
			valueOf(&st, c, radius.Vertical),
			link,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Corner", "Horizontal", "Vertical", "Link").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(visible) || visible[row] != m.Corner {
				return listNormalStyle
			}
			if col == 2+int(m.Axis) {
				return listSelectedStyle.Underline(true)
			}
			return listSelectedStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	if m.editing {
		b.WriteString(fmt.Sprintf("%s %s %s: %s\n",
			StyleHighlight.Render("Set"), m.Corner, m.Axis,
			StyleValue.Render(m.input+"_")+listDimStyle.Render(" "+st.ActiveUnit(m.Corner, m.Axis).Suffix())))
	} else {
		b.WriteString("\n")
	}

	b.WriteString(ruleBoxStyle.Render(snap.Rule))
	b.WriteString("\n")

	switch {
	case m.statusErr:
		b.WriteString(styleIconError.Render(iconError) + " " + m.status)
	case m.status != "":
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + m.status)
	}
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render("←/→ corner  tab axis  ↑/↓ ±1  pgup/pgdn ±10  ⏎ type value"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("u unit  space link  1-4/m mode  s shape  p preset  r reset  c copy  q quit"))

	return b.String()
}
