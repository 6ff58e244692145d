package browse

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abbababa/careers/internal/indexing"
	"github.com/abbababa/careers/internal/model"
)

// Lines per posting in the list pane (title + subtitle + blank separator).
const rowItemHeight = 3

var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39"))

	inactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("39"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	selectedSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Width(16)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	stateStyles = map[CopyState]lipgloss.Style{
		StateCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StateStale:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		StateMissing: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

type browseModel struct {
	languages []string
	rows      []Row
	baseURL   string

	list   viewport.Model
	detail viewport.Model
	cursor int
	width  int
	height int
	ready  bool

	wantQuit bool
}

func newBrowseModel(rep *Report, category, baseURL string) browseModel {
	return browseModel{
		languages: rep.Languages,
		rows:      rep.InCategory(category),
		baseURL:   baseURL,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.wantQuit = true
			return m, tea.Quit
		case "esc", "b":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
			return m, nil
		case "down", "j":
			m.moveCursor(1)
			return m, nil
		case "o":
			if p := m.selected(); p != nil {
				openURL(indexing.PageURL(m.baseURL, model.SourceLanguage, p.Category, p.Slug()))
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(len(m.rows)-1, 0))
	m.recalcContent()
	m.ensureCursorVisible()
}

func (m *browseModel) ensureCursorVisible() {
	top := m.cursor * rowItemHeight
	bottom := top + rowItemHeight - 1
	if top < m.list.YOffset {
		m.list.SetYOffset(top)
	} else if bottom >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(bottom - m.list.Height + 1)
	}
}

func (m *browseModel) recalcLayout() {
	paneWidth := max((m.width-5)/2, 20)
	paneHeight := max(m.height-4, 5)

	if !m.ready {
		m.list = viewport.New(paneWidth, paneHeight)
		m.detail = viewport.New(paneWidth, paneHeight)
		m.ready = true
	} else {
		m.list.Width, m.list.Height = paneWidth, paneHeight
		m.detail.Width, m.detail.Height = paneWidth, paneHeight
	}
	m.recalcContent()
}

func (m *browseModel) recalcContent() {
	m.list.SetContent(renderRows(m.rows, m.cursor))
	m.detail.SetContent(m.renderDetail())
	m.detail.SetYOffset(0)
}

func (m browseModel) selected() *model.JobPosting {
	if len(m.rows) == 0 {
		return nil
	}
	return m.rows[m.cursor].Posting
}

func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	paneWidth := m.list.Width

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(paneWidth+2).Render(headerStyle.Render(fmt.Sprintf(" Postings (%d)", len(m.rows)))),
		" ",
		lipgloss.NewStyle().Width(paneWidth+2).Render(headerStyle.Render(" Translations")),
	)
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		activeBorderStyle.Width(paneWidth).Render(m.list.View()),
		" ",
		inactiveBorderStyle.Width(paneWidth).Render(m.detail.View()),
	)

	stale := outdated(m.rows)
	statusText := fmt.Sprintf(" %d postings | %d need translation    ↑/↓ cursor  o open  esc back  q quit",
		len(m.rows), stale)
	statusBar := statusBarStyle.Width(m.width).Render(statusText)

	return headerRow + "\n" + panes + "\n" + statusBar
}

func (m browseModel) renderDetail() string {
	if len(m.rows) == 0 {
		return "  (no postings)"
	}
	row := m.rows[m.cursor]
	p := row.Posting

	var b strings.Builder
	addField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	addField("Title", p.Title)
	addField("ID", p.ID)
	addField("Batch", p.BatchDate)
	addField("Status", string(p.Status))
	addField("Valid Through", p.ValidThrough)
	addField("Last Updated", p.LastUpdated)
	addField("Content Hash", p.ContentHash)

	if len(p.ReplacedBy) > 0 {
		b.WriteByte('\n')
		for _, r := range p.ReplacedBy {
			addField("Replaced By", r.Category+"/"+r.Slug)
		}
	}

	b.WriteByte('\n')
	b.WriteString(dividerStyle.Render("── Copies ──") + "\n\n")
	for i, lang := range m.languages {
		state := row.States[i]
		b.WriteString(labelStyle.Render(fmt.Sprintf("%s %s", lang, model.LanguageName(lang))))
		b.WriteString(stateStyles[state].Render(string(state)))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderRows(rows []Row, cursor int) string {
	if len(rows) == 0 {
		return "  (no postings)"
	}

	var b strings.Builder
	for i, row := range rows {
		p := row.Posting
		tSt, sSt, prefix := titleStyle, subtitleStyle, "  "
		if i == cursor {
			tSt, sSt, prefix = selectedTitleStyle, selectedSubtitleStyle, "> "
		}

		b.WriteString(prefix)
		b.WriteString(tSt.Render(p.Title))
		b.WriteByte('\n')

		current := 0
		for _, s := range row.States {
			if s == StateCurrent {
				current++
			}
		}
		status := string(p.Status)
		if status == "" {
			status = string(model.StatusActive)
		}
		b.WriteString(prefix)
		b.WriteString(sSt.Render(fmt.Sprintf("%s · %s · %s · %d/%d current",
			p.Category, p.BatchDate, status, current, len(row.States))))
		b.WriteByte('\n')

		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// openURL opens url in the default system browser, fire-and-forget.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}
	_ = cmd.Start()
}

// RunBrowser launches the split-pane status browser for one category (empty
// for all). It returns wantQuit=true if the user pressed q, false if they
// pressed esc to go back to the picker.
func RunBrowser(rep *Report, category, baseURL string) (bool, error) {
	p := tea.NewProgram(newBrowseModel(rep, category, baseURL), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return false, err
	}
	return result.(browseModel).wantQuit, nil
}
