package browse

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Padding(1, 0, 1, 2)

	pickerItemStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				Bold(true).
				Padding(0, 0, 0, 2)

	pickerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 0, 0, 2)
)

// pickerQuit is the chosen value when the user leaves without a choice.
const pickerQuit = -2

// pickerEntry is one selectable category. The first entry is "all".
type pickerEntry struct {
	category string
	postings int
	stale    int
}

type pickerModel struct {
	entries []pickerEntry
	cursor  int
	chosen  int // -1 = no choice yet
}

func newPickerModel(rep *Report) pickerModel {
	entries := []pickerEntry{{postings: len(rep.Rows), stale: outdated(rep.Rows)}}
	for _, cat := range rep.Categories() {
		rows := rep.InCategory(cat)
		entries = append(entries, pickerEntry{category: cat, postings: len(rows), stale: outdated(rows)})
	}
	return pickerModel{entries: entries, chosen: -1}
}

// outdated counts rows with at least one copy that is not current.
func outdated(rows []Row) int {
	n := 0
	for _, row := range rows {
		for _, s := range row.States {
			if s != StateCurrent {
				n++
				break
			}
		}
	}
	return n
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.chosen = pickerQuit
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render("Careers: select a category")
	s += "\n"

	for i, e := range m.entries {
		name := e.category
		if name == "" {
			name = "all categories"
		}
		label := fmt.Sprintf("%s (%d postings, %d need translation)", name, e.postings, e.stale)
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+label) + "\n"
		} else {
			s += pickerItemStyle.Render(label) + "\n"
		}
	}

	s += pickerHintStyle.Render("↑/↓/j/k navigate  enter select  q quit")
	return s
}

// selection returns the chosen category and whether one was chosen. The
// empty category means all of them.
func (m pickerModel) selection() (string, bool) {
	if m.chosen < 0 {
		return "", false
	}
	return m.entries[m.chosen].category, true
}

// RunCategoryPicker shows an interactive category selector. ok is false when
// the user quit.
func RunCategoryPicker(rep *Report) (category string, ok bool, err error) {
	p := tea.NewProgram(newPickerModel(rep))
	result, err := p.Run()
	if err != nil {
		return "", false, err
	}
	category, ok = result.(pickerModel).selection()
	return category, ok, nil
}
