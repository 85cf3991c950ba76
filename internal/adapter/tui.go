package adapter

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUIPicker implements Picker using Bubble Tea for interactive selection.
type TUIPicker struct {
	output io.Writer
}

// NewTUIPicker creates a new TUIPicker writing to output.
func NewTUIPicker(output io.Writer) *TUIPicker {
	return &TUIPicker{output: output}
}

// Pick runs the interactive list and returns the user's selection.
func (p *TUIPicker) Pick(title string, items []PickItem) (PickItem, bool, error) {
	if len(items) == 0 {
		return PickItem{}, false, nil
	}

	model := newPickerModel(title, items)

	program := tea.NewProgram(model, tea.WithOutput(p.output))

	final, err := program.Run()
	if err != nil {
		return PickItem{}, false, err
	}

	pm, ok := final.(pickerModel)
	if !ok || pm.chosen == nil {
		return PickItem{}, false, nil
	}

	return *pm.chosen, true, nil
}

// pickEntry adapts a PickItem to the bubbles list item interface.
type pickEntry struct {
	item PickItem
}

func (e pickEntry) FilterValue() string { return e.item.Label }

// pickDelegate renders one entry per line: label, then the dimmed detail.
type pickDelegate struct{}

func (d pickDelegate) Height() int  { return 1 }
func (d pickDelegate) Spacing() int { return 0 }
func (d pickDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d pickDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(pickEntry)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var labelStyle, detailStyle lipgloss.Style

	if isSelected {
		labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))
	} else {
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	line := labelStyle.Render(entry.item.Label)
	if entry.item.Detail != "" {
		line += "  " + detailStyle.Render(entry.item.Detail)
	}

	_, _ = fmt.Fprint(w, line)
}

// pickerModel is the Bubble Tea model driving the selection list.
type pickerModel struct {
	entryList list.Model
	chosen    *PickItem
	quitting  bool
}

func newPickerModel(title string, items []PickItem) pickerModel {
	entries := make([]list.Item, 0, len(items))
	for _, item := range items {
		entries = append(entries, pickEntry{item: item})
	}

	entryList := list.New(entries, pickDelegate{}, 80, 20)
	entryList.Title = title
	entryList.SetShowPagination(false)
	entryList.SetShowFilter(true)
	entryList.SetShowHelp(false)
	entryList.SetShowStatusBar(false)
	entryList.FilterInput.Placeholder = "Filter by name…"

	return pickerModel{entryList: entryList}
}

func (pm pickerModel) Init() tea.Cmd {
	return nil
}

func (pm pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.entryList.SetWidth(msg.Width)
		pm.entryList.SetHeight(msg.Height)

		return pm, nil

	case tea.KeyMsg:
		// Filtering owns the keyboard while active.
		if pm.entryList.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "esc", "q":
			pm.quitting = true
			return pm, tea.Quit

		case "enter":
			if entry, ok := pm.entryList.SelectedItem().(pickEntry); ok {
				item := entry.item
				pm.chosen = &item
			}

			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.entryList, cmd = pm.entryList.Update(msg)

	return pm, cmd
}

func (pm pickerModel) View() string {
	if pm.quitting || pm.chosen != nil {
		return ""
	}

	return pm.entryList.View()
}
