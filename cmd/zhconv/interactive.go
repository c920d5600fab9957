package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zhconv/variant"
)

// variantItem adapts a variant.Variant to bubbles/list's list.Item interface.
type variantItem struct {
	v variant.Variant
}

func (i variantItem) Title() string       { return i.v.String() }
func (i variantItem) Description() string { return i.v.DisplayName() }
func (i variantItem) FilterValue() string { return i.v.String() }

// pickerModel is a small bubbletea picker for the target variant, with 'w' toggling wikitext
// mode, used when VARIANT is omitted and --interactive is set.
type pickerModel struct {
	list     list.Model
	wikitext bool
	chosen   bool
	quit     bool
}

func newPickerModel() pickerModel {
	items := make([]list.Item, 0, len(variant.All))
	for _, v := range variant.All {
		items = append(items, variantItem{v: v})
	}
	l := list.New(items, list.NewDefaultDelegate(), 48, 16)
	l.Title = "zhconv: select a target variant"
	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quit = true
			return m, tea.Quit
		case "w":
			m.wikitext = !m.wikitext
			return m, nil
		case "enter":
			m.chosen = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quit {
		return ""
	}
	mode := "basic"
	if m.wikitext {
		mode = "wikitext"
	}
	footer := lipgloss.NewStyle().Faint(true).
		Render(fmt.Sprintf("\nenter: choose  w: toggle mode (%s)  q: cancel", mode))
	return m.list.View() + footer
}

// pickVariantInteractively runs the picker to completion and returns the chosen variant's tag
// and whether wikitext mode was toggled on. An error is returned if the user cancels.
func pickVariantInteractively() (string, bool, error) {
	final, err := tea.NewProgram(newPickerModel()).Run()
	if err != nil {
		return "", false, err
	}
	m := final.(pickerModel)
	if !m.chosen {
		return "", false, fmt.Errorf("cancelled")
	}
	selected, ok := m.list.SelectedItem().(variantItem)
	if !ok {
		return "", false, fmt.Errorf("no variant selected")
	}
	return selected.v.String(), m.wikitext, nil
}
