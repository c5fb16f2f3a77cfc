package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedColor = lipgloss.Color("78")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

// SetupModel collects the walker name and the map to load.
type SetupModel struct {
	nameInput  textinput.Model
	mapInput   textinput.Model
	focusIndex int // 0: name, 1: map, 2: submit
	width      int
	height     int
}

func NewSetupModel(w, h int) SetupModel {
	name := textinput.New()
	name.Placeholder = "Your walker's name"
	name.Focus()
	name.CharLimit = 20
	name.PromptStyle = focusedStyle
	name.TextStyle = focusedStyle

	mapName := textinput.New()
	mapName.Placeholder = "barren"
	mapName.CharLimit = 40

	return SetupModel{
		nameInput:  name,
		mapInput:   mapName,
		focusIndex: 0,
		width:      w,
		height:     h,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		if s == "ctrl+c" {
			return m, tea.Quit
		}

		if s == "enter" || s == "tab" || s == "shift+tab" {
			if s == "enter" && m.focusIndex == 2 {
				name := m.nameInput.Value()
				if name == "" {
					name = "John Cena"
				}
				mapName := m.mapInput.Value()
				if mapName == "" {
					mapName = m.mapInput.Placeholder
				}
				return m, func() tea.Msg {
					return SetupSubmitMsg{WalkerName: name, MapName: mapName}
				}
			}

			if s == "shift+tab" {
				m.focusIndex = (m.focusIndex + 2) % 3
			} else {
				m.focusIndex = (m.focusIndex + 1) % 3
			}

			m.nameInput.Blur()
			m.mapInput.Blur()
			switch m.focusIndex {
			case 0:
				m.nameInput.Focus()
			case 1:
				m.mapInput.Focus()
			}
			return m, nil
		}

		var cmd tea.Cmd
		switch m.focusIndex {
		case 0:
			m.nameInput, cmd = m.nameInput.Update(msg)
		case 1:
			m.mapInput, cmd = m.mapInput.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")

	mapPrompt := "Map to wander (from the maps directory)"
	if m.focusIndex == 1 {
		b.WriteString(center(focusedStyle.Render(mapPrompt)))
	} else {
		b.WriteString(center(blurredStyle.Render(mapPrompt)))
	}
	b.WriteString("\n")
	b.WriteString(center(m.mapInput.View()))
	b.WriteString("\n\n")

	submitText := "Submit"
	if m.focusIndex == 2 {
		b.WriteString(center(submitButtonStyle.Render(submitText)))
	} else {
		b.WriteString(center(blurredButtonStyle.Render(submitText)))
	}
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
