package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel holds the state for the title screen.
type IntroModel struct {
	selected int // 0: Start Walking, 1: Quit
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: 0, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			m.selected = 1 - m.selected
		case "enter":
			if m.selected == 0 {
				return m, func() tea.Msg { return IntroSubmitMsg{} }
			}
			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

var strollAscii = `
 ███████╗████████╗██████╗  ██████╗ ██╗     ██╗
 ██╔════╝╚══██╔══╝██╔══██╗██╔═══██╗██║     ██║
 ███████╗   ██║   ██████╔╝██║   ██║██║     ██║
 ╚════██║   ██║   ██╔══██╗██║   ██║██║     ██║
 ███████║   ██║   ██║  ██║╚██████╔╝███████╗███████╗
 ╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚══════╝

        wander a character world, one cell at a time
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("78")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(strollAscii))
	sb.WriteString("\n")

	start := introButtonStyle.Render("Start Walking")
	quit := introButtonStyle.Render("Quit")

	if m.selected == 0 {
		start = introSelectedButtonStyle.Render("Start Walking")
	} else {
		quit = introSelectedButtonStyle.Render("Quit")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, start, quit)
	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
