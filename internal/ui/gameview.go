package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lowfold/stroll/internal/engine"
	"github.com/lowfold/stroll/internal/world"
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
	obstacleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("172"))
	walkerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)

	facingRunes = map[world.Direction]rune{
		world.North: '▲',
		world.East:  '▶',
		world.South: '▼',
		world.West:  '◀',
	}
)

const statusPanelWidth = 28

// QuitGameMsg tells the controller to tear the engine down and exit.
type QuitGameMsg struct{}

// GameModel renders engine frames and forwards keys to the engine.
type GameModel struct {
	eng        *engine.Engine
	walkerName string
	mapName    string

	frame    engine.Frame
	hasFrame bool

	ScreenWidth  int
	ScreenHeight int
}

func NewGameModel(eng *engine.Engine, walkerName, mapName string, screenWidth, screenHeight int) GameModel {
	return GameModel{
		eng:          eng,
		walkerName:   walkerName,
		mapName:      mapName,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m GameModel) Init() tea.Cmd {
	return m.listenForFrames()
}

func (m GameModel) listenForFrames() tea.Cmd {
	return func() tea.Msg {
		return <-m.eng.Updates
	}
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "w", "up":
			m.eng.Input <- engine.MoveCmd{Dir: world.North}
		case "s", "down":
			m.eng.Input <- engine.MoveCmd{Dir: world.South}
		case "a", "left":
			m.eng.Input <- engine.MoveCmd{Dir: world.West}
		case "d", "right":
			m.eng.Input <- engine.MoveCmd{Dir: world.East}
		case "v":
			m.eng.Input <- engine.DumpCmd{Kind: engine.DumpVisible}
		case "p":
			m.eng.Input <- engine.DumpCmd{Kind: engine.DumpCoords}
		case "m":
			m.eng.Input <- engine.DumpCmd{Kind: engine.DumpMap}
		case "q":
			return m, func() tea.Msg { return QuitGameMsg{} }
		}
		return m, nil

	case engine.FrameMsg:
		m.frame = msg.Frame
		m.hasFrame = true
		return m, m.listenForFrames()
	}

	return m, nil
}

func (m GameModel) View() string {
	if !m.hasFrame {
		return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
			lipgloss.Center, lipgloss.Center, "Waiting for the world...")
	}

	mapBox := mapViewStyle.Render(m.renderMap())
	statusBox := statusPanelStyle.
		Width(statusPanelWidth).
		Height(len(m.frame.Cells)).
		Render(m.renderStatusPanel())

	return lipgloss.JoinHorizontal(lipgloss.Top, mapBox, statusBox)
}

func (m GameModel) renderMap() string {
	var sb strings.Builder

	for y, row := range m.frame.Cells {
		for x, cell := range row {
			if y == m.frame.EntityRow && x == m.frame.EntityCol {
				glyph, ok := facingRunes[m.frame.Facing]
				if !ok {
					glyph = m.frame.Avatar
				}
				sb.WriteString(walkerStyle.Render(string(glyph)))
				continue
			}
			if cell.Obstacle {
				sb.WriteString(obstacleStyle.Render(string(cell.Glyph)))
			} else {
				sb.WriteString(normalStyle.Render(string(cell.Glyph)))
			}
		}
		if y < len(m.frame.Cells)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m GameModel) renderStatusPanel() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Walker ---") + "\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", m.walkerName))
	sb.WriteString(fmt.Sprintf("Map: %s\n", m.mapName))
	sb.WriteString(fmt.Sprintf("World: (%d, %d)\n", m.frame.WorldRow, m.frame.WorldCol))
	sb.WriteString(fmt.Sprintf("Screen: (%d, %d)\n", m.frame.EntityRow, m.frame.EntityCol))
	sb.WriteString(fmt.Sprintf("View offset: (%d, %d)\n", m.frame.OffsetRow, m.frame.OffsetCol))
	sb.WriteString(fmt.Sprintf("Facing: %s %c\n", m.frame.Facing, facingRunes[m.frame.Facing]))
	sb.WriteString(fmt.Sprintf("Tick: %d\n", m.frame.Tick))

	sb.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	sb.WriteString("WASD / Arrows: Move\n")
	sb.WriteString("v/p/m: Debug dumps\n")
	sb.WriteString("Q: Quit\n")

	sb.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render("stroll v0.1"))

	return sb.String()
}
