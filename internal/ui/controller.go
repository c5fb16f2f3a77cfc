package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lowfold/stroll/internal/engine"
	"github.com/lowfold/stroll/internal/world"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg struct{}
type SetupSubmitMsg struct {
	WalkerName string
	MapName    string
}

// ControllerModel multiplexes the intro, setup, and game screens and owns
// the engine lifecycle for one session.
type ControllerModel struct {
	CurrentScreen Screen

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	Config engine.Config
	Logger *log.Logger

	ScreenWidth  int
	ScreenHeight int

	eng *engine.Engine
}

func NewControllerModel(cfg engine.Config, logger *log.Logger, screenWidth, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,
		IntroModel:    NewIntroModel(screenWidth, screenHeight),
		SetupModel:    NewSetupModel(screenWidth, screenHeight),
		Config:        cfg,
		Logger:        logger,
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Loading map..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			return m, m.shutdown()
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		return m, nil

	case IntroSubmitMsg:
		m.CurrentScreen = SetupScreen
		return m, m.SetupModel.Init()

	case SetupSubmitMsg:
		grid, err := m.loadWorld(msg.MapName)
		if err != nil {
			m.Logger.Error("map load failed", "map", msg.MapName, "error", err)
			return m, tea.Quit
		}

		walker := engine.NewEntity(msg.WalkerName, m.Config)
		m.eng = engine.New(grid, walker, m.Config, m.Logger)
		go m.eng.Run()

		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(m.eng, msg.WalkerName, msg.MapName, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case QuitGameMsg:
		return m, m.shutdown()

	default:
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m ControllerModel) loadWorld(mapName string) (*world.Grid, error) {
	grid, err := world.Load(filepath.Join(m.Config.MapsDir, mapName+".map"))
	if err != nil {
		return nil, err
	}

	rules, err := world.LoadRules(filepath.Join(m.Config.MapsDir, mapName+".rules.lua"))
	if err != nil {
		// A broken rule script falls back to the fixed obstacle set.
		m.Logger.Warn("rule script rejected", "map", mapName, "error", err)
	} else if rules != nil {
		m.Logger.Info("rule script loaded", "map", mapName)
		grid.SetRules(rules)
	}

	return grid, nil
}

func (m ControllerModel) shutdown() tea.Cmd {
	if m.eng != nil {
		m.eng.Stop()
	}
	return tea.Quit
}
