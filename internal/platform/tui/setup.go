package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
)

// WorldPreset is a selectable world size.
type WorldPreset struct {
	Name   string
	Width  int
	Height int
}

// worldPresets are the sizes offered by the setup selector.
var worldPresets = []WorldPreset{
	{Name: "Small", Width: 60, Height: 40},
	{Name: "Normal", Width: 100, Height: 50},
	{Name: "Large", Width: 160, Height: 80},
	{Name: "Deep", Width: 80, Height: 150},
}

// difficultyOptions are the presets offered by the setup selector.
var difficultyOptions = []struct {
	Label  string
	Preset config.DifficultyPreset
}{
	{Label: "Easy    (plentiful ore)", Preset: config.DifficultyEasy},
	{Label: "Normal", Preset: config.DifficultyNormal},
	{Label: "Hard    (scarce ore)", Preset: config.DifficultyHard},
}

// MinerSetup holds the user's choices from the pre-game setup selector.
type MinerSetup struct {
	Difficulty config.DifficultyPreset
	WorldW     int
	WorldH     int
}

// SetupModel lets users choose difficulty and world size before a run.
type SetupModel struct {
	cursor        int
	worldCursor   int
	inWorldSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     MinerSetup
	choosing      bool
	quitting      bool
	back          bool
}

// NewSetupModel creates a new setup selection model.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		cursor:      1, // Normal
		worldCursor: 1, // Normal
		width:       width,
		height:      height,
		keyMapper:   NewKeyMapper(),
		choosing:    true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inWorldSelect {
		return m.handleWorldSelectKey(action)
	}
	return m.handleDifficultyKey(action)
}

func (m SetupModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = difficultyOptions[m.cursor].Preset
		m.inWorldSelect = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SetupModel) handleWorldSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.worldCursor > 0 {
			m.worldCursor--
		}
	case MenuActionDown:
		if m.worldCursor < len(worldPresets)-1 {
			m.worldCursor++
		}
	case MenuActionSelect:
		preset := worldPresets[m.worldCursor]
		m.selection.WorldW = preset.Width
		m.selection.WorldH = preset.Height
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.inWorldSelect = false
	}

	return m, nil
}

// View renders the difficulty/world selection.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inWorldSelect {
		return m.viewWorldSelect()
	}
	return m.viewDifficultySelect()
}

func (m SetupModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T I L E   M I N E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewWorldSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("WORLD SIZE", m.width))
	b.WriteString("\n\n")

	for i, preset := range worldPresets {
		cursor := "  "
		if i == m.worldCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-8s %3d x %d", cursor, preset.Name, preset.Width, preset.Height)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *MinerSetup {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunMinerSetup runs the setup selector and returns the selection,
// or nil if the user backed out or quit.
func RunMinerSetup(cfg core.RuntimeConfig) (*MinerSetup, core.RuntimeConfig, error) {
	model := NewSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
