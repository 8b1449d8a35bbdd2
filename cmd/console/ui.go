package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/treasure-island/pkg/game"
)

const (
	GameTitle       = "TREASURE ISLAND"
	PlaceHolderText = "Type a command..."
)

// entry kinds drive per-line styling when the transcript is reformatted.
const (
	entryScene = iota
	entryPlayer
	entryMessage
	entryEnding
)

type transcriptEntry struct {
	kind int
	text string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	core         *game.Core
	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	transcript   []transcriptEntry
	lastSceneID  string
	ready        bool
	width        int
	height       int

	// Name prompt state
	showNameModal bool
	nameInput     textinput.Model

	// Quit confirmation state
	showQuitModal bool

	// One-line status feedback for slash commands
	notice string
}

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	sceneTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	sceneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	endingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(core *game.Core) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	name := textinput.New()
	name.Placeholder = game.FallbackPlayerName
	name.CharLimit = 40
	name.Width = 30
	name.Focus()

	return ConsoleUI{
		core:          core,
		textarea:      ta,
		gameViewport:  gameVp,
		metaViewport:  metaVp,
		nameInput:     name,
		showNameModal: true,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showNameModal {
		return m.updateNameModal(msg)
	}

	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.gameViewport, vpCmd = m.gameViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.writeGameContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				return m.handleSlashCommand(input)
			}

			m.submit(input)
			view := m.core.PeekView()
			if view.GameOver && view.EndingType == "quit" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// submit runs one command through the core and folds the outcome into the
// transcript.
func (m *ConsoleUI) submit(input string) {
	m.transcript = append(m.transcript, transcriptEntry{entryPlayer, "> " + input})
	m.core.Submit(context.Background(), input)
	m.refresh()
}

// refresh pulls a fresh snapshot, appends new messages and any scene change
// to the transcript, and re-renders both panels.
func (m *ConsoleUI) refresh() {
	view := m.core.GetView()

	for _, message := range view.NewMessages {
		m.transcript = append(m.transcript, transcriptEntry{entryMessage, message})
	}

	if view.SceneID != m.lastSceneID {
		m.lastSceneID = view.SceneID
		m.transcript = append(m.transcript,
			transcriptEntry{entryScene, view.Title + "\n" + view.Description})
	}

	if view.GameOver && view.EndingText != "" {
		m.transcript = append(m.transcript,
			transcriptEntry{entryEnding, "THE END: " + view.EndingText})
	}

	m.writeGameContent()
	m.metaViewport.SetContent(m.writeMetadata())
}

func (m *ConsoleUI) layout() {
	gameWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - gameWidth - 6

	m.gameViewport.Width = gameWidth - 2
	m.gameViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
	m.textarea.SetWidth(gameWidth - 4)
}

// writeGameContent reformats the full transcript for the current viewport
// width.
func (m *ConsoleUI) writeGameContent() {
	gameWidth := m.gameViewport.Width - 6
	if gameWidth < 20 {
		gameWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(GameTitle) + "\n\n")
	content.WriteString("Type commands below. 'help' lists your options.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", gameWidth)) + "\n\n")

	for _, entry := range m.transcript {
		switch entry.kind {
		case entryScene:
			title, body, _ := strings.Cut(entry.text, "\n")
			content.WriteString(sceneTitleStyle.Render(title) + "\n")
			content.WriteString(sceneStyle.Render(wordwrap.String(body, gameWidth)) + "\n\n")
		case entryPlayer:
			content.WriteString(playerStyle.Render(entry.text) + "\n")
		case entryEnding:
			content.WriteString(endingStyle.Render(wordwrap.String(entry.text, gameWidth)) + "\n\n")
		default:
			content.WriteString(wordwrap.String(entry.text, gameWidth) + "\n\n")
		}
	}

	m.gameViewport.SetContent(content.String())
	m.gameViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() string {
	view := m.core.PeekView()

	var content strings.Builder
	content.WriteString(titleStyle.Render("STATUS") + "\n\n")

	content.WriteString(fmt.Sprintf("Name: %s\n", view.Status.Name))
	content.WriteString(fmt.Sprintf("Health: %d\n", view.Status.Health))
	content.WriteString(fmt.Sprintf("Score: %d\n", view.Status.Score))
	content.WriteString(fmt.Sprintf("Hints: %d\n\n", view.Status.HintsLeft))

	content.WriteString("Location:\n")
	content.WriteString(view.Status.LocationTitle + "\n\n")

	content.WriteString("Inventory:\n")
	content.WriteString(view.Status.InventoryText + "\n\n")

	content.WriteString(fmt.Sprintf("Visited: %d areas\n", view.Status.VisitedCount))
	if len(view.Status.PathHighlights) > 0 {
		content.WriteString("\nPath:\n")
		for _, title := range view.Status.PathHighlights {
			content.WriteString("• " + title + "\n")
		}
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• /copy: Copy log\n")

	if m.notice != "" {
		content.WriteString("\n" + promptStyle.Render(m.notice) + "\n")
	}

	return content.String()
}

// handleSlashCommand handles UI-level commands that never reach the core.
func (m ConsoleUI) handleSlashCommand(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/copy":
		if err := clipboard.WriteAll(m.runSummary()); err != nil {
			m.notice = "Clipboard unavailable."
		} else {
			m.notice = "Run summary copied."
		}
	default:
		m.notice = "Unknown command: " + input
	}
	m.metaViewport.SetContent(m.writeMetadata())
	return m, nil
}

// runSummary renders the transcript and status as plain text for export.
func (m *ConsoleUI) runSummary() string {
	view := m.core.PeekView()

	var summary strings.Builder
	summary.WriteString(GameTitle + "\n")
	summary.WriteString(fmt.Sprintf("%s | Health %d | Score %d | Visited %d\n\n",
		view.Status.Name, view.Status.Health, view.Status.Score, view.Status.VisitedCount))
	for _, entry := range m.transcript {
		summary.WriteString(entry.text + "\n")
	}
	return summary.String()
}

func (m ConsoleUI) updateNameModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.core.NewGame(m.nameInput.Value())
			m.showNameModal = false
			m.refresh()
			m.textarea.Focus()
			m.ready = true
			return m, textarea.Blink
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderNameModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Welcome to Treasure Island"))
	content.WriteString("\n\n")
	content.WriteString("What is your name, explorer?")
	content.WriteString("\n\n")
	content.WriteString(m.nameInput.View())
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Enter to begin, Ctrl+C to exit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved progress will be lost.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showNameModal {
		return m.renderNameModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	gameWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - gameWidth - 6

	gamePanel := gamePanelStyle.Width(gameWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.gameViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", gameWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, metaPanel)
}
