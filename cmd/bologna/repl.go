package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bolognalang/bologna/bolo"
)

var replConfigPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Bologna parse loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadREPLConfig(replConfigPath)
		if err != nil {
			return err
		}
		p := tea.NewProgram(newREPLModel(cfg), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	replCmd.Flags().StringVar(&replConfigPath, "config", "", "path to the repl config file (default ~/.config/bologna/repl.toml)")
	rootCmd.AddCommand(replCmd)
}

type replStyles struct {
	prompt   lipgloss.Style
	result   lipgloss.Style
	errText  lipgloss.Style
	muted    lipgloss.Style
	header   lipgloss.Style
	helpKey  lipgloss.Style
	helpDesc lipgloss.Style
	border   lipgloss.Style
}

func newREPLStyles(color bool) replStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return replStyles{
			prompt: plain, result: plain, errText: plain, muted: plain,
			header: plain, helpKey: plain, helpDesc: plain,
			border: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}

	accent := lipgloss.Color("#3B82F6")
	success := lipgloss.Color("#10B981")
	failure := lipgloss.Color("#EF4444")
	mutedCol := lipgloss.Color("#6B7280")
	highlight := lipgloss.Color("#F59E0B")

	return replStyles{
		prompt:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		result:   lipgloss.NewStyle().Foreground(success),
		errText:  lipgloss.NewStyle().Foreground(failure),
		muted:    lipgloss.NewStyle().Foreground(mutedCol),
		header:   lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),
		helpKey:  lipgloss.NewStyle().Foreground(highlight),
		helpDesc: lipgloss.NewStyle().Foreground(mutedCol),
		border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
	}
}

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	cfg         replConfig
	styles      replStyles
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	CtrlK key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous input"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next input"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "parse"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	CtrlK: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel(cfg replConfig) replModel {
	styles := newREPLStyles(cfg.Color)

	ti := textinput.New()
	ti.Placeholder = "def add(a b) a + b"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = styles.prompt
	ti.Prompt = cfg.Prompt

	return replModel{
		textInput:  ti,
		cfg:        cfg,
		styles:     styles,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlK):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			m.appendHistory(parseLine(input)...)
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *replModel) appendHistory(entries ...historyEntry) {
	m.history = append(m.history, entries...)
	if excess := len(m.history) - m.cfg.HistorySize; excess > 0 {
		m.history = m.history[excess:]
	}
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	switch strings.Fields(input)[0] {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.appendHistory(historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", input),
			isErr:  true,
		})
	}
	return m, nil
}

// parseLine parses one line of input and reports what each top-level unit
// parsed as, followed by any parse errors.
func parseLine(input string) []historyEntry {
	program, errs := bolo.NewParser(input).ParseProgram()

	entries := make([]historyEntry, 0, len(program.Units)+len(errs))
	for i, unit := range program.Units {
		entry := historyEntry{output: describeUnit(unit)}
		if i == 0 {
			entry.input = input
		}
		entries = append(entries, entry)
	}
	for i, err := range errs {
		entry := historyEntry{output: err.Error(), isErr: true}
		if len(program.Units) == 0 && i == 0 {
			entry.input = input
		}
		entries = append(entries, entry)
	}
	return entries
}

func describeUnit(unit bolo.TopLevel) string {
	if fn, ok := unit.(*bolo.Function); ok && fn.IsAnon() {
		return "expr " + bolo.FormatExpr(fn.Body)
	}
	return bolo.Format(unit)
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return m.styles.muted.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := m.styles.header.Render("Bologna REPL")
	b.WriteString(header + " " + m.styles.muted.Render("v"+version) + "\n")
	b.WriteString(m.styles.muted.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 9
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(m.styles.muted.Render("  › ") + entry.input + "\n")
		}
		if entry.isErr {
			b.WriteString("  " + m.styles.errText.Render("✗ "+entry.output) + "\n")
		} else {
			b.WriteString("  " + m.styles.result.Render("→ "+entry.output) + "\n")
		}
	}

	if m.showHelp {
		b.WriteString(m.renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.textInput.View() + "\n\n")

	footer := m.styles.helpKey.Render("ctrl+k") + m.styles.helpDesc.Render(" help  ") +
		m.styles.helpKey.Render("ctrl+l") + m.styles.helpDesc.Render(" clear  ") +
		m.styles.helpKey.Render("ctrl+c") + m.styles.helpDesc.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func (m replModel) renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate input history"},
		{"Enter", "Parse the line"},
		{":help", "Toggle this help"},
		{":clear", "Clear history"},
		{":quit", "Exit the repl"},
	}

	lines := []string{m.styles.header.Render("Help")}
	for _, h := range help {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			m.styles.helpKey.Render(fmt.Sprintf("%-8s", h.key)),
			m.styles.helpDesc.Render(h.desc)))
	}

	return m.styles.border.Render(strings.Join(lines, "\n"))
}
