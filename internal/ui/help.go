package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move the focus"},
		{"Home/End, g/G", "First/last item"},
		{"PgUp/PgDn", "Scroll a page"},
	}},
	{"Selection", []helpEntry{
		{"Shift+↑/↓, J/K", "Extend or shrink the selection"},
		{"Shift+Home/End", "Select to the first/last item"},
		{"Space", "Toggle the focused item"},
		{"Ctrl+A", "Select all"},
		{"Click", "Select an item"},
		{"Shift+Click", "Select a range"},
		{"Ctrl/Alt+Click", "Toggle an item"},
		{"Esc", "Clear the filter, the search, then the focus"},
		{"x", "Remove the focused item from the list"},
		{"d", "Enable/disable the list"},
	}},
	{"Filter", []helpEntry{
		{"/", "Filter items (id:<id> matches ids)"},
		{"Enter", "Keep the filter"},
		{"Esc", "Drop the filter"},
	}},
	{"Search", []helpEntry{
		{"s", "Search items, matches are underlined"},
		{"Enter", "Select the first match"},
		{"n/N", "Select the next/previous match"},
	}},
	{"Other", []helpEntry{
		{"Enter", "Print the selection and exit"},
		{"o", "Sort by input order, label or id"},
		{"Ctrl+S", "Save the current options"},
		{"?", "Toggle this help"},
		{"q", "Quit without output"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	keyWidth := 0
	for _, s := range helpSections {
		for _, e := range s.entries {
			keyWidth = max(keyWidth, lipgloss.Width(e.keys))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("listgrip Help"))
	help.WriteString("\n")

	for i, s := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, e := range s.entries {
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(e.keys)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(e.keys), pad, descStyle.Render(e.desc)))
		}
	}

	return strings.TrimSuffix(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h == nil || h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create oviewer root from the reader
	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	// Add vim-like navigation
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// configureVimKeyBindings adds j/k on top of ov's default movement keys
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	config.Keybind["down"] = []string{"Enter", "Down", "ctrl+N", "j"}
	config.Keybind["up"] = []string{"Up", "ctrl+P", "k"}
}
