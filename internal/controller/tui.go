package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	infoStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	bannerLine = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with colored reports and a scrollable pager for saved
// reports. Listings and tables fall back to SimpleUI.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplayReport prints the report with rule headers colored by outcome.
func (t *TUI) DisplayReport(ctx context.Context, _ m.FileReport, rendered []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("%s", ensureNewline(highlightReport(string(rendered))))

	return nil
}

// DisplaySavedReport opens a pager when the report does not fit the
// terminal, and prints it otherwise.
func (t *TUI) DisplaySavedReport(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := highlightReport(string(content))

	_, height := t.terminalSize()
	if height == 0 || lipgloss.Height(text) < height-pagerChromeHeight {
		t.printf("%s", ensureNewline(text))
		return nil
	}

	program := tea.NewProgram(
		newPagerModel(string(path), text),
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run pager: %w", err)
	}

	return nil
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.cmd.OutOrStdout().(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// highlightReport colors the rule header lines of a text report.
func highlightReport(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"):
			lines[i] = bannerLine.Render(line)
		case strings.HasSuffix(line, ": no violations"):
			lines[i] = passStyle.Render(line)
		case strings.HasSuffix(line, "violation(s)"):
			lines[i] = failStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// pagerChromeHeight is the number of lines used by the header and footer.
const pagerChromeHeight = 2

// pagerModel is the Bubble Tea model of the saved report pager.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - pagerChromeHeight
		if height < 1 {
			height = 1
		}

		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "\n  Loading report..."
	}

	return lipgloss.JoinVertical(lipgloss.Left, p.headerView(), p.viewport.View(), p.footerView())
}

func (p pagerModel) headerView() string {
	return titleStyle.Render(p.title)
}

func (p pagerModel) footerView() string {
	return infoStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", p.viewport.ScrollPercent()*100))
}
