package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/picnoir/picobak/internal/domain"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseDone
	PhaseError
)

// Messages sent into the TUI by the backup goroutine
type (
	ProgressMsg struct {
		Current int
		Total   int
		File    string
	}
	DoneMsg struct {
		Report domain.Report
	}
	ErrorMsg struct {
		Err error
	}
)

// Config for the TUI
type Config struct {
	BackupRoot string
	DryRun     bool
}

// Model renders batch progress and the final statistics.
type Model struct {
	config   Config
	Phase    Phase
	Report   domain.Report
	Err      error
	Quitting bool

	spinner  spinner.Model
	progress progress.Model
	current  int
	total    int
	file     string
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseRunning,
		spinner:  s,
		progress: p,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		}

	case ProgressMsg:
		m.current = msg.Current
		m.total = msg.Total
		m.file = msg.File
		if m.total > 0 {
			return m, m.progress.SetPercent(float64(m.current) / float64(m.total))
		}
		return m, nil

	case DoneMsg:
		m.Phase = PhaseDone
		m.Report = msg.Report
		return m, tea.Quit

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.Phase == PhaseRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseRunning:
		b.WriteString(m.renderRunning())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: quit"))
	case PhaseDone:
		b.WriteString(m.renderSummary())
	case PhaseError:
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s %v", iconError, m.Err)))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("picobak")
	mode := ""
	if m.config.DryRun {
		mode = warningStyle.Render(" (dry run)")
	}
	root := dimStyle.Render(fmt.Sprintf("%s Library: %s", iconFolder, m.config.BackupRoot))
	return lipgloss.JoinVertical(lipgloss.Left, title+mode, root)
}

func (m Model) renderRunning() string {
	if m.total > 0 {
		percent := float64(m.current) / float64(m.total)
		return fmt.Sprintf("%s Backing up...\n\n  %s\n  %s %s\n  %s",
			m.spinner.View(),
			m.progress.ViewAs(percent),
			countStyle.Render(fmt.Sprintf("%d/%d", m.current, m.total)),
			dimStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
			dimStyle.Render(m.file),
		)
	}
	return fmt.Sprintf("%s Backing up...", m.spinner.View())
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Backup Statistics"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", statLabelStyle.Render("Copied:"), successStyle.Render(fmt.Sprintf("%d", m.Report.Copied()))))
	b.WriteString(fmt.Sprintf("  %s %d\n", statLabelStyle.Render("Duplicates:"), m.Report.Duplicates))
	if m.Report.Renamed > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", statLabelStyle.Render("Renamed:"), warningStyle.Render(fmt.Sprintf("%d", m.Report.Renamed))))
	}
	b.WriteString(fmt.Sprintf("  %s %d EXIF, %d exiftool, %d mtime\n",
		statLabelStyle.Render("Date sources:"),
		m.Report.CopiedExif, m.Report.CopiedExifTool, m.Report.CopiedModTime))

	if m.Report.Failed() {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s %d file(s) failed", iconError, len(m.Report.Failures))))
		b.WriteString("\n")
		for _, failure := range m.Report.Failures {
			b.WriteString(fmt.Sprintf("  %s\n", dimStyle.Render(failure.Path)))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(fmt.Sprintf("%s All files backed up", iconSuccess)))
		b.WriteString("\n")
	}

	return b.String()
}
