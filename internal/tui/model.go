package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecalc/internal/cli"
	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/sysmon"
)

// Layout constants for the dashboard.
const (
	defaultBarWidth = 40
	maxLogLines     = 8
	historySize     = 30
	tickInterval    = 500 * time.Millisecond
)

// ExecutionState holds the execution-related fields of a session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	runners    []orchestration.Runner
	generation uint64
	done       bool
	exitCode   int
	// onResults, if set, receives the raw results of every completed pass.
	onResults ResultsHook
}

// ResultsHook receives the results of a pass before they are analyzed.
type ResultsHook func([]orchestration.RunResult)

// runPanel is the display state of one run.
type runPanel struct {
	name     string
	bar      bprogress.Model
	fraction float64
	eta      time.Duration
	finished bool
	result   *orchestration.RunResult
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	header HeaderModel
	runs   []runPanel
	logs   []string
	cpu    *History
	mem    *History
	sys    sysmon.Stats

	keymap KeyMap
	help   help.Model

	ExecutionState

	config config.AppConfig
	ref    *programRef
	width  int
}

// NewModel creates a dashboard for the given runners.
func NewModel(parentCtx context.Context, runners []orchestration.Runner, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	m := Model{
		header: NewHeaderModel(version, cfg.Limit),
		cpu:    NewHistory(historySize),
		mem:    NewHistory(historySize),
		keymap: DefaultKeyMap(),
		help:   help.New(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			runners:  runners,
			exitCode: apperrors.ExitSuccess,
		},
		config: cfg,
		ref:    &programRef{},
	}
	m.resetRuns()
	m.addLog(fmt.Sprintf("%d workers, top %d, policy %s", cfg.Workers, cfg.TopK, cfg.Policy))
	return m
}

func (m *Model) resetRuns() {
	m.runs = make([]runPanel, len(m.runners))
	for i, r := range m.runners {
		m.runs[i] = runPanel{
			name: r.Name(),
			bar:  bprogress.New(bprogress.WithDefaultGradient(), bprogress.WithWidth(m.barWidth())),
		}
	}
}

func (m Model) barWidth() int {
	if m.width <= 0 {
		return defaultBarWidth
	}
	return max(m.width-30, 10)
}

func (m *Model) addLog(line string) {
	m.logs = append(m.logs, fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), line))
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunsCmd(m.ref, m.ctx, m.runners, m.config, m.generation, m.onResults),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		for i := range m.runs {
			m.runs[i].bar.Width = m.barWidth()
		}
		return m, nil

	case ProgressMsg:
		if msg.RunIndex >= 0 && msg.RunIndex < len(m.runs) {
			p := &m.runs[msg.RunIndex]
			p.fraction, p.eta = msg.Fraction, msg.ETA
			if msg.Done && !p.finished {
				p.finished = true
				m.addLog(p.name + " finished")
			}
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case RunResultMsg:
		for i := range m.runs {
			if m.runs[i].name == msg.Result.Name {
				res := msg.Result
				m.runs[i].result = &res
			}
		}
		return m, nil

	case ComparisonResultsMsg:
		if len(msg.Results) > 1 {
			m.addLog("fastest: " + msg.Results[0].Name)
		}
		return m, nil

	case ErrorMsg:
		m.addLog("error: " + msg.Err.Error())
		return m, nil

	case RunsCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.SetDone()
		m.addLog(fmt.Sprintf("all runs complete (exit code %d)", msg.ExitCode))
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.sys = sysmon.Stats(msg)
		m.cpu.Push(msg.CPUPercent)
		m.mem.Push(msg.MemPercent)
		return m, nil

	case ContextCancelledMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		// Runs cannot be interrupted; a new pass starts only after the
		// previous one has completed.
		if !m.done {
			return m, nil
		}
		m.generation++
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.header.Reset()
		m.resetRuns()
		m.addLog("restarting")
		return m, tea.Batch(
			tickCmd(),
			startRunsCmd(m.ref, m.ctx, m.runners, m.config, m.generation, m.onResults),
		)
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var runs strings.Builder
	for i, p := range m.runs {
		if i > 0 {
			runs.WriteString("\n\n")
		}
		runs.WriteString(m.renderRun(p))
	}

	sections := []string{
		m.header.View(),
		panelStyle.Render(runs.String()),
		panelStyle.Render(dimStyle.Render(strings.Join(m.logs, "\n"))),
		m.renderSys(),
		m.help.View(m.keymap),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRun(p runPanel) string {
	status := statusRunningStyle.Render("running")
	if p.finished {
		status = statusDoneStyle.Render("done")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(p.name), status)
	b.WriteString(p.bar.ViewAs(p.fraction))
	if !p.finished && p.eta > 0 {
		b.WriteString(dimStyle.Render("  ETA " + format.FormatETA(p.eta)))
	}
	if p.result != nil {
		b.WriteString("\n" + resultStyle.Render(cli.FormatResultLine(*p.result)))
		b.WriteString("\n" + accentStyle.Render(format.FormatUintList(p.result.Result.Top)))
		if p.result.Result.SumOverflow {
			b.WriteString("\n" + warningStyle.Render("sum exceeded 64 bits and wrapped"))
		}
	}
	return b.String()
}

func (m Model) renderSys() string {
	return dimStyle.Render(fmt.Sprintf(" CPU %s %5.1f%%  MEM %s %5.1f%%  %d cores  %d goroutines",
		RenderSparkline(m.cpu.Values()), m.cpu.Last(),
		RenderSparkline(m.mem.Values()), m.mem.Last(),
		m.sys.LogicalCPUs, m.sys.Goroutines))
}

// Run is the public entry point for dashboard mode. It runs the bubbletea
// program and returns the exit code of the last completed pass.
func Run(ctx context.Context, runners []orchestration.Runner, cfg config.AppConfig, version string, onResults ResultsHook) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, runners, cfg, version)
	model.onResults = onResults
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startRunsCmd returns a tea.Cmd that executes and analyzes the runs.
func startRunsCmd(ref sender, ctx context.Context, runners []orchestration.Runner, cfg config.AppConfig, gen uint64, onResults ResultsHook) tea.Cmd {
	return func() tea.Msg {
		results := orchestration.ExecuteRuns(ctx, runners, cfg.Limit, &TUIProgressReporter{ref: ref}, io.Discard)
		if onResults != nil {
			onResults(results)
		}
		opts := orchestration.PresentationOptions{Limit: cfg.Limit, Verbose: true}
		exitCode := orchestration.AnalyzeComparisonResults(results, opts, &TUIResultPresenter{ref: ref}, io.Discard)
		return RunsCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd samples host load off the UI goroutine.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
