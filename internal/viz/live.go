package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/odelab/internal/ode"
)

type TickMsg time.Time

var statsStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 2)

// LiveModel replays a computed trajectory sample by sample so the
// solution can be watched building up.
type LiveModel struct {
	problem string
	method  string
	h       float64
	traj    ode.Trajectory
	shown   int
	perTick int
	fps     int
	running bool
}

// NewLive builds a live view over a finished trajectory.
func NewLive(problem, method string, h float64, traj ode.Trajectory, fps int) LiveModel {
	if fps <= 0 {
		fps = 30
	}
	perTick := len(traj.Xs) / (fps * 4)
	if perTick < 1 {
		perTick = 1
	}

	return LiveModel{
		problem: problem,
		method:  method,
		h:       h,
		traj:    traj,
		shown:   2,
		perTick: perTick,
		fps:     fps,
		running: true,
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.shown = 2
			m.running = true
		}
		return m, nil

	case TickMsg:
		if m.running && m.shown < len(m.traj.Xs) {
			m.shown += m.perTick
			if m.shown > len(m.traj.Xs) {
				m.shown = len(m.traj.Xs)
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m LiveModel) View() string {
	header := HeaderStyle.Render(fmt.Sprintf("odelab live  %s / %s  h=%g", m.problem, m.method, m.h))

	graph := Plot(m.traj.Ys[:m.shown], "y(x)")

	i := m.shown - 1
	status := StatusRunning.Render("integrating")
	if !m.running {
		status = StatusPaused.Render("paused")
	} else if m.shown == len(m.traj.Xs) {
		status = StatusRunning.Render("done")
	}

	stats := statsStyle.Render(
		LabelStyle.Render("x      ") + ValueStyle.Render(fmt.Sprintf("%10.5f", m.traj.Xs[i])) + "\n" +
			LabelStyle.Render("y      ") + ValueStyle.Render(fmt.Sprintf("%10.6f", m.traj.Ys[i])) + "\n" +
			LabelStyle.Render("sample ") + ValueStyle.Render(fmt.Sprintf("%d/%d", i, len(m.traj.Xs)-1)),
	)

	progress := ProgressBar(float64(m.shown)/float64(len(m.traj.Xs)), 60)

	return header + "\n\n" + graph + "\n\n" + progress + "  " + status + "\n\n" + stats + "\n" +
		KeyHint.Render("space pause · r restart · q quit") + "\n"
}
