package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/gokturkdogan/journey/internal/config"
	"github.com/gokturkdogan/journey/internal/geom"
	"github.com/gokturkdogan/journey/internal/sim"
	"github.com/gokturkdogan/journey/internal/vehicle"
)

// TickMsg drives the frame loop.
type TickMsg time.Time

// holdWindow is how long a key press counts as "held". Terminals only
// deliver presses, so a held key reads as autorepeat within this
// window.
const holdWindow = 200 * time.Millisecond

const speedHistoryLen = 120

// Model is the interactive drive: it owns the clock, feeds input flags
// into the scheduler, and renders the latest snapshot.
type Model struct {
	cfg   *config.Config
	sched *sim.Scheduler
	clock *sim.Clock

	canvas *Canvas
	proj   *Projector
	scene  Scene

	width, height int
	paused        bool

	holds   map[string]time.Time
	navIdx  int
	visited map[string]bool

	dragging       bool
	lastMX, lastMY int

	speedHistory []float64
	snap         sim.Snapshot
}

func NewModel(cfg *config.Config, sched *sim.Scheduler) Model {
	return Model{
		cfg:     cfg,
		sched:   sched,
		clock:   sim.NewClock(),
		canvas:  NewCanvas(72, 20),
		proj:    NewProjector(),
		holds:   make(map[string]time.Time),
		visited: make(map[string]bool),
		width:   110,
		height:  28,
	}
}

func (m Model) frameInterval() time.Duration {
	rate := m.cfg.FrameRate
	if rate <= 0 {
		rate = config.DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cw := msg.Width - 44
		ch := msg.Height - 10
		if cw > 20 && ch > 6 {
			m.canvas = NewCanvas(cw, ch)
		}
		return m, nil
	case TickMsg:
		m.tick(time.Time(msg))
		return m, tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.String() {
	case "q", "ctrl+c":
		return *m, tea.Quit
	case " ":
		m.paused = !m.paused
		if !m.paused {
			m.clock.Reset()
		}
	case "w", "up":
		m.holds["forward"] = now.Add(holdWindow)
	case "s", "down":
		m.holds["backward"] = now.Add(holdWindow)
	case "a", "left":
		m.holds["left"] = now.Add(holdWindow)
	case "d", "right":
		m.holds["right"] = now.Add(holdWindow)
	case "p":
		m.sched.Vehicle().SetIdle(m.sched.Vehicle().Mode() != vehicle.ModeIdle)
	case "n":
		m.navigateNext()
	case "t":
		m.teleportNext()
	case "r":
		m.sched.Vehicle().Teleport(m.cfg.Spawn)
		m.navIdx = 0
	}
	return *m, nil
}

// navigateNext hands the controller the next landmark on the route.
func (m *Model) navigateNext() {
	route := m.sched.Registry().Ordered()
	if len(route) == 0 {
		return
	}
	target := route[m.navIdx%len(route)]
	m.navIdx++
	m.sched.Vehicle().NavigateTo(target.Position.WithY(m.cfg.Vehicle.RestingHeight), 0)
}

// teleportNext jumps straight to the next landmark on the route.
func (m *Model) teleportNext() {
	route := m.sched.Registry().Ordered()
	if len(route) == 0 {
		return
	}
	target := route[m.navIdx%len(route)]
	m.navIdx++
	m.sched.Vehicle().Teleport(target.Position.WithY(m.cfg.Vehicle.RestingHeight))
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.cfg.Camera.OrbitInput {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		m.lastMX, m.lastMY = msg.X, msg.Y
	case tea.MouseActionRelease:
		m.dragging = false
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		dx := float64(msg.X-m.lastMX) * 8 // cells are coarse; scale to pointer-ish deltas
		dy := float64(msg.Y-m.lastMY) * 16
		m.lastMX, m.lastMY = msg.X, msg.Y
		m.sched.Rig().DragOrbit(dx, dy)
	}
}

func (m *Model) heldInput(now time.Time) vehicle.Input {
	for action, deadline := range m.holds {
		if now.After(deadline) {
			delete(m.holds, action)
		}
	}
	return vehicle.Input{
		Forward:  !m.holds["forward"].IsZero(),
		Backward: !m.holds["backward"].IsZero(),
		Left:     !m.holds["left"].IsZero(),
		Right:    !m.holds["right"].IsZero(),
	}
}

func (m *Model) tick(now time.Time) {
	if m.paused {
		return
	}
	delta := m.clock.Delta(now)
	if delta <= 0 {
		return
	}

	m.sched.Vehicle().SetInput(m.heldInput(now))
	m.snap = m.sched.Tick(delta)
	if m.snap.ActiveID != "" {
		m.visited[m.snap.ActiveID] = true
	}

	m.speedHistory = append(m.speedHistory, m.snap.Vehicle.ForwardSpeed)
	if len(m.speedHistory) > speedHistoryLen {
		m.speedHistory = m.speedHistory[1:]
	}

	m.draw()
}

// draw rebuilds the scene wireframe from the snapshot and renders it
// through the rig's transform.
func (m *Model) draw() {
	m.canvas.Clear()
	m.scene.Reset()

	m.addRoad()
	for _, lm := range m.sched.Registry().Ordered() {
		m.addLandmark(lm.Position, m.snap.Intensity[lm.ID])
	}
	if m.snap.Vehicle.Mode == vehicle.ModeNavigating {
		m.scene.AddPoint(m.snap.Vehicle.NavTarget.WithY(0.2))
	}
	m.addVehicle(m.snap.Vehicle)

	m.scene.Render(m.canvas, m.proj, m.snap.Camera)
	m.drawHighlightRing()
}

// drawHighlightRing circles the active landmark's marker, with the
// radius growing along its highlight intensity.
func (m *Model) drawHighlightRing() {
	if m.snap.ActiveID == "" {
		return
	}
	lm := m.sched.Registry().ByID(m.snap.ActiveID)
	if lm == nil {
		return
	}
	intensity := m.snap.Intensity[lm.ID]
	if intensity <= 0 {
		return
	}
	x, y, _, visible := m.proj.Project(lm.Position.WithY(4), m.snap.Camera, m.canvas)
	if !visible {
		return
	}
	m.canvas.Circle(x, y, 2+int(intensity*6))
}

func (m *Model) addRoad() {
	route := m.sched.Registry().Ordered()
	if len(route) == 0 {
		return
	}
	zNear := route[0].Position.Z + 30
	zFar := route[len(route)-1].Position.Z - 30
	for _, x := range []float64{-2.5, 2.5} {
		m.scene.Add(geom.Vec3{X: x, Z: zNear}, geom.Vec3{X: x, Z: zFar})
	}
	// Dashed center line.
	for z := zNear; z > zFar; z -= 8 {
		m.scene.Add(geom.Vec3{Z: z}, geom.Vec3{Z: z - 3})
	}
}

func (m *Model) addLandmark(p geom.Vec3, intensity float64) {
	base := p.WithY(0)
	top := p.WithY(4)
	m.scene.Add(base, top)

	// Diamond marker at the top, widened by highlight intensity.
	s := 0.8 + 1.2*intensity
	m.scene.Add(top.Add(geom.Vec3{X: -s}), top.Add(geom.Vec3{Y: s}))
	m.scene.Add(top.Add(geom.Vec3{Y: s}), top.Add(geom.Vec3{X: s}))
	m.scene.Add(top.Add(geom.Vec3{X: s}), top.Add(geom.Vec3{Y: -s}))
	m.scene.Add(top.Add(geom.Vec3{Y: -s}), top.Add(geom.Vec3{X: -s}))
}

func (m *Model) addVehicle(vs vehicle.State) {
	half := geom.Vec3{X: 1, Y: 0.5, Z: 2}
	corners := make([]geom.Vec3, 0, 8)
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				local := geom.Vec3{X: half.X * sx, Y: half.Y * sy, Z: half.Z * sz}
				corners = append(corners, vs.Position.Add(vs.Orientation.RotateVec(local)))
			}
		}
	}
	edges := [][2]int{
		{0, 1}, {0, 2}, {3, 1}, {3, 2},
		{4, 5}, {4, 6}, {7, 5}, {7, 6},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		m.scene.Add(corners[e[0]], corners[e[1]])
	}
}

func (m Model) View() string {
	left := canvasStyle.Render(m.canvas.String())
	right := panelStyle.Render(m.sidePanel())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	graph := ""
	if len(m.speedHistory) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(
			m.speedHistory,
			asciigraph.Height(4),
			asciigraph.Width(m.canvas.Width),
			asciigraph.Caption("forward speed"),
		))
	}

	help := helpStyle.Render("w/s drive  a/d steer  n navigate  t teleport  p park  r respawn  space pause  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, graph, help)
}

func (m Model) sidePanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("journey"))
	b.WriteByte('\n')

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteByte('\n')
	}

	vs := m.snap.Vehicle
	row("mode", vs.Mode.String())
	row("speed", fmt.Sprintf("%5.1f m/s", vs.ForwardSpeed))
	row("position", fmt.Sprintf("%.0f, %.0f", vs.Position.X, vs.Position.Z))
	row("camera", m.snap.Camera.State.String())
	if m.paused {
		row("status", "paused")
	}
	b.WriteByte('\n')

	b.WriteString(headerStyle.Render("timeline"))
	b.WriteByte('\n')
	for _, lm := range m.sched.Registry().Ordered() {
		line := fmt.Sprintf("%d  %s", lm.Year, lm.Title)
		switch {
		case lm.ID == m.snap.ActiveID:
			bar := intensityBar(m.snap.Intensity[lm.ID])
			b.WriteString(activeMemoryStyle.Render("▸ " + line))
			b.WriteByte('\n')
			b.WriteString(zoneStyle.Render("    " + bar))
		case m.visited[lm.ID]:
			b.WriteString(visitedStyle.Render("✓ " + line))
		default:
			b.WriteString(unvisitedStyle.Render("· " + line))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func intensityBar(v float64) string {
	const width = 12
	filled := int(geom.Clamp(v, 0, 1) * width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Run starts the interactive drive and blocks until it exits.
func Run(cfg *config.Config, sched *sim.Scheduler) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Camera.OrbitInput {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(NewModel(cfg, sched), opts...).Run()
	return err
}
