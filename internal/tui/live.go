package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sandfall/internal/config"
	"sandfall/internal/core"
)

// Terminal cells are roughly twice as tall as wide, so one grid cell renders
// as two columns.
const cellWidth = 2

// Terminals are much smaller than a GUI window; the view caps the grid
// rather than scrolling it.
const (
	maxCols = 120
	maxRows = 44
)

const headerLines = 1

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

type frameMsg time.Time

// Model is the Bubble Tea state for the live terminal view.
type Model struct {
	grid   *core.Grid
	ticker *core.Ticker

	names []string
	sel   int

	brush    int
	seed     int64
	fill     float64
	fillRows int

	paused bool
	step   bool

	// blocks caches the rendered two-column block per material ID.
	blocks map[uint8]string
	empty  string
}

// NewModel builds the terminal view for the provided configuration,
// clamping the grid to what fits on a screen.
func NewModel(cfg *config.Config) Model {
	w, h := cfg.Width, cfg.Height
	if w > maxCols {
		w = maxCols
	}
	if h > maxRows {
		h = maxRows
	}

	m := Model{
		grid:     core.NewGrid(w, h),
		ticker:   core.NewTicker(cfg.TPS),
		names:    core.Names(),
		brush:    cfg.Brush,
		seed:     cfg.Seed,
		fill:     cfg.FillDensity,
		fillRows: cfg.FillRows,
		blocks:   map[uint8]string{},
		empty:    strings.Repeat(" ", cellWidth),
	}
	for i, name := range m.names {
		if name == cfg.Material {
			m.sel = i
		}
	}
	for _, name := range m.names {
		id, mat := core.ByName(name)
		c := mat.Color()
		style := lipgloss.NewStyle().Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
		m.blocks[id] = style.Render(strings.Repeat(" ", cellWidth))
	}
	m.reseed(cfg.Seed)
	return m
}

func (m *Model) reseed(seed int64) {
	m.seed = seed
	m.grid.Clear()
	if m.fill > 0 {
		id, _ := core.ByName(m.selected())
		core.Scatter(core.NewRNG(seed).Source(), m.grid, id, m.fill, m.fillRows)
	}
}

func (m Model) selected() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.sel]
}

func (m *Model) paint(x, y int, erase bool) {
	cx, cy := x/cellWidth, y-headerLines
	id := core.Empty
	if !erase {
		id, _ = core.ByName(m.selected())
	}
	r := m.brush
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			m.grid.SetID(cx+dx, cy+dy, id)
		}
	}
}

func frame() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frame()
}

// Update handles input and advances the simulation at the configured TPS,
// independent of the frame rate.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "n":
			m.step = true
		case "c":
			m.grid.Clear()
		case "r":
			m.reseed(m.seed)
		case "s":
			m.reseed(time.Now().UnixNano())
		case "tab", "m":
			if len(m.names) > 0 {
				m.sel = (m.sel + 1) % len(m.names)
			}
		case "+", "=":
			m.brush++
		case "-":
			if m.brush > 0 {
				m.brush--
			}
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if n := int(s[0] - '1'); n < len(m.names) {
					m.sel = n
				}
			}
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress || msg.Action == tea.MouseActionMotion {
			switch msg.Button {
			case tea.MouseButtonLeft:
				m.paint(msg.X, msg.Y, false)
			case tea.MouseButtonRight:
				m.paint(msg.X, msg.Y, true)
			}
		}

	case frameMsg:
		if m.step {
			m.grid.Step()
			m.step = false
		} else if !m.paused {
			for i := m.ticker.Advance(time.Time(msg)); i > 0; i-- {
				m.grid.Step()
			}
		}
		return m, frame()
	}
	return m, nil
}

// View renders the header, the grid, and the key help.
func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("sandfall  %s  brush %d  particles %d", m.selected(), m.brush, m.grid.Count())
	b.WriteString(headerStyle.Render(header))
	if m.paused {
		b.WriteString(" " + pausedStyle.Render("[paused]"))
	}
	b.WriteByte('\n')

	size := m.grid.Size()
	cells := m.grid.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			id := cells[y*size.W+x]
			if id == core.Empty {
				b.WriteString(m.empty)
				continue
			}
			if block, ok := m.blocks[id]; ok {
				b.WriteString(block)
			} else {
				b.WriteString(m.empty)
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("drag: paint  right-drag: erase  tab: material  space: pause  n: step  c: clear  q: quit"))
	return b.String()
}

// Run starts the terminal frontend and blocks until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
