package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/structmem/object"
	"github.com/wippyai/structmem/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// telemetrySchema is the demo shape shown by the inspector.
func telemetrySchema() []schema.Field {
	nonNegative := func(v any) error {
		if i, ok := v.(int64); ok && i < 0 {
			return fmt.Errorf("must not be negative")
		}
		return nil
	}
	return []schema.Field{
		{Name: "status", Type: schema.Enum{Cases: []string{"idle", "running", "paused", "failed"}}},
		{Name: "speed", Type: schema.U16{}, Check: nonNegative},
		{Name: "temperature", Type: schema.F32{}},
		{Name: "uptime", Type: schema.U64{}, ReadOnly: true},
		{Name: "faults", Type: schema.U8{}},
		{Name: "seq", Type: schema.U32{}, Private: true},
	}
}

type modelState int

const (
	stateBrowse modelState = iota
	stateEdit
)

type inspectModel struct {
	obj      *object.Object
	input    textinput.Model
	rows     []string
	lastErr  string
	selected int
	state    modelState
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newInspectModel(obj *object.Object) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "new value"
	ti.CharLimit = 32

	rows := make([]string, 0, obj.Layout().Len())
	for _, d := range obj.Layout().Fields() {
		if !d.Private {
			rows = append(rows, d.Name)
		}
	}

	return &inspectModel{obj: obj, input: ti, rows: rows}
}

func (m *inspectModel) Init() tea.Cmd {
	return tick()
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		if m.state == stateEdit {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *inspectModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case "enter":
		acc, ok := m.obj.Field(m.rows[m.selected])
		if !ok || acc.Set == nil {
			m.lastErr = "field is read-only"
			return m, nil
		}
		m.lastErr = ""
		m.state = stateEdit
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *inspectModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		name := m.rows[m.selected]
		acc, _ := m.obj.Field(name)
		if err := acc.Set(parseValue(m.input.Value())); err != nil {
			m.lastErr = err.Error()
		} else {
			m.lastErr = ""
		}
		m.state = stateBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseValue maps the typed text to a value the codec understands: integers
// and floats stay numeric, everything else passes through as an enum case
// name.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func (m *inspectModel) View() string {
	s := titleStyle.Render("structmem inspector") + "\n\n"
	s += fmt.Sprintf("  layout: %d bytes\n\n", m.obj.Layout().Size())

	for i, name := range m.rows {
		d, _ := m.obj.Layout().Lookup(name)

		value := "?"
		if v, err := m.obj.Get(name); err == nil {
			value = fmt.Sprintf("%v", v)
		}

		line := fmt.Sprintf("  %s %s @%-3d = %s",
			nameStyle.Render(fmt.Sprintf("%-12s", name)),
			typeStyle.Render(fmt.Sprintf("%-5s", schema.TypeName(d.Type))),
			d.Offset, value)
		if d.ReadOnly {
			line += helpStyle.Render("  (read-only)")
		}
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		s += line + "\n"
	}

	if m.state == stateEdit {
		s += "\n  set " + m.rows[m.selected] + ": " + m.input.View() + "\n"
		s += helpStyle.Render("  enter: apply • esc: cancel") + "\n"
	} else {
		s += "\n" + helpStyle.Render("  ↑/↓: select • enter: edit • q: quit") + "\n"
	}

	if m.lastErr != "" {
		s += errorStyle.Render("  "+m.lastErr) + "\n"
	}
	return s
}

func runInteractive(withWriter bool, interval time.Duration) error {
	obj, err := object.Prepare(telemetrySchema())
	if err != nil {
		return err
	}

	if withWriter {
		region, err := obj.Share()
		if err != nil {
			return err
		}
		// The writer is its own context: a second object bound to the same
		// region. The TUI observes its writes through shared bytes alone.
		remote, err := object.Manifest(region, telemetrySchema())
		if err != nil {
			return err
		}
		go runWriter(remote, interval)
	}

	_, err = tea.NewProgram(newInspectModel(obj)).Run()
	return err
}

func runWriter(obj *object.Object, interval time.Duration) {
	statuses := []string{"idle", "running", "paused", "failed"}
	start := time.Now()

	for seq := uint32(0); ; seq++ {
		// Privileged bypass writes: no validators, read-only included.
		obj.Set("uptime", uint64(time.Since(start).Seconds()))
		obj.Set("temperature", 20+10*rand.Float32())
		obj.Set("speed", rand.Intn(300))
		obj.Set("seq", seq)
		if seq%8 == 0 {
			obj.Set("status", statuses[rand.Intn(len(statuses))])
		}
		if rand.Intn(50) == 0 {
			if v, err := obj.Get("faults"); err == nil {
				obj.Set("faults", v.(uint8)+1)
			}
		}
		time.Sleep(interval)
	}
}
