package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/roughsketch/pkg/rough"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// Explorer step sizes.
const (
	roughnessStep = 0.25
	bowingStep    = 0.5
	previewLines  = 8
)

// =============================================================================
// ExplorerModel - Interactive seed and option explorer
// =============================================================================

// ExplorerModel is the bubbletea model for stepping through seeds and
// roughness settings of one primitive while watching its path change.
type ExplorerModel struct {
	Kind     rough.Kind
	Geometry rough.Geometry
	Options  rough.Options
	Fill     bool

	// Chosen is set when the user confirms the current settings.
	Chosen bool

	Width    int
	stroke   rough.OpSet
	fillOps  rough.OpSet
	err      error
	nextSeed func() rough.Seed
}

// NewExplorerModel creates an explorer starting from o.
func NewExplorerModel(kind rough.Kind, geo rough.Geometry, o rough.Options) ExplorerModel {
	m := ExplorerModel{
		Kind:     kind,
		Geometry: geo,
		Options:  o,
		Fill:     rough.IsClosed(kind, geo),
		Width:    80,
		nextSeed: rough.NewSeed,
	}
	m.regenerate()
	return m
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		o := &m.Options
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.Chosen = true
			return m, tea.Quit
		case "right", "l":
			o.Seed = (o.Seed + 1) % rough.MaxSeed
		case "left", "h":
			o.Seed = (o.Seed - 1 + rough.MaxSeed) % rough.MaxSeed
		case "r":
			o.Seed = m.nextSeed()
		case "up", "k":
			o.Roughness += roughnessStep
		case "down", "j":
			o.Roughness = max(0, o.Roughness-roughnessStep)
		case "b":
			o.Bowing += bowingStep
		case "B":
			o.Bowing -= bowingStep
		case "s":
			o.DisableMultiStroke = !o.DisableMultiStroke
		case "z":
			if o.FillStyle == rough.FillZigzag {
				o.FillStyle = rough.FillHachure
			} else {
				o.FillStyle = rough.FillZigzag
			}
		case "f":
			m.Fill = !m.Fill && rough.IsClosed(m.Kind, m.Geometry)
		default:
			return m, nil
		}
		m.regenerate()
	case tea.WindowSizeMsg:
		m.Width = max(msg.Width, 20)
	}
	return m, nil
}

func (m *ExplorerModel) regenerate() {
	g := rough.New(m.Options)
	m.fillOps = nil
	m.stroke, m.err = g.Generate(m.Kind, m.Geometry)
	if m.err == nil && m.Fill {
		m.fillOps, m.err = g.FillShape(m.Kind, m.Geometry)
	}
}

// Path returns the serialized outline for the current settings.
func (m ExplorerModel) Path() string {
	return rough.Serialize(m.stroke, false)
}

func (m ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore " + string(m.Kind)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ seed  r random  ↑/↓ roughness  b/B bowing  s single stroke  f fill  z zigzag  ⏎ choose  q quit"))
	b.WriteString("\n\n")

	o := m.Options
	rows := [][]string{
		{"seed", fmt.Sprint(o.Seed)},
		{"roughness", fmt.Sprint(o.Roughness)},
		{"bowing", fmt.Sprint(o.Bowing)},
		{"single stroke", fmt.Sprint(o.DisableMultiStroke)},
		{"fill", fillLabel(m.Fill, o.FillStyle)},
		{"ops", fmt.Sprintf("%d stroke, %d fill", len(m.stroke), len(m.fillOps))},
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return listSelectedStyle
		})
	b.WriteString(t.Render())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(listErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}
	for _, line := range wrap(m.Path(), m.Width, previewLines) {
		b.WriteString(listDimStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func fillLabel(fill bool, style rough.FillStyle) string {
	if !fill {
		return "off"
	}
	return string(style)
}

// wrap cuts s into at most n lines of width w, marking truncation with an
// ellipsis.
func wrap(s string, w, n int) []string {
	var lines []string
	for len(s) > 0 && len(lines) < n {
		if len(s) <= w {
			return append(lines, s)
		}
		lines = append(lines, s[:w])
		s = s[w:]
	}
	if len(s) > 0 && len(lines) > 0 {
		last := lines[len(lines)-1]
		lines[len(lines)-1] = last[:len(last)-1] + "…"
	}
	return lines
}
