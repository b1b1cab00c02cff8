package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rendis/triptap/internal/engine/geo"
	"github.com/rendis/triptap/internal/model"
	"github.com/rendis/triptap/internal/tui/styles"
)

const (
	travelFieldFrom = iota
	travelFieldTo
	travelFieldCount
)

// TravelModel is the two-field travel-cost calculator.
type TravelModel struct {
	geocoder geo.Geocoder
	inputs   []textinput.Model
	focused  int
	spin     spinner.Model
	loading  bool
	estimate *model.TravelEstimate
	errMsg   string
}

type travelDoneMsg struct {
	Estimate *model.TravelEstimate
	Missed   []string
	Err      error
}

func NewTravelModel(g geo.Geocoder) TravelModel {
	inputs := make([]textinput.Model, travelFieldCount)
	inputs[travelFieldFrom] = newInput("e.g. Delhi", 30)
	inputs[travelFieldTo] = newInput("e.g. Agra", 30)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	m := TravelModel{
		geocoder: g,
		inputs:   inputs,
		spin:     sp,
	}
	m.inputs[travelFieldFrom].Focus()
	return m
}

func (m TravelModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TravelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case travelDoneMsg:
		m.loading = false
		switch {
		case msg.Err != nil:
			m.errMsg = fmt.Sprintf("Geocoding failed: %v", msg.Err)
		case len(msg.Missed) > 0:
			m.errMsg = fmt.Sprintf("Could not determine location of %s. Please check the names.",
				strings.Join(msg.Missed, ", "))
		default:
			m.estimate = msg.Estimate
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading {
			// One request at a time; only allow bailing out.
			if msg.String() == "esc" {
				return m, func() tea.Msg { return NavigateToHome{} }
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateToHome{} }

		case "tab", "down":
			return m, m.focusField((m.focused + 1) % travelFieldCount)

		case "shift+tab", "up":
			return m, m.focusField((m.focused + travelFieldCount - 1) % travelFieldCount)

		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *TravelModel) focusField(idx int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = idx
	m.inputs[m.focused].Focus()
	return textinput.Blink
}

func (m TravelModel) submit() (tea.Model, tea.Cmd) {
	from := strings.TrimSpace(m.inputs[travelFieldFrom].Value())
	to := strings.TrimSpace(m.inputs[travelFieldTo].Value())
	if from == "" || to == "" {
		m.errMsg = "Both locations are required"
		return m, nil
	}

	m.errMsg = ""
	m.estimate = nil
	m.loading = true

	g := m.geocoder
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		est, missed, err := geo.Estimate(g, from, to)
		return travelDoneMsg{Estimate: est, Missed: missed, Err: err}
	})
}

func (m TravelModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Travel Distance & Cost"))
	b.WriteString("\n\n")

	b.WriteString(m.renderField("From:", travelFieldFrom))
	b.WriteString(m.renderField("To:", travelFieldTo))

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render("Resolving locations..."))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render("  " + m.errMsg))
		b.WriteString("\n")
	}

	if m.estimate != nil {
		b.WriteString("\n")
		b.WriteString(m.renderEstimate())
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusBar.Render("enter calculate • tab switch field • esc back"))

	return styles.Border.Render(b.String())
}

func (m TravelModel) renderField(label string, idx int) string {
	l := styles.Label.Render(label)
	v := m.inputs[idx].View()
	return fmt.Sprintf("%s %s\n", l, v)
}

func (m TravelModel) renderEstimate() string {
	est := m.estimate
	var sb strings.Builder

	dist := lipgloss.NewStyle().Bold(true).Foreground(styles.Success).
		Render(fmt.Sprintf("%.2f km", est.DistanceKm))
	sb.WriteString(fmt.Sprintf("%s → %s: %s\n\n", est.From, est.To, dist))

	sb.WriteString(styles.Subtitle.Render("Estimated travel costs"))
	sb.WriteString("\n")

	modes := make([]string, 0, len(est.Costs))
	for mode := range est.Costs {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	for _, mode := range modes {
		line := fmt.Sprintf("%-16s ₹%.2f", mode, est.Costs[mode])
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Text).Render(line))
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Muted).
		Padding(0, 1).
		Render(sb.String())
}
