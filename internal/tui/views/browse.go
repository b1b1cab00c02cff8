package views

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rendis/triptap/internal/engine/dataset"
	"github.com/rendis/triptap/internal/engine/recommend"
	"github.com/rendis/triptap/internal/model"
	"github.com/rendis/triptap/internal/tui/styles"
)

type browseFocus int

const (
	focusForm browseFocus = iota
	focusResults
)

// Form field indices — fieldDSLR and fieldNearby are virtual (not textinputs)
const (
	fieldZone = iota
	fieldType
	fieldFee
	fieldDSLR
	fieldNearby
	fieldCount
)

var dslrOptions = []string{"", "Yes", "No"}

// BrowseModel is the filter form + results table over one loaded dataset.
type BrowseModel struct {
	path   string
	table  []model.Destination
	zones  []string
	types  []string
	loaded bool

	inputs  []textinput.Model
	focused int
	dslrIdx int
	nearby  bool

	suggestions []string
	suggIdx     int

	focus     browseFocus
	results   []model.Result
	resTable  table.Model
	selected  int
	info      string
	errMsg    string
	exportMsg string
	loadErr   error

	width  int
	height int
}

type datasetLoadedMsg struct {
	Table []model.Destination
	Err   error
}

func NewBrowseModel(path string) BrowseModel {
	inputs := make([]textinput.Model, fieldCount)
	inputs[fieldZone] = newInput("any zone...", 30)
	inputs[fieldType] = newInput("e.g. museum, temple...", 30)
	inputs[fieldFee] = newInput("no limit", 10)
	inputs[fieldDSLR] = textinput.New()   // placeholder, never used
	inputs[fieldNearby] = textinput.New() // placeholder, never used

	m := BrowseModel{
		path:     path,
		inputs:   inputs,
		focused:  fieldZone,
		suggIdx:  -1,
		selected: -1,
		nearby:   true,
	}
	m.inputs[fieldZone].Focus()
	return m
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	if width > 0 {
		ti.Width = width
	}
	return ti
}

func (m BrowseModel) Init() tea.Cmd {
	path := m.path
	return tea.Batch(textinput.Blink, func() tea.Msg {
		t, err := dataset.Load(path)
		return datasetLoadedMsg{Table: t, Err: err}
	})
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case datasetLoadedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err
			return m, nil
		}
		m.table = msg.Table
		m.zones = dataset.Zones(m.table)
		m.types = dataset.Types(m.table)
		m.loaded = true
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if len(m.results) > 0 {
			m.buildResultsTable()
		}
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusForm {
			return m.updateForm(msg)
		}
		return m.updateResults(msg)
	}

	return m, nil
}

func (m BrowseModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateToHome{} }

	case "up":
		if m.suggestionField() && len(m.suggestions) > 0 && m.suggIdx > 0 {
			m.suggIdx--
			return m, nil
		}
		m.errMsg = ""
		return m, m.focusPrev()

	case "down":
		if m.suggestionField() && len(m.suggestions) > 0 && m.suggIdx < len(m.suggestions)-1 {
			m.suggIdx++
			return m, nil
		}
		m.errMsg = ""
		return m, m.focusNext()

	case "tab":
		m.errMsg = ""
		if m.suggestionField() && len(m.suggestions) > 0 {
			m.selectSuggestion()
		}
		return m, m.focusNext()

	case "shift+tab":
		m.errMsg = ""
		return m, m.focusPrev()

	case "left":
		switch m.focused {
		case fieldDSLR:
			m.dslrIdx = (m.dslrIdx + len(dslrOptions) - 1) % len(dslrOptions)
			return m, nil
		case fieldNearby:
			m.nearby = !m.nearby
			return m, nil
		}

	case "right":
		switch m.focused {
		case fieldDSLR:
			m.dslrIdx = (m.dslrIdx + 1) % len(dslrOptions)
			return m, nil
		case fieldNearby:
			m.nearby = !m.nearby
			return m, nil
		}

	case " ":
		if m.focused == fieldNearby {
			m.nearby = !m.nearby
			return m, nil
		}

	case "enter":
		if m.suggestionField() && len(m.suggestions) > 0 {
			m.selectSuggestion()
			return m, m.focusNext()
		}
		m.runQuery()
		return m, nil
	}

	// Update focused textinput (skip virtual fields)
	var cmd tea.Cmd
	if m.focused == fieldZone || m.focused == fieldType || m.focused == fieldFee {
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	}

	if m.suggestionField() {
		m.updateSuggestions()
	}

	return m, cmd
}

func (m BrowseModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		m.focus = focusForm
		m.inputs[m.focused].Focus()
		return m, textinput.Blink
	case "e":
		m.exportResults()
		return m, nil
	case "q":
		return m, func() tea.Msg { return NavigateToHome{} }
	}

	var cmd tea.Cmd
	m.resTable, cmd = m.resTable.Update(msg)
	if cursor := m.resTable.Cursor(); cursor != m.selected && cursor < len(m.results) {
		m.selected = cursor
	}
	return m, cmd
}

func (m BrowseModel) suggestionField() bool {
	return m.focused == fieldZone || m.focused == fieldType
}

func (m *BrowseModel) suggestionSource() []string {
	if m.focused == fieldZone {
		return m.zones
	}
	return m.types
}

func (m *BrowseModel) selectSuggestion() {
	if m.suggIdx >= 0 && m.suggIdx < len(m.suggestions) {
		m.inputs[m.focused].SetValue(m.suggestions[m.suggIdx])
		m.suggestions = nil
		m.suggIdx = -1
	}
}

func (m *BrowseModel) updateSuggestions() {
	raw := strings.TrimSpace(m.inputs[m.focused].Value())
	if raw == "" {
		m.suggestions = nil
		m.suggIdx = -1
		return
	}

	q := normalize(raw)
	var matches []string
	for _, v := range m.suggestionSource() {
		if strings.Contains(normalize(v), q) {
			matches = append(matches, v)
			if len(matches) >= 5 {
				break
			}
		}
	}
	m.suggestions = matches
	if len(matches) > 0 {
		if m.suggIdx < 0 || m.suggIdx >= len(matches) {
			m.suggIdx = 0
		}
	} else {
		m.suggIdx = -1
	}
}

func (m *BrowseModel) focusNext() tea.Cmd {
	m.blurFocused()
	m.suggestions = nil
	m.suggIdx = -1
	m.focused++
	if m.focused >= fieldCount {
		m.focused = fieldZone
	}
	return m.focusCurrent()
}

func (m *BrowseModel) focusPrev() tea.Cmd {
	m.blurFocused()
	m.suggestions = nil
	m.suggIdx = -1
	m.focused--
	if m.focused < fieldZone {
		m.focused = fieldNearby
	}
	return m.focusCurrent()
}

func (m *BrowseModel) blurFocused() {
	if m.focused == fieldZone || m.focused == fieldType || m.focused == fieldFee {
		m.inputs[m.focused].Blur()
	}
}

func (m *BrowseModel) focusCurrent() tea.Cmd {
	if m.focused == fieldZone || m.focused == fieldType || m.focused == fieldFee {
		m.inputs[m.focused].Focus()
		return textinput.Blink
	}
	return nil
}

func (m *BrowseModel) runQuery() {
	if !m.loaded {
		return
	}

	criteria := model.Criteria{
		Zone:          strings.TrimSpace(m.inputs[fieldZone].Value()),
		Type:          strings.TrimSpace(m.inputs[fieldType].Value()),
		DSLR:          dslrOptions[m.dslrIdx],
		IncludeNearby: m.nearby,
	}

	feeStr := strings.TrimSpace(m.inputs[fieldFee].Value())
	if feeStr != "" {
		fee, err := strconv.ParseFloat(feeStr, 64)
		if err != nil || fee < 0 {
			m.errMsg = "Max fee must be a non-negative number"
			return
		}
		criteria.MaxFee = &fee
	}

	m.info = ""
	m.errMsg = ""
	m.exportMsg = ""
	m.results = recommend.Assemble(m.table, criteria)

	if len(m.results) == 0 {
		m.info = "No matching destinations found. Try adjusting the filters."
		m.selected = -1
		return
	}

	m.buildResultsTable()
	m.selected = 0
	m.focus = focusResults
	m.blurFocused()
}

func (m *BrowseModel) buildResultsTable() {
	nameW := 30
	cityW := 16
	ratingW := 6
	feeW := 9
	timeW := 20
	if m.width > 100 {
		extra := m.width - 100
		nameW += extra * 4 / 10
		cityW += extra * 2 / 10
		timeW += extra * 2 / 10
	}

	columns := []table.Column{
		{Title: "Name", Width: nameW},
		{Title: "City", Width: cityW},
		{Title: "Rating", Width: ratingW},
		{Title: "Fee ₹", Width: feeW},
		{Title: "Best Time", Width: timeW},
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rating := ""
		if r.Rating > 0 {
			rating = fmt.Sprintf("%.1f", r.Rating)
		}
		rows[i] = table.Row{
			truncate(r.Name, nameW),
			truncate(r.City, cityW),
			rating,
			fmt.Sprintf("%.0f", r.Fee),
			truncate(r.BestTime, timeW),
		}
	}

	h := m.height/2 - 4
	if h < 5 {
		h = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(h),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Secondary)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.Primary).
		Bold(true)
	t.SetStyles(s)
	m.resTable = t
}

func (m *BrowseModel) exportResults() {
	if len(m.results) == 0 {
		return
	}

	dir := filepath.Dir(m.path)
	base := strings.TrimSuffix(filepath.Base(m.path), filepath.Ext(m.path))
	csvPath := filepath.Join(dir, base+"_picks.csv")

	f, err := os.Create(csvPath)
	if err != nil {
		m.exportMsg = fmt.Sprintf("Export error: %v", err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	w.Write([]string{"name", "city", "rating", "fee_inr", "best_time", "nearby"})
	for _, r := range m.results {
		var nearby []string
		for _, n := range r.Nearby {
			nearby = append(nearby, n.Name)
		}
		w.Write([]string{
			r.Name,
			r.City,
			fmt.Sprintf("%.1f", r.Rating),
			fmt.Sprintf("%.2f", r.Fee),
			r.BestTime,
			strings.Join(nearby, "; "),
		})
	}

	m.exportMsg = fmt.Sprintf("Exported %d rows to %s", len(m.results), csvPath)
}

// normalize removes accents/diacritics and lowercases text for fuzzy matching.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)
	result, _, _ := transform.String(t, strings.ToLower(s))
	return result
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func (m BrowseModel) View() string {
	if m.loadErr != nil {
		var b strings.Builder
		b.WriteString(styles.ErrorText.Render(fmt.Sprintf("Error loading dataset: %v", m.loadErr)))
		b.WriteString("\n\n")
		b.WriteString(styles.StatusBar.Render("esc back"))
		return styles.Border.Render(b.String())
	}

	var b strings.Builder

	title := fmt.Sprintf("Browse: %s", filepath.Base(m.path))
	b.WriteString(styles.Title.Render(title))
	if m.loaded {
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).
			Render(fmt.Sprintf(" %d destinations", len(m.table))))
	}
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Italic(true).
			Render("Loading dataset..."))
		return styles.Border.Render(b.String())
	}

	// Filter form
	b.WriteString(m.renderField("Zone:", fieldZone))
	if m.focused == fieldZone && len(m.suggestions) > 0 {
		b.WriteString(m.renderSuggestions())
	}
	b.WriteString(m.renderField("Type:", fieldType))
	if m.focused == fieldType && len(m.suggestions) > 0 {
		b.WriteString(m.renderSuggestions())
	}
	b.WriteString(m.renderField("Max Fee (₹):", fieldFee))
	b.WriteString(m.renderDSLR())
	b.WriteString(m.renderNearby())

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorText.Render("  " + m.errMsg))
		b.WriteString("\n")
	}
	if m.info != "" {
		b.WriteString("\n")
		b.WriteString(styles.InfoText.Render("  " + m.info))
		b.WriteString("\n")
	}

	// Results
	if len(m.results) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d destinations", len(m.results))))
		b.WriteString("\n")
		b.WriteString(m.resTable.View())
		b.WriteString("\n")
		b.WriteString(m.renderCard())
	}

	if m.exportMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Success).Render(m.exportMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.focus == focusForm {
		b.WriteString(styles.StatusBar.Render("enter search • tab next field • ←→ toggle • esc back"))
	} else {
		b.WriteString(styles.StatusBar.Render("↑↓ navigate • e export • tab filters • q back"))
	}

	return styles.Border.Render(b.String())
}

func (m BrowseModel) renderField(label string, idx int) string {
	l := styles.Label.Render(label)
	v := m.inputs[idx].View()
	return fmt.Sprintf("%s %s\n", l, v)
}

func (m BrowseModel) renderSuggestions() string {
	var sb strings.Builder
	active := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(styles.Muted)

	for i, s := range m.suggestions {
		if i == m.suggIdx {
			sb.WriteString(active.Render("  > " + s))
		} else {
			sb.WriteString(inactive.Render("    " + s))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m BrowseModel) renderDSLR() string {
	label := styles.Label.Render("DSLR Allowed:")

	active := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	inactive := lipgloss.NewStyle().Foreground(styles.Muted)

	var parts []string
	for i, opt := range dslrOptions {
		display := opt
		if display == "" {
			display = "Any"
		}
		if i == m.dslrIdx {
			parts = append(parts, active.Render("< "+display+" >"))
		} else {
			parts = append(parts, inactive.Render(display))
		}
	}

	line := fmt.Sprintf("%s %s", label, strings.Join(parts, "   "))
	if m.focused == fieldDSLR {
		line += lipgloss.NewStyle().Foreground(styles.Secondary).Render(" ←→")
	}
	return line + "\n"
}

func (m BrowseModel) renderNearby() string {
	label := styles.Label.Render("Show Nearby:")

	check := "[ ]"
	if m.nearby {
		check = "[x]"
	}
	style := styles.InactiveItem
	if m.focused == fieldNearby {
		style = styles.ActiveItem
	}

	line := fmt.Sprintf("%s %s", label, style.Render(check))
	if m.focused == fieldNearby {
		line += lipgloss.NewStyle().Foreground(styles.Secondary).Render(" space toggle")
	}
	return line + "\n"
}

func (m BrowseModel) renderCard() string {
	if m.selected < 0 || m.selected >= len(m.results) {
		return ""
	}

	r := m.results[m.selected]
	var sb strings.Builder

	name := lipgloss.NewStyle().Bold(true).Foreground(styles.Text).Render(r.Name)
	city := lipgloss.NewStyle().Foreground(styles.Muted).Render(" — " + r.City)
	sb.WriteString(name + city + "\n")

	rating := lipgloss.NewStyle().Foreground(styles.Warning).
		Render(fmt.Sprintf("★ %.1f", r.Rating))
	fee := styles.Value.Render(fmt.Sprintf("  Fee: ₹%.0f", r.Fee))
	sb.WriteString(rating + fee + "\n")

	if r.BestTime != "" {
		sb.WriteString(styles.Value.Render("Best time: " + r.BestTime))
		sb.WriteString("\n")
	}

	if len(r.Nearby) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Nearby in " + r.City))
		sb.WriteString("\n")
		for _, n := range r.Nearby {
			line := fmt.Sprintf("• %s (%s) — ★ %.1f", n.Name, n.Type, n.Rating)
			sb.WriteString(styles.Value.Render(line))
			sb.WriteString("\n")
		}
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Muted).
		Padding(0, 1).
		Render(sb.String())

	return card
}

// NavigateToHome signals navigation back to the home menu.
type NavigateToHome struct{}

// NavigateToBrowse signals opening a dataset in the browse view.
type NavigateToBrowse struct {
	Path string
}
