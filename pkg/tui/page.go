package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/valmirmacedo/cancella-cli/pkg/api"
	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/schemas"
	"github.com/valmirmacedo/cancella-cli/pkg/table"
	"github.com/valmirmacedo/cancella-cli/pkg/validators"
)

// searchDebounce is how long typing in the search box is left alone
// before a fetch fires.
const searchDebounce = 500 * time.Millisecond

const requestTimeout = 10 * time.Second

// PageModel is one entity collection's screen: a paginated record list
// with search, inline editing and deletion. Tabular and compact card
// layouts share the same model; the settings decide which one renders.
type PageModel struct {
	entity   models.Entity
	client   *api.Client
	settings *models.Settings
	schema   table.Schema

	editor    *table.Editor
	tableView *table.TableRenderer
	cardView  *table.CardRenderer
	confirm   *ConfirmationModel

	records    []table.Record
	count      int
	page       int
	totalPages int
	cursor     int
	loading    bool

	searchInput textinput.Model
	searching   bool
	searchSeq   int

	spinner spinner.Model

	// fieldIdx is the focused column among the editable ones while an
	// edit is in progress.
	fieldIdx int

	// pendingSave carries the payload handed over by the editor's
	// OnSave callback until the page turns it into a command.
	pendingSave *savePayload

	badge *models.PackageBadge

	width  int
	height int
}

type savePayload struct {
	rowID   string
	payload table.Record
}

// NewPageModel creates the screen for one entity collection.
func NewPageModel(entity models.Entity, client *api.Client, settings *models.Settings) *PageModel {
	schema := schemas.ForEntity(entity)

	input := textinput.New()
	input.Placeholder = "Buscar..."
	input.CharLimit = 80
	input.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &PageModel{
		entity:      entity,
		client:      client,
		settings:    settings,
		schema:      schema,
		confirm:     NewConfirmation(),
		page:        1,
		totalPages:  1,
		searchInput: input,
		spinner:     sp,
	}

	m.editor = table.NewEditor(table.BufferInternal, table.Callbacks{
		OnSave: func(rowID string, payload table.Record) {
			m.pendingSave = &savePayload{rowID: rowID, payload: payload}
		},
	})

	m.tableView = table.NewTableRenderer(schema, 80, 20)
	m.tableView.Editor = m.editor
	m.tableView.IsActive = true
	m.tableView.ActionsView = func(row table.Record, editing bool) string {
		if editing {
			return table.SaveButtonStyle.Render("Salvar") + " " + table.CancelButtonStyle.Render("Cancelar")
		}
		return table.ButtonStyle.Render("Editar")
	}

	m.cardView = table.NewCardRenderer(schema, 80)
	m.cardView.Editor = m.editor

	return m
}

func (m *PageModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// SetSize updates the page dimensions.
func (m *PageModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	body := height - 6 // title, search, help and status rows
	if body < 5 {
		body = 5
	}
	m.tableView.SetSize(width, body)
	m.cardView.SetSize(width)
}

func (m *PageModel) compact() bool {
	return m.settings != nil && m.settings.UI.CompactCards
}

func (m *PageModel) currentRecord() (table.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return nil, false
	}
	return m.records[m.cursor], true
}

func (m *PageModel) editableColumns() []table.Column {
	return m.schema.EditableColumns(m.compact())
}

func (m *PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case recordsLoadedMsg:
		if msg.entity != m.entity {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, status("Erro ao carregar %s: %v", m.entity, msg.err)
		}
		m.records = msg.result.Records
		m.count = msg.result.Count
		m.page = msg.result.CurrentPage
		m.totalPages = msg.result.TotalPages
		if m.cursor >= len(m.records) {
			m.cursor = 0
		}
		m.syncRenderers()
		return m, nil

	case recordSavedMsg:
		if msg.entity != m.entity {
			return m, nil
		}
		if msg.err != nil {
			// the buffer is already gone; reopen the row so the user
			// can try again
			for _, rec := range m.records {
				if rec.ID() == msg.rowID {
					m.editor.BeginEdit(rec)
					break
				}
			}
			m.syncRenderers()
			return m, status("Erro ao salvar: %v", msg.err)
		}
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.spinner.Tick, status("Registro salvo"))

	case recordDeletedMsg:
		if msg.entity != m.entity {
			return m, nil
		}
		if msg.err != nil {
			return m, status("Erro ao excluir: %v", msg.err)
		}
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.spinner.Tick, status("Registro excluído"))

	case badgeLoadedMsg:
		if msg.err != nil {
			return m, status("Erro ao buscar encomendas: %v", msg.err)
		}
		badge := msg.badge
		m.badge = &badge
		return m, nil

	case searchDebounceMsg:
		if msg.entity != m.entity || msg.seq != m.searchSeq {
			return m, nil
		}
		m.page = 1
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
	}

	return m, nil
}

func (m *PageModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm.Active() {
		return m, m.confirm.Update(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.editor.State() == table.StateEditing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.tableView.SetCursor(m.cursor)
			m.cardView.Cursor = m.cursor
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.records)-1 {
			m.cursor++
			m.tableView.SetCursor(m.cursor)
			m.cardView.Cursor = m.cursor
		}
		return m, nil

	case "enter", "e":
		if rec, ok := m.currentRecord(); ok {
			m.editor.BeginEdit(rec)
			m.fieldIdx = 0
			m.syncRenderers()
		}
		return m, nil

	case "d":
		return m.promptDelete()

	case "left", "[":
		return m.gotoPage(m.page - 1)

	case "right", "]":
		return m.gotoPage(m.page + 1)

	case "r":
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.spinner.Tick)

	case "b":
		if m.entity != models.EntityPackages {
			return m, nil
		}
		rec, ok := m.currentRecord()
		if !ok {
			return m, nil
		}
		unidade := fmt.Sprint(rec["unidade_id"])
		return m, m.badgeCmd(unidade)
	}

	return m, nil
}

func (m *PageModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.page = 1
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}

	m.searchSeq++
	seq := m.searchSeq
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{entity: m.entity, seq: seq}
	})
	return m, tea.Batch(cmd, debounce)
}

func (m *PageModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.editableColumns()
	if len(cols) == 0 {
		m.editor.Cancel()
		m.syncRenderers()
		return m, nil
	}
	if m.fieldIdx >= len(cols) {
		m.fieldIdx = 0
	}
	col := cols[m.fieldIdx]
	rowID := m.editor.EditingRow()

	switch msg.String() {
	case "esc":
		m.editor.Cancel()
		m.syncRenderers()
		return m, nil

	case "enter", "ctrl+s":
		m.editor.Save(rowID)
		m.syncRenderers()
		if m.pendingSave == nil {
			return m, nil
		}
		pending := m.pendingSave
		m.pendingSave = nil
		return m, m.saveCmd(pending.rowID, pending.payload)

	case "tab":
		m.fieldIdx = (m.fieldIdx + 1) % len(cols)
		return m, nil

	case "shift+tab":
		m.fieldIdx = (m.fieldIdx - 1 + len(cols)) % len(cols)
		return m, nil

	case "left", "right":
		m.cycleStatus(col, msg.String() == "right")
		m.syncRenderers()
		return m, nil

	case " ":
		if m.toggleBool(col) {
			m.syncRenderers()
			return m, nil
		}
		m.appendRune(col, ' ')
		m.syncRenderers()
		return m, nil

	case "backspace":
		value := m.bufferString(col.Key)
		if value != "" {
			runes := []rune(value)
			m.changeField(col, string(runes[:len(runes)-1]))
		}
		m.syncRenderers()
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			m.appendRune(col, r)
		}
		m.syncRenderers()
	}
	return m, nil
}

// cycleStatus advances an enumerated status field through its choices.
func (m *PageModel) cycleStatus(col table.Column, forward bool) {
	rec, ok := m.currentEditRecord()
	if !ok {
		return
	}
	_, isString := rec[col.Key].(string)
	if col.Kind != table.KindEnumeratedStatus && !(col.Key == "status" && isString) {
		return
	}

	current := m.bufferString(col.Key)
	idx := 0
	for i, choice := range table.StatusChoices {
		if choice == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(table.StatusChoices)
	} else {
		idx = (idx - 1 + len(table.StatusChoices)) % len(table.StatusChoices)
	}
	m.editor.ChangeField(col.Key, table.StatusChoices[idx])
}

// toggleBool flips a boolean status field, reporting whether the
// column was one.
func (m *PageModel) toggleBool(col table.Column) bool {
	rec, ok := m.currentEditRecord()
	if !ok {
		return false
	}
	value := m.editor.FieldValue(col.Key, rec)
	b, isBool := value.(bool)
	if !isBool {
		return false
	}
	m.editor.ChangeField(col.Key, !b)
	return true
}

func (m *PageModel) appendRune(col table.Column, r rune) {
	m.changeField(col, m.bufferString(col.Key)+string(r))
}

// changeField routes a text change through the editor, applying the
// plate mask on plate fields so invalid characters never reach the
// buffer.
func (m *PageModel) changeField(col table.Column, value string) {
	if col.Key == "placa_veiculo" || col.Key == "placa" {
		value = validators.MaskPlate(value)
	}
	m.editor.ChangeField(col.Key, value)
}

func (m *PageModel) bufferString(key string) string {
	rec, ok := m.currentEditRecord()
	if !ok {
		return ""
	}
	value := m.editor.FieldValue(key, rec)
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// currentEditRecord finds the record behind the active edit; the
// cursor may have moved since the edit began.
func (m *PageModel) currentEditRecord() (table.Record, bool) {
	rowID := m.editor.EditingRow()
	for _, rec := range m.records {
		if rec.ID() == rowID {
			return rec, true
		}
	}
	return nil, false
}

func (m *PageModel) promptDelete() (tea.Model, tea.Cmd) {
	rec, ok := m.currentRecord()
	if !ok {
		return m, nil
	}
	rowID := rec.ID()

	m.confirm.Show(ConfirmationConfig{
		Message:     fmt.Sprintf("Excluir o registro %s?", rowID),
		Warning:     "Esta ação não pode ser desfeita",
		Destructive: true,
	}, func() tea.Cmd {
		return m.deleteCmd(rowID)
	}, nil)

	return m, nil
}

func (m *PageModel) gotoPage(target int) (tea.Model, tea.Cmd) {
	if target < 1 || target > m.totalPages || target == m.page {
		return m, nil
	}
	m.page = target
	m.loading = true
	return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m *PageModel) syncRenderers() {
	m.tableView.SetRecords(m.records)
	m.tableView.SetCursor(m.cursor)
	m.tableView.SetLoading(m.loading)
	m.tableView.SetPage(m.page, m.totalPages)
	m.tableView.Refresh()

	m.cardView.Records = m.records
	m.cardView.Cursor = m.cursor
	m.cardView.Loading = m.loading
	m.cardView.CurrentPage = m.page
	m.cardView.TotalPages = m.totalPages
}

func (m *PageModel) loadCmd() tea.Cmd {
	entity := m.entity
	client := m.client
	page := m.page
	search := m.searchInput.Value()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		result, err := client.List(ctx, entity, page, search)
		return recordsLoadedMsg{entity: entity, result: result, err: err}
	}
}

func (m *PageModel) saveCmd(rowID string, payload table.Record) tea.Cmd {
	entity := m.entity
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := client.Update(ctx, entity, rowID, payload)
		return recordSavedMsg{entity: entity, rowID: rowID, err: err}
	}
}

func (m *PageModel) deleteCmd(rowID string) tea.Cmd {
	entity := m.entity
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := client.Delete(ctx, entity, rowID)
		return recordDeletedMsg{entity: entity, rowID: rowID, err: err}
	}
}

func (m *PageModel) badgeCmd(unidadeID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		badge, err := client.PackageBadge(ctx, unidadeID)
		return badgeLoadedMsg{badge: badge, err: err}
	}
}

func (m *PageModel) View() string {
	var b strings.Builder

	search := SearchLabelStyle.Render("Buscar:") + " " + m.searchInput.View()
	if m.loading {
		search += "  " + m.spinner.View()
	}
	b.WriteString(search)
	b.WriteString("\n")

	if m.entity == models.EntityPackages && m.badge != nil {
		b.WriteString(m.badgeView())
		b.WriteString("\n")
	}

	m.syncRenderers()
	if m.compact() {
		b.WriteString(m.cardView.View())
	} else {
		b.WriteString(m.tableView.View())
	}
	b.WriteString("\n")

	if m.confirm.Active() {
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.helpText()))
	return b.String()
}

func (m *PageModel) badgeView() string {
	style := BadgeGreenStyle
	switch m.badge.BadgeColor {
	case "yellow":
		style = BadgeYellowStyle
	case "red":
		style = BadgeRedStyle
	}
	return style.Render(fmt.Sprintf("● %d encomendas pendentes", m.badge.Total)) +
		HelpStyle.Render(fmt.Sprintf("  (%d hoje, %d até 3 dias, %d atrasadas)",
			m.badge.Green, m.badge.Yellow, m.badge.Red))
}

func (m *PageModel) helpText() string {
	if m.searching {
		return "enter: buscar • esc: fechar busca"
	}
	if m.editor.State() == table.StateEditing {
		return "tab: próximo campo • espaço: alternar • ←/→: status • enter: salvar • esc: cancelar"
	}
	help := "↑/↓: navegar • enter: editar • d: excluir • /: buscar • ←/→: página • r: recarregar"
	if m.entity == models.EntityPackages {
		help += " • b: pendências"
	}
	return help
}

func status(format string, args ...any) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(fmt.Sprintf(format, args...))
	}
}
