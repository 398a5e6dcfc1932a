package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/valmirmacedo/cancella-cli/pkg/api"
	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/schemas"
	"github.com/valmirmacedo/cancella-cli/pkg/table"
)

// App hosts one page per backend collection and routes input to the
// active one. Pages are created lazily on first visit.
type App struct {
	client   *api.Client
	settings *models.Settings

	active    int
	pages     []*PageModel
	width     int
	height    int
	statusMsg string
}

// NewApp creates the root model.
func NewApp(client *api.Client, settings *models.Settings) *App {
	return &App{
		client:   client,
		settings: settings,
		pages:    make([]*PageModel, len(models.Entities)),
	}
}

func (a *App) Init() tea.Cmd {
	return a.page(a.active).Init()
}

// page returns the page for the given entity index, creating it on
// first use.
func (a *App) page(index int) *PageModel {
	if a.pages[index] == nil {
		a.pages[index] = NewPageModel(models.Entities[index], a.client, a.settings)
		if a.width > 0 {
			a.pages[index].SetSize(a.width, a.height)
		}
	}
	return a.pages[index]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, p := range a.pages {
			if p != nil {
				p.SetSize(msg.Width, msg.Height)
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if cmd, handled := a.handleGlobalKey(msg); handled {
			return a, cmd
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	// Route updates to the active page
	m, cmd := a.page(a.active).Update(msg)
	if p, ok := m.(*PageModel); ok {
		a.pages[a.active] = p
	}
	return a, cmd
}

// handleGlobalKey intercepts page switching and quit keys; anything
// typed while searching or editing belongs to the page.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	current := a.page(a.active)
	if current.searching || current.editor.State() == table.StateEditing || current.confirm.Active() {
		return nil, false
	}

	switch msg.String() {
	case "q":
		return tea.Quit, true

	case "tab":
		return a.switchTo((a.active + 1) % len(models.Entities)), true

	case "shift+tab":
		return a.switchTo((a.active - 1 + len(models.Entities)) % len(models.Entities)), true
	}

	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(models.Entities) {
		return a.switchTo(n - 1), true
	}

	return nil, false
}

func (a *App) switchTo(index int) tea.Cmd {
	if index == a.active {
		return nil
	}
	a.active = index
	a.statusMsg = ""
	return a.page(index).Init()
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Carregando..."
	}

	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(a.page(a.active).View())

	content := b.String()
	if a.statusMsg != "" {
		statusBar := StatusBarStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}
	return content
}

func (a *App) renderTabs() string {
	var tabs []string
	for i, entity := range models.Entities {
		label := schemas.Title(entity)
		if i == a.active {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return TitleStyle.Render("Cancella") + " " + strings.Join(tabs, "│")
}
