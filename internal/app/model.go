package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/logger"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/components"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/sidebar"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/ui/styles"
)

// Page defines the interface that every view implements. Pages read the
// current render pass from the shared State.
type Page interface {
	// Init initializes the page and returns any initial commands.
	Init() tea.Cmd

	// Update handles messages and returns the updated page and any commands.
	Update(msg tea.Msg) (Page, tea.Cmd)

	// View renders the page content.
	View() string

	// SetSize sets the available size for the page.
	SetSize(width, height int)

	// ShortHelp returns key bindings shown in the help overlay.
	ShortHelp() []key.Binding
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	About      key.Binding
	Dashboard  key.Binding
	FocusDates key.Binding
	Submit     key.Binding
	Escape     key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		About:      key.NewBinding(key.WithKeys("1", "a"), key.WithHelp("1/a", "about")),
		Dashboard:  key.NewBinding(key.WithKeys("2", "d"), key.WithHelp("2/d", "dashboard")),
		FocusDates: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "edit dates")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply dates")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave dates")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.About, k.Dashboard, k.FocusDates, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.About, k.Dashboard},
		{k.FocusDates, k.Submit, k.Escape},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Help, k.Quit},
	}
}

const (
	navbarHeight = 1
	footerHeight = 1
)

// Model is the main application model.
type Model struct {
	pages map[services.ViewID]Page

	// Shared state
	state    *State
	services *services.Manager
	commands *Commands
	keymap   KeyMap

	// UI components
	spinner  components.LoadingSpinner
	sidebar  *sidebar.Model
	viewport viewport.Model

	// Window dimensions
	width  int
	height int

	// UI state
	showHelp bool
	ready    bool
}

// NewModel initializes a new application model.
func NewModel(mgr *services.Manager) *Model {
	var bounds models.DateRange
	if mgr != nil {
		bounds = mgr.Bounds()
	}

	return &Model{
		pages:    make(map[services.ViewID]Page),
		state:    NewState(),
		services: mgr,
		commands: NewCommands(mgr),
		keymap:   DefaultKeyMap(),
		spinner:  components.NewSpinner("Loading..."),
		sidebar:  sidebar.New(bounds),
		viewport: viewport.New(0, 0),
	}
}

// SetPage registers the page that renders v.
func (m *Model) SetPage(v services.ViewID, p Page) {
	m.pages[v] = p
	if m.ready {
		m.updateSizes()
	}
}

// GetState returns the application state.
func (m *Model) GetState() *State {
	return m.state
}

// GetCommands returns the commands helper.
func (m *Model) GetCommands() *Commands {
	return m.commands
}


// Init starts the spinner and dispatches the program start event.
func (m *Model) Init() tea.Cmd {
	m.state.SetLoadingNotification("Loading dashboard...")

	cmds := []tea.Cmd{
		m.spinner.Tick(),
		defaultTickCmd(),
	}

	cmds = append(cmds, m.commands.Dispatch(services.StartEvent{}))

	for _, v := range services.NavigationViews {
		if p, ok := m.pages[v]; ok {
			cmds = append(cmds, p.Init())
		}
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	default:
		cmds = append(cmds, m.handleAppMsg(msg)...)
	}

	if _, isKey := msg.(tea.KeyMsg); !isKey {
		cmds = append(cmds, m.updatePages(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleAppMsg(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case TickMsg:
		m.state.ClearExpiredNotifications()
		cmds = append(cmds, defaultTickCmd())
	case RenderPassMsg:
		cmds = append(cmds, m.handleRenderPass(msg)...)
	case AddNotificationMsg:
		id := m.state.AddNotification(msg.Type, msg.Message, msg.Duration)
		if msg.Duration > 0 {
			cmds = append(cmds, m.commands.ClearNotification(id, msg.Duration))
		}
	case RemoveNotificationMsg:
		m.state.RemoveNotification(msg.ID)
	}
	return cmds
}

func (m *Model) handleRenderPass(msg RenderPassMsg) []tea.Cmd {
	var cmds []tea.Cmd
	pass := msg.Pass

	if !m.state.SetPass(pass) {
		logger.Debug("dropped stale render pass", "seq", pass.Seq)
		return nil
	}
	m.state.ClearLoadingNotification()

	if !m.sidebar.Focused() {
		m.sidebar.SetRange(pass.Range)
	}

	m.refreshContent()
	m.viewport.GotoTop()

	if pass.Snapshot != nil && pass.Snapshot.Failed() {
		logger.Warn("render pass has failed blocks", "seq", pass.Seq)
		cmds = append(cmds, m.commands.NotifyWarning("Some dashboard blocks could not be computed"))
	}
	return cmds
}

func (m *Model) dispatch(event services.Event) tea.Cmd {
	return m.track(m.commands.Dispatch(event))
}

// track marks the state as loading while cmd computes a pass.
func (m *Model) track(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		m.state.SetLoading(true)
	}
	return cmd
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.updateSizes()
}

func (m *Model) contentSize() (int, int) {
	width := max(0, m.width-sidebar.Width)
	height := max(0, m.height-navbarHeight-footerHeight)
	return width, height
}

func (m *Model) updateSizes() {
	width, height := m.contentSize()

	m.viewport.Width = width
	m.viewport.Height = height
	m.sidebar.SetHeight(height)

	for _, p := range m.pages {
		p.SetSize(width, height)
	}
	m.refreshContent()
}

func (m *Model) updatePages(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for v, p := range m.pages {
		updated, cmd := p.Update(msg)
		m.pages[v] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// refreshContent stacks the views of the current pass into the viewport.
func (m *Model) refreshContent() {
	pass, ok := m.state.Pass()
	if !ok {
		return
	}

	width, _ := m.contentSize()
	rule := styles.HelpStyle.Render(strings.Repeat("─", max(0, width-2)))

	var sections []string
	for _, v := range pass.Views {
		p, ok := m.pages[v]
		if !ok {
			continue
		}
		sections = append(sections, p.View())
	}

	if len(sections) == 0 {
		sections = append(sections, styles.HelpStyle.Render("Choose a page from the navigation."))
	}

	m.viewport.SetContent(strings.Join(sections, "\n"+rule+"\n"))
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return tea.Quit
	}

	if m.sidebar.Focused() {
		return m.handlePickerKey(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keymap.Help), key.Matches(msg, m.keymap.Escape):
			m.showHelp = false
		case key.Matches(msg, m.keymap.Quit):
			return tea.Quit
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return nil

	case key.Matches(msg, m.keymap.About):
		return m.track(m.commands.Navigate(services.ViewAbout))

	case key.Matches(msg, m.keymap.Dashboard):
		return m.track(m.commands.Navigate(services.ViewDashboard))

	case key.Matches(msg, m.keymap.FocusDates):
		if !m.state.Renders(services.ViewDashboard) {
			return m.commands.NotifyInfo("Open the dashboard to filter dates")
		}
		return m.sidebar.FocusNext()

	case key.Matches(msg, m.keymap.Home):
		m.viewport.GotoTop()
		return nil

	case key.Matches(msg, m.keymap.End):
		m.viewport.GotoBottom()
		return nil

	case key.Matches(msg, m.keymap.Up, m.keymap.Down, m.keymap.PageUp, m.keymap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	return m.updateRenderedPages(msg)
}

// updateRenderedPages forwards a key to the pages of the current pass.
func (m *Model) updateRenderedPages(msg tea.KeyMsg) tea.Cmd {
	pass, ok := m.state.Pass()
	if !ok {
		return nil
	}

	var cmds []tea.Cmd
	for _, v := range pass.Views {
		p, ok := m.pages[v]
		if !ok {
			continue
		}
		updated, cmd := p.Update(msg)
		m.pages[v] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Escape):
		m.sidebar.Blur()
		return nil

	case key.Matches(msg, m.keymap.FocusDates):
		return m.sidebar.FocusNext()

	case key.Matches(msg, m.keymap.Submit):
		return m.submitDates()
	}

	return m.sidebar.Update(msg)
}

// submitDates validates the pickers and dispatches the new range.
func (m *Model) submitDates() tea.Cmd {
	r, err := m.sidebar.Range()
	if err != nil {
		return m.commands.NotifyError(err.Error())
	}

	m.sidebar.Blur()
	cmds := []tea.Cmd{m.dispatch(services.DateRangeChangedEvent{Range: r})}
	if r.IsEmpty() {
		cmds = append(cmds, m.commands.NotifyWarning("Start date is after end date, nothing to show"))
	} else {
		cmds = append(cmds, m.commands.NotifySuccess("Date filter applied"))
	}
	return tea.Batch(cmds...)
}

// View renders the application UI.
func (m *Model) View() string {
	if !m.ready {
		return m.spinner.View()
	}

	pass, hasPass := m.state.Pass()

	var main string
	if !hasPass {
		width, height := m.contentSize()
		main = components.RenderSpinnerCentered(m.spinner, width, height)
	} else {
		main = m.viewport.View()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(pass), main)
	mainView := strings.Join([]string{m.renderNavbar(), body, m.renderFooter()}, "\n")

	if m.showHelp {
		mainView = m.overlayCentered(mainView, m.renderHelp())
	}

	if toasts := m.renderNotifications(); len(toasts) > 0 {
		return m.overlayToasts(mainView, toasts)
	}

	return mainView
}

func (m *Model) renderNavbar() string {
	title := "🚲 Bikeshare Dashboard"
	if m.services == nil {
		return styles.NavbarStyle.Width(m.width).Render(title)
	}

	active := m.services.Bounds()
	if pass, ok := m.state.Pass(); ok {
		active = pass.Range
	}

	info := fmt.Sprintf("%s · %s · session %s",
		active.String(),
		m.services.EngineName(),
		shortID(m.services.Session().ID()),
	)
	if m.state.IsLoading() {
		info = m.spinner.Glyph() + " " + info
	}

	gap := max(1, m.width-lipgloss.Width(title)-lipgloss.Width(info)-styles.NavbarStyle.GetHorizontalFrameSize())
	return styles.NavbarStyle.Width(m.width).Render(title + strings.Repeat(" ", gap) + info)
}

func (m *Model) renderFooter() string {
	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		parts = append(parts, styles.HelpKeyStyle.Render(b.Help().Key)+" "+styles.HelpDescStyle.Render(b.Help().Desc))
	}
	if m.sidebar.Focused() {
		parts = []string{
			styles.HelpKeyStyle.Render("enter") + " " + styles.HelpDescStyle.Render("apply"),
			styles.HelpKeyStyle.Render("tab") + " " + styles.HelpDescStyle.Render("next date"),
			styles.HelpKeyStyle.Render("esc") + " " + styles.HelpDescStyle.Render("cancel"),
		}
	}
	help := strings.Join(parts, styles.HelpStyle.Render(" • "))

	if updated := m.state.LastUpdated(); !updated.IsZero() {
		stamp := styles.HelpStyle.Render("updated " + updated.Format("15:04:05"))
		if gap := m.width - lipgloss.Width(help) - lipgloss.Width(stamp); gap > 0 {
			return help + strings.Repeat(" ", gap) + stamp
		}
	}
	return ansi.Truncate(help, m.width, "…")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m *Model) overlayCentered(mainView string, overlay string) string {
	mainLines := strings.Split(mainView, "\n")
	overlayLines := strings.Split(overlay, "\n")

	overlayWidth := lipgloss.Width(overlay)
	y := max(0, (m.height-len(overlayLines))/2)
	x := max(0, (m.width-overlayWidth)/2)

	for i, overlayLine := range overlayLines {
		mainY := y + i
		if mainY >= len(mainLines) {
			break
		}

		mainLine := mainLines[mainY]
		left := ansi.Truncate(mainLine, x, "")
		right := ansi.TruncateLeft(mainLine, x+overlayWidth, "")

		if w := lipgloss.Width(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		mainLines[mainY] = left + overlayLine + right
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderNotifications() []string {
	notifications := m.state.GetNotifications()
	if len(notifications) == 0 {
		return nil
	}

	toasts := make([]string, 0, len(notifications))
	for _, n := range notifications {
		var style lipgloss.Style
		var prefix string

		switch n.Type {
		case NotificationSuccess:
			style = styles.NotificationSuccessStyle
			prefix = "[OK]"
		case NotificationError:
			style = styles.NotificationErrorStyle
			prefix = "[ERR]"
		case NotificationWarning:
			style = styles.NotificationWarningStyle
			prefix = "[WARN]"
		case NotificationInfo:
			style = styles.NotificationInfoStyle
			prefix = "[INFO]"
		case NotificationLoading:
			style = styles.NotificationInfoStyle
			prefix = m.spinner.Glyph()
		}

		toasts = append(toasts, style.Render(fmt.Sprintf("%s %s", prefix, n.Message)))
	}

	return toasts
}

func (m *Model) overlayToasts(mainView string, toasts []string) string {
	toastStack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	toastLines := strings.Split(toastStack, "\n")
	mainLines := strings.Split(mainView, "\n")

	toastWidth := lipgloss.Width(toastStack)
	startX := max(m.width-toastWidth-2, 0)
	startY := navbarHeight + 1

	for i, toastLine := range toastLines {
		lineIdx := startY + i
		if lineIdx >= len(mainLines) {
			break
		}

		mainLine := mainLines[lineIdx]
		if w := lipgloss.Width(mainLine); w < startX {
			mainLines[lineIdx] = mainLine + strings.Repeat(" ", startX-w) + toastLine
		} else {
			mainLines[lineIdx] = ansi.Truncate(mainLine, startX, "") + toastLine
		}
	}

	return strings.Join(mainLines, "\n")
}

func (m *Model) renderHelp() string {
	titles := []string{"Navigation", "Date filtering", "Scrolling", "General"}

	lines := []string{styles.TitleStyle.Render("Keyboard Shortcuts")}
	for i, group := range m.keymap.FullHelp() {
		lines = append(lines, styles.HelpKeyStyle.Render(titles[i]))
		for _, b := range group {
			lines = append(lines, fmt.Sprintf("  %-10s %s", b.Help().Key, styles.HelpDescStyle.Render(b.Help().Desc)))
		}
		lines = append(lines, "")
	}

	if pass, ok := m.state.Pass(); ok {
		for _, v := range pass.Views {
			p, ok := m.pages[v]
			if !ok {
				continue
			}
			if bindings := p.ShortHelp(); len(bindings) > 0 {
				lines = append(lines, styles.HelpKeyStyle.Render(v.String()))
				for _, b := range bindings {
					lines = append(lines, fmt.Sprintf("  %-10s %s", b.Help().Key, styles.HelpDescStyle.Render(b.Help().Desc)))
				}
				lines = append(lines, "")
			}
		}
	}

	lines = append(lines, styles.HelpStyle.Render("Press ? or Esc to close"))

	return styles.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}
