package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/internal/config"
	"github.com/tonhe/graf/internal/logging"
	"github.com/tonhe/graf/internal/sample"
	"github.com/tonhe/graf/internal/series"
	"github.com/tonhe/graf/internal/watcher"
	"github.com/tonhe/graf/tui/components"
	"github.com/tonhe/graf/tui/keys"
	"github.com/tonhe/graf/tui/styles"
	"github.com/tonhe/graf/tui/views"
)

const (
	maxSteps   = 20
	demoPoints = 12
	demoTitle  = "Random demo"
)

// Options selects where the viewer gets its data.
type Options struct {
	// Path is the series file to show. Ignored in demo mode.
	Path string
	// Watch reloads Path whenever it changes on disk.
	Watch bool
	// Demo shows a live feed of random values instead of a file.
	Demo bool
	Seed uint64
	// SeriesDir holds the saved series listed by the open dialog.
	SeriesDir string
	Version   string
}

// TickMsg advances the live demo by one sample.
type TickMsg struct{}

// FileChangedMsg reports that the watched series file was written.
type FileChangedMsg struct{}

// AppModel is the root Bubble Tea model for the chart viewer.
type AppModel struct {
	slug    string
	theme   styles.Theme
	opts    Options
	chart   views.ChartView
	help    views.HelpView
	picker  views.SwitcherView
	picking bool
	stream  *sample.Stream
	changes chan struct{}
	cancel  context.CancelFunc
	paused  bool
	loadErr error
	width   int
	height  int
}

// NewAppModel creates the viewer and loads its initial data.
func NewAppModel(cfg *config.Config, opts Options) (AppModel, error) {
	chartCfg, err := cfg.ChartConfig()
	if err != nil {
		return AppModel{}, err
	}

	m := AppModel{opts: opts}
	m.setTheme(cfg.Theme, chartCfg)

	if opts.Demo {
		m.stream = sample.NewStream(sample.NewGenerator(opts.Seed, 5), demoPoints)
		m.chart.SetSeries(m.stream.Series(demoTitle))
		return m, nil
	}

	s, err := series.Load(opts.Path)
	if err != nil {
		return AppModel{}, err
	}
	if chartCfg, err = s.Apply(chartCfg); err != nil {
		return AppModel{}, err
	}
	m.chart.SetConfig(chartCfg)
	m.chart.SetSeries(s)

	if opts.Watch {
		m.changes = make(chan struct{}, 1)
		m.startWatch()
	}
	return m, nil
}

// setTheme rebuilds the views for the named theme, falling back to the
// default for unknown names. The chart takes its colors from the theme.
func (m *AppModel) setTheme(slug string, cfg chart.Config) {
	theme := styles.DefaultTheme
	if t := styles.GetThemeByName(slug); t != nil {
		theme = *t
	}
	cfg.AxisColor, cfg.DataColor = theme.ChartColors()

	s := m.chart.Series()
	m.slug = slug
	m.theme = theme
	m.chart = views.NewChartView(theme, cfg)
	m.chart.SetSeries(s)
	m.help = views.NewHelpView(theme)
	m.picker = views.NewSwitcherView(theme)
	if m.width > 0 {
		m.chart.SetSize(m.width, m.height-3)
		m.help.SetSize(m.width, m.height-3)
		m.picker.SetSize(m.width, m.height-3)
	}
}

// startWatch watches the current file, replacing any earlier watch. All
// watches feed the same changes channel.
func (m *AppModel) startWatch() {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	path, changes := m.opts.Path, m.changes
	go func() {
		err := watcher.Watch(ctx, path, watcher.DefaultDebounce, func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		if err != nil {
			logging.Errorf("watch %s: %v", path, err)
		}
	}()
}

// Init starts the demo ticker or the file change listener.
func (m AppModel) Init() tea.Cmd {
	switch {
	case m.stream != nil:
		return tickCmd()
	case m.changes != nil:
		return waitForChange(m.changes)
	}
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return FileChangedMsg{}
	}
}

// Update handles messages and key bindings.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Body height = total - 1 (header) - 2 (status bar lines)
		m.chart.SetSize(msg.Width, msg.Height-3)
		m.help.SetSize(msg.Width, msg.Height-3)
		m.picker.SetSize(msg.Width, msg.Height-3)
		return m, nil

	case TickMsg:
		if m.stream == nil {
			// the user opened a file; stop ticking
			return m, nil
		}
		if !m.paused {
			m.stream.Next()
			m.chart.SetSeries(m.stream.Series(demoTitle))
		}
		return m, tickCmd()

	case FileChangedMsg:
		m.reload()
		return m, waitForChange(m.changes)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := keys.DefaultKeyMap
	if key.Matches(msg, km.Quit) {
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}
	if key.Matches(msg, km.Help) {
		m.help.Toggle()
		return m, nil
	}
	if m.help.IsVisible() {
		if key.Matches(msg, km.Escape) {
			m.help.Hide()
		}
		return m, nil
	}
	if m.picking {
		return m.handlePickerKey(msg)
	}
	if key.Matches(msg, km.Open) {
		m.picker.Refresh(m.opts.SeriesDir, m.opts.Path)
		m.picking = true
		return m, nil
	}

	cfg := m.chart.Config()
	switch {
	case key.Matches(msg, km.ToggleKind):
		if cfg.Kind == chart.Bar {
			cfg.Kind = chart.Line
		} else {
			cfg.Kind = chart.Bar
		}
	case key.Matches(msg, km.ToggleGrid):
		cfg.ExtendGridlines = !cfg.ExtendGridlines
	case key.Matches(msg, km.MoreSteps):
		if cfg.Steps < maxSteps {
			cfg.Steps++
		}
	case key.Matches(msg, km.FewerSteps):
		if cfg.Steps > 1 {
			cfg.Steps--
		}
	case key.Matches(msg, km.Theme):
		m.setTheme(styles.NextTheme(m.slug), cfg)
		return m, nil
	case key.Matches(msg, km.Refresh):
		if m.stream != nil {
			m.stream.Refill()
			m.chart.SetSeries(m.stream.Series(demoTitle))
		} else {
			m.reload()
		}
		return m, nil
	case key.Matches(msg, km.Pause):
		if m.stream != nil {
			m.paused = !m.paused
		}
		return m, nil
	}
	m.chart.SetConfig(cfg)
	return m, nil
}

func (m AppModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var action views.SwitcherAction
	m.picker, _, action = m.picker.Update(msg)
	switch action {
	case views.ActionClose:
		m.picking = false
	case views.ActionOpen:
		m.picking = false
		if item := m.picker.SelectedItem(); item != nil {
			return m, m.open(item.Path)
		}
	}
	return m, nil
}

// open switches the viewer to the series at path, leaving demo mode. The
// chart settings from the new file's overrides replace the current ones.
func (m *AppModel) open(path string) tea.Cmd {
	if !m.load(path) {
		return nil
	}
	m.opts.Path = path

	wasDemo := m.stream != nil
	m.stream = nil
	m.paused = false
	if m.opts.Watch {
		first := m.changes == nil
		if first {
			m.changes = make(chan struct{}, 1)
		}
		m.startWatch()
		if first {
			return waitForChange(m.changes)
		}
	}
	if wasDemo {
		logging.Infof("left demo mode for %s", path)
	}
	return nil
}

// reload rereads the series file, keeping the last good data on failure.
func (m *AppModel) reload() {
	m.load(m.opts.Path)
}

// load reads path and shows it with its overrides applied over the current
// chart settings. Settings the file does not name keep their value. On
// failure the last good series and settings stay and load reports false.
func (m *AppModel) load(path string) bool {
	s, err := series.Load(path)
	if err != nil {
		m.loadErr = err
		return false
	}
	cfg, err := s.Apply(m.chart.Config())
	if err != nil {
		m.loadErr = err
		return false
	}
	m.loadErr = nil
	m.chart.SetConfig(cfg)
	m.chart.SetSeries(s)
	return true
}

func (m AppModel) mode() string {
	switch {
	case m.stream != nil && m.paused:
		return "PAUSED"
	case m.stream != nil:
		return "LIVE"
	case m.changes != nil:
		return "WATCH"
	}
	return "STATIC"
}

// View renders the header, chart body and status bar.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	cfg := m.chart.Config()
	var title string
	var values []float64
	if s := m.chart.Series(); s != nil {
		title = s.Title
		values = s.Values
	}
	header := components.RenderHeader(m.theme, title, cfg.Kind.String(), m.mode(), m.width, m.opts.Version)

	body, renderErr := m.chart.Render()
	switch {
	case m.help.IsVisible():
		body = m.help.View()
	case m.picking:
		body = m.picker.View()
	}

	errMsg := ""
	switch {
	case m.loadErr != nil:
		errMsg = m.loadErr.Error()
	case renderErr != nil:
		errMsg = "cannot draw"
	}
	statusBar := components.RenderStatusBar(m.theme, values, cfg.Steps, cfg.ExtendGridlines, errMsg, m.width)

	bodyHeight := m.height - 1 - 2 // 1 header line, 2 status bar lines
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}
