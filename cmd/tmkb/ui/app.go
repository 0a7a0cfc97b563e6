package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"textmathkb/internal/config"
	"textmathkb/internal/layout"
	"textmathkb/internal/logging"
	"textmathkb/internal/picker"
)

// Page identifies the visible page.
type Page int

const (
	PagePicker Page = iota
	PageKeyboard
)

// AppearMsg is sent once when the program starts. It is the picker's
// first-appearance signal.
type AppearMsg struct{}

// Model is the root bubbletea model.
type Model struct {
	ctx      context.Context
	ctrl     *picker.Controller
	page     Page
	picker   PickerPage
	keyboard KeyboardPage
	help     help.Model
	keys     KeyMap
	styles   Styles
	width    int
}

// New builds the root model. provider and lctx drive the keyboard page.
func New(ctx context.Context, ctrl *picker.Controller, provider layout.Provider, lctx layout.Context, cfg config.UIConfig) Model {
	styles := NewStyles(ThemeFor(cfg.Theme))
	keys := DefaultKeyMap()

	page := PagePicker
	if cfg.ShowKeyboard {
		page = PageKeyboard
	}
	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		page:     page,
		picker:   NewPickerPage(ctrl, styles, keys, cfg.GridColumns),
		keyboard: NewKeyboardPage(provider, lctx, styles, keys),
		help:     help.New(),
		keys:     keys,
		styles:   styles,
		width:    CompactModeWidth,
	}
}

// Page returns the visible page.
func (m Model) Page() Page { return m.page }

// Picked returns the glyph chosen before the program quit, if any.
func (m Model) Picked() string { return m.picker.Picked() }

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return AppearMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AppearMsg:
		m.ctrl.Appear(m.ctx)
		logging.Get(logging.CategoryUI).Debug("picker appeared",
			zap.String("category", m.ctrl.Selection()))
		return m, nil

	case tea.WindowSizeMsg:
		v := NewViewport(msg.Width, msg.Height)
		m.width = v.Width
		m.help.Width = v.ContentWidth()
		m.picker.SetViewport(v)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Keyboard):
			if m.page == PagePicker {
				m.page = PageKeyboard
			} else {
				m.page = PagePicker
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		var cmd tea.Cmd
		if m.page == PageKeyboard {
			m.keyboard, cmd = m.keyboard.Update(msg)
		} else {
			m.picker, cmd = m.picker.Update(m.ctx, msg)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.UpdateInput(msg)
	return m, cmd
}

func (m Model) View() string {
	title := "textmathkb · symbols"
	body := m.picker.View()
	if m.page == PageKeyboard {
		title = "textmathkb · keyboard"
		body = m.keyboard.View()
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s",
		m.styles.Header.Render(title),
		body,
		m.styles.RenderDivider(m.width-ViewportHorizontalPadding),
		m.styles.Footer.Render(m.help.View(m.keys)))
}

// Run starts the program in the alternate screen and returns the glyph the
// user picked, or "" if they quit without picking.
func Run(ctx context.Context, m Model) (string, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("picker UI failed: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Picked(), nil
	}
	return "", nil
}
