package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"stegcalc/internal/calculator"
	"stegcalc/internal/carrier"
	"stegcalc/internal/disguise"
	"stegcalc/internal/domain"
	"stegcalc/internal/services/hygiene"
	"stegcalc/internal/status"
)

// statusMsg asks for a redraw after the status slot changed.
type statusMsg struct{}

// exchangeDoneMsg reports that a workflow reached its terminal status.
type exchangeDoneMsg struct {
	tab Tab
	res domain.ExchangeResult
}

// scrubbedMsg reports that a clipboard overwrite ran.
type scrubbedMsg struct {
	id  uint64
	err error
}

// Deps are the services the front-end drives.
type Deps struct {
	Machine  *disguise.Machine
	Exchange domain.ExchangeService
	Hygiene  *hygiene.Service
	Status   *status.Slot
}

// Model is the bubbletea model for both presentations.
type Model struct {
	ctx      context.Context
	machine  *disguise.Machine
	exchange domain.ExchangeService
	hygiene  *hygiene.Service
	status   *status.Slot

	form     *Form
	tab      Tab
	focus    int
	width    int
	quitting bool
}

// New returns a model showing the calculator. The form is registered with
// the machine so that a ClearCovertState policy empties it too.
func New(ctx context.Context, d Deps) *Model {
	m := &Model{
		ctx:      ctx,
		machine:  d.Machine,
		exchange: d.Exchange,
		hygiene:  d.Hygiene,
		status:   d.Status,
		form:     NewForm(),
	}
	d.Machine.Register(m.form)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.machine.Mode() == domain.ModeCalculator {
			return m.updateCalculator(msg)
		}
		return m.updateCovert(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case statusMsg, exchangeDoneMsg, scrubbedMsg:
		// State lives in the services; redraw only.
	}
	return m, nil
}

func (m *Model) updateCalculator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.unlockIfMatched()
		return m, nil
	case tea.KeyBackspace:
		m.machine.Backspace()
		return m, nil
	case tea.KeyEsc:
		m.machine.Clear()
		return m, nil
	case tea.KeyRunes:
	default:
		return m, nil
	}

	for _, r := range msg.Runes {
		switch r {
		case 'q':
			m.quitting = true
			return m, tea.Quit
		case '=':
			if m.unlockIfMatched() {
				return m, nil
			}
		case 'c', 'C':
			m.machine.Clear()
		default:
			if op, ok := calculator.ParseOperator(r); ok {
				_ = m.machine.Operator(op)
				continue
			}
			_ = m.machine.Digit(r)
		}
	}
	return m, nil
}

func (m *Model) unlockIfMatched() bool {
	if !m.machine.Equals() {
		return false
	}
	m.tab = TabEncrypt
	m.focus = 0
	return true
}

func (m *Model) updateCovert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.form.fields(m.tab)
	switch msg.Type {
	case tea.KeyEsc:
		m.machine.Back()
	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % len(fields)
	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = (m.focus + len(fields) - 1) % len(fields)
	case tea.KeyCtrlT:
		if m.tab == TabEncrypt {
			m.tab = TabDecrypt
		} else {
			m.tab = TabEncrypt
		}
		m.focus = 0
	case tea.KeyCtrlS, tea.KeyEnter:
		return m, m.submit()
	case tea.KeyCtrlY:
		return m, m.copy()
	case tea.KeyBackspace:
		f := fields[m.focus]
		if r := []rune(f.value); len(r) > 0 {
			f.value = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		fields[m.focus].value = ""
	case tea.KeySpace:
		fields[m.focus].value += " "
	case tea.KeyRunes:
		fields[m.focus].value += string(msg.Runes)
	}
	return m, nil
}

// submit starts the current tab's workflow. Reading the image file happens
// here; the workflow itself runs as a command.
func (m *Model) submit() tea.Cmd {
	ctx := m.ctx
	switch m.tab {
	case TabDecrypt:
		f := m.form.Decrypt
		img, err := carrier.Load(expandPath(f[decImage].value))
		if err != nil {
			m.exchange.Reset()
			m.status.Set("Error: " + err.Error())
			return nil
		}
		req := domain.DecryptRequest{Password: f[decPassword].value, StegoImage: img}
		return func() tea.Msg {
			return exchangeDoneMsg{tab: TabDecrypt, res: m.exchange.Decrypt(ctx, req)}
		}
	default:
		f := m.form.Encrypt
		img, err := carrier.Load(expandPath(f[encImage].value))
		if err != nil {
			m.status.Set("Error: " + err.Error())
			return nil
		}
		req := domain.EncryptRequest{
			Message:    f[encMessage].value,
			Password:   f[encPassword].value,
			CoverImage: img,
		}
		return func() tea.Msg {
			return exchangeDoneMsg{tab: TabEncrypt, res: m.exchange.Encrypt(ctx, req)}
		}
	}
}

// copy puts the displayed plaintext on the clipboard; the returned command
// completes when the matching scrub has run.
func (m *Model) copy() tea.Cmd {
	if m.tab != TabDecrypt || !m.exchange.CopyVisible() {
		return nil
	}
	sc, err := m.hygiene.Copy(m.exchange.Plaintext())
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		<-sc.Done()
		return scrubbedMsg{id: sc.ID, err: sc.Err()}
	}
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// Run shows the model until the operator quits or ctx is done.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)
	// Status writes may come from inside Update, so never block on Send.
	m.status.OnChange(func(string) { go p.Send(statusMsg{}) })
	_, err := p.Run()
	return err
}
