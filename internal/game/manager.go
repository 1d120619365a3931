package game

import (
	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/render"
	"chosenoffset.com/hexrealm/internal/turn"
	"chosenoffset.com/hexrealm/internal/ui/boardview"
)

// Manager drives a session from window input and draws it every frame.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Session      *Session
	View         *boardview.View
	InputMgr     render.InputManager
	Logger       *zap.Logger

	hover turn.Pointer
}

// NewManager creates a new game manager.
func NewManager(s *Session, r render.Renderer, input render.InputManager, logger *zap.Logger, width, height int) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Session:      s,
		View:         boardview.NewView(r, width, height),
		InputMgr:     input,
		Logger:       logger,
	}
}

// turnKeys maps window keys to the keys the controller understands
var turnKeys = map[render.Key]turn.Key{
	render.Key1:         turn.Key1,
	render.Key2:         turn.Key2,
	render.Key3:         turn.Key3,
	render.Key4:         turn.Key4,
	render.Key5:         turn.Key5,
	render.Key6:         turn.Key6,
	render.KeyBackspace: turn.KeyBackspace,
	render.KeyY:         turn.KeyY,
}

// Update handles one tick of input.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		m.Logger.Info("quit requested")
		return render.ErrQuit
	}
	if m.InputMgr.IsKeyJustPressed(render.KeyR) {
		m.Session.Restart()
		m.hover = turn.Pointer{}
		return nil
	}

	x, y := m.InputMgr.GetCursorPosition()
	m.hover = m.View.PointerAt(x, y, m.Session.Kind())
	if m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		m.Session.OnPointer(m.hover)
		// The phase may have switched between slots and spaces
		m.hover = m.View.PointerAt(x, y, m.Session.Kind())
	}

	for _, k := range render.Keys {
		tk, ok := turnKeys[k]
		if ok && m.InputMgr.IsKeyJustPressed(k) {
			m.Session.OnKey(tk)
		}
	}
	return nil
}

// Draw draws the session.
func (m *Manager) Draw(screen render.Image) {
	m.View.Draw(screen, m.Session, m.hover)
}

// Layout follows the window size and refits the board when it changes.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth, m.ScreenHeight = outsideWidth, outsideHeight
		m.View.Resize(outsideWidth, outsideHeight)
	}
	return m.ScreenWidth, m.ScreenHeight
}
