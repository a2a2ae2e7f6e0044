package api

import (
	"fmt"
	"strings"
	"sync"

	"github.com/amterp/swatch/internal/colorinput"
	swatcherr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/id"
	"github.com/amterp/swatch/internal/keys"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/picker"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/util"
)

// Message types a remote host sends.
const (
	ClientKey          = "key"
	ClientClick        = "click"
	ClientFocus        = "focus"
	ClientInput        = "input"
	ClientPaste        = "paste"
	ClientBlur         = "blur"
	ClientTrigger      = "trigger"
	ClientCloseRequest = "close_request"
	ClientSetColor     = "set_color"
	ClientSetPalette   = "set_palette"
)

// Message types the server sends.
const (
	ServerHello           = "hello"
	ServerFocus           = "focus"
	ServerPopover         = "popover"
	ServerClose           = "close"
	ServerChange          = "change"
	ServerDraft           = "draft"
	ServerKeyResult       = "key_result"
	ServerPalettesChanged = "palettes_changed"
	ServerFileChange      = "file_change"
	ServerError           = "error"
)

// ClientMessage is a JSON message from a remote host. Which fields matter
// depends on Type.
type ClientMessage struct {
	Type   string        `json:"type"`
	Seq    int64         `json:"seq,omitempty"`
	Key    string        `json:"key,omitempty"`
	Shift  bool          `json:"shift,omitempty"`
	Target picker.Target `json:"target"`
	Index  int           `json:"index,omitempty"`
	Value  string        `json:"value,omitempty"`
}

// HelloData opens every session.
type HelloData struct {
	SessionID      string            `json:"session_id"`
	Palette        model.PaletteType `json:"palette"`
	Colors         []string          `json:"colors"`
	Color          string            `json:"color"`
	Label          string            `json:"label"`
	RTL            bool              `json:"rtl"`
	OpenedAtMillis int64             `json:"opened_at_millis"`
}

// PopoverData lists the swatches to render while the popover is open.
// Input is set when the popover carries its own hex field.
type PopoverData struct {
	Swatches []picker.SwatchInfo `json:"swatches"`
	Input    bool                `json:"input,omitempty"`
}

// KeyResultData answers a key message. Hosts apply default behavior only
// when both flags are false.
type KeyResultData struct {
	Seq             int64 `json:"seq"`
	PreventDefault  bool  `json:"prevent_default"`
	StopPropagation bool  `json:"stop_propagation"`
}

// PaletteSource resolves palettes for sessions.
type PaletteSource interface {
	Get(t model.PaletteType) (*service.PaletteView, error)
	List() ([]*service.PaletteView, error)
}

// SessionOptions configures a new session.
type SessionOptions struct {
	Palette model.PaletteType
	Color   string
	Label   string
	RTL     bool
	// GridInput puts a hex field inside the popover.
	GridInput bool
}

// Session is one remote picker. It implements picker.Host by turning focus
// and popover commands into messages, and applies client messages to its
// picker.Control.
//
// All mutation happens on the Run goroutine; other goroutines go through
// Dispatch.
type Session struct {
	ID string

	palettes PaletteSource
	palette  model.PaletteType
	control  *picker.Control
	label    string
	focused  picker.Target
	popover  bool
	openedAt int64

	send     func(WebSocketMessage)
	events   chan func()
	done     chan struct{}
	stopOnce sync.Once
}

var _ picker.Host = (*Session)(nil)

// NewSession creates a session. send delivers outgoing messages and must
// not block.
func NewSession(palettes PaletteSource, opts SessionOptions, send func(WebSocketMessage)) (*Session, error) {
	view, err := palettes.Get(opts.Palette)
	if err != nil {
		return nil, err
	}

	color := ""
	if opts.Color != "" {
		c, ok := colorinput.Normalize(opts.Color)
		if !ok {
			return nil, swatcherr.InvalidColor(opts.Color)
		}
		color = c
	}

	s := &Session{
		ID:       id.Session(),
		palettes: palettes,
		palette:  view.Type,
		label:    opts.Label,
		openedAt: util.NowMillis(),
		send:     send,
		events:   make(chan func(), 64),
		done:     make(chan struct{}),
	}
	s.control = picker.NewControl(s, picker.ControlOptions{
		Colors:    view.Colors,
		Color:     color,
		Label:     opts.Label,
		RTL:       opts.RTL,
		GridInput: opts.GridInput,
		OnChange:  s.onChange,
	})
	return s, nil
}

// Run applies dispatched events until Stop.
func (s *Session) Run() {
	for {
		select {
		case fn := <-s.events:
			fn()
		case <-s.done:
			return
		}
	}
}

// Dispatch queues fn to run on the session goroutine. Returns false once
// the session is stopped.
func (s *Session) Dispatch(fn func()) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.events <- fn:
		return true
	case <-s.done:
		return false
	}
}

// Stop ends Run. Safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Hello sends the session's initial state.
func (s *Session) Hello() {
	s.emit(ServerHello, HelloData{
		SessionID:      s.ID,
		Palette:        s.palette,
		Colors:         s.control.Colors(),
		Color:          s.control.Color(),
		Label:          s.label,
		RTL:            s.control.RTL(),
		OpenedAtMillis: s.openedAt,
	})
}

// Handle applies one client message.
func (s *Session) Handle(msg ClientMessage) {
	switch msg.Type {
	case ClientKey:
		res := s.control.HandleKey(picker.KeyEvent{
			Key:    keys.Normalize(msg.Key),
			Shift:  msg.Shift,
			Target: msg.Target,
		})
		s.emit(ServerKeyResult, KeyResultData{
			Seq:             msg.Seq,
			PreventDefault:  res.PreventDefault,
			StopPropagation: res.StopPropagation,
		})

	case ClientClick:
		s.control.ClickSwatch(msg.Index)

	case ClientFocus:
		// Focus the host moved itself; never echoed back.
		s.focused = msg.Target
		if i, ok := msg.Target.SwatchIndex(); ok {
			s.control.SwatchFocused(i)
		}

	case ClientInput:
		s.control.InputFor(msg.Target).Type(msg.Value)
		s.emitDraft(msg.Target)

	case ClientPaste:
		s.control.InputFor(msg.Target).Paste(msg.Value)

	case ClientBlur:
		s.control.InputFor(msg.Target).Blur()
		s.emitDraft(msg.Target)

	case ClientTrigger:
		s.control.Toggle()

	case ClientCloseRequest:
		s.control.RequestClose(msg.Target)

	case ClientSetColor:
		c, ok := colorinput.Normalize(msg.Value)
		if !ok {
			s.emitError(swatcherr.InvalidColor(msg.Value).Error())
			return
		}
		s.control.SetColor(c)
		s.emitDraft(picker.ControlInput)

	case ClientSetPalette:
		view, err := s.palettes.Get(model.PaletteType(msg.Value))
		if err != nil {
			s.emitError(err.Error())
			return
		}
		s.palette = view.Type
		s.setColors(view.Colors)

	default:
		s.emitError(fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

// Reload re-reads the session's palette. Called on the session goroutine.
func (s *Session) Reload() {
	view, err := s.palettes.Get(s.palette)
	if err != nil {
		s.emitError(err.Error())
		return
	}
	s.setColors(view.Colors)
}

// Focus implements picker.Focuser.
func (s *Session) Focus(t picker.Target) bool {
	if !s.exists(t) {
		return false
	}
	s.focused = t
	s.emit(ServerFocus, map[string]picker.Target{"target": t})
	return true
}

// Focused implements picker.Focuser.
func (s *Session) Focused() picker.Target {
	return s.focused
}

// ShowPopover implements picker.Host.
func (s *Session) ShowPopover() {
	s.popover = true
	s.emitPopover()
}

// HidePopover implements picker.Host.
func (s *Session) HidePopover() {
	s.popover = false
	s.emit(ServerClose, nil)
}

func (s *Session) setColors(colors []string) {
	s.control.SetColors(colors)
	if s.popover {
		s.emitPopover()
	}
}

func (s *Session) onChange(color string) {
	c, ok := colorinput.Normalize(strings.TrimSpace(color))
	if !ok {
		s.emitError(fmt.Sprintf("ignored %q: not a color", color))
		return
	}
	s.control.SetColor(c)
	s.emit(ServerChange, map[string]string{"color": c})
}

func (s *Session) exists(t picker.Target) bool {
	switch t.Kind {
	case picker.KindTrigger, picker.KindControlInput:
		return true
	case picker.KindSwatch:
		i, _ := t.SwatchIndex()
		return s.popover && i < len(s.control.Colors())
	case picker.KindGridInput:
		grid := s.control.Grid()
		return s.popover && grid != nil && grid.Input() != nil
	}
	return false
}

func (s *Session) emitPopover() {
	if grid := s.control.Grid(); grid != nil {
		s.emit(ServerPopover, PopoverData{Swatches: grid.Swatches(), Input: grid.Input() != nil})
	}
}

// emitDraft reports the text of the field behind t. Drafts from the
// popover's field carry its target so hosts can tell the two apart.
func (s *Session) emitDraft(t picker.Target) {
	input := s.control.InputFor(t)
	if input == s.control.Input() {
		s.emit(ServerDraft, map[string]string{"value": input.Display()})
		return
	}
	s.emit(ServerDraft, map[string]string{"value": input.Display(), "target": picker.GridInput.String()})
}

func (s *Session) emitError(message string) {
	s.emit(ServerError, map[string]string{"message": message})
}

func (s *Session) emit(msgType string, data any) {
	s.send(WebSocketMessage{Type: msgType, Data: data})
}
