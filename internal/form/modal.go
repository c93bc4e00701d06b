package form

import "errors"

type Mode int

const (
	Closed Mode = iota
	Create
	Edit
	Submitting
)

func (m Mode) String() string {
	switch m {
	case Create:
		return "create"
	case Edit:
		return "edit"
	case Submitting:
		return "submitting"
	default:
		return "closed"
	}
}

var ErrNotOpen = errors.New("form is not open")

// Modal tracks the open/submit lifecycle of one entity form.
// A failed submit returns to the mode it was opened in.
type Modal struct {
	mode   Mode
	opened Mode
}

// Open starts in Edit when editing is true and in Create otherwise.
func Open(editing bool) *Modal {
	m := Create
	if editing {
		m = Edit
	}
	return &Modal{mode: m, opened: m}
}

func (m *Modal) Mode() Mode    { return m.mode }
func (m *Modal) IsOpen() bool  { return m.mode != Closed }
func (m *Modal) Editing() bool { return m.opened == Edit }

func (m *Modal) begin() error {
	if m.mode != Create && m.mode != Edit {
		return ErrNotOpen
	}
	m.mode = Submitting
	return nil
}

func (m *Modal) succeed() { m.mode = Closed }

func (m *Modal) fail() { m.mode = m.opened }
