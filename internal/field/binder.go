// Package field binds the numeric rules to a live, user-editable control.
//
// The binder owns no numeric logic. It reads the control's value and caret,
// hands them to package numeric, and writes the result back. It is the only
// code that mutates the control.
package field

import (
	"errors"
	"time"
	"unicode/utf8"

	"numfield/internal/logging"
	"numfield/internal/numeric"
)

// ErrFieldNotFound is returned by Bind when there is no control to bind to.
var ErrFieldNotFound = errors.New("numeric field not found")

// A filter pass runs on every keystroke; anything slower than this is
// visible as input lag.
const slowPassThreshold = 5 * time.Millisecond

// Field is the surface a control needs to be bound: value and caret
// get/set. Caret offsets are in runes.
type Field interface {
	Value() string
	SetValue(string)
	Position() int
	SetCursor(int)
}

// Selector is implemented by controls that can report a selected range.
// A paste replaces the selection; without one it inserts at the caret.
type Selector interface {
	Selection() (start, end int)
}

// Binder sequences key, paste and input events for one bound Field.
type Binder struct {
	field Field
	cfg   numeric.Config
}

// Bind attaches the numeric rules to f. A nil f is a setup error: it is
// reported once and the caller is expected to carry on without a binder.
func Bind(f Field, cfg numeric.Config) (*Binder, error) {
	if f == nil {
		logging.Get(logging.CategoryBinder).Errorw("cannot bind numeric field", "error", ErrFieldNotFound)
		return nil, ErrFieldNotFound
	}
	logging.Get(logging.CategoryBinder).Debugw("numeric field bound",
		"allow_decimals", cfg.AllowDecimals,
		"allow_negative", cfg.AllowNegative,
		"max_decimals", cfg.MaxDecimals,
	)
	return &Binder{field: f, cfg: cfg}, nil
}

// Config returns the grammar the field is bound with.
func (b *Binder) Config() numeric.Config {
	return b.cfg
}

// State snapshots the control.
func (b *Binder) State() numeric.State {
	return numeric.State{Text: b.field.Value(), Cursor: b.field.Position()}
}

// KeyDown reports whether k may reach the control. A false result means
// the caller must suppress the key's default insertion.
func (b *Binder) KeyDown(k numeric.Keystroke) bool {
	ok := numeric.Admit(k, b.State(), b.cfg)
	if !ok {
		logging.Get(logging.CategoryBinder).Debugw("keystroke suppressed", "key", k.Key, "ctrl", k.Ctrl)
	}
	return ok
}

// Paste inserts clip in place of the current selection. The caller always
// suppresses the control's own paste handling.
//
// The clip is filtered on its own first; if nothing numeric survives the
// paste is ignored. Otherwise the surviving segment is spliced in, the
// whole text is filtered so the new digits merge into the grouping, and the
// caret lands just after the inserted segment.
func (b *Binder) Paste(clip string) {
	defer logging.StartTimer(logging.CategoryFilter, "paste pass").StopWithThreshold(slowPassThreshold)

	segment := numeric.Filter(clip, b.cfg)
	if segment == "" {
		logging.Get(logging.CategoryBinder).Debugw("paste had no numeric content", "length", len(clip))
		return
	}

	current := []rune(b.field.Value())
	start, end := b.selection(len(current))
	spliced := string(current[:start]) + segment + string(current[end:])
	caret := start + utf8.RuneCountInString(segment)

	next := numeric.Apply(numeric.State{Text: spliced, Cursor: caret}, b.cfg)
	b.write(next)
	logging.Get(logging.CategoryBinder).Debugw("paste applied", "segment", segment, "value", next.Text, "cursor", next.Cursor)
}

// Input re-filters whatever the control holds now. It writes back only when
// the canonical text differs, which keeps the write from looping.
// It reports whether the control was rewritten.
func (b *Binder) Input() bool {
	defer logging.StartTimer(logging.CategoryFilter, "input pass").StopWithThreshold(slowPassThreshold)

	st := b.State()
	next := numeric.Apply(st, b.cfg)
	if next.Text == st.Text {
		return false
	}
	b.write(next)
	logging.Get(logging.CategoryFilter).Debugw("value canonicalized", "from", st.Text, "to", next.Text)
	return true
}

// Set assigns value programmatically, as if typed in one go with the caret
// at the end, then runs the input pass.
func (b *Binder) Set(value string) {
	b.field.SetValue(value)
	b.field.SetCursor(utf8.RuneCountInString(value))
	b.Input()
}

func (b *Binder) write(st numeric.State) {
	b.field.SetValue(st.Text)
	b.field.SetCursor(st.Cursor)
}

func (b *Binder) selection(n int) (int, int) {
	pos := clamp(b.field.Position(), 0, n)
	sel, ok := b.field.(Selector)
	if !ok {
		return pos, pos
	}
	start, end := sel.Selection()
	start, end = clamp(start, 0, n), clamp(end, 0, n)
	if start > end {
		start, end = end, start
	}
	return start, end
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
