package field

import (
	"fmt"
	"strconv"
	"strings"

	"numfield/internal/numeric"
)

// Event is one step of a replay script.
type Event struct {
	Kind  EventKind
	Key   numeric.Keystroke // EventKey
	Text  string            // EventPaste, EventSet
	Start int               // EventSelect
	End   int               // EventSelect
}

// EventKind says which event source an Event stands for.
type EventKind int

const (
	EventKey EventKind = iota
	EventPaste
	EventSet
	EventSelect
)

// String renders the event back in script syntax.
func (e Event) String() string {
	switch e.Kind {
	case EventPaste:
		return "<paste:" + e.Text + ">"
	case EventSet:
		return "<set:" + e.Text + ">"
	case EventSelect:
		return fmt.Sprintf("<select:%d-%d>", e.Start, e.End)
	}
	if len([]rune(e.Key.Key)) == 1 && !e.Key.Ctrl {
		return e.Key.Key
	}
	if e.Key.Ctrl {
		return "<ctrl+" + e.Key.Key + ">"
	}
	return "<" + e.Key.Key + ">"
}

// ParseScript reads a keystroke script. Plain characters are typed one by
// one; angle brackets hold named keys and directives:
//
//	<backspace> <delete> <left> <right> <home> <end> <tab> <enter>
//	<ctrl+a> ... <ctrl+z>
//	<paste:TEXT>   paste TEXT
//	<set:TEXT>     programmatic value assignment
//	<select:S-E>   select runes [S, E)
//
// "<<" types a literal "<".
func ParseScript(script string) ([]Event, error) {
	var events []Event
	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '<' {
			events = append(events, Event{Kind: EventKey, Key: numeric.Char(r)})
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '<' {
			events = append(events, Event{Kind: EventKey, Key: numeric.Char('<')})
			i++
			continue
		}

		end := i + 1
		for end < len(runes) && runes[end] != '>' {
			end++
		}
		if end == len(runes) {
			return nil, fmt.Errorf("unterminated directive at offset %d", i)
		}
		body := string(runes[i+1 : end])
		i = end

		ev, err := parseDirective(body)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseDirective(body string) (Event, error) {
	name, arg, hasArg := strings.Cut(body, ":")
	switch name {
	case "paste":
		return Event{Kind: EventPaste, Text: arg}, nil
	case "set":
		return Event{Kind: EventSet, Text: arg}, nil
	case "select":
		a, b, ok := strings.Cut(arg, "-")
		start, err1 := strconv.Atoi(a)
		end, err2 := strconv.Atoi(b)
		if !hasArg || !ok || err1 != nil || err2 != nil {
			return Event{}, fmt.Errorf("bad select directive %q, want <select:S-E>", body)
		}
		return Event{Kind: EventSelect, Start: start, End: end}, nil
	}
	if hasArg {
		return Event{}, fmt.Errorf("unknown directive %q", body)
	}
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok && rest != "" {
		return Event{Kind: EventKey, Key: numeric.Keystroke{Key: rest, Ctrl: true}}, nil
	}
	if name == "" {
		return Event{}, fmt.Errorf("empty directive")
	}
	return Event{Kind: EventKey, Key: numeric.Keystroke{Key: name}}, nil
}

// Step records the control after one replayed event.
type Step struct {
	Event      Event
	State      numeric.State
	Suppressed bool
}

// Replay drives events through a binder bound to ctl, the way a browser
// would dispatch keydown, default action, then input.
func Replay(b *Binder, ctl *Memory, events []Event) []Step {
	steps := make([]Step, 0, len(events))
	for _, ev := range events {
		step := Step{Event: ev}
		switch ev.Kind {
		case EventKey:
			if !b.KeyDown(ev.Key) {
				step.Suppressed = true
				break
			}
			if ev.Key.Ctrl && ev.Key.Key == "a" {
				ctl.Select(0, len([]rune(ctl.Value())))
				break
			}
			ctl.Press(ev.Key)
			b.Input()
		case EventPaste:
			b.Paste(ev.Text)
		case EventSet:
			b.Set(ev.Text)
		case EventSelect:
			ctl.Select(ev.Start, ev.End)
		}
		step.State = b.State()
		steps = append(steps, step)
	}
	return steps
}
