package field

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numfield/internal/numeric"
)

func TestParseScript(t *testing.T) {
	got, err := ParseScript("1<<<backspace><ctrl+v><paste:2,000><set:5><select:0-3>")
	require.NoError(t, err)

	want := []Event{
		{Kind: EventKey, Key: numeric.Char('1')},
		{Kind: EventKey, Key: numeric.Char('<')},
		{Kind: EventKey, Key: numeric.Keystroke{Key: "backspace"}},
		{Kind: EventKey, Key: numeric.Keystroke{Key: "v", Ctrl: true}},
		{Kind: EventPaste, Text: "2,000"},
		{Kind: EventSet, Text: "5"},
		{Kind: EventSelect, Start: 0, End: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseScript() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseScript_RoundTripsThroughString(t *testing.T) {
	const script = "12<left><ctrl+a><paste:9.5><select:1-2>"
	events, err := ParseScript(script)
	require.NoError(t, err)

	var b strings.Builder
	for _, ev := range events {
		b.WriteString(ev.String())
	}
	assert.Equal(t, script, b.String())
}

func TestParseScript_Errors(t *testing.T) {
	for _, script := range []string{
		"12<home",
		"<select:a-b>",
		"<select:3>",
		"<bogus:1>",
		"<>",
	} {
		t.Run(script, func(t *testing.T) {
			_, err := ParseScript(script)
			assert.Error(t, err)
		})
	}
}

func replayScript(t *testing.T, script string, cfg numeric.Config) []Step {
	t.Helper()
	events, err := ParseScript(script)
	require.NoError(t, err)

	ctl := NewMemory("")
	b, err := Bind(ctl, cfg)
	require.NoError(t, err)
	return Replay(b, ctl, events)
}

func last(steps []Step) numeric.State {
	return steps[len(steps)-1].State
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name   string
		script string
		cfg    numeric.Config
		want   numeric.State
	}{
		{"typing groups", "1234567", numeric.IntegerConfig(), numeric.State{Text: "1,234,567", Cursor: 9}},
		{"backspace across a comma", "1234<backspace>", numeric.IntegerConfig(), numeric.State{Text: "123", Cursor: 3}},
		{"letters suppressed", "1x2y3", numeric.IntegerConfig(), numeric.State{Text: "123", Cursor: 3}},
		{"sign typed late is suppressed", "12-", numeric.DecimalConfig(2, true), numeric.State{Text: "12", Cursor: 2}},
		{"sign at start", "12<home>-", numeric.DecimalConfig(2, true), numeric.State{Text: "-12", Cursor: 1}},
		{"second point suppressed", "1.2.3", numeric.DecimalConfig(2, false), numeric.State{Text: "1.23", Cursor: 4}},
		{"fraction clamped", "0.12345", numeric.DecimalConfig(2, false), numeric.State{Text: "0.12", Cursor: 4}},
		{"trailing point kept", "12.", numeric.DecimalConfig(2, false), numeric.State{Text: "12.", Cursor: 3}},
		{"select all then type", "123456<ctrl+a>7", numeric.IntegerConfig(), numeric.State{Text: "7", Cursor: 1}},
		{"paste merges", "1<paste:$250,000>", numeric.IntegerConfig(), numeric.State{Text: "1,250,000", Cursor: 9}},
		{"set canonicalizes", "99<set:1250000>", numeric.IntegerConfig(), numeric.State{Text: "1,250,000", Cursor: 9}},
		{"delete a comma regroups", "1234<home><right><delete>", numeric.IntegerConfig(), numeric.State{Text: "1,234", Cursor: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := replayScript(t, tt.script, tt.cfg)
			assert.Equal(t, tt.want, last(steps))
		})
	}
}

func TestReplay_MarksSuppressedKeys(t *testing.T) {
	steps := replayScript(t, "1a2", numeric.IntegerConfig())
	require.Len(t, steps, 3)

	assert.False(t, steps[0].Suppressed)
	assert.True(t, steps[1].Suppressed)
	assert.Equal(t, numeric.State{Text: "1", Cursor: 1}, steps[1].State)
	assert.False(t, steps[2].Suppressed)
}

func TestReplay_StatesAreAlwaysCanonical(t *testing.T) {
	cfg := numeric.DecimalConfig(2, true)
	steps := replayScript(t, "-12345.678<home><delete><paste:9,9-9><end><backspace><backspace>", cfg)

	for i, s := range steps {
		assert.Equal(t, numeric.Filter(s.State.Text, cfg), s.State.Text, "step %d (%s)", i, s.Event)
		assert.LessOrEqual(t, s.State.Cursor, len([]rune(s.State.Text)), "step %d", i)
	}
}
