// Package notify_test tests PowerShell script generation for the Windows sender.
// Related: internal/notify/powershell.go
// Tags: notify, windows, powershell, quoting, injection
package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotePowerShell(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":                {in: "Build done", want: "'Build done'"},
		"empty":                {in: "", want: "''"},
		"apostrophe":           {in: "it's", want: "'it''s'"},
		"dollar kept verbatim": {in: "Cost $5", want: "'Cost $5'"},
		"backtick kept":        {in: "a`b", want: "'a`b'"},
		"variable not expanded": {
			in:   "$env:USERNAME",
			want: "'$env:USERNAME'",
		},
		"left single quotation mark":  {in: "a\u2018b", want: "'a\u2018\u2018b'"},
		"right single quotation mark": {in: "a\u2019b", want: "'a\u2019\u2019b'"},
		"low single quotation mark":   {in: "a\u201Ab", want: "'a\u201A\u201Ab'"},
		"reversed quotation mark":     {in: "a\u201Bb", want: "'a\u201B\u201Bb'"},
		"multiline":                   {in: "line1\nline2", want: "'line1\nline2'"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, quotePowerShell(tt.in))
		})
	}
}

// closesLiteral reports whether a single-quoted literal produced by
// quotePowerShell ends before its last character: every quote-like rune in
// the body must appear in pairs.
func closesLiteral(lit string) bool {
	body := []rune(lit[1 : len(lit)-1])
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\'', '\u2018', '\u2019', '\u201A', '\u201B':
			if i+1 >= len(body) || body[i+1] != body[i] {
				return true
			}
			i++
		}
	}
	return false
}

func TestQuotePowerShell_CannotBreakOut(t *testing.T) {
	t.Parallel()

	payloads := []string{
		"x'; Start-Process calc; '",
		"x\u2019; Start-Process calc; \u2019",
		"x\u2018; Start-Process calc; \u2018",
		"x\u201A; Start-Process calc; \u201B",
		"''''",
		"'\u2019'\u2018",
	}
	for _, p := range payloads {
		lit := quotePowerShell(p)
		assert.False(t, closesLiteral(lit), "payload %q escaped the literal: %s", p, lit)
	}
}

func TestToastScript(t *testing.T) {
	t.Parallel()

	script := toastScript(Notification{
		AppName: "ci",
		Summary: "x\u2019; Start-Process calc; \u2019",
		Body:    "Cost $5",
		Timeout: TimeoutMillis(3000),
	})

	assert.Contains(t, script, "CreateTextNode('x\u2019\u2019; Start-Process calc; \u2019\u2019')")
	assert.Contains(t, script, "CreateTextNode('Cost $5')")
	assert.Contains(t, script, "CreateToastNotifier('ci')")
	assert.Contains(t, script, "SetAttribute('duration', 'short')")
	assert.NotContains(t, script, "`$")
}

func TestToastScript_DefaultsAndDuration(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		timeout Timeout
		want    string
	}{
		"server default": {timeout: TimeoutDefault, want: "short"},
		"short":          {timeout: TimeoutMillis(5000), want: "short"},
		"long":           {timeout: TimeoutMillis(10000), want: "long"},
		"never":          {timeout: TimeoutNever, want: "long"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			script := toastScript(Notification{Summary: "s", Timeout: tt.timeout})
			assert.Contains(t, script, "SetAttribute('duration', '"+tt.want+"')")
			assert.Contains(t, script, "CreateToastNotifier('notifyctl')")
		})
	}
}

func TestSoundScript(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[Console]::Beep(800, 200)", soundScript(""))

	script := soundScript(`C:\Users\o'neil\ding.wav`)
	assert.True(t, strings.Contains(script, `$player.SoundLocation = 'C:\Users\o''neil\ding.wav'`), script)
}
