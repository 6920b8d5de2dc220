package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/bitwise-arcade/internal/core"
)

// Script is a sequence of per-frame held inputs for headless runs.
type Script []core.InputFrame

// ParseScript parses an input script. Tokens are separated by commas or
// whitespace; each token is "-" for an idle frame or actions joined by
// "+", optionally followed by "*N" to repeat it N times.
//
//	right*10, left+right, -*5, l
func ParseScript(src string) (Script, error) {
	fields := strings.FieldsFunc(src, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	var script Script
	for _, tok := range fields {
		body, count := tok, 1
		if i := strings.LastIndexByte(tok, '*'); i >= 0 {
			n, err := strconv.Atoi(tok[i+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("host: bad repeat count in %q", tok)
			}
			body, count = tok[:i], n
		}

		frame := core.NewInputFrame()
		if body != "-" {
			for _, name := range strings.Split(body, "+") {
				a, ok := core.ParseAction(strings.ToLower(name))
				if !ok {
					return nil, fmt.Errorf("host: unknown action %q in %q", name, tok)
				}
				frame.Set(a)
			}
		}

		for range count {
			script = append(script, frame.Clone())
		}
	}
	return script, nil
}

// Frame returns the input for frame i. Frames past the end are idle.
func (s Script) Frame(i int) core.InputFrame {
	if i < 0 || i >= len(s) {
		return core.NewInputFrame()
	}
	return s[i]
}
