package builtin

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/th3f0rk/betterpython/value"
)

var stdinReader = bufio.NewReader(os.Stdin)

// builtinPrint writes its arguments space-separated, canonically rendered,
// terminated by a newline (spec.md §4.B).
func builtinPrint(ctx *Context, args []value.Value) value.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.Render(a)
	}
	fmt.Println(strings.Join(parts, " "))
	return value.Null()
}

// builtinReadLine reads one line from stdin, trimming a trailing \r?\n.
func builtinReadLine(ctx *Context, args []value.Value) value.Value {
	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return ctx.H.NewStr(nil)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return ctx.H.NewStr([]byte(line))
}

// builtinToStr is to_str: canonical rendering per variant.
func builtinToStr(ctx *Context, args []value.Value) value.Value {
	return ctx.H.NewStr([]byte(value.Render(args[0])))
}
