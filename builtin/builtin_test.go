package builtin

import (
	"github.com/th3f0rk/betterpython/value"
)

// newTestContext builds a Context with a fresh heap and a deterministic
// environment, mirroring NewContext but without touching the real process.
func newTestContext() *Context {
	state := int64(1)
	exitCode := 0
	exiting := false
	return &Context{
		H:         value.NewHeapCtx(),
		Argv:      []string{"prog", "a", "b"},
		Getenv:    func(string) string { return "" },
		ClockMs:   func() int64 { return 1000 },
		ExitCode:  &exitCode,
		Exiting:   &exiting,
		RandState: &state,
	}
}

func strOf(ctx *Context, s string) value.Value {
	return ctx.H.NewStr([]byte(s))
}

func bytesOf(v value.Value) string {
	return string(v.Str().Bytes())
}
