package value

import (
	"strconv"
	"strings"
)

// Render produces the canonical string form of v per spec.md §6: ints
// decimal, floats shortest-round-trip, bool true/false, null "null",
// arrays "[e1, e2, ...]", maps "{k: v, ...}", pointers "<ptr:ADDR>".
func Render(v Value) string {
	var b strings.Builder
	render(&b, v)
	return b.String()
}

func render(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindInt:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindBool:
		if v.i != 0 {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindStr:
		b.Write(v.Str().Bytes())
	case KindArray:
		a := v.Array()
		b.WriteByte('[')
		for i, e := range a.data {
			if i > 0 {
				b.WriteString(", ")
			}
			render(b, e)
		}
		b.WriteByte(']')
	case KindMap:
		m := v.Map()
		b.WriteByte('{')
		first := true
		for _, s := range m.slots {
			if s.state != slotOccupied {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			render(b, s.key)
			b.WriteString(": ")
			render(b, s.val)
		}
		b.WriteByte('}')
	case KindStruct:
		b.WriteString("<struct>")
	case KindClass:
		b.WriteByte('<')
		b.WriteString(v.Class().Name())
		b.WriteByte('>')
	case KindPtr:
		b.WriteString("<ptr:")
		b.WriteString(strconv.FormatInt(v.i, 10))
		b.WriteByte('>')
	case KindFunc:
		b.WriteString("<func:")
		b.WriteString(strconv.FormatInt(v.i, 10))
		b.WriteByte('>')
	}
}
