package builtin

import (
	"bytes"
	"strconv"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

// jsonParse and jsonStringify are hand-written rather than a thin wrapper
// over goccy/go-json: the wire contract here (ints vs floats decided by
// presence of '.'/'e'/'E', non-ASCII \uXXXX escapes rendered as a literal
// '?' since Str is a byte array, not UTF-8-aware) is bespoke enough that a
// general-purpose unmarshaler can't express it without a second decode
// pass anyway.

type jsonParser struct {
	h   *value.HeapCtx
	src []byte
	pos int
}

func jsonParseErr(msg string) *bpcore.FatalError {
	return bpcore.Fatalf("json_parse: %s", msg)
}

func (p *jsonParser) skipWS() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *jsonParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *jsonParser) parseValue() value.Value {
	p.skipWS()
	switch c := p.peek(); {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '"':
		return p.parseString()
	case c == 't':
		p.expectLiteral("true")
		return value.Bool(true)
	case c == 'f':
		p.expectLiteral("false")
		return value.Bool(false)
	case c == 'n':
		p.expectLiteral("null")
		return value.Null()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		panic(jsonParseErr("unexpected character"))
	}
}

func (p *jsonParser) expectLiteral(lit string) {
	if p.pos+len(lit) > len(p.src) || string(p.src[p.pos:p.pos+len(lit)]) != lit {
		panic(jsonParseErr("invalid literal"))
	}
	p.pos += len(lit)
}

func (p *jsonParser) parseNumber() value.Value {
	start := p.pos
	isFloat := false
	if p.peek() == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if p.peek() == '.' {
		isFloat = true
		p.pos++
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		isFloat = true
		p.pos++
		if p.peek() == '+' || p.peek() == '-' {
			p.pos++
		}
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
	}
	lit := string(p.src[start:p.pos])
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			panic(jsonParseErr("invalid number"))
		}
		return value.Float(f)
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		panic(jsonParseErr("invalid number"))
	}
	return value.Int(i)
}

func (p *jsonParser) parseString() value.Value {
	if p.peek() != '"' {
		panic(jsonParseErr("expected string"))
	}
	p.pos++
	var out []byte
	for {
		if p.pos >= len(p.src) {
			panic(jsonParseErr("unterminated string"))
		}
		c := p.src[p.pos]
		if c == '"' {
			p.pos++
			break
		}
		if c == '\\' {
			p.pos++
			if p.pos >= len(p.src) {
				panic(jsonParseErr("unterminated escape"))
			}
			switch e := p.src[p.pos]; e {
			case '"', '\\', '/':
				out = append(out, e)
				p.pos++
			case 'n':
				out = append(out, '\n')
				p.pos++
			case 't':
				out = append(out, '\t')
				p.pos++
			case 'r':
				out = append(out, '\r')
				p.pos++
			case 'b':
				out = append(out, '\b')
				p.pos++
			case 'f':
				out = append(out, '\f')
				p.pos++
			case 'u':
				p.pos++
				if p.pos+4 > len(p.src) {
					panic(jsonParseErr("truncated \\u escape"))
				}
				cp, err := strconv.ParseUint(string(p.src[p.pos:p.pos+4]), 16, 32)
				if err != nil {
					panic(jsonParseErr("invalid \\u escape"))
				}
				p.pos += 4
				if cp <= 127 {
					out = append(out, byte(cp))
				} else {
					out = append(out, '?')
				}
			default:
				panic(jsonParseErr("invalid escape"))
			}
			continue
		}
		out = append(out, c)
		p.pos++
	}
	return p.h.NewStr(out)
}

func (p *jsonParser) parseArray() value.Value {
	p.pos++ // '['
	out := p.h.NewArray(0)
	p.skipWS()
	if p.peek() == ']' {
		p.pos++
		return out
	}
	for {
		p.h.Push(out, p.parseValue())
		p.skipWS()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return out
		default:
			panic(jsonParseErr("expected ',' or ']'"))
		}
	}
}

func (p *jsonParser) parseObject() value.Value {
	p.pos++ // '{'
	out := p.h.NewMap(0)
	p.skipWS()
	if p.peek() == '}' {
		p.pos++
		return out
	}
	for {
		p.skipWS()
		key := p.parseString()
		p.skipWS()
		if p.peek() != ':' {
			panic(jsonParseErr("expected ':'"))
		}
		p.pos++
		val := p.parseValue()
		p.h.MapSet(out, key, val)
		p.skipWS()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return out
		default:
			panic(jsonParseErr("expected ',' or '}'"))
		}
	}
}

func jsonParseBuiltin(ctx *Context, args []value.Value) value.Value {
	src := wantStr("json_parse", args, 0).Str().Bytes()
	p := &jsonParser{h: ctx.H, src: src}
	v := p.parseValue()
	p.skipWS()
	if p.pos != len(p.src) {
		panic(jsonParseErr("trailing data after value"))
	}
	return v
}

func jsonEscapeString(buf *bytes.Buffer, s []byte) {
	buf.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}

func jsonStringifyValue(buf *bytes.Buffer, v value.Value) {
	switch {
	case v.IsNull():
		buf.WriteString("null")
	case v.IsBool():
		if v.Bool() {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case v.IsInt():
		buf.WriteString(strconv.FormatInt(v.Int64(), 10))
	case v.IsFloat():
		buf.WriteString(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case v.IsStr():
		jsonEscapeString(buf, v.Str().Bytes())
	case v.IsArray():
		a := v.Array()
		buf.WriteByte('[')
		for i := 0; i < a.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			jsonStringifyValue(buf, a.At(i))
		}
		buf.WriteByte(']')
	case v.IsMap():
		jsonStringifyMap(buf, v)
	default:
		panic(bpcore.Fatalf("json_stringify: %s is not JSON-representable", value.TypeName(v)))
	}
}

func jsonStringifyMap(buf *bytes.Buffer, mv value.Value) {
	buf.WriteByte('{')
	first := true
	for _, e := range mv.Map().Entries() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if !e.Key.IsStr() {
			panic(bpcore.Fatalf("json_stringify: map key must be a str, got %s", value.TypeName(e.Key)))
		}
		jsonEscapeString(buf, e.Key.Str().Bytes())
		buf.WriteByte(':')
		jsonStringifyValue(buf, e.Val)
	}
	buf.WriteByte('}')
}

func jsonStringifyBuiltin(ctx *Context, args []value.Value) value.Value {
	var buf bytes.Buffer
	jsonStringifyValue(&buf, args[0])
	return ctx.H.NewStr(buf.Bytes())
}
