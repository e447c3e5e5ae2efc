package value

import (
	"fmt"
	"reflect"
)

// ToGo converts v into a plain Go value (nil/int64/float64/bool/string/
// []any/map[string]any), for use by components outside the VM that need a
// Value as an `any`. This mirrors the shape-dispatch idiom of the
// teacher's glue package (variant tag -> conversion function) without
// depending on its capnp-specific machinery.
func ToGo(v Value) any {
	switch v.kind {
	case KindNull:
		return nil
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.i != 0
	case KindStr:
		return string(v.Str().Bytes())
	case KindArray:
		a := v.Array()
		out := make([]any, len(a.data))
		for i, e := range a.data {
			out[i] = ToGo(e)
		}
		return out
	case KindMap:
		m := v.Map()
		out := make(map[string]any, m.count)
		for _, s := range m.slots {
			if s.state == slotOccupied {
				out[Render(s.key)] = ToGo(s.val)
			}
		}
		return out
	default:
		return Render(v)
	}
}

// FromGo converts a plain Go value produced by encoding/json-shaped
// decoding (nil/bool/float64/string/[]any/map[string]any, plus the
// int64/int variants our own code hands back) into a Value, allocating any
// container payloads on h. Returns an error naming the offending
// reflect.Kind for anything it cannot represent, matching glue.go's
// "can't be cast to X" error shape.
func FromGo(h *HeapCtx, x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case float64:
		return Float(t), nil
	case string:
		return h.NewStr([]byte(t)), nil
	case []any:
		out := h.NewArray(len(t))
		for _, e := range t {
			ev, err := FromGo(h, e)
			if err != nil {
				return Value{}, err
			}
			h.Push(out, ev)
		}
		return out, nil
	case map[string]any:
		out := h.NewMap(len(t))
		for k, e := range t {
			ev, err := FromGo(h, e)
			if err != nil {
				return Value{}, err
			}
			h.MapSet(out, h.NewStr([]byte(k)), ev)
		}
		return out, nil
	default:
		rv := reflect.ValueOf(x)
		return Value{}, fmt.Errorf("value.FromGo: %v can't be cast to a Value", rv.Kind())
	}
}
