package payload

import "time"

func Nil() Value                        { return Value{kind: KindNil} }
func NewBool(b bool) Value              { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value              { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value          { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value          { return Value{kind: KindString, data: s} }
func NewTime(t time.Time) Value         { return Value{kind: KindTime, data: t} }
func NewList(elems []Value) Value       { return Value{kind: KindList, data: elems} }
func NewReader(r FieldReader) Value     { return Value{kind: KindReader, data: r} }
func NewOpaque(data any) Value          { return Value{kind: KindOpaque, data: data} }
func NewRecord(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindRecord, data: m}
}

// Wrap converts an arbitrary Go value into a Value. Primitives, time,
// string-keyed maps, and slices map onto their kinds; FieldReader
// implementations become Reader values; a Value passes through unchanged.
// Anything else becomes Opaque: still usable as a command parameter, just
// not addressable by a parameter path.
func Wrap(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Nil()
	case Value:
		return t
	case FieldReader:
		return NewReader(t)
	case bool:
		return NewBool(t)
	case int:
		return NewInt(int64(t))
	case int32:
		return NewInt(int64(t))
	case int64:
		return NewInt(t)
	case uint:
		return NewInt(int64(t))
	case uint32:
		return NewInt(int64(t))
	case uint64:
		return NewInt(int64(t))
	case float32:
		return NewFloat(float64(t))
	case float64:
		return NewFloat(t)
	case string:
		return NewString(t)
	case time.Time:
		return NewTime(t)
	case []Value:
		return NewList(t)
	case map[string]Value:
		return NewRecord(t)
	case map[string]any:
		rec := make(map[string]Value, len(t))
		for k, val := range t {
			rec[k] = Wrap(val)
		}
		return NewRecord(rec)
	case []any:
		elems := make([]Value, len(t))
		for i, val := range t {
			elems[i] = Wrap(val)
		}
		return NewList(elems)
	case []string:
		elems := make([]Value, len(t))
		for i, s := range t {
			elems[i] = NewString(s)
		}
		return NewList(elems)
	default:
		return NewOpaque(raw)
	}
}
