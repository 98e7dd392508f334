// Package payload models the dynamic values that flow from trigger events
// into command invocations. A Value is a tagged union over a small set of
// kinds; structured payloads expose named fields either as a Record or by
// implementing FieldReader. Lookup never uses reflection.
package payload

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindTime
	KindList
	KindRecord
	KindReader
	KindOpaque
)

// Value is an immutable tagged union. The zero Value is Nil.
type Value struct {
	kind ValueKind
	data any
}

// FieldReader is the capability a payload type implements to make its
// fields addressable by parameter paths. The second return reports whether
// the field exists; a nil-valued field that exists returns (Nil(), true).
type FieldReader interface {
	Field(name string) (Value, bool)
}

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	case KindReader:
		return "reader"
	case KindOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return ""
	case KindBool:
		if v.data.(bool) {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.data.(int64))
	case KindFloat:
		return fmt.Sprintf("%g", v.data.(float64))
	case KindString:
		return v.data.(string)
	case KindTime:
		return v.data.(time.Time).Format(time.RFC3339Nano)
	case KindList:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case KindRecord:
		entries := v.data.(map[string]Value)
		if len(entries) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, entries[k].String()))
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
	case KindReader:
		return fmt.Sprintf("<reader %T>", v.data)
	case KindOpaque:
		return fmt.Sprintf("<opaque %T>", v.data)
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Equal reports structural equality. Reader and Opaque values compare by
// interface identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.data.(bool) == other.data.(bool)
	case KindInt:
		return v.data.(int64) == other.data.(int64)
	case KindFloat:
		return v.data.(float64) == other.data.(float64)
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindTime:
		return v.data.(time.Time).Equal(other.data.(time.Time))
	case KindList:
		a, b := v.data.([]Value), other.data.([]Value)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindRecord:
		a, b := v.data.(map[string]Value), other.data.(map[string]Value)
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	default:
		return v.data == other.data
	}
}
