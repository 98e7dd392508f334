package payload

import (
	jsoniter "github.com/json-iterator/go"
)

// Interface converts a Value into plain Go data suitable for JSON
// encoding. Reader and Opaque values are lossy: they encode as their
// string representation.
func (v Value) Interface() any {
	switch v.kind {
	case KindNil:
		return nil
	case KindBool:
		return v.data.(bool)
	case KindInt:
		return v.data.(int64)
	case KindFloat:
		return v.data.(float64)
	case KindString:
		return v.data.(string)
	case KindTime:
		return v.data
	case KindList:
		elems := v.data.([]Value)
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = e.Interface()
		}
		return out
	case KindRecord:
		entries := v.data.(map[string]Value)
		out := make(map[string]any, len(entries))
		for k, e := range entries {
			out[k] = e.Interface()
		}
		return out
	default:
		return v.String()
	}
}

// ToJSON encodes the Value as JSON.
func (v Value) ToJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(v.Interface())
}
