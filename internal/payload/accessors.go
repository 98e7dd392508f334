package payload

import "time"

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Int() int64 {
	switch v.kind {
	case KindInt:
		return v.data.(int64)
	case KindFloat:
		return int64(v.data.(float64))
	default:
		return 0
	}
}

func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.data.(float64)
	case KindInt:
		return float64(v.data.(int64))
	default:
		return 0
	}
}

func (v Value) Time() time.Time {
	if v.kind != KindTime {
		return time.Time{}
	}
	return v.data.(time.Time)
}

func (v Value) List() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.data.([]Value)
}

func (v Value) Record() map[string]Value {
	if v.kind != KindRecord {
		return nil
	}
	return v.data.(map[string]Value)
}

func (v Value) Reader() FieldReader {
	if v.kind != KindReader {
		return nil
	}
	return v.data.(FieldReader)
}

func (v Value) Opaque() any {
	if v.kind != KindOpaque {
		return nil
	}
	return v.data
}

// Field looks up a named field. Records consult their entries, Readers
// delegate to the underlying FieldReader; every other kind has no fields.
// The boolean reports whether the field exists.
func (v Value) Field(name string) (Value, bool) {
	switch v.kind {
	case KindRecord:
		val, ok := v.data.(map[string]Value)[name]
		return val, ok
	case KindReader:
		return v.data.(FieldReader).Field(name)
	default:
		return Nil(), false
	}
}

// HasFields reports whether Field can ever succeed on this kind.
func (v Value) HasFields() bool {
	return v.kind == KindRecord || v.kind == KindReader
}

// MergeRecords combines two records into a new one; on key collision the
// overlay wins. Non-record inputs contribute nothing.
func MergeRecords(base, overlay Value) Value {
	merged := map[string]Value{}
	for k, val := range base.Record() {
		merged[k] = val
	}
	for k, val := range overlay.Record() {
		merged[k] = val
	}
	return NewRecord(merged)
}
