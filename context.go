// context.go — immutable runtime context carried by raised errors.
//
// Design:
//   • Internal representation: []Field in insertion order (deterministic %+v).
//   • Built once by the constructor and never appended to afterwards.
//   • Public view for callers: copy-on-read map[string]any.
package xgxthrow

// Field is one contextual key-value pair attached to an error.
type Field struct {
	Key string
	Val any
}

// fields is the internal context representation. Never modify elements in
// place once an error is published.
type fields []Field

// Context keys used by the dispatch functions.
const (
	CtxActualValue = "actual_value"
	CtxObjectName  = "object_name"
	CtxTargetType  = "target_type"
	CtxValue       = "value"
)

// ctxOf builds fields from alternating key/value pairs.
func ctxOf(kv ...any) fields {
	if len(kv) == 0 {
		return nil
	}
	out := make(fields, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		out = append(out, Field{Key: k, Val: kv[i+1]})
	}
	return out
}

// ctxToMap creates a NEW map from fields (copy-on-read).
// Later duplicate keys overwrite earlier ones (last-write-wins).
func ctxToMap(fs fields) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
