// unwrap.go — collecting raised errors out of joined error trees.
//
// Boundary code that runs several operations with Catch or Recover often
// aggregates the results with errors.Join or %w. errors.As only finds the
// first match; Errors finds every one.
//
// Traversal semantics:
//   - Pre-order, left to right, over both Unwrap() error and Unwrap() []error.
//   - Pointer identity guards against visiting the same node twice; depth is
//     capped against runaway graphs.
package xgxthrow

import "reflect"

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

// Errors returns every Error in err's unwrap tree in depth-first order.
// It returns nil when err is nil or holds no Error.
func Errors(err error) []Error {
	var out []Error
	walk(err, func(e error) bool {
		if xe, ok := e.(Error); ok {
			out = append(out, xe)
		}
		return true
	})
	return out
}

// CountKind reports how many Errors in err's tree are of kind k or descend
// from it.
func CountKind(err error, k Kind) int {
	n := 0
	for _, xe := range Errors(err) {
		if xe.Kind().within(k) {
			n++
		}
	}
	return n
}

// walk visits each distinct node in pre-order and stops when visit returns
// false.
func walk(err error, visit func(error) bool) {
	if err == nil {
		return
	}
	seen := make(map[uintptr]struct{}, 8)
	stack := []error{err}
	for len(stack) > 0 && len(stack) < maxWalkDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !markSeen(cur, seen) {
			continue
		}
		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] != nil {
					stack = append(stack, kids[i])
				}
			}
		case singleUnwrapper:
			if c := u.Unwrap(); c != nil {
				stack = append(stack, c)
			}
		}
	}
}

// markSeen reports whether err is visited for the first time. Only pointer
// errors can form cycles, so value errors always pass.
func markSeen(err error, seen map[uintptr]struct{}) bool {
	if xe, ok := err.(*exceptionErr); ok {
		return mark(reflect.ValueOf(xe).Pointer(), seen)
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return true
	}
	return mark(rv.Pointer(), seen)
}

func mark(id uintptr, seen map[uintptr]struct{}) bool {
	if _, dup := seen[id]; dup {
		return false
	}
	seen[id] = struct{}{}
	return true
}
