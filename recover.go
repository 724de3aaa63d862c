// recover.go — converting raised errors back into returned errors.
//
// Dispatch functions never catch anything. These helpers are for the code
// above them: a public API that prefers to return errors can defer Recover at
// its boundary. Panics that are not xgx-throw errors keep unwinding.
package xgxthrow

// Recover stores an in-flight xgx-throw panic in *errp. It must be called
// directly by defer:
//
//	func (l *List[T]) TryInsert(i int, v T) (err error) {
//		defer xgxthrow.Recover(&err)
//		l.Insert(i, v)
//		return nil
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	xe, ok := r.(Error)
	if !ok {
		panic(r)
	}
	if errp != nil {
		*errp = xe
	}
}

// Catch runs fn and returns the Error it raised, or nil if fn returned
// normally. Other panics propagate.
func Catch(fn func()) (raised Error) {
	defer func() {
		if r := recover(); r != nil {
			xe, ok := r.(Error)
			if !ok {
				panic(r)
			}
			raised = xe
		}
	}()
	fn()
	return nil
}
