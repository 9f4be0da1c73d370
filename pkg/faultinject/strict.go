package faultinject

// strictFailure carries an already-annotated evaluation failure up the
// stack to the matching Recover. It is unexported so foreign panics are
// never mistaken for harness propagation.
type strictFailure struct {
	err error
}

// MustDo is the strict form of State.Do: on failure it unwinds the
// enclosing function instead of returning an error. The enclosing
// function must defer Recover to translate the unwind back into its own
// error result.
func (s *State) MustDo(o Origin, op func() error) {
	if err := s.Do(o, op); err != nil {
		panic(strictFailure{err: err})
	}
}

// MustEvalWith is the strict form of EvalWith: it returns the success
// value directly and unwinds the enclosing function on failure.
func MustEvalWith[T any](s *State, o Origin, op func() (T, error)) T {
	v, err := EvalWith(s, o, op)
	if err != nil {
		panic(strictFailure{err: err})
	}
	return v
}

// Recover, deferred in a function using MustDo or MustEval, stores the
// propagated failure into *errp. Panics that did not originate from the
// strict evaluators — including panics from a trigger callback — are
// re-raised untouched.
func Recover(errp *error) {
	switch r := recover().(type) {
	case nil:
	case strictFailure:
		*errp = r.err
	default:
		panic(r)
	}
}

// MustDo is the strict form of Do on the Default state.
func MustDo(o Origin, op func() error) {
	Default.MustDo(o, op)
}

// MustEval is the strict form of Eval on the Default state.
func MustEval[T any](o Origin, op func() (T, error)) T {
	return MustEvalWith(Default, o, op)
}
