package faultinject

import (
	"errors"
	"strings"
	"testing"
)

func TestMustEvalPropagatesInjection(t *testing.T) {
	s := NewState()
	s.Arm(1)

	run := func() (err error) {
		defer Recover(&err)
		v := MustEvalWith(s, Here("strict"), func() (int, error) { return 7, nil })
		t.Errorf("reached code past the failing evaluation, v = %d", v)
		return nil
	}

	err := run()
	if !errors.Is(err, ErrInjected) {
		t.Fatalf("want injected fault, got %v", err)
	}
}

func TestMustEvalUnwrapsSuccess(t *testing.T) {
	s := NewState()

	run := func() (v int, err error) {
		defer Recover(&err)
		v = MustEvalWith(s, Here("strict"), func() (int, error) { return 7, nil })
		return v, nil
	}

	v, err := run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 {
		t.Errorf("v = %d, want 7", v)
	}
}

func TestMustDoForwardsWithAnnotation(t *testing.T) {
	s := NewState()
	errBroken := errors.New("pipe broken")

	run := func() (err error) {
		defer Recover(&err)
		s.MustDo(Origin{Component: "pipe", File: "pipe.go", Line: 9}, func() error { return errBroken })
		return nil
	}

	err := run()
	if !errors.Is(err, errBroken) {
		t.Fatalf("classification lost: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "pipe:pipe.go:9 -> ") {
		t.Errorf("missing origin prefix: %q", err.Error())
	}
}

func TestRecoverRepanicsForeignPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r != "unrelated" {
			t.Errorf("recovered %v, want the foreign panic", r)
		}
	}()

	var err error
	defer Recover(&err)
	panic("unrelated")
}

func TestRecoverNoPanic(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
	}()
	if err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestTriggerPanicEscapesStrictRecover(t *testing.T) {
	s := NewState()
	s.RegisterTrigger(func(string, string, int) { panic("callback exploded") })
	s.Arm(1)

	defer func() {
		if r := recover(); r != "callback exploded" {
			t.Errorf("recovered %v, want callback panic", r)
		}
	}()

	var err error
	defer Recover(&err)
	s.MustDo(Here("strict"), func() error { return nil })
	t.Error("evaluation did not unwind")
}
