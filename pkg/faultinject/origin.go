package faultinject

import (
	"runtime"
	"strconv"
)

// Origin identifies a call site of the evaluation construct: the component
// name chosen by the caller plus the source file and line of the wrapper
// invocation.
type Origin struct {
	Component string `json:"component"`
	File      string `json:"file"`
	Line      int    `json:"line"`
}

// String renders the origin as "component:file:line", the prefix format
// used in forwarded failure messages.
func (o Origin) String() string {
	return o.Component + ":" + o.File + ":" + strconv.Itoa(o.Line)
}

// Here captures the file and line of its caller as an Origin with the
// given component name. Callers that need a different frame, or that have
// no runtime source information, can construct an Origin directly.
func Here(component string) Origin {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
	}
	return Origin{Component: component, File: file, Line: line}
}
