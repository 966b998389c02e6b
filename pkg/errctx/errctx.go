// Package errctx implements the thread-local last-error channel:
// a process-wide resource keyed per goroutine, holding an optional
// (Code, message) pair that any kernel may set and any caller may inspect.
//
// Go has no built-in goroutine-local storage. This package emulates it the
// same low-tech way libraries needing that property without threading a
// handle through every call traditionally have: it parses the calling
// goroutine's numeric id out of the header line of a runtime.Stack dump and
// keys a sync.Map on it. It is slower than a real TLS slot, but the error
// channel is never on a kernel's hot path, only on its failure path.
package errctx

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// Code is one of the closed set of error kinds a kernel may report.
type Code int

const (
	NoError Code = iota
	Overflow
	NaN
	Infinite
	GammaFunctionFailed
	InvalidParameter
	SetMaxThreads
	InvalidTest
	DuplicateTest
	TestFailed
	TestWasNotRun
)

func (c Code) String() string {
	switch c {
	case NoError:
		return "NoError"
	case Overflow:
		return "Overflow"
	case NaN:
		return "NaN"
	case Infinite:
		return "Infinite"
	case GammaFunctionFailed:
		return "GammaFunctionFailed"
	case InvalidParameter:
		return "InvalidParameter"
	case SetMaxThreads:
		return "SetMaxThreads"
	case InvalidTest:
		return "InvalidTest"
	case DuplicateTest:
		return "DuplicateTest"
	case TestFailed:
		return "TestFailed"
	case TestWasNotRun:
		return "TestWasNotRun"
	default:
		return "Unknown"
	}
}

type entry struct {
	code    Code
	message string
}

var slots sync.Map // map[int64]*entry

// goroutineID parses the current goroutine's numeric id from the header
// line of a runtime.Stack dump ("goroutine 123 [running]:...").
func goroutineID() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]
	const prefix = "goroutine "
	if !bytes.HasPrefix(buf, []byte(prefix)) {
		return -1
	}
	buf = buf[len(prefix):]
	end := bytes.IndexByte(buf, ' ')
	if end < 0 {
		return -1
	}
	id, err := strconv.ParseInt(string(buf[:end]), 10, 64)
	if err != nil {
		return -1
	}
	return id
}

// Set overwrites the calling goroutine's error slot. Every new error
// overwrites the previous one; there is no accumulation.
func Set(code Code, message string) {
	slots.Store(goroutineID(), &entry{code: code, message: message})
}

// Get returns the calling goroutine's last error, if any. ok is false if
// the slot has never been set (or was cleared) on this goroutine.
func Get() (code Code, message string, ok bool) {
	v, found := slots.Load(goroutineID())
	if !found {
		return NoError, "", false
	}
	e := v.(*entry)
	return e.code, e.message, true
}

// Clear empties the calling goroutine's error slot. Error kinds never
// transition spontaneously; only Set and Clear mutate the slot.
func Clear() {
	slots.Delete(goroutineID())
}
