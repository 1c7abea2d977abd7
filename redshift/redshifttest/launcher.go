// Package redshifttest provides a recording redshift.Launcher for tests.
package redshifttest

import (
	"strings"
	"sync"
)

// Call is one recorded launch.
type Call struct {
	Name string
	Args []string
}

// String returns the command line of the call.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Launcher records launches instead of starting processes. Err, when set,
// is returned from every Launch. Before, when set, runs first and can
// inspect state at launch time.
type Launcher struct {
	mu     sync.Mutex
	calls  []Call
	Err    error
	Before func(Call)
}

// Launch records the call.
func (l *Launcher) Launch(name string, args ...string) error {
	call := Call{Name: name, Args: append([]string(nil), args...)}
	if l.Before != nil {
		l.Before(call)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Err != nil {
		return l.Err
	}
	l.calls = append(l.calls, call)
	return nil
}

// Calls returns the successful launches so far.
func (l *Launcher) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Call(nil), l.calls...)
}

// Last returns the most recent successful launch.
func (l *Launcher) Last() (Call, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.calls) == 0 {
		return Call{}, false
	}
	return l.calls[len(l.calls)-1], true
}

// Reset forgets recorded calls.
func (l *Launcher) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = nil
}
