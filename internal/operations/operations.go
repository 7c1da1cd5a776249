// Package operations models a component's operation queue: the ordered install-time actions the installer runtime
// executes once a component has been constructed.
package operations

import (
	"strings"
	"sync"
)

// Kind names an operation the installer runtime knows how to perform
type Kind string

const (
	// Extract unpacks an archive: arguments are the archive and the destination directory
	Extract Kind = "Extract"
	// Execute runs a program: the first argument is the program, the rest are passed to it
	Execute Kind = "Execute"
	// Delete removes a file: the only argument is its path
	Delete Kind = "Delete"
)

// Operation is a single queued action
type Operation struct {
	Kind      Kind     `json:"kind" yaml:"kind"`
	Arguments []string `json:"arguments" yaml:"arguments"`
	Elevated  bool     `json:"elevated,omitempty" yaml:"elevated,omitempty"`
}

func (o Operation) String() string {
	s := string(o.Kind)
	if o.Elevated {
		s += " (elevated)"
	}
	if len(o.Arguments) > 0 {
		s += " " + strings.Join(o.Arguments, " ")
	}
	return s
}

// Queue is an ordered, append-only list of operations
type Queue struct {
	mu  sync.Mutex
	ops []Operation
}

func NewQueue() *Queue {
	return &Queue{}
}

// Add appends an operation the runtime performs with the installer's own privileges
func (q *Queue) Add(kind Kind, args ...string) {
	q.append(Operation{Kind: kind, Arguments: append([]string(nil), args...)})
}

// AddElevated appends an operation the runtime performs with administrative privileges
func (q *Queue) AddElevated(kind Kind, args ...string) {
	q.append(Operation{Kind: kind, Arguments: append([]string(nil), args...), Elevated: true})
}

func (q *Queue) append(op Operation) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops = append(q.ops, op)
}

// Operations returns a copy of the queued operations in order
func (q *Queue) Operations() []Operation {
	q.mu.Lock()
	defer q.mu.Unlock()
	result := make([]Operation, len(q.ops))
	for i, op := range q.ops {
		op.Arguments = append([]string(nil), op.Arguments...)
		result[i] = op
	}
	return result
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ops)
}

// Filter returns the queued operations of the given kind, in order
func (q *Queue) Filter(kind Kind) []Operation {
	var result []Operation
	for _, op := range q.Operations() {
		if op.Kind == kind {
			result = append(result, op)
		}
	}
	return result
}
