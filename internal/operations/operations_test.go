package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	q := NewQueue()
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Operations())

	q.Add(Extract, "payload.7z", "@TargetDir@")
	q.AddElevated(Execute, "@TargetDir@/setup.exe", "/quiet")
	q.Add(Delete, "@TargetDir@/setup.exe")

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []Operation{
		{Kind: Extract, Arguments: []string{"payload.7z", "@TargetDir@"}},
		{Kind: Execute, Arguments: []string{"@TargetDir@/setup.exe", "/quiet"}, Elevated: true},
		{Kind: Delete, Arguments: []string{"@TargetDir@/setup.exe"}},
	}, q.Operations())

	assert.Len(t, q.Filter(Execute), 1)
	assert.Empty(t, q.Filter("Copy"))
}

func TestOperationsIsACopy(t *testing.T) {
	q := NewQueue()
	q.Add(Delete, "a")

	ops := q.Operations()
	ops[0].Arguments[0] = "changed"

	assert.Equal(t, []string{"a"}, q.Operations()[0].Arguments)
}

func TestAddCopiesArguments(t *testing.T) {
	q := NewQueue()
	args := []string{"@TargetDir@/setup.exe", "/quiet"}
	q.AddElevated(Execute, args...)
	q.Add(Delete, args[:1]...)

	args[0] = "changed"

	ops := q.Operations()
	assert.Equal(t, []string{"@TargetDir@/setup.exe", "/quiet"}, ops[0].Arguments)
	assert.Equal(t, []string{"@TargetDir@/setup.exe"}, ops[1].Arguments)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Execute (elevated) a.exe /quiet", Operation{Kind: Execute, Arguments: []string{"a.exe", "/quiet"}, Elevated: true}.String())
	assert.Equal(t, "Delete a.exe", Operation{Kind: Delete, Arguments: []string{"a.exe"}}.String())
	assert.Equal(t, "Extract", Operation{Kind: Extract}.String())
}
