package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_KeepsFirstError(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(false, "from", "must be a date")
	v.Check(false, "from", "second message")
	v.Check(true, "to", "never added")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"from": "must be a date"}, v.Errors)
}

func TestPermittedValue(t *testing.T) {
	assert.True(t, PermittedValue("memory", "memory", "sql"))
	assert.False(t, PermittedValue("duckdb", "memory", "sql"))
}
