package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		err      error
		expected ErrorType
	}{
		{nil, ""},
		{errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ConnectionError},
		{errors.New("sql: database is closed"), ConnectionError},
		{errors.New("context deadline exceeded"), ConnectionError},
		{errors.New("NOT NULL constraint failed: Log.message"), ConstraintError},
		{errors.New(`relation "Log" does not exist`), StatementError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.err))
		})
	}
}
