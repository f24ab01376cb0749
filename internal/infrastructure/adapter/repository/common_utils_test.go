package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	t.Run("duplicate key detection", func(t *testing.T) {
		cases := map[string]bool{
			`duplicate key value violates unique constraint "idx_project_buyer"`: true,
			"UNIQUE constraint failed: cart_items.user_id":                       true,
			"Duplicate entry 'u1-p1' for key 'idx_cart_user_project'":            true,
			"connection refused":                                                 false,
			"record not found":                                                   false,
		}
		for msg, want := range cases {
			assert.Equal(t, want, classifier.IsDuplicateKeyError(errors.New(msg)), msg)
		}
		assert.False(t, classifier.IsDuplicateKeyError(nil))
	})

	t.Run("transient detection", func(t *testing.T) {
		assert.True(t, classifier.IsTransientError(errors.New("read tcp: connection reset by peer")))
		assert.True(t, classifier.IsTransientError(errors.New("dial tcp: i/o timeout")))
		assert.False(t, classifier.IsTransientError(errors.New("syntax error at or near")))
	})

	t.Run("classify precedence", func(t *testing.T) {
		assert.Equal(t, DuplicateKeyError, classifier.Classify(errors.New("duplicate key value")))
		assert.Equal(t, TransientError, classifier.Classify(errors.New("connection reset")))
		assert.Equal(t, ConstraintError, classifier.Classify(errors.New(`null value violates not-null constraint`)))
		assert.Equal(t, ErrorType(""), classifier.Classify(nil))
	})
}
