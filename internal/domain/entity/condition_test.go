package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondition_Slug(t *testing.T) {
	assert.Equal(t, "seperti-baru", ConditionSepertiBaru.Slug())
	assert.Equal(t, "bagus", ConditionBagus.Slug())
	assert.Equal(t, "layak-pakai", ConditionLayakPakai.Slug())
}

func TestCondition_Valid(t *testing.T) {
	assert.True(t, ConditionSepertiBaru.Valid())
	assert.True(t, ConditionBagus.Valid())
	assert.True(t, ConditionLayakPakai.Valid())
	assert.False(t, Condition("Rusak").Valid())
	assert.False(t, Condition("").Valid())
}
