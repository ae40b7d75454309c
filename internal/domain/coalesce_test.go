package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "Paris", CoalesceStr("", "  ", "Paris", "Lyon"))
	assert.Equal(t, "", CoalesceStr())
}

func TestFirstSet(t *testing.T) {
	three, five := 3, 5
	assert.Equal(t, 3, FirstSet(1, nil, &three, &five))
	assert.Equal(t, 1, FirstSet[int](1, nil, nil))
	assert.Equal(t, "x", FirstSet("x"))
}
