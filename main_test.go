package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbort(t *testing.T) {
	code := -1
	orig := exit
	exit = func(c int) { code = c }
	defer func() { exit = orig }()

	ctx, stop := context.WithCancel(context.Background())
	abort(&Gateway{}, stop)

	assert.Equal(t, 1, code)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
