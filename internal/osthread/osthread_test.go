package osthread

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDStableWhileLocked(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	first := ID()
	assert.NotZero(t, first)
	assert.Equal(t, first, ID())
}

func TestIDDiffersAcrossLockedThreads(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	mine := ID()

	other := make(chan int64)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		other <- ID()
	}()
	assert.NotEqual(t, mine, <-other)
}
