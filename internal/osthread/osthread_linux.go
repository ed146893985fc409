package osthread

import "golang.org/x/sys/unix"

// ID returns the kernel thread id.
func ID() int64 {
	return int64(unix.Gettid())
}
