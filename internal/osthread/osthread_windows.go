package osthread

import "golang.org/x/sys/windows"

// ID returns the Win32 thread id.
func ID() int64 {
	return int64(windows.GetCurrentThreadId())
}
