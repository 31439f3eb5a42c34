//go:build !linux

package fbdev

import "os"

// Probe returns Fallback and false: there is no fbdev outside Linux.
func Probe(_ *os.File) (Info, bool) {
	return Fallback(), false
}
