//go:build !windows

package util

// IsRunFromGUI always reports false outside Windows; there is no file
// explorer launch to detect.
func IsRunFromGUI() bool {
	return false
}
