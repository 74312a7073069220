//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !windows

package platform

// Descriptor returns GOOS-GOARCH; uname is not available here.
func Descriptor() string {
	return fallbackDescriptor()
}
