//go:build !windows

package notify

func newPlatformDispatcher(_ Options) Dispatcher {
	return &unsupportedDispatcher{}
}
