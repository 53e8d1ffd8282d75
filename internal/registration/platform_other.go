//go:build !windows

package registration

func newPlatform(_ Options) Platform {
	return &unsupportedPlatform{}
}
