//go:build !windows

package sound

func newPlatformPlayer(_ Options) Player {
	return &unsupportedPlayer{}
}
