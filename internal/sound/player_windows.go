//go:build windows

package sound

import (
	"time"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"github.com/rs/zerolog"

	"github.com/claude-notifier/claude-notifier/internal/com"
	"github.com/claude-notifier/claude-notifier/internal/errors"
)

const (
	classURI         = "Windows.Foundation.Uri"
	classMediaSource = "Windows.Media.Core.MediaSource"
	classMediaPlayer = "Windows.Media.Playback.MediaPlayer"
)

var (
	iidURIFactory          = ole.NewGUID("{44A9796F-723E-4FDF-A218-033E75B0C084}")
	iidMediaSourceStatics  = ole.NewGUID("{F77D6FA4-4652-410E-B1D8-E9A5E245A45C}")
	iidMediaPlaybackSource = ole.NewGUID("{EF9DC2BC-9317-4696-B051-2BAD643177B5}")
	iidMediaPlayer         = ole.NewGUID("{381A83CB-6FFF-499B-8D64-2885DFC1249E}")
	iidMediaPlayerSource2  = ole.NewGUID("{82449B9F-7322-4C0B-B03B-3E69A48260C5}")
)

// vtable slots (IInspectable occupies 0-5)
const (
	slotURIFactoryCreateURI             = 6
	slotMediaSourceStaticsCreateFromURI = 13
	slotMediaPlayerSource2PutSource     = 7
	slotMediaPlayerPlay                 = 45
)

// windowsPlayer implements Player with Windows.Media.Playback.MediaPlayer
type windowsPlayer struct {
	startDelay   time.Duration
	playbackWait time.Duration
	log          zerolog.Logger
}

func newPlatformPlayer(opts Options) Player {
	return &windowsPlayer{
		startDelay:   opts.StartDelay,
		playbackWait: opts.PlaybackWait,
		log:          opts.Logger,
	}
}

// PlayFile plays a .wav file. The MediaPlayer is held until both waits have
// elapsed; releasing it earlier stops playback.
func (p *windowsPlayer) PlayFile(path string) error {
	abs, err := ValidateSoundFile(path)
	if err != nil {
		return err
	}
	uri := FileURI(abs)
	p.log.Debug().Str("uri", uri).Msg("playing sound file")

	scope, err := com.EnterRuntime()
	if err != nil {
		return errors.PlatformStep("initialize Windows Runtime", err)
	}
	defer scope.Close()

	uriObj, err := createURI(uri)
	if err != nil {
		return err
	}
	defer com.Release(uriObj)

	source, err := createMediaSource(uriObj)
	if err != nil {
		return err
	}
	defer com.Release(source)

	player, err := com.Activate(classMediaPlayer)
	if err != nil {
		return errors.PlatformStep("create media player", err)
	}
	defer com.Release(player)

	if err := setSource(player, source); err != nil {
		return err
	}

	mediaPlayer, err := com.QueryInterface(player, iidMediaPlayer)
	if err != nil {
		return errors.PlatformStep("play sound", err)
	}
	defer com.Release(mediaPlayer)

	if err := com.Call(mediaPlayer, slotMediaPlayerPlay); err != nil {
		return errors.PlatformStep("play sound", err)
	}

	time.Sleep(p.startDelay)
	p.log.Debug().Dur("wait", p.playbackWait).Msg("playback started")
	time.Sleep(p.playbackWait)
	return nil
}

func createURI(uri string) (*ole.IUnknown, error) {
	factory, err := com.Factory(classURI, iidURIFactory)
	if err != nil {
		return nil, errors.PlatformStep("create URI", err)
	}
	defer com.Release(factory)

	hURI, err := com.NewHString(uri)
	if err != nil {
		return nil, errors.PlatformStep("create URI", err)
	}
	defer hURI.Close()

	var out *ole.IUnknown
	if err := com.Call(factory, slotURIFactoryCreateURI, hURI.Ptr(), uintptr(unsafe.Pointer(&out))); err != nil {
		return nil, errors.PlatformStep("create URI", err)
	}
	return out, nil
}

func createMediaSource(uri *ole.IUnknown) (*ole.IUnknown, error) {
	statics, err := com.Factory(classMediaSource, iidMediaSourceStatics)
	if err != nil {
		return nil, errors.PlatformStep("create media source", err)
	}
	defer com.Release(statics)

	var out *ole.IUnknown
	err = com.Call(statics, slotMediaSourceStaticsCreateFromURI,
		uintptr(unsafe.Pointer(uri)),
		uintptr(unsafe.Pointer(&out)),
	)
	if err != nil {
		return nil, errors.PlatformStep("create media source", err)
	}
	return out, nil
}

func setSource(player, source *ole.IUnknown) error {
	playerSource, err := com.QueryInterface(player, iidMediaPlayerSource2)
	if err != nil {
		return errors.PlatformStep("set media source", err)
	}
	defer com.Release(playerSource)

	playbackSource, err := com.QueryInterface(source, iidMediaPlaybackSource)
	if err != nil {
		return errors.PlatformStep("set media source", err)
	}
	defer com.Release(playbackSource)

	if err := com.Call(playerSource, slotMediaPlayerSource2PutSource, uintptr(unsafe.Pointer(playbackSource))); err != nil {
		return errors.PlatformStep("set media source", err)
	}
	return nil
}
