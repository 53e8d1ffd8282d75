package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claude-notifier/claude-notifier/internal/config"
	"github.com/claude-notifier/claude-notifier/internal/identity"
	"github.com/claude-notifier/claude-notifier/internal/logging"
	"github.com/claude-notifier/claude-notifier/internal/notify"
	"github.com/claude-notifier/claude-notifier/internal/registration"
	"github.com/claude-notifier/claude-notifier/internal/sound"
)

func run(cmd *cobra.Command, flags commandFlags, deps Dependencies) error {
	cfg, err := config.Load(flags.configPath, flagOverrides(cmd))
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	log := logging.New(stderr, cfg.Verbose)
	status := logging.NewStatus(cmd.OutOrStdout(), stderr)
	log.Debug().Str("config", cfg.String()).Msg("configuration loaded")

	registrar := deps.NewRegistrar(registration.Options{
		StartMenuDir: cfg.StartMenuDir,
		Logger:       log,
	})

	// --init wins when both are given
	if flags.init {
		status.Info("Registering AUMID and creating Start Menu shortcut...")
		if err := registrar.Register(); err != nil {
			return err
		}
		status.Info("Registration complete!")
		return nil
	}
	if flags.uninstall {
		status.Info("Removing registration...")
		if err := registrar.Unregister(); err != nil {
			return err
		}
		status.Info("Unregistration complete!")
		return nil
	}

	if !registrar.IsRegistered() {
		status.Warn("Not registered. Run with --init first for proper notifications.")
	}

	// informational only, the toast keeps its default audio element
	if cfg.Sound != "" {
		status.Note("System sound: %s", sound.ResolveSystemSound(cfg.Sound))
	}

	dispatcher := deps.NewDispatcher(notify.Options{
		AppID:     identity.AppID,
		ShowDelay: cfg.ShowDelay,
		Logger:    log,
	})
	if err := dispatcher.Send(notify.NewNotification(cfg.Title, cfg.Message, cfg.Silent())); err != nil {
		return err
	}

	if cfg.SoundFile == "" {
		return nil
	}

	player := deps.NewPlayer(sound.Options{
		StartDelay:   cfg.PlaybackStartDelay,
		PlaybackWait: cfg.PlaybackWait,
		Logger:       log,
	})
	indicator := deps.NewIndicator(stderr, cfg.ASCII)
	indicator.Start("Playing " + filepath.Base(cfg.SoundFile))
	defer indicator.Stop()

	return player.PlayFile(cfg.SoundFile)
}
