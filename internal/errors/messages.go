package errors

import "fmt"

// SoundFileNotFound reports a --sound-file path that does not exist
func SoundFileNotFound(path string) *CLIError {
	return New(NotFound,
		fmt.Sprintf("sound file not found: %s", path),
		"Check the path passed to --sound-file",
	)
}

// SoundPathNotFile reports a --sound-file path that is a directory
func SoundPathNotFile(path string) *CLIError {
	return New(NotFound,
		fmt.Sprintf("sound path is a directory, not a file: %s", path),
		"Pass the path of a .wav file to --sound-file",
	)
}

// UnsupportedSoundFormat reports a sound file with an extension other than .wav
func UnsupportedSoundFormat(ext string) *CLIError {
	return New(UnsupportedFormat,
		fmt.Sprintf("only .wav files are supported on Windows (got %s)", ext),
		"Convert the sound to .wav",
	)
}

// PlatformUnsupported reports an operation that only exists on Windows
func PlatformUnsupported(what string) *CLIError {
	return New(UnsupportedPlatform,
		fmt.Sprintf("%s is only supported on Windows", what),
	)
}

// ConfigParseError reports a config file that could not be loaded
func ConfigParseError(path string, err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to load config %s", path),
		Err:      err,
		Remediation: []string{
			"Check the file for syntax errors",
			"Supported formats: .json, .yaml, .yml, .toml",
		},
	}
}

// ConfigValidationError reports a config that loaded but failed validation
func ConfigValidationError(err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  "config validation failed",
		Err:      err,
	}
}
