package domain

import "go.trai.ch/zerr"

var (
	// ErrParseFailed is returned when a component source cannot be parsed.
	ErrParseFailed = zerr.New("failed to parse component")

	// ErrUnsupportedTarget is returned for a target identifier outside the known set.
	ErrUnsupportedTarget = zerr.New("unsupported target")

	// ErrInvalidTargetOptions is returned when a target's option sub-object is malformed.
	ErrInvalidTargetOptions = zerr.New("invalid target options")

	// ErrGenerationFailed is returned when the generator fails for one file.
	ErrGenerationFailed = zerr.New("failed to generate component")

	// ErrPostProcessFailed is returned when post-processing fails for one file.
	ErrPostProcessFailed = zerr.New("failed to post-process component")

	// ErrTranspileFailed is returned when the transpile step fails for one file.
	ErrTranspileFailed = zerr.New("failed to transpile file")

	// ErrContextGenerationFailed is returned when a context file cannot be regenerated.
	ErrContextGenerationFailed = zerr.New("failed to generate context file")

	// ErrSourceReadFailed is returned when a source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrOverrideReadFailed is returned when an existing override cannot be read.
	ErrOverrideReadFailed = zerr.New("failed to read override file")

	// ErrOutputWriteFailed is returned when an artifact cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write output file")

	// ErrCleanFailed is returned when stale artifacts cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean destination")

	// ErrDiscoveryFailed is returned when the source tree cannot be walked.
	ErrDiscoveryFailed = zerr.New("failed to discover source files")

	// ErrInvalidGlob is returned when the source glob does not compile.
	ErrInvalidGlob = zerr.New("invalid source glob")

	// ErrBuildExecutionFailed is returned when any build unit fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrPluginFailed is returned when an external plugin command fails.
	ErrPluginFailed = zerr.New("plugin command failed")

	// ErrPluginOutputInvalid is returned when a plugin prints malformed output.
	ErrPluginOutputInvalid = zerr.New("plugin produced invalid output")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file exists up to the filesystem root.
	ErrConfigNotFound = zerr.New("could not find fanout.yaml")

	// ErrUnsupportedConfigVersion is returned for an unknown config version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrStoreReadFailed is returned when the manifest cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build manifest")

	// ErrStoreUnmarshalFailed is returned when the manifest cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build manifest")

	// ErrStoreMarshalFailed is returned when the manifest cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build manifest")

	// ErrStoreWriteFailed is returned when the manifest cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build manifest")

	// ErrStoreCreateFailed is returned when the state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state directory")
)
