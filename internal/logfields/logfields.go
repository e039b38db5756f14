package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBranch     = "branch"
	KeyVersion    = "version"
	KeyBuildID    = "build_id"
	KeyCommand    = "command"
	KeyOutputDir  = "output_dir"
	KeySourceDir  = "source_dir"
	KeyEnvVar     = "env_var"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyExitCode   = "exit_code"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Branch(b string) slog.Attr       { return slog.String(KeyBranch, b) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Command(c string) slog.Attr      { return slog.String(KeyCommand, c) }
func OutputDir(d string) slog.Attr    { return slog.String(KeyOutputDir, d) }
func SourceDir(d string) slog.Attr    { return slog.String(KeySourceDir, d) }
func EnvVar(name string) slog.Attr    { return slog.String(KeyEnvVar, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func ExitCode(code int) slog.Attr     { return slog.Int(KeyExitCode, code) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
