package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/filesystem"
)

// GenerateConfigContent returns the defaults with every value commented out,
// ready to be edited into a user config file
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// WriteUserConfig writes the generated config to path. An existing file is
// only replaced when force is set.
func WriteUserConfig(path string, force bool) error {
	return WriteUserConfigFS(filesystem.NewOS(), path, force)
}

// WriteUserConfigFS is WriteUserConfig on fsys
func WriteUserConfigFS(fsys filesystem.FS, path string, force bool) error {
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrFileWrite, "%s already exists (use --force to overwrite)", path).
			WithDetail("path", path)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines and comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [remote], [remote.azure]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
