package card

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/arthur-debert/greetings/pkg/errors"
	"github.com/arthur-debert/greetings/pkg/filesystem"
	"github.com/arthur-debert/greetings/pkg/logging"
	"github.com/arthur-debert/greetings/pkg/sanitize"
	"github.com/arthur-debert/greetings/pkg/types"
)

// DefaultExportPath is <dir>/<kind>_card_<name>.txt, with every character
// of the name that is not a letter or digit replaced by an underscore
func DefaultExportPath(dir string, kind types.Kind, name string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, sanitize.Name(name))
	if safe == "" {
		safe = "card"
	}
	return filepath.Join(dir, fmt.Sprintf("%s_card_%s.txt", kind, safe))
}

// Export writes the plain text of c to path on the real filesystem
func Export(path string, c Content) error {
	return ExportFS(filesystem.NewOS(), path, c)
}

// ExportFS writes the plain text of c to path in fsys, creating parent
// directories. The file never contains escape sequences.
func ExportFS(fsys filesystem.FS, path string, c Content) error {
	logger := logging.GetLogger("card.export")

	if dir := filepath.Dir(path); dir != "" {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
				WithDetail("path", dir)
		}
	}
	if err := fsys.WriteFile(path, []byte(c.Plain().Text()+"\n"), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to export card to %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Str("kind", c.Kind.String()).Msg("Card exported")
	return nil
}
