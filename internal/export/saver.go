package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
)

// Saver stores finished documents, either through the native save dialog or
// straight into a directory.
type Saver struct {
	Dir    string
	Dialog bool

	// selectFile asks the user for a destination. Tests replace it.
	selectFile func(doc Document, suggested string) (string, error)
}

// NewSaver returns a Saver writing into dir, asking first when dialog is set.
func NewSaver(dir string, dialog bool) *Saver {
	return &Saver{Dir: dir, Dialog: dialog, selectFile: selectFileSave}
}

// Save writes doc and returns where it went. A cancelled dialog returns an
// empty path and no error.
func (s *Saver) Save(doc Document) (string, error) {
	path := filepath.Join(s.Dir, doc.Name)

	if s.Dialog {
		selectFile := s.selectFile
		if selectFile == nil {
			selectFile = selectFileSave
		}
		chosen, err := selectFile(doc, path)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return "", nil
			}
			return "", fmt.Errorf("save dialog: %w", err)
		}
		path = chosen
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, doc.Data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func selectFileSave(doc Document, suggested string) (string, error) {
	ext := filepath.Ext(doc.Name)
	return zenity.SelectFileSave(
		zenity.Title("Export "+strings.ToUpper(strings.TrimPrefix(ext, "."))),
		zenity.Filename(suggested),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     doc.MIMEType,
			Patterns: []string{"*" + ext},
		}},
	)
}
