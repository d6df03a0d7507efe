// Package dialog shows the native open-file dialog.
package dialog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

// Filter is a named set of file extensions, without dots. "*" matches
// everything.
type Filter struct {
	Name       string
	Extensions []string
}

// DefaultFilters are offered by the Open dialog.
var DefaultFilters = []Filter{
	{Name: "All Files", Extensions: []string{"*"}},
	{Name: "Text Files", Extensions: []string{"txt"}},
	{Name: "Data Files", Extensions: []string{"json", "csv", "xml"}},
	{Name: "Image Files", Extensions: []string{"png", "jpg", "jpeg", "bmp", "gif"}},
}

// Native is a synchronous file picker backed by the OS dialog. It blocks
// the calling goroutine, which must be the main thread.
type Native struct {
	Title   string
	Filters []Filter
	// StartDir is where the dialog opens; it follows the last pick.
	StartDir string
}

// NewNative returns a picker with the default filters.
func NewNative() *Native {
	return &Native{Title: "Open File", Filters: DefaultFilters}
}

// PickFile shows the dialog. ok is false when the user cancels.
func (n *Native) PickFile() (string, bool, error) {
	b := dialog.File().Title(n.Title)
	for _, f := range n.Filters {
		b = b.Filter(f.Name, f.Extensions...)
	}
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}

	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("open file dialog: %w", err)
	}
	n.StartDir = filepath.Dir(path)
	return path, true, nil
}

// Match reports whether path is accepted by f.
func (f Filter) Match(path string) bool {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		ext = ext[1:]
	}
	for _, e := range f.Extensions {
		if e == "*" || (ext != "" && strings.EqualFold(e, ext)) {
			return true
		}
	}
	return false
}
