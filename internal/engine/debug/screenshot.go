// Package debug provides developer utilities such as framebuffer
// screenshots.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeview/internal/logger"
)

// Screenshots writes PNG captures of the default framebuffer.
type Screenshots struct {
	dir    string
	prefix string

	now  func() time.Time
	read func(width, height int) []byte
}

// NewScreenshots creates a capture handler writing into dir.
func NewScreenshots(dir, prefix string) *Screenshots {
	if prefix == "" {
		prefix = "screenshot"
	}
	return &Screenshots{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
		read:   readBackBuffer,
	}
}

// UseFrontBuffer makes Capture read the last presented frame. Use it
// when captures run at the start of the following frame.
func (s *Screenshots) UseFrontBuffer() {
	s.read = readFrontBuffer
}

// Capture reads the back buffer of the current GL context, which must
// hold a finished frame that has not been presented yet.
func (s *Screenshots) Capture(width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("screenshot: invalid framebuffer size %dx%d", width, height)
	}
	return s.Save(s.read(width, height), width, height)
}

// Save writes bottom-up RGBA pixels as a PNG and returns its path.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, path, err := s.create()
	if err != nil {
		return "", err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	logger.Info("screenshot saved", zap.String("path", path), zap.Int("width", width), zap.Int("height", height))
	return path, nil
}

// create opens a new file named after the current time, adding a
// counter when several captures land in the same second.
func (s *Screenshots) create() (*os.File, string, error) {
	stamp := s.now().Format("2006-01-02_15-04-05")
	for n := 0; n < 100; n++ {
		name := fmt.Sprintf("%s_%s.png", s.prefix, stamp)
		if n > 0 {
			name = fmt.Sprintf("%s_%s_%d.png", s.prefix, stamp, n)
		}
		path := filepath.Join(s.dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, "", fmt.Errorf("creating file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("creating file: too many screenshots at %s", stamp)
}

// FlipRows converts GL's bottom-left origin pixel rows into a top-down
// image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

func readBackBuffer(width, height int) []byte {
	return readDefault(gl.BACK, width, height)
}

func readFrontBuffer(width, height int) []byte {
	return readDefault(gl.FRONT, width, height)
}

func readDefault(buffer uint32, width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	gl.ReadBuffer(buffer)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)
	return pixels
}
