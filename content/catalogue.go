// This file is part of Ticcore.
//
// Ticcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ticcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ticcore.  If not, see <https://www.gnu.org/licenses/>.

package content

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/logger"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Sentinal errors.
const (
	MissingContent = "content: missing %s %s"
	BadPage        = "content: page %s: %v"
)

// sub-directories of a content pack.
const (
	pagesDir = "pages"
	demosDir = "demos"
	musicDir = "music"
)

// Catalogue of the content in a content pack. Pages are cached after they
// have been loaded.
type Catalogue struct {
	dir      string
	palettes *framebuffer.PaletteSet

	crit  sync.Mutex
	pages map[string]*framebuffer.Frame
}

// NewCatalogue is the preferred method of initialisation for the Catalogue
// type. If palettes is nil then the default palette set is used.
func NewCatalogue(dir string, palettes *framebuffer.PaletteSet) *Catalogue {
	if palettes == nil {
		palettes = framebuffer.DefaultPalettes()
	}
	return &Catalogue{
		dir:      dir,
		palettes: palettes,
		pages:    make(map[string]*framebuffer.Frame),
	}
}

// Dir returns the directory of the content pack.
func (cat *Catalogue) Dir() string {
	return cat.dir
}

func (cat *Catalogue) pagePath(name string) string {
	return filepath.Join(cat.dir, pagesDir, strings.ToUpper(name)+".bmp")
}

func (cat *Catalogue) demoPath(name string) string {
	return filepath.Join(cat.dir, demosDir, strings.ToLower(name)+".lmp")
}

func exists(pth string) bool {
	fi, err := os.Stat(pth)
	return err == nil && fi.Mode().IsRegular()
}

// HasPage returns true if the named page exists.
func (cat *Catalogue) HasPage(name string) bool {
	return exists(cat.pagePath(name))
}

// HasDemo returns true if the named demo recording exists.
func (cat *Catalogue) HasDemo(name string) bool {
	return exists(cat.demoPath(name))
}

// Page returns the named page. The page is scaled to the size of the screen
// if necessary and its colours are mapped to the normal palette. The returned
// frame is shared and must not be altered.
func (cat *Catalogue) Page(name string) (*framebuffer.Frame, error) {
	cat.crit.Lock()
	defer cat.crit.Unlock()

	if p, ok := cat.pages[name]; ok {
		return p, nil
	}

	pth := cat.pagePath(name)
	f, err := os.Open(pth)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(MissingContent, "page", name)
		}
		return nil, curated.Errorf(BadPage, name, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, curated.Errorf(BadPage, name, err)
	}

	p := cat.quantize(img)
	cat.pages[name] = p
	logger.Logf(logger.Allow, "content", "loaded page %s (%dx%d)", name, img.Bounds().Dx(), img.Bounds().Dy())

	return p, nil
}

// convert image to a frame using the colours of the normal palette
func (cat *Catalogue) quantize(img image.Image) *framebuffer.Frame {
	src := img
	if b := img.Bounds(); b.Dx() != framebuffer.Width || b.Dy() != framebuffer.Height {
		scaled := image.NewRGBA(image.Rect(0, 0, framebuffer.Width, framebuffer.Height))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		src = scaled
	}

	pal := &cat.palettes[framebuffer.PaletteNormal]
	nearest := make(map[color.RGBA]uint8)

	fr := framebuffer.NewFrame(cat.palettes)
	b := src.Bounds()
	for y := range framebuffer.Height {
		for x := range framebuffer.Width {
			c := color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			idx, ok := nearest[c]
			if !ok {
				idx = pal.Nearest(c)
				nearest[c] = idx
			}
			fr.Pix[y*framebuffer.Width+x] = idx
		}
	}

	return fr
}

// Demo loads and parses the named demo recording.
func (cat *Catalogue) Demo(name string) (*Recording, error) {
	f, err := os.Open(cat.demoPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(MissingContent, "demo", name)
		}
		return nil, curated.Errorf(BadDemo, name, err)
	}
	defer f.Close()

	rec, err := ParseRecording(f)
	if err != nil {
		return nil, curated.Errorf(BadDemo, name, err)
	}
	rec.Name = name

	logger.Logf(logger.Allow, "content", "loaded demo %s (%d tics)", name, rec.Len())

	return rec, nil
}

// Music returns the path to the named music. Music is optional and the
// second return value is false if it does not exist.
func (cat *Catalogue) Music(name string) (string, bool) {
	for _, ext := range []string{".wav", ".mp3"} {
		pth := filepath.Join(cat.dir, musicDir, strings.ToLower(name)+ext)
		if exists(pth) {
			return pth, true
		}
	}
	return "", false
}
