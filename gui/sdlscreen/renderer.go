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

package sdlscreen

import (
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/veandco/go-sdl2/sdl"
)

type rendererBackend struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

func newRendererBackend(window *sdl.Window, vsync bool) (*rendererBackend, error) {
	var err error

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if vsync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}

	bck := &rendererBackend{}

	bck.renderer, err = sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		return nil, err
	}

	// the renderer scales the screen to fit the window and keeps the aspect
	// ratio
	err = bck.renderer.SetLogicalSize(framebuffer.Width, framebuffer.Height)
	if err != nil {
		bck.renderer.Destroy()
		return nil, err
	}

	bck.texture, err = bck.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		framebuffer.Width, framebuffer.Height)
	if err != nil {
		bck.renderer.Destroy()
		return nil, err
	}

	return bck, nil
}

func (bck *rendererBackend) present(pixels []byte, pitch int) error {
	dst, dstPitch, err := bck.texture.Lock(nil)
	if err != nil {
		return err
	}
	for y := range framebuffer.Height {
		copy(dst[y*dstPitch:y*dstPitch+framebuffer.Width*4], pixels[y*pitch:])
	}
	bck.texture.Unlock()

	err = bck.renderer.Clear()
	if err != nil {
		return err
	}
	err = bck.renderer.Copy(bck.texture, nil, nil)
	if err != nil {
		return err
	}
	bck.renderer.Present()

	return nil
}

func (bck *rendererBackend) destroy() {
	bck.texture.Destroy()
	bck.renderer.Destroy()
}
