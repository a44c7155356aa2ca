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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// list of swap interval values. these are values defined and expected by the
// sdl.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

// glBackend draws the screen by blitting a texture attached to a read
// framebuffer onto the default framebuffer. no shaders are required
type glBackend struct {
	window  *sdl.Window
	context sdl.GLContext
	texture uint32
	fbo     uint32
}

func newGLBackend(window *sdl.Window, vsync bool) (*glBackend, error) {
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	var err error

	bck := &glBackend{window: window}

	bck.context, err = window.GLCreateContext()
	if err != nil {
		return nil, err
	}
	err = window.GLMakeCurrent(bck.context)
	if err != nil {
		sdl.GLDeleteContext(bck.context)
		return nil, err
	}

	err = gl.Init()
	if err != nil {
		sdl.GLDeleteContext(bck.context)
		return nil, fmt.Errorf("gl: %w", err)
	}
	logger.Logf(logger.Allow, "sdlscreen", "using GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	interval := syncImmediateUpdate
	if vsync {
		interval = syncWithVerticalRetrace
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Logf(logger.Allow, "sdlscreen", "GLSetSwapInterval(%d): %v", interval, err)
	}

	gl.GenTextures(1, &bck.texture)
	gl.BindTexture(gl.TEXTURE_2D, bck.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, framebuffer.Width, framebuffer.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.GenFramebuffers(1, &bck.fbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, bck.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, bck.texture, 0)
	if s := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER); s != gl.FRAMEBUFFER_COMPLETE {
		bck.destroy()
		return nil, fmt.Errorf("gl: incomplete framebuffer (%#x)", s)
	}

	return bck, nil
}

// the destination rectangle that fits the screen into the drawable area
// while keeping the aspect ratio
func fit(w, h int32) (x0, y0, x1, y1 int32) {
	sw := h * framebuffer.Width / framebuffer.Height
	if sw <= w {
		x0 = (w - sw) / 2
		return x0, 0, x0 + sw, h
	}
	sh := w * framebuffer.Height / framebuffer.Width
	y0 = (h - sh) / 2
	return 0, y0, w, y0 + sh
}

func (bck *glBackend) present(pixels []byte, pitch int) error {
	gl.BindTexture(gl.TEXTURE_2D, bck.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pitch/4))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, framebuffer.Width, framebuffer.Height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	w, h := bck.window.GLGetDrawableSize()
	x0, y0, x1, y1 := fit(w, h)

	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// the texture's first row is the top of the screen but the first row of
	// the window is the bottom. the destination rows are swapped to flip the
	// image
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, bck.fbo)
	gl.BlitFramebuffer(0, 0, framebuffer.Width, framebuffer.Height, x0, y1, x1, y0, gl.COLOR_BUFFER_BIT, gl.NEAREST)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("gl: error %#x", e)
	}

	bck.window.GLSwap()

	return nil
}

func (bck *glBackend) destroy() {
	if bck.fbo != 0 {
		gl.DeleteFramebuffers(1, &bck.fbo)
	}
	if bck.texture != 0 {
		gl.DeleteTextures(1, &bck.texture)
	}
	sdl.GLDeleteContext(bck.context)
}
