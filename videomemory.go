// videomemory.go - rotated framebuffer extraction from the raw arcade
// bitmap at 0x2400-0x3FFF

package main

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	// VideoMemStart and VideoMemEnd bound the 1-bit-per-pixel framebuffer in
	// CPU address space.
	VideoMemStart = 0x2400
	VideoMemEnd   = 0x3FFF

	// screenWidth/screenHeight are the logical, already-rotated dimensions;
	// the physical memory layout is 224 columns of 256 vertical bits each,
	// rotated 90 degrees counter-clockwise for the cabinet's portrait
	// monitor.
	screenWidth  = 256
	screenHeight = 224
)

// onColor and offColor are the classic single-bit phosphor-white palette;
// the real cabinet overlays a colored gel for ground/score/UFO bands, which
// is a presentation detail left to the backend, not this module.
var onColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
var offColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// ReadFramebufferRGBA decodes the raw 1bpp video memory into an RGBA byte
// slice of screenWidth*screenHeight*4 bytes, rotating the physical
// 224-column layout 90 degrees counter-clockwise into the logical
// 256-wide x 224-tall orientation a player expects.
func ReadFramebufferRGBA(mem *[65536]byte) []byte {
	out := make([]byte, screenWidth*screenHeight*4)
	for col := 0; col < 224; col++ {
		base := VideoMemStart + col*32
		for byteIdx := 0; byteIdx < 32; byteIdx++ {
			b := mem[base+byteIdx]
			for bit := 0; bit < 8; bit++ {
				on := b&(1<<uint(bit)) != 0
				physY := byteIdx*8 + bit
				// Rotate 90 degrees counter-clockwise: physical (col, physY)
				// maps to logical (x, y) = (physY, 223-col).
				x := physY
				y := 223 - col
				idx := (y*screenWidth + x) * 4
				c := offColor
				if on {
					c = onColor
				}
				out[idx] = c.R
				out[idx+1] = c.G
				out[idx+2] = c.B
				out[idx+3] = c.A
			}
		}
	}
	return out
}

// ScaleRGBA nearest-neighbour scales an RGBA buffer of the logical screen
// dimensions up by the given integer factor, using golang.org/x/image/draw
// the way the reference module depends on that package for presentation
// scaling.
func ScaleRGBA(src []byte, scale int) []byte {
	if scale <= 1 {
		return src
	}
	srcImg := &image.RGBA{
		Pix:    src,
		Stride: screenWidth * 4,
		Rect:   image.Rect(0, 0, screenWidth, screenHeight),
	}
	dstW, dstH := screenWidth*scale, screenHeight*scale
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)
	return dst.Pix
}
