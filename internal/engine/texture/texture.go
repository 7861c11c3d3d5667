// Package texture provides image decoding and OpenGL texture upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"

	"github.com/dusklight/grovewalk/internal/logger"
)

// Decode decodes PNG, JPEG or BMP image data into RGBA.
func Decode(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// Upload creates an OpenGL texture from an RGBA image with mipmaps and
// repeat wrapping. When srgb is set the texture is stored in an sRGB
// internal format so sampling returns linear values.
func Upload(img *image.RGBA, srgb bool) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	internalFormat := int32(gl.RGBA)
	if srgb {
		internalFormat = gl.SRGB_ALPHA
	}

	width := int32(img.Bounds().Dx())
	height := int32(img.Bounds().Dy())
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	// Repeat wrapping: the floor and sky tile their textures.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return id
}

// Load reads and uploads a texture file. A missing or undecodable file
// is not fatal: the error is logged and a white fallback is returned so
// the scene keeps rendering.
func Load(path string, srgb bool) uint32 {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("texture failed to load", zap.String("path", path), zap.Error(err))
		return Fallback()
	}

	img, err := Decode(data)
	if err != nil {
		logger.Error("texture failed to decode", zap.String("path", path), zap.Error(err))
		return Fallback()
	}

	id := Upload(img, srgb)
	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return id
}

// Fallback returns a 1x1 white texture.
func Fallback() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	white := []uint8{255, 255, 255, 255}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return id
}
