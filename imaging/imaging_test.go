package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fatura-backend/apperr"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestCompressSmallImagePassesThroughSize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for x := 0; x < 64; x++ {
		for y := 0; y < 48; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 90, A: 255})
		}
	}

	out, err := Compress(encodePNG(t, img))
	require.NoError(t, err)

	decoded := decodeDataURL(t, out)
	// Never upscaled: dimensions preserved.
	assert.Equal(t, 64, decoded.Bounds().Dx())
	assert.Equal(t, 48, decoded.Bounds().Dy())
}

func TestCompressDownscalesLargeImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2048, 512))
	out, err := Compress(encodePNG(t, img))
	require.NoError(t, err)

	decoded := decodeDataURL(t, out)
	assert.Equal(t, 1024, decoded.Bounds().Dx())
	assert.Equal(t, 256, decoded.Bounds().Dy())
	assert.LessOrEqual(t, len(out), targetMaxBytes*2, "data URL stays near the byte budget")
}

func TestCompressFlattensTransparency(t *testing.T) {
	// Fully transparent PNG must come out white, not black.
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	out, err := Compress(encodePNG(t, img))
	require.NoError(t, err)

	decoded := decodeDataURL(t, out)
	r, g, b, _ := decoded.At(8, 8).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestCompressRejectsNonImages(t *testing.T) {
	_, err := Compress([]byte("%PDF-1.4 not an image"))
	require.Error(t, err)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Validation, kind)

	_, err = Compress(nil)
	assert.Error(t, err)
}
