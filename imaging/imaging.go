// Package imaging turns an uploaded logo file into a self-contained,
// size-bounded data URL that can be stored inline with an invoice
// snapshot and displayed without a separate fetch.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	xdraw "golang.org/x/image/draw"

	"fatura-backend/apperr"
)

const (
	// maxDim bounds either side of the stored logo in pixels.
	maxDim = 1024
	// targetMaxBytes is the encoded size budget.
	targetMaxBytes = 180 * 1024
	// startQuality / qualityStep / minQuality drive the bounded
	// re-encode loop: lower quality until under budget or the floor.
	startQuality = 85
	qualityStep  = 10
	minQuality   = 50
)

// Compress sniffs, decodes, white-flattens, downscales and re-encodes an
// uploaded image to a JPEG data URL under the byte budget. Only JPEG and
// PNG uploads are accepted. The refinement is a plain loop with an
// explicit termination condition, not recursion.
func Compress(raw []byte) (string, error) {
	kind, err := filetype.Match(raw)
	if err != nil || (kind.MIME.Value != "image/jpeg" && kind.MIME.Value != "image/png") {
		return "", apperr.New(apperr.Validation, "logo must be a JPEG or PNG image")
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", apperr.Wrap(apperr.Validation, "could not read the image", err)
	}

	flat := flattenAndScale(src)

	quality := startQuality
	encoded, err := encodeJPEG(flat, quality)
	if err != nil {
		return "", apperr.Wrap(apperr.Collaborator, "could not compress the image", err)
	}
	for len(encoded) > targetMaxBytes && quality > minQuality {
		quality -= qualityStep
		encoded, err = encodeJPEG(flat, quality)
		if err != nil {
			return "", apperr.Wrap(apperr.Collaborator, "could not compress the image", err)
		}
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(encoded), nil
}

// flattenAndScale paints the image over a white background (JPEG has no
// alpha channel; without this, transparent PNG logos come out black) and
// downscales so neither side exceeds maxDim. Images already within the
// bound are never upscaled.
func flattenAndScale(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	ratio := 1.0
	if rw := float64(maxDim) / float64(w); rw < ratio {
		ratio = rw
	}
	if rh := float64(maxDim) / float64(h); rh < ratio {
		ratio = rh
	}
	outW := int(float64(w)*ratio + 0.5)
	outH := int(float64(h)*ratio + 0.5)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
