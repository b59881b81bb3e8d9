// Package detect holds the domain types shared by the fetcher, the inference
// engines and the gRPC handlers: normalized inputs, per-item results and the
// canary inputs used for health probing.
package detect

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"

	// Image formats accepted by DecodeImage.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ImageInput is a decoded image ready for inference. SHA256 is the hex digest
// of the original encoded bytes and doubles as the verdict cache key.
type ImageInput struct {
	Image  image.Image
	SHA256 string
}

// ImageResult is the classifier verdict for one image.
type ImageResult struct {
	IsNSFW      bool    `json:"is_nsfw"`
	NSFWScore   float32 `json:"nsfw_score"`
	NormalScore float32 `json:"normal_score"`
	Label       string  `json:"label"`
	Confidence  float32 `json:"confidence"`
}

// TextInput is a normalized text ready for inference.
type TextInput struct {
	Text   string
	SHA256 string
}

// TextResult is the guard model verdict for one text.
type TextResult struct {
	Flagged     bool     `json:"is_flagged"`
	SafetyLabel string   `json:"safety_label"`
	Categories  []string `json:"categories"`
}

// DecodeImage decodes encoded image bytes (jpeg, png, gif or webp) into an
// ImageInput. The returned error wraps the underlying decoder failure.
func DecodeImage(data []byte) (ImageInput, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ImageInput{}, fmt.Errorf("decode image: %w", err)
	}
	return ImageInput{Image: img, SHA256: hashBytes(data)}, nil
}

// NewTextInput normalizes a raw text payload.
func NewTextInput(text string) TextInput {
	return TextInput{Text: text, SHA256: hashBytes([]byte(text))}
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CanaryImage returns a fixed 1x1 black image used only for health probes.
func CanaryImage() ImageInput {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	return ImageInput{Image: img, SHA256: "canary"}
}

// CanaryText returns a fixed cheap prompt used only for health probes.
func CanaryText() TextInput {
	return TextInput{Text: "health check", SHA256: "canary"}
}
