package inference

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestPreprocessGeometry(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	pixels := preprocess(img)
	if len(pixels) != imageChannels*imageSize*imageSize {
		t.Fatalf("preprocess returned %d values, want %d", len(pixels), imageChannels*imageSize*imageSize)
	}
	for i, v := range pixels {
		if v < -1.0 || v > 1.0 {
			t.Fatalf("pixel %d = %f outside [-1, 1]", i, v)
		}
	}

	// A uniform image stays uniform per channel after scaling.
	plane := imageSize * imageSize
	for c := 0; c < imageChannels; c++ {
		first := pixels[c*plane]
		for i := 1; i < plane; i++ {
			if math.Abs(float64(pixels[c*plane+i]-first)) > 1e-3 {
				t.Fatalf("channel %d not uniform: %f vs %f", c, pixels[c*plane+i], first)
			}
		}
	}
}

func TestSoftmax(t *testing.T) {
	probs := softmax([]float32{2.0, 2.0})
	if math.Abs(float64(probs[0]-0.5)) > 1e-5 || math.Abs(float64(probs[1]-0.5)) > 1e-5 {
		t.Errorf("equal logits: got %v, want [0.5, 0.5]", probs)
	}

	probs = softmax([]float32{-3.0, 4.0})
	if probs[1] <= probs[0] {
		t.Errorf("larger logit got smaller probability: %v", probs)
	}
	sum := probs[0] + probs[1]
	if math.Abs(float64(sum-1.0)) > 1e-5 {
		t.Errorf("probabilities sum to %f, want 1", sum)
	}
}

func TestVerdictFromLogits(t *testing.T) {
	nsfw := verdictFromLogits([]float32{-2.0, 3.0})
	if !nsfw.IsNSFW {
		t.Error("expected IsNSFW=true for dominant nsfw logit")
	}
	if nsfw.Label != "nsfw" {
		t.Errorf("got label %q, want nsfw", nsfw.Label)
	}
	if nsfw.Confidence != nsfw.NSFWScore {
		t.Errorf("confidence %f should equal nsfw score %f", nsfw.Confidence, nsfw.NSFWScore)
	}

	normal := verdictFromLogits([]float32{3.0, -2.0})
	if normal.IsNSFW {
		t.Error("expected IsNSFW=false for dominant normal logit")
	}
	if normal.Label != "normal" {
		t.Errorf("got label %q, want normal", normal.Label)
	}
	if normal.NSFWScore+normal.NormalScore < 0.999 {
		t.Errorf("scores do not sum to 1: %f + %f", normal.NSFWScore, normal.NormalScore)
	}
}
