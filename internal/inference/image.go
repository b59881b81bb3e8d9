// Package inference provides the backend adapters that turn normalized inputs
// into classifier verdicts: an ONNX image classifier, an HTTP guard-model text
// client, and a mock for tests.
package inference

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
	"golang.org/x/image/draw"

	"github.com/foden303/moderation/internal/detect"
)

// ViT classifier geometry: input [N, 3, 224, 224], output logits [N, 2] with
// class 0 = normal, class 1 = nsfw.
const (
	imageSize      = 224
	imageChannels  = 3
	numClasses     = 2
	normalClassIdx = 0
	nsfwClassIdx   = 1
)

var classLabels = [numClasses]string{"normal", "nsfw"}

// ImageEngine wraps an ONNX runtime session for thread-safe batched image
// classification. It implements Engine[detect.ImageInput, detect.ImageResult].
type ImageEngine struct {
	mu        sync.Mutex
	session   *ort.DynamicAdvancedSession
	modelName string
}

// NewImageEngine loads the ONNX model at modelPath.
func NewImageEngine(modelPath string) (*ImageEngine, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{"pixel_values"},
		[]string{"logits"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ImageEngine{session: session, modelName: modelPath}, nil
}

// Infer classifies a batch of decoded images in one session run.
func (e *ImageEngine) Infer(ctx context.Context, inputs []detect.ImageInput) ([]detect.ImageResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session == nil {
		return nil, fmt.Errorf("inference session is nil")
	}
	batch := int64(len(inputs))
	if batch == 0 {
		return nil, fmt.Errorf("empty image batch")
	}

	// Pack the batch into a single [N, C, H, W] tensor.
	pixelsPerImage := imageChannels * imageSize * imageSize
	tensorData := make([]float32, 0, int(batch)*pixelsPerImage)
	for _, in := range inputs {
		tensorData = append(tensorData, preprocess(in.Image)...)
	}

	inputShape := ort.NewShape(batch, imageChannels, imageSize, imageSize)
	inputTensor, err := ort.NewTensor(inputShape, tensorData)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	outputShape := ort.NewShape(batch, numClasses)
	outputTensor, err := ort.NewTensor(outputShape, make([]float32, batch*numClasses))
	if err != nil {
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}
	defer outputTensor.Destroy()

	err = e.session.Run(
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
	)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	logits := outputTensor.GetData()
	results := make([]detect.ImageResult, batch)
	for i := range results {
		row := logits[i*numClasses : (i+1)*numClasses]
		results[i] = verdictFromLogits(row)
	}
	return results, nil
}

// ModelName reports the loaded model path.
func (e *ImageEngine) ModelName() string { return e.modelName }

// Device reports the execution backend.
func (e *ImageEngine) Device() string { return "onnxruntime" }

// Close releases the ONNX session resources.
func (e *ImageEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		err := e.session.Destroy()
		e.session = nil
		if err != nil {
			return fmt.Errorf("failed to destroy session: %w", err)
		}
	}
	return ort.DestroyEnvironment()
}

// preprocess scales img to the model input size and returns CHW float32
// pixels normalized to [-1, 1], matching the ViT processor's mean/std of 0.5.
func preprocess(img image.Image) []float32 {
	scaled := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	out := make([]float32, imageChannels*imageSize*imageSize)
	plane := imageSize * imageSize
	for y := 0; y < imageSize; y++ {
		for x := 0; x < imageSize; x++ {
			offset := scaled.PixOffset(x, y)
			for c := 0; c < imageChannels; c++ {
				v := float32(scaled.Pix[offset+c]) / 255.0
				out[c*plane+y*imageSize+x] = (v - 0.5) / 0.5
			}
		}
	}
	return out
}

// verdictFromLogits applies softmax to one logits row and derives the verdict.
func verdictFromLogits(logits []float32) detect.ImageResult {
	probs := softmax(logits)

	top := 0
	for i, p := range probs {
		if p > probs[top] {
			top = i
		}
	}
	return detect.ImageResult{
		IsNSFW:      top == nsfwClassIdx,
		NSFWScore:   probs[nsfwClassIdx],
		NormalScore: probs[normalClassIdx],
		Label:       classLabels[top],
		Confidence:  probs[top],
	}
}

func softmax(logits []float32) []float32 {
	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}
	var sum float64
	exps := make([]float64, len(logits))
	for i, v := range logits {
		exps[i] = math.Exp(float64(v - max))
		sum += exps[i]
	}
	out := make([]float32, len(logits))
	for i, e := range exps {
		out[i] = float32(e / sum)
	}
	return out
}

// Ensure ImageEngine implements Engine at compile time.
var _ Engine[detect.ImageInput, detect.ImageResult] = (*ImageEngine)(nil)
