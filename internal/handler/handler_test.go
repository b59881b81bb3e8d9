package handler

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	imagepb "github.com/foden303/moderation/api/nsfw_image/v1"
	textpb "github.com/foden303/moderation/api/nsfw_text/v1"
	"github.com/foden303/moderation/internal/batch"
	"github.com/foden303/moderation/internal/detect"
	"github.com/foden303/moderation/internal/fetch"
	"github.com/foden303/moderation/internal/inference"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 64, B: 32, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func newImageServer(t *testing.T, mock *inference.Mock[detect.ImageInput, detect.ImageResult]) *ImageServer {
	t.Helper()
	coal, err := batch.New[detect.ImageInput, detect.ImageResult](mock, batch.Config{
		MaxBatchSize: 4,
		BatchWait:    10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new coalescer: %v", err)
	}
	t.Cleanup(coal.Close)

	fetcher := fetch.New("image/", 2*time.Second, detect.DecodeImage)
	svc := NewService("image", fetcher, coal, nil, func(in detect.ImageInput) string { return in.SHA256 })
	return NewImageServer(svc, mock)
}

func newTextServer(t *testing.T, mock *inference.Mock[detect.TextInput, detect.TextResult]) *TextServer {
	t.Helper()
	coal, err := batch.New[detect.TextInput, detect.TextResult](mock, batch.Config{
		MaxBatchSize: 4,
		BatchWait:    10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new coalescer: %v", err)
	}
	t.Cleanup(coal.Close)

	fetcher := fetch.New("text/", 2*time.Second, func(data []byte) (detect.TextInput, error) {
		return detect.NewTextInput(string(data)), nil
	})
	svc := NewService("text", fetcher, coal, nil, func(in detect.TextInput) string { return in.SHA256 })
	return NewTextServer(svc, mock)
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected gRPC status error, got %v", err)
	}
	if st.Code() != want {
		t.Fatalf("expected code %s, got %s (%v)", want, st.Code(), err)
	}
}

func TestImagePredict(t *testing.T) {
	server := newImageServer(t, inference.NewImageMock())

	resp, err := server.Predict(context.Background(), &imagepb.PredictRequest{
		ImageData:   pngBytes(t),
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if resp.GetIsNsfw() {
		t.Error("expected benign verdict from mock")
	}
	if resp.GetLabel() != "normal" {
		t.Errorf("expected label normal, got %q", resp.GetLabel())
	}
	if resp.GetNormalScore() <= resp.GetNsfwScore() {
		t.Errorf("expected normal score to dominate, got normal=%f nsfw=%f",
			resp.GetNormalScore(), resp.GetNsfwScore())
	}
}

func TestImagePredictEmptyData(t *testing.T) {
	server := newImageServer(t, inference.NewImageMock())

	_, err := server.Predict(context.Background(), &imagepb.PredictRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestImagePredictWrongContentType(t *testing.T) {
	server := newImageServer(t, inference.NewImageMock())

	_, err := server.Predict(context.Background(), &imagepb.PredictRequest{
		ImageData:   pngBytes(t),
		ContentType: "text/plain",
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestImagePredictUndecodableData(t *testing.T) {
	server := newImageServer(t, inference.NewImageMock())

	_, err := server.Predict(context.Background(), &imagepb.PredictRequest{
		ImageData:   []byte("not an image"),
		ContentType: "image/png",
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestImagePredictBackendFailure(t *testing.T) {
	mock := inference.NewImageMock()
	mock.SetError("onnx session exploded")
	server := newImageServer(t, mock)

	_, err := server.Predict(context.Background(), &imagepb.PredictRequest{
		ImageData:   pngBytes(t),
		ContentType: "image/png",
	})
	wantCode(t, err, codes.Internal)
}

func TestImagePredictFromURL(t *testing.T) {
	data := pngBytes(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer ts.Close()

	server := newImageServer(t, inference.NewImageMock())

	resp, err := server.PredictFromURL(context.Background(), &imagepb.PredictURLRequest{Url: ts.URL})
	if err != nil {
		t.Fatalf("PredictFromURL: %v", err)
	}
	if resp.GetLabel() != "normal" {
		t.Errorf("expected label normal, got %q", resp.GetLabel())
	}
}

func TestImagePredictFromURLDownloadError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	server := newImageServer(t, inference.NewImageMock())

	_, err := server.PredictFromURL(context.Background(), &imagepb.PredictURLRequest{Url: ts.URL})
	wantCode(t, err, codes.Unavailable)
}

func TestImagePredictBatchMixedOutcomes(t *testing.T) {
	data := pngBytes(t)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/good":
			w.Header().Set("Content-Type", "image/png")
			w.Write(data)
		case "/garbage":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("definitely not pixels"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	server := newImageServer(t, inference.NewImageMock())

	urls := []string{ts.URL + "/good", ts.URL + "/missing", ts.URL + "/garbage", ts.URL + "/good"}
	resp, err := server.PredictBatchFromURLs(context.Background(), &imagepb.PredictBatchURLRequest{Urls: urls})
	if err != nil {
		t.Fatalf("PredictBatchFromURLs: %v", err)
	}

	preds := resp.GetPredictions()
	if len(preds) != len(urls) {
		t.Fatalf("expected %d predictions, got %d", len(urls), len(preds))
	}
	for i, p := range preds {
		if p.GetUrl() != urls[i] {
			t.Errorf("prediction %d: expected url %s, got %s", i, urls[i], p.GetUrl())
		}
	}

	if preds[0].GetError() != "" || preds[0].GetResult() == nil {
		t.Errorf("expected success for /good, got error %q", preds[0].GetError())
	}
	if preds[1].GetError() == "" {
		t.Error("expected download error for /missing")
	}
	if preds[2].GetError() == "" {
		t.Error("expected decode error for /garbage")
	}
	if preds[3].GetError() != "" || preds[3].GetResult() == nil {
		t.Errorf("expected success for second /good, got error %q", preds[3].GetError())
	}
}

func TestImagePredictBatchEmpty(t *testing.T) {
	server := newImageServer(t, inference.NewImageMock())

	_, err := server.PredictBatchFromURLs(context.Background(), &imagepb.PredictBatchURLRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestImageHealthCheck(t *testing.T) {
	mock := inference.NewImageMock()
	server := newImageServer(t, mock)

	resp, err := server.HealthCheck(context.Background(), &imagepb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	if resp.GetStatus() != "healthy" {
		t.Errorf("expected healthy, got %q", resp.GetStatus())
	}
	if resp.GetModel() != "mock-model" || resp.GetDevice() != "mock" {
		t.Errorf("unexpected metadata: model=%q device=%q", resp.GetModel(), resp.GetDevice())
	}
}

func TestImageHealthCheckUnhealthy(t *testing.T) {
	mock := inference.NewImageMock()
	mock.SetError("backend down")
	server := newImageServer(t, mock)

	_, err := server.HealthCheck(context.Background(), &imagepb.HealthCheckRequest{})
	wantCode(t, err, codes.Unavailable)
}

func TestTextPredict(t *testing.T) {
	server := newTextServer(t, inference.NewTextMock())

	resp, err := server.Predict(context.Background(), &textpb.PredictRequest{Text: "hello there"})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if resp.GetIsFlagged() {
		t.Error("expected unflagged verdict from mock")
	}
	if resp.GetSafetyLabel() != detect.LabelSafe {
		t.Errorf("expected Safe, got %q", resp.GetSafetyLabel())
	}
}

func TestTextPredictEmpty(t *testing.T) {
	server := newTextServer(t, inference.NewTextMock())

	_, err := server.Predict(context.Background(), &textpb.PredictRequest{})
	wantCode(t, err, codes.InvalidArgument)
}

func TestTextPredictBatchOrder(t *testing.T) {
	mock := inference.NewTextMock()
	mock.ResultFunc = func(in detect.TextInput) detect.TextResult {
		if in.Text == "violent threat" {
			return detect.TextResult{
				Flagged:     true,
				SafetyLabel: detect.LabelUnsafe,
				Categories:  []string{"Violent"},
			}
		}
		return detect.TextResult{SafetyLabel: detect.LabelSafe}
	}
	server := newTextServer(t, mock)

	texts := []string{"nice day", "violent threat", "another nice day"}
	resp, err := server.PredictBatch(context.Background(), &textpb.PredictBatchRequest{Texts: texts})
	if err != nil {
		t.Fatalf("PredictBatch: %v", err)
	}

	preds := resp.GetPredictions()
	if len(preds) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(preds))
	}
	for i, p := range preds {
		if p.GetText() != texts[i] {
			t.Errorf("prediction %d: expected text %q, got %q", i, texts[i], p.GetText())
		}
	}
	if preds[1].GetResult() == nil || !preds[1].GetResult().GetIsFlagged() {
		t.Error("expected the threat to be flagged")
	}
	if preds[0].GetResult() == nil || preds[0].GetResult().GetIsFlagged() {
		t.Error("expected the first text to be unflagged")
	}
}

func TestTextPredictFromURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("some document body"))
	}))
	defer ts.Close()

	server := newTextServer(t, inference.NewTextMock())

	resp, err := server.PredictFromURL(context.Background(), &textpb.PredictURLRequest{Url: ts.URL})
	if err != nil {
		t.Fatalf("PredictFromURL: %v", err)
	}
	if resp.GetSafetyLabel() != detect.LabelSafe {
		t.Errorf("expected Safe, got %q", resp.GetSafetyLabel())
	}
}

func TestTextPredictBatchFromURLsMixed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/doc":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("fine text"))
		case "/binary":
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write([]byte{0x00, 0x01})
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	server := newTextServer(t, inference.NewTextMock())

	urls := []string{ts.URL + "/doc", ts.URL + "/binary", ts.URL + "/gone"}
	resp, err := server.PredictBatchFromURLs(context.Background(), &textpb.PredictBatchURLRequest{Urls: urls})
	if err != nil {
		t.Fatalf("PredictBatchFromURLs: %v", err)
	}

	preds := resp.GetPredictions()
	if len(preds) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(preds))
	}
	if preds[0].GetError() != "" || preds[0].GetResult() == nil {
		t.Errorf("expected success for /doc, got error %q", preds[0].GetError())
	}
	if preds[1].GetError() == "" {
		t.Error("expected content type error for /binary")
	}
	if preds[2].GetError() == "" {
		t.Error("expected download error for /gone")
	}
}

func TestTextHealthCheck(t *testing.T) {
	server := newTextServer(t, inference.NewTextMock())

	resp, err := server.HealthCheck(context.Background(), &textpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	if resp.GetStatus() != "healthy" {
		t.Errorf("expected healthy, got %q", resp.GetStatus())
	}
}

func TestBatchRequestsShareOneBackendCall(t *testing.T) {
	mock := inference.NewTextMock()
	server := newTextServer(t, mock)

	texts := []string{"a", "b", "c", "d"}
	if _, err := server.PredictBatch(context.Background(), &textpb.PredictBatchRequest{Texts: texts}); err != nil {
		t.Fatalf("PredictBatch: %v", err)
	}

	total := 0
	for _, n := range mock.BatchSizes {
		total += n
	}
	if total != len(texts) {
		t.Errorf("expected %d submissions to reach the backend, got %d", len(texts), total)
	}
	if mock.CallCount > 2 {
		t.Errorf("expected submissions to coalesce, got %d backend calls for %d items",
			mock.CallCount, len(texts))
	}
}
