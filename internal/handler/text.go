package handler

import (
	"context"
	"log"

	pb "github.com/foden303/moderation/api/nsfw_text/v1"
	"github.com/foden303/moderation/internal/detect"
	"github.com/foden303/moderation/internal/inference"
)

// TextServer implements the NSFWTextDetector gRPC service.
type TextServer struct {
	pb.UnimplementedNSFWTextDetectorServer
	svc    *Service[detect.TextInput, detect.TextResult]
	engine inference.Engine[detect.TextInput, detect.TextResult]
}

// NewTextServer creates a TextServer.
func NewTextServer(
	svc *Service[detect.TextInput, detect.TextResult],
	engine inference.Engine[detect.TextInput, detect.TextResult],
) *TextServer {
	return &TextServer{svc: svc, engine: engine}
}

// Predict classifies a single piece of text.
func (s *TextServer) Predict(ctx context.Context, req *pb.PredictRequest) (*pb.PredictResponse, error) {
	if req == nil || req.GetText() == "" {
		return nil, invalidArgumentError("text cannot be empty")
	}

	result, err := s.svc.Detect(ctx, detect.NewTextInput(req.GetText()))
	if err != nil {
		return nil, grpcError(err)
	}

	return textVerdictProto(result), nil
}

// PredictBatch classifies a list of texts with per-item outcomes.
func (s *TextServer) PredictBatch(ctx context.Context, req *pb.PredictBatchRequest) (*pb.PredictBatchResponse, error) {
	if req == nil || len(req.GetTexts()) == 0 {
		return nil, invalidArgumentError("texts cannot be empty")
	}

	inputs := make([]detect.TextInput, len(req.GetTexts()))
	for i, text := range req.GetTexts() {
		inputs[i] = detect.NewTextInput(text)
	}

	outcomes := s.svc.DetectAll(ctx, inputs)

	predictions := make([]*pb.BatchPredictionResult, len(outcomes))
	for i, out := range outcomes {
		pred := &pb.BatchPredictionResult{Text: req.GetTexts()[i]}
		if out.Err != nil {
			pred.Error = out.Err.Error()
		} else {
			pred.Result = textVerdictProto(out.Result)
		}
		predictions[i] = pred
	}

	return &pb.PredictBatchResponse{Predictions: predictions}, nil
}

// PredictFromURL downloads a text document and classifies it.
func (s *TextServer) PredictFromURL(ctx context.Context, req *pb.PredictURLRequest) (*pb.PredictResponse, error) {
	if req == nil || req.GetUrl() == "" {
		return nil, invalidArgumentError("url cannot be empty")
	}

	result, err := s.svc.DetectURL(ctx, req.GetUrl())
	if err != nil {
		return nil, grpcError(err)
	}

	return textVerdictProto(result), nil
}

// PredictBatchFromURLs classifies a set of text document URLs. Each URL gets
// its own result or error; one bad URL never fails the call.
func (s *TextServer) PredictBatchFromURLs(ctx context.Context, req *pb.PredictBatchURLRequest) (*pb.PredictBatchURLResponse, error) {
	if req == nil || len(req.GetUrls()) == 0 {
		return nil, invalidArgumentError("urls cannot be empty")
	}

	outcomes := s.svc.DetectURLs(ctx, req.GetUrls())

	predictions := make([]*pb.URLPredictionResult, len(outcomes))
	for i, out := range outcomes {
		pred := &pb.URLPredictionResult{Url: req.GetUrls()[i]}
		if out.Err != nil {
			pred.Error = out.Err.Error()
		} else {
			pred.Result = textVerdictProto(out.Result)
		}
		predictions[i] = pred
	}

	return &pb.PredictBatchURLResponse{Predictions: predictions}, nil
}

// HealthCheck runs a canary prompt through the live inference path.
func (s *TextServer) HealthCheck(ctx context.Context, req *pb.HealthCheckRequest) (*pb.HealthCheckResponse, error) {
	if err := s.svc.Probe(ctx, detect.CanaryText()); err != nil {
		log.Printf("text health probe failed: %v", err)
		return nil, unavailableError("health probe failed: %v", err)
	}

	return &pb.HealthCheckResponse{
		Status: "healthy",
		Model:  s.engine.ModelName(),
		Device: s.engine.Device(),
	}, nil
}

func textVerdictProto(r detect.TextResult) *pb.PredictResponse {
	return &pb.PredictResponse{
		IsFlagged:   r.Flagged,
		SafetyLabel: r.SafetyLabel,
		Categories:  r.Categories,
	}
}
