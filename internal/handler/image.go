package handler

import (
	"context"
	"log"

	pb "github.com/foden303/moderation/api/nsfw_image/v1"
	"github.com/foden303/moderation/internal/detect"
	"github.com/foden303/moderation/internal/inference"
)

// ImageServer implements the NSFWImageDetector gRPC service.
type ImageServer struct {
	pb.UnimplementedNSFWImageDetectorServer
	svc    *Service[detect.ImageInput, detect.ImageResult]
	engine inference.Engine[detect.ImageInput, detect.ImageResult]
}

// NewImageServer creates an ImageServer. The engine is only consulted for
// model metadata; all inference goes through the service's coalescer.
func NewImageServer(
	svc *Service[detect.ImageInput, detect.ImageResult],
	engine inference.Engine[detect.ImageInput, detect.ImageResult],
) *ImageServer {
	return &ImageServer{svc: svc, engine: engine}
}

// Predict classifies inline image bytes.
func (s *ImageServer) Predict(ctx context.Context, req *pb.PredictRequest) (*pb.PredictResponse, error) {
	if req == nil || len(req.GetImageData()) == 0 {
		return nil, invalidArgumentError("image_data cannot be empty")
	}

	result, err := s.svc.DetectBytes(ctx, req.GetImageData(), req.GetContentType())
	if err != nil {
		return nil, grpcError(err)
	}

	return imageVerdictProto(result), nil
}

// PredictFromURL downloads an image and classifies it.
func (s *ImageServer) PredictFromURL(ctx context.Context, req *pb.PredictURLRequest) (*pb.PredictResponse, error) {
	if req == nil || req.GetUrl() == "" {
		return nil, invalidArgumentError("url cannot be empty")
	}

	result, err := s.svc.DetectURL(ctx, req.GetUrl())
	if err != nil {
		return nil, grpcError(err)
	}

	return imageVerdictProto(result), nil
}

// PredictBatchFromURLs classifies a set of image URLs. Each URL gets its own
// result or error; one bad URL never fails the call.
func (s *ImageServer) PredictBatchFromURLs(ctx context.Context, req *pb.PredictBatchURLRequest) (*pb.PredictBatchResponse, error) {
	if req == nil || len(req.GetUrls()) == 0 {
		return nil, invalidArgumentError("urls cannot be empty")
	}

	outcomes := s.svc.DetectURLs(ctx, req.GetUrls())

	predictions := make([]*pb.BatchPredictionResult, len(outcomes))
	for i, out := range outcomes {
		pred := &pb.BatchPredictionResult{Url: req.GetUrls()[i]}
		if out.Err != nil {
			pred.Error = out.Err.Error()
		} else {
			pred.Result = imageVerdictProto(out.Result)
		}
		predictions[i] = pred
	}

	return &pb.PredictBatchResponse{Predictions: predictions}, nil
}

// HealthCheck runs a canary image through the live inference path.
func (s *ImageServer) HealthCheck(ctx context.Context, req *pb.HealthCheckRequest) (*pb.HealthCheckResponse, error) {
	if err := s.svc.Probe(ctx, detect.CanaryImage()); err != nil {
		log.Printf("image health probe failed: %v", err)
		return nil, unavailableError("health probe failed: %v", err)
	}

	return &pb.HealthCheckResponse{
		Status: "healthy",
		Model:  s.engine.ModelName(),
		Device: s.engine.Device(),
	}, nil
}

func imageVerdictProto(r detect.ImageResult) *pb.PredictResponse {
	return &pb.PredictResponse{
		IsNsfw:      r.IsNSFW,
		NsfwScore:   r.NSFWScore,
		NormalScore: r.NormalScore,
		Label:       r.Label,
		Confidence:  r.Confidence,
	}
}
