package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	imagepb "github.com/foden303/moderation/api/nsfw_image/v1"
	textpb "github.com/foden303/moderation/api/nsfw_text/v1"
	"github.com/foden303/moderation/internal/batch"
	"github.com/foden303/moderation/internal/cache"
	"github.com/foden303/moderation/internal/config"
	"github.com/foden303/moderation/internal/detect"
	"github.com/foden303/moderation/internal/fetch"
	"github.com/foden303/moderation/internal/handler"
	"github.com/foden303/moderation/internal/inference"
	"github.com/foden303/moderation/internal/metrics"
	"github.com/foden303/moderation/internal/middleware"
)

const serviceName = "nsfw-detector"

func main() {
	port := flag.Int("port", 0, "gRPC server port (default: 50051)")
	imageModel := flag.String("image-model", "", "Path to the ONNX image model (default: nsfw_image.onnx)")
	textBackend := flag.String("text-backend", "", "Base URL of the guard text backend (default: http://localhost:8000)")
	redisAddr := flag.String("redis", "", "Redis address for the verdict cache (default: disabled)")
	metricsPort := flag.Int("metrics", 0, "Prometheus metrics port (default: 9100)")
	configFile := flag.String("config", "", "Path to config file (optional)")
	useMock := flag.Bool("mock", false, "Use mock inference engines (for testing)")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override everything else.
	if *port > 0 {
		cfg.Port = *port
	}
	if *imageModel != "" {
		cfg.ImageModel = *imageModel
	}
	if *textBackend != "" {
		cfg.TextBackendURL = *textBackend
	}
	if *redisAddr != "" {
		cfg.Redis = *redisAddr
	}
	if *metricsPort > 0 {
		cfg.MetricsPort = *metricsPort
	}
	if *useMock {
		cfg.UseMockInference = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Starting %s...", serviceName)
	log.Printf("Configuration: port=%d, image_model=%s, text_backend=%s, batch=%d/%s, redis=%s, metrics=%d, otel=%v",
		cfg.Port, cfg.ImageModel, cfg.TextBackendURL, cfg.MaxBatchSize, cfg.BatchWait, cfg.Redis, cfg.MetricsPort, cfg.OTELEnabled)

	// Initialize OpenTelemetry tracer
	var tracerShutdown func(context.Context) error
	if cfg.OTELEnabled {
		tracerShutdown, err = initTracer(cfg.OTELEndpoint)
		if err != nil {
			log.Printf("Warning: Failed to initialize tracer: %v", err)
		} else {
			log.Printf("OpenTelemetry tracing enabled (endpoint: %s)", cfg.OTELEndpoint)
		}
	}

	// Load inference engines
	var imageEngine inference.Engine[detect.ImageInput, detect.ImageResult]
	var textEngine inference.Engine[detect.TextInput, detect.TextResult]
	if cfg.UseMockInference {
		log.Printf("Using mock inference engines")
		imageEngine = inference.NewImageMock()
		textEngine = inference.NewTextMock()
	} else {
		log.Printf("Loading ONNX image model from %s...", cfg.ImageModel)
		imageEngine, err = inference.NewImageEngine(cfg.ImageModel)
		if err != nil {
			log.Fatalf("Failed to load ONNX image model: %v", err)
		}
		log.Printf("ONNX image model loaded successfully")

		textEngine = inference.NewTextEngine(inference.TextConfig{
			BaseURL: cfg.TextBackendURL,
			Model:   cfg.TextModel,
			APIKey:  cfg.TextAPIKey,
		})
		log.Printf("Guard text backend: %s (model %s)", cfg.TextBackendURL, cfg.TextModel)
	}
	defer imageEngine.Close()
	defer textEngine.Close()

	// Initialize Redis verdict cache (optional)
	var verdictCache *cache.Cache
	if cfg.Redis != "" {
		log.Printf("Connecting to Redis at %s...", cfg.Redis)
		verdictCache, err = cache.New(cfg.Redis, cfg.CacheTTL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v (continuing without cache)", err)
			verdictCache = nil
		} else {
			defer verdictCache.Close()
			log.Printf("Redis connected successfully")
		}
	}

	// Coalescers front the engines so concurrent RPCs share batches
	imageCoal, err := batch.New[detect.ImageInput, detect.ImageResult](imageEngine, batch.Config{
		MaxBatchSize: cfg.MaxBatchSize,
		BatchWait:    cfg.BatchWait,
		OnFlush:      flushObserver("image"),
	})
	if err != nil {
		log.Fatalf("Failed to create image coalescer: %v", err)
	}
	defer imageCoal.Close()

	textCoal, err := batch.New[detect.TextInput, detect.TextResult](textEngine, batch.Config{
		MaxBatchSize: cfg.MaxBatchSize,
		BatchWait:    cfg.BatchWait,
		OnFlush:      flushObserver("text"),
	})
	if err != nil {
		log.Fatalf("Failed to create text coalescer: %v", err)
	}
	defer textCoal.Close()

	imageFetcher := fetch.New("image/", cfg.FetchTimeout, detect.DecodeImage)
	textFetcher := fetch.New("text/", cfg.FetchTimeout, func(data []byte) (detect.TextInput, error) {
		return detect.NewTextInput(string(data)), nil
	})

	imageSvc := handler.NewService("image", imageFetcher, imageCoal, verdictCache,
		func(in detect.ImageInput) string { return in.SHA256 })
	textSvc := handler.NewService("text", textFetcher, textCoal, verdictCache,
		func(in detect.TextInput) string { return in.SHA256 })

	// Create gRPC health server
	healthServer := health.NewServer()

	// Start HTTP server for metrics and health checks
	httpServer := startHTTPServer(cfg.MetricsPort, healthServer)

	// Build interceptor chain
	interceptors := []grpc.UnaryServerInterceptor{
		middleware.UnaryRequestID(),
		middleware.UnaryMetrics(),
	}
	if cfg.OTELEnabled {
		interceptors = append(interceptors, otelgrpc.UnaryServerInterceptor())
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(interceptors...),
	)

	imagepb.RegisterNSFWImageDetectorServer(grpcServer, handler.NewImageServer(imageSvc, imageEngine))
	textpb.RegisterNSFWTextDetectorServer(grpcServer, handler.NewTextServer(textSvc, textEngine))

	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Enable server reflection for debugging
	reflection.Register(grpcServer)

	addr := fmt.Sprintf(":%d", cfg.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	metrics.SetHealthy()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal %v, shutting down gracefully...", sig)

		healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_NOT_SERVING)
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		metrics.SetUnhealthy()

		// Give load balancers time to notice the NOT_SERVING status
		time.Sleep(5 * time.Second)

		grpcServer.GracefulStop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(ctx)

		if tracerShutdown != nil {
			tracerShutdown(ctx)
		}
	}()

	log.Printf("gRPC server listening on %s", addr)
	log.Printf("%s is ready to accept requests", serviceName)

	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}

	log.Printf("Server shutdown complete")
}

func loadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		return config.LoadWithConfigFile(configFile)
	}
	return config.Load()
}

// flushObserver feeds coalescer flush statistics into Prometheus.
func flushObserver(modality string) func(size int, reason string, inferenceTime time.Duration, err error) {
	return func(size int, reason string, inferenceTime time.Duration, err error) {
		metrics.RecordBatchFlush(modality, size, reason, inferenceTime.Seconds(), err != nil)
	}
}

func startHTTPServer(port int, healthServer *health.Server) *http.Server {
	mux := http.NewServeMux()

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		resp, err := healthServer.Check(r.Context(), &healthpb.HealthCheckRequest{})
		if err != nil || resp.Status != healthpb.HealthCheckResponse_SERVING {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Service Unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Readiness check (same as healthz for now)
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		resp, err := healthServer.Check(r.Context(), &healthpb.HealthCheckRequest{})
		if err != nil || resp.Status != healthpb.HealthCheckResponse_SERVING {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Not Ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Ready"))
	})

	addr := fmt.Sprintf(":%d", port)
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s (metrics, health)", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	return server
}

func initTracer(endpoint string) (func(context.Context) error, error) {
	if endpoint != "" {
		// Stdout exporter for now; swap in otlptracegrpc when a collector exists.
		log.Printf("Note: Using stdout trace exporter (OTLP endpoint: %s)", endpoint)
	}
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion("1.0.0"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
