package interceptors

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const (
	metricsNamespace = "ideaboard"
	metricsSubsystem = "grpc"
)

var (
	grpcRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_total",
			Help:      "Total number of gRPC requests by status code",
		},
		[]string{"service", "method", "code"},
	)

	grpcRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Histogram of gRPC request durations",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"service", "method"},
	)

	grpcActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "active_requests",
			Help:      "Number of in-flight gRPC requests",
		},
		[]string{"service", "method"},
	)

	grpcPanicsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "panics_recovered_total",
			Help:      "Total number of panics recovered in gRPC handlers",
		},
		[]string{"service", "method"},
	)
)

// MetricsInterceptor records request counts, latency and in-flight requests
// per service and method.
func MetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp any, err error) {
		service, method := splitMethodName(info.FullMethod)
		start := time.Now()

		active := grpcActiveRequests.WithLabelValues(service, method)
		active.Inc()
		defer active.Dec()

		resp, err = handler(ctx, req)

		grpcRequestDuration.WithLabelValues(service, method).Observe(time.Since(start).Seconds())
		grpcRequestsTotal.WithLabelValues(service, method, status.Code(err).String()).Inc()

		return resp, err
	}
}

// splitMethodName turns "/pkg.Service/Method" into its service and method.
func splitMethodName(fullMethod string) (string, string) {
	fullMethod = strings.TrimPrefix(fullMethod, "/")
	if i := strings.LastIndex(fullMethod, "/"); i >= 0 {
		return fullMethod[:i], fullMethod[i+1:]
	}
	return "unknown", fullMethod
}
