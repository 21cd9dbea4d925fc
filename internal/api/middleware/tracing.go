package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Tracing opens an OpenTelemetry span per API request and propagates it to
// handlers and services. Spans carry request and response summaries as
// Langfuse observation attributes, and the trace ID surfaces in
// recommendation responses so feedback can be linked back to the trace.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("hydration-api/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !shouldTrace(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Clients that send traceparent headers keep their trace going
		// through the API instead of starting a fresh one.
		parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

		ctx, span := tracer.Start(parent, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		input := map[string]any{"method": r.Method, "path": r.URL.Path}
		if r.URL.RawQuery != "" {
			input["query"] = r.URL.RawQuery
		}
		if payload, err := json.Marshal(input); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.input", string(payload)))
		}

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		// The matched route is only known once the mux has run. Renaming the
		// span groups traces by route instead of by raw path, and the userId
		// parameter ties the trace to the account that asked.
		if rctx := chi.RouteContext(ctx); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
			}
			if userID := rctx.URLParam("userId"); userID != "" {
				span.SetAttributes(attribute.String("user.id", userID))
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		output := map[string]any{
			"status_code": status,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if payload, err := json.Marshal(output); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(payload)))
		}
	})
}

// shouldTrace filters probes and static docs that would flood the backend.
func shouldTrace(path string) bool {
	return path != "/health" && !strings.HasPrefix(path, "/swagger")
}
