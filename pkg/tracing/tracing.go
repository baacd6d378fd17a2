package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/IPampurin/sort-benchmark/pkg/configuration"
)

// TracerName - имя трейсера прогонов
const TracerName = "github.com/IPampurin/sort-benchmark/pkg/runner"

// ShutdownFunc сбрасывает накопленные спаны и останавливает провайдер
type ShutdownFunc func(ctx context.Context) error

// Init настраивает глобальный провайдер трейсов.
// При пустом endpoint остаётся no-op провайдер otel по умолчанию
func Init(ctx context.Context, cfg *configuration.ConfTracing) (ShutdownFunc, error) {

	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	// экспорт трейсов через otlp/grpc
	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(cfg.Endpoint), otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("не удалось создать экспортер трейсов: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// Tracer возвращает трейсер прогонов из глобального провайдера
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
