package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/IPampurin/sort-benchmark/pkg/configuration"
	"github.com/IPampurin/sort-benchmark/pkg/generator"
	"github.com/IPampurin/sort-benchmark/pkg/metrics"
	"github.com/IPampurin/sort-benchmark/pkg/report"
	"github.com/IPampurin/sort-benchmark/pkg/runner"
	"github.com/IPampurin/sort-benchmark/pkg/sorting"
	"github.com/IPampurin/sort-benchmark/pkg/tracing"
)

func main() {

	// cоздаём контекст
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// запускаем горутину обработки сигналов
	go signalHandler(ctx, cancel)

	// считываем .env файл или окружение
	cfg, err := configuration.ReadConfig("./.env")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// настраиваем логгер
	appLogger, err := newLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}

	if err := run(ctx, cfg, appLogger, os.Stdout); err != nil {
		appLogger.Error("ошибка бенчмарка", "error", err)
		os.Exit(1)
	}
}

// newLogger создаёт zap логгер. stdout отдан отчёту, поэтому туда логи идут только с LOG_STDOUT=true
func newLogger(cfg *configuration.ConfLog) (logger.Logger, error) {

	return logger.InitLogger(
		logger.ZapEngine,
		"sort-benchmark",
		os.Getenv("APP_ENV"),
		loggerOptions(cfg)...,
	)
}

// loggerOptions переводит ConfLog в опции wbf логгера
func loggerOptions(cfg *configuration.ConfLog) []logger.Option {

	opts := []logger.Option{
		logger.WithLevel(logger.InfoLevel),
		func(c *logger.GlobalConfig) { c.Stdout = cfg.Stdout },
	}
	if cfg.File != "" {
		opts = append(opts, logger.WithRotation(cfg.File, cfg.MaxSize, cfg.MaxBackups, cfg.MaxAge))
	}

	return opts
}

// run собирает раннер из конфигурации и печатает отчёт в out
func run(ctx context.Context, cfg *configuration.Config, appLogger logger.Logger, out io.Writer) error {

	dists, err := generator.ParseList(cfg.Bench.Distributions)
	if err != nil {
		return err
	}

	algorithms, err := sorting.NewSet(cfg.Bench.Algorithms, cfg.Bench.Seed)
	if err != nil {
		return err
	}

	printer, err := report.New(cfg.Report.Format, out, cfg.Report.Color)
	if err != nil {
		return err
	}

	shutdownTracing, err := tracing.Init(ctx, &cfg.Tracing)
	if err != nil {
		// без трейсов бенчмарк всё равно имеет смысл
		appLogger.Warn("трейсинг не работает", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLogger.Warn("ошибка остановки трейсинга", "error", err)
		}
	}()

	benchMetrics := metrics.New()

	r := runner.New(runner.Options{
		Sizes:         cfg.Bench.Sizes,
		Distributions: dists,
		Algorithms:    algorithms,
		Seed:          cfg.Bench.Seed,
		Log:           appLogger,
		Recorder:      benchMetrics,
		Tracer:        tracing.Tracer(),
	})

	if err := printer.Header(); err != nil {
		return err
	}

	summary, err := r.Run(ctx, printer.Row)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if err := printer.Summary(summary); err != nil {
		return err
	}

	if err := benchMetrics.WriteTextfile(cfg.Report.MetricsFile); err != nil {
		appLogger.Warn("метрики не сохранены", "error", err)
	}

	return nil
}

// signalHandler обрабатывет сигналы отмены
func signalHandler(ctx context.Context, cancel context.CancelFunc) {

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		return
	case <-sigChan:
		cancel()
		return
	}
}
