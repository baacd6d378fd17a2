package configuration

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"

	"github.com/IPampurin/sort-benchmark/pkg/generator"
	"github.com/IPampurin/sort-benchmark/pkg/sorting"
)

// ConfBench — параметры сетки бенчмарка
type ConfBench struct {
	Sizes         []int    `env:"BENCH_SIZES"         env-separator:"," env-default:"1000,5000,10000"`
	Distributions []string `env:"BENCH_DISTRIBUTIONS" env-separator:","` // пусто - generator.All()
	Algorithms    []string `env:"BENCH_ALGORITHMS"    env-separator:","` // пусто - sorting.Keys()
	Seed          uint64   `env:"BENCH_SEED"          env-default:"12345"`
}

// ConfReport — параметры вывода результатов
type ConfReport struct {
	Format      string `env:"REPORT_FORMAT" env-default:"table"` // table или json
	Color       bool   `env:"REPORT_COLOR"  env-default:"false"`
	MetricsFile string `env:"METRICS_FILE"  env-default:""` // пусто - метрики не выгружаются
}

// ConfTracing — параметры экспорта трейсов
type ConfTracing struct {
	Endpoint    string `env:"OTEL_ENDPOINT"     env-default:""` // пусто - трейсинг выключен
	ServiceName string `env:"OTEL_SERVICE_NAME" env-default:"sort-benchmark"`
}

// ConfLog — параметры логгера. stdout занят отчётом, поэтому по умолчанию логи туда не пишутся
type ConfLog struct {
	File       string `env:"LOG_FILE"        env-default:""` // пусто - в файл не пишем
	Stdout     bool   `env:"LOG_STDOUT"      env-default:"false"`
	MaxSize    int    `env:"LOG_MAX_SIZE"    env-default:"100"` // МБ
	MaxBackups int    `env:"LOG_MAX_BACKUPS" env-default:"7"`
	MaxAge     int    `env:"LOG_MAX_AGE"     env-default:"30"` // дни
}

// Config — корневая структура конфигурации
type Config struct {
	Bench   ConfBench
	Report  ConfReport
	Tracing ConfTracing
	Log     ConfLog
}

// ReadConfig загружает .env файл по пути path, а если его нет - переменные окружения,
// незаданные значения берутся из env-default
func ReadConfig(path string) (*Config, error) {

	var config Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenvport.LoadPath(path, &config); err != nil {
			return nil, fmt.Errorf("ошибка чтения %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&config); err != nil {
			return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
		}
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults подставляет списки по умолчанию из пакетов, где они определены
func (c *Config) applyDefaults() {

	if len(c.Bench.Distributions) == 0 {
		for _, d := range generator.All() {
			c.Bench.Distributions = append(c.Bench.Distributions, string(d))
		}
	}
	if len(c.Bench.Algorithms) == 0 {
		c.Bench.Algorithms = sorting.Keys()
	}
}

// Validate проверяет значения, которые нельзя выразить тегами
func (c *Config) Validate() error {

	if len(c.Bench.Sizes) == 0 {
		return errors.New("BENCH_SIZES: пустой список размеров")
	}
	for _, size := range c.Bench.Sizes {
		if size < 0 {
			return fmt.Errorf("BENCH_SIZES: отрицательный размер %d", size)
		}
	}
	if len(c.Bench.Distributions) == 0 {
		return errors.New("BENCH_DISTRIBUTIONS: пустой список распределений")
	}
	if len(c.Bench.Algorithms) == 0 {
		return errors.New("BENCH_ALGORITHMS: пустой список алгоритмов")
	}

	return nil
}
