package config

import (
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации движка.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Engine EngineConfig `yaml:"engine"`
}

// WorldConfig описывает неизменяемые параметры мира.
// Структура передаётся генератору, движку освещения и проверкам границ,
// чтобы размеры мира не были рассыпаны магическими числами по коду.
type WorldConfig struct {
	Seed         int64 `yaml:"seed"`
	SizeInChunks int   `yaml:"size_in_chunks"` // Протяжённость мира по X и Z в колоннах
	Height       int   `yaml:"height"`         // Высота мира в блоках
	SeaLevel     int   `yaml:"sea_level"`
}

// EngineConfig описывает параметры игрового цикла и пула мешинга.
type EngineConfig struct {
	TickRate    int `yaml:"tick_rate"`    // Тиков в секунду
	MeshWorkers int `yaml:"mesh_workers"` // Размер пула воркеров мешинга
	LightBudget int `yaml:"light_budget"` // Узлов освещения на тик при массовом заполнении
	MetricsPort int `yaml:"metrics_port"`
}

// GetMeshWorkers возвращает размер пула с поддержкой fallback значений
func (e *EngineConfig) GetMeshWorkers() int {
	if e.MeshWorkers > 0 {
		return e.MeshWorkers
	}
	if envVal := os.Getenv("ENGINE_MESH_WORKERS"); envVal != "" {
		if n, err := strconv.Atoi(envVal); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}

// GetMetricsPort возвращает порт метрик с приоритетом: config -> env -> default
func (e *EngineConfig) GetMetricsPort() int {
	if e.MetricsPort > 0 {
		return e.MetricsPort
	}
	if envVal := os.Getenv("ENGINE_METRICS_PORT"); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}
	return 2112
}

// Default возвращает конфигурацию по умолчанию: мир 24x24 колонны
// высотой 128 блоков, как у эталонного мира.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:         1337,
			SizeInChunks: 24,
			Height:       128,
			SeaLevel:     8,
		},
		Engine: EngineConfig{
			TickRate:    60,
			MeshWorkers: 0, // 0 — использовать NumCPU
			LightBudget: 4096,
			MetricsPort: 0,
		},
	}
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV ENGINE_CONFIG или возвращает
// конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("ENGINE_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
