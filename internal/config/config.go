package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генератора.
// Нулевые значения означают "не задано": геттеры подставляют переменные окружения и дефолты.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Meshing   MeshingConfig   `yaml:"meshing"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type WorldConfig struct {
	ChunkSize int     `yaml:"chunk_size"`
	VoxelSize float32 `yaml:"voxel_size"`
	Seed      int64   `yaml:"seed"`
	Generator string  `yaml:"generator"` // heuristic, shapes или perlin
}

type MeshingConfig struct {
	Mode      string `yaml:"mode"` // mesh+collider, mesh или collider
	Workers   int    `yaml:"workers"`
	SubMeshes int    `yaml:"submeshes"`
}

type CatalogConfig struct {
	Path string `yaml:"path"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// GetChunkSize возвращает размер чанка с приоритетом config -> env -> default
func (w *WorldConfig) GetChunkSize() int {
	return getIntWithEnvFallback(w.ChunkSize, "VOXEL_CHUNK_SIZE", 16)
}

// GetVoxelSize возвращает размер вокселя
func (w *WorldConfig) GetVoxelSize() float32 {
	if w.VoxelSize > 0 {
		return w.VoxelSize
	}
	if envVal := os.Getenv("VOXEL_VOXEL_SIZE"); envVal != "" {
		if v, err := strconv.ParseFloat(envVal, 32); err == nil && v > 0 {
			return float32(v)
		}
	}
	return 1
}

// GetSeed возвращает сид мира. Нулевой сид в конфиге считается незаданным.
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("VOXEL_SEED"); envVal != "" {
		if v, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return v
		}
	}
	return 12345
}

// GetGenerator возвращает имя генератора рельефа
func (w *WorldConfig) GetGenerator() string {
	return getStringWithEnvFallback(w.Generator, "VOXEL_GENERATOR", "heuristic")
}

// GetMode возвращает режим построения сетки
func (m *MeshingConfig) GetMode() string {
	return getStringWithEnvFallback(m.Mode, "VOXEL_MESH_MODE", "mesh+collider")
}

// GetWorkers возвращает размер пула воркеров
func (m *MeshingConfig) GetWorkers() int {
	return getIntWithEnvFallback(m.Workers, "VOXEL_WORKERS", 4)
}

// GetSubMeshes возвращает минимальное число сабмешей; каталог может потребовать больше
func (m *MeshingConfig) GetSubMeshes() int {
	return getIntWithEnvFallback(m.SubMeshes, "VOXEL_SUBMESHES", 1)
}

// GetPath возвращает путь к YAML каталогу типов; пустая строка - встроенный каталог
func (c *CatalogConfig) GetPath() string {
	return getStringWithEnvFallback(c.Path, "VOXEL_CATALOG", "")
}

// GetPort возвращает порт Prometheus метрик
func (m *MetricsConfig) GetPort() int {
	return getIntWithEnvFallback(m.Port, "VOXEL_METRICS_PORT", 2112)
}

// IsEnabled включена ли трассировка: в конфиге или через VOXEL_TRACING=1
func (t *TelemetryConfig) IsEnabled() bool {
	if t.Enabled {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv("VOXEL_TRACING"))
	return err == nil && v
}

// GetServiceName возвращает имя сервиса для трассировки
func (t *TelemetryConfig) GetServiceName() string {
	return getStringWithEnvFallback(t.ServiceName, "OTEL_SERVICE_NAME", "voxelgen")
}

// GetLevel возвращает уровень логирования консоли
func (l *LoggingConfig) GetLevel() string {
	return getStringWithEnvFallback(l.Level, "VOXEL_LOG_LEVEL", "info")
}

// GetDir возвращает каталог файловых логов; пустая строка - только консоль
func (l *LoggingConfig) GetDir() string {
	return getStringWithEnvFallback(l.Dir, "VOXEL_LOG_DIR", "")
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configVal int, envVar string, defaultVal int) int {
	if configVal > 0 {
		return configVal
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	return defaultVal
}

func getStringWithEnvFallback(configVal, envVar, defaultVal string) string {
	if configVal != "" {
		return configVal
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultVal
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать путь из ENV VOXEL_CONFIG;
// без него возвращает пустой конфиг, и все значения берутся из окружения и дефолтов.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse разбирает YAML конфигурацию из памяти
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
