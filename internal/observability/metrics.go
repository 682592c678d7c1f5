package observability

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-world/internal/logging"
)

// Результаты задач конвейера для метки result
const (
	JobOK      = "ok"
	JobFailed  = "failed"
	JobSkipped = "skipped"
)

// Metrics Prometheus-метрики генерации и построения сеток.
// Все методы допускают nil-получатель: без метрик мир работает так же.
type Metrics struct {
	registry *prometheus.Registry

	chunksGenerated   prometheus.Counter
	chunksMeshed      *prometheus.CounterVec
	trianglesEmitted  prometheus.Counter
	verticesEmitted   prometheus.Counter
	unsupportedStyles prometheus.Counter
	loadedChunks      prometheus.Gauge
	generateDuration  prometheus.Histogram
	meshDuration      prometheus.Histogram
	pipelineJobs      *prometheus.CounterVec
}

// NewMetrics создаёт метрики в собственном реестре
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		chunksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "chunks_generated_total",
			Help:      "Общее число сгенерированных чанков.",
		}),
		chunksMeshed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "chunks_meshed_total",
			Help:      "Общее число построенных сеток чанков по режиму.",
		}, []string{"mode"}),
		trianglesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "triangles_emitted_total",
			Help:      "Треугольников видимой сетки во всех построенных чанках.",
		}),
		verticesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "vertices_emitted_total",
			Help:      "Вершин видимой сетки во всех построенных чанках.",
		}),
		unsupportedStyles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "unsupported_style_cells_total",
			Help:      "Ячеек, для стиля которых нет генератора геометрии.",
		}),
		loadedChunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "voxel",
			Name:      "chunks_loaded",
			Help:      "Количество загруженных чанков.",
		}),
		generateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxel",
			Name:      "chunk_generate_seconds",
			Help:      "Время генерации одного чанка.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		meshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxel",
			Name:      "chunk_mesh_seconds",
			Help:      "Время построения сетки одного чанка.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		pipelineJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxel",
			Name:      "pipeline_jobs_total",
			Help:      "Задачи конвейера построения сеток по результату.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.chunksGenerated, m.chunksMeshed, m.trianglesEmitted, m.verticesEmitted,
		m.unsupportedStyles, m.loadedChunks, m.generateDuration, m.meshDuration, m.pipelineJobs,
	)
	return m
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler возвращает HTTP-обработчик /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе (например, ":2112").
// Метод неблокирующий: HTTP-сервер стартует в отдельной горутине.
func (m *Metrics) StartHTTP(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
	return srv
}

// ObserveGenerate учитывает сгенерированный чанк
func (m *Metrics) ObserveGenerate(d time.Duration) {
	if m == nil {
		return
	}
	m.chunksGenerated.Inc()
	m.generateDuration.Observe(d.Seconds())
}

// SetLoadedChunks обновляет количество загруженных чанков
func (m *Metrics) SetLoadedChunks(n int) {
	if m == nil {
		return
	}
	m.loadedChunks.Set(float64(n))
}

// ObserveMesh учитывает построенную сетку чанка
func (m *Metrics) ObserveMesh(mode string, vertices, triangles int, d time.Duration) {
	if m == nil {
		return
	}
	m.chunksMeshed.WithLabelValues(mode).Inc()
	m.verticesEmitted.Add(float64(vertices))
	m.trianglesEmitted.Add(float64(triangles))
	m.meshDuration.Observe(d.Seconds())
}

// AddUnsupportedStyles учитывает ячейки без генератора геометрии
func (m *Metrics) AddUnsupportedStyles(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.unsupportedStyles.Add(float64(n))
}

// ObserveJob учитывает завершённую задачу конвейера
func (m *Metrics) ObserveJob(result string) {
	if m == nil {
		return
	}
	m.pipelineJobs.WithLabelValues(result).Inc()
}
