package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/annel0/voxel-engine/internal/logging"
)

// EngineMetrics инкапсулирует Prometheus-метрики конвейера движка:
// сборка мешей и очередь освещения. Методы записи безопасны при nil,
// поэтому метрики можно не подключать в тестах и инструментах.
type EngineMetrics struct {
	buildsStarted   prometheus.Counter
	buildsCompleted prometheus.Counter
	queueDepth      prometheus.Gauge
	readyChunks     prometheus.Gauge
	buildDuration   prometheus.Histogram
	lightQueueDepth prometheus.Gauge
}

// NewEngineMetrics создаёт и регистрирует метрики в глобальном регистре.
// Вызывается один раз на процесс.
func NewEngineMetrics() *EngineMetrics {
	em := &EngineMetrics{
		buildsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "engine",
			Name:      "mesh_builds_started_total",
			Help:      "Число сборок мешей, отправленных воркерам.",
		}),
		buildsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "engine",
			Name:      "mesh_builds_completed_total",
			Help:      "Число завершённых сборок мешей.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "engine",
			Name:      "mesh_queue_depth",
			Help:      "Заданий сборки в очереди воркеров.",
		}),
		readyChunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "engine",
			Name:      "mesh_ready_chunks",
			Help:      "Собранных мешей, ожидающих выгрузки на главной горутине.",
		}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "engine",
			Name:      "mesh_build_duration_seconds",
			Help:      "Длительность сборки меша одной колонны.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		lightQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "engine",
			Name:      "light_queue_depth",
			Help:      "Узлов в очередях распространения света.",
		}),
	}

	prometheus.MustRegister(
		em.buildsStarted, em.buildsCompleted, em.queueDepth,
		em.readyChunks, em.buildDuration, em.lightQueueDepth,
	)
	return em
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе
// (например, ":2112"). Метод неблокирующий.
func (em *EngineMetrics) StartHTTP(addr string) {
	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}

// BuildStarted учитывает отправку задания воркеру
func (em *EngineMetrics) BuildStarted() {
	if em == nil {
		return
	}
	em.buildsStarted.Inc()
}

// BuildCompleted учитывает завершённую сборку и её длительность
func (em *EngineMetrics) BuildCompleted(d time.Duration) {
	if em == nil {
		return
	}
	em.buildsCompleted.Inc()
	em.buildDuration.Observe(d.Seconds())
}

// SetQueueDepth обновляет глубину очереди заданий
func (em *EngineMetrics) SetQueueDepth(n int) {
	if em == nil {
		return
	}
	em.queueDepth.Set(float64(n))
}

// SetReadyChunks обновляет число мешей, ожидающих выгрузки
func (em *EngineMetrics) SetReadyChunks(n int) {
	if em == nil {
		return
	}
	em.readyChunks.Set(float64(n))
}

// SetLightQueueDepth обновляет глубину очередей освещения
func (em *EngineMetrics) SetLightQueueDepth(n int) {
	if em == nil {
		return
	}
	em.lightQueueDepth.Set(float64(n))
}
