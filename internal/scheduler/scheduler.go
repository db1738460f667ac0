package scheduler

import (
	"sync"
	"time"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/mesh"
	"github.com/annel0/voxel-engine/internal/observability"
	"github.com/annel0/voxel-engine/internal/world"
)

// Uploader принимает готовые вершинные буферы колонны. В полном клиенте
// за интерфейсом стоит загрузка в GPU; в headless-режиме — заглушка.
type Uploader interface {
	Upload(chunk *world.Chunk)
}

// Scheduler раздаёт сборку мешей пулу воркеров. Грязные колонны
// отбираются на главной горутине (Dispatch), готовые меши возвращаются
// на неё же (DrainReady); список готовых — единственная разделяемая
// между воркерами и главной горутиной структура, мьютекс держится
// только на добавление и съём.
type Scheduler struct {
	world   *world.WorldManager
	metrics *observability.EngineMetrics

	jobs    chan *world.Chunk
	readyMu sync.Mutex
	ready   []*world.Chunk
	wg      sync.WaitGroup
}

// NewScheduler создаёт планировщик и запускает workers фоновых воркеров.
// metrics может быть nil.
func NewScheduler(wm *world.WorldManager, workers int, metrics *observability.EngineMetrics) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	s := &Scheduler{
		world:   wm,
		metrics: metrics,
		jobs:    make(chan *world.Chunk, workers*4),
	}
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
	logging.Info("Планировщик мешей: %d воркеров", workers)
	return s
}

// worker собирает меши из очереди заданий до закрытия канала
func (s *Scheduler) worker() {
	defer s.wg.Done()
	for chunk := range s.jobs {
		start := time.Now()

		built := mesh.Build(s.world, chunk.Coords, chunk.Height())
		chunk.OpaqueMesh = built.Opaque
		chunk.TransparentMesh = built.Transparent

		s.readyMu.Lock()
		s.ready = append(s.ready, chunk)
		s.readyMu.Unlock()

		s.metrics.BuildCompleted(time.Since(start))
	}
}

// Dispatch отбирает грязные колонны и отправляет их воркерам.
// Вызывается каждый тик с главной горутины: только здесь меняются
// флаги Dirty и Building, поэтому на колонну приходится не более
// одной сборки одновременно. Переполненная очередь возвращает
// колонну в грязные до следующего тика.
func (s *Scheduler) Dispatch() int {
	dispatched := 0
	s.world.ForEachChunk(func(chunk *world.Chunk) {
		if !chunk.Dirty || chunk.Building {
			return
		}
		chunk.Building = true
		chunk.Dirty = false

		select {
		case s.jobs <- chunk:
			dispatched++
			s.metrics.BuildStarted()
		default:
			chunk.Dirty = true
			chunk.Building = false
		}
	})
	s.metrics.SetQueueDepth(len(s.jobs))
	return dispatched
}

// DrainReady передаёт готовые меши загрузчику и освобождает буферы.
// Вызывается с главной горутины; после сброса Building колонна снова
// доступна для перестройки.
func (s *Scheduler) DrainReady(up Uploader) int {
	s.readyMu.Lock()
	batch := s.ready
	s.ready = nil
	s.readyMu.Unlock()

	for _, chunk := range batch {
		up.Upload(chunk)
		chunk.OpaqueMesh = nil
		chunk.TransparentMesh = nil
		chunk.Building = false
	}
	s.metrics.SetReadyChunks(0)
	return len(batch)
}

// PendingReady возвращает число готовых мешей, ожидающих съёма
func (s *Scheduler) PendingReady() int {
	s.readyMu.Lock()
	defer s.readyMu.Unlock()
	return len(s.ready)
}

// Stop закрывает очередь заданий и дожидается завершения воркеров
func (s *Scheduler) Stop() {
	close(s.jobs)
	s.wg.Wait()
}
