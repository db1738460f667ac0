package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/observability"
	"github.com/annel0/voxel-engine/internal/physics"
	"github.com/annel0/voxel-engine/internal/scheduler"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
	"github.com/annel0/voxel-engine/internal/world/block"
	_ "github.com/annel0/voxel-engine/internal/world/block/implementations"
)

// logUploader — стенд-заглушка GPU-загрузчика для headless-режима:
// считает выгрузки и отчитывается в лог
type logUploader struct {
	uploads  int
	vertices int
}

func (u *logUploader) Upload(chunk *world.Chunk) {
	u.uploads++
	u.vertices += len(chunk.OpaqueMesh) + len(chunk.TransparentMesh)
}

func main() {
	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("engine"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🧊 Запуск воксельного движка (headless)...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load("")
	if err != nil {
		logging.Error("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	logging.Info("📡 Мир: %dx%d колонн, высота %d, сид %d; тик %d Гц",
		cfg.World.SizeInChunks, cfg.World.SizeInChunks, cfg.World.Height,
		cfg.World.Seed, cfg.Engine.TickRate)

	// === МЕТРИКИ ===
	metrics := observability.NewEngineMetrics()
	metrics.StartHTTP(fmt.Sprintf(":%d", cfg.Engine.GetMetricsPort()))

	// === МИР ===
	wm := world.NewWorldManager(cfg.World)
	wm.GenerateWorld()

	// === ПЛАНИРОВЩИК МЕШЕЙ ===
	sched := scheduler.NewScheduler(wm, cfg.Engine.GetMeshWorkers(), metrics)

	// === ИГРОК ===
	// Спаун над центром мира; физика опустит игрока на рельеф
	center := cfg.World.SizeInChunks * world.ChunkSize / 2
	player := &physics.Player{
		Position: mgl32.Vec3{float32(center), float32(cfg.World.Height), float32(center)},
	}
	isWater := func(pos vec.Vec3) bool {
		return wm.BlockAt(pos) == block.Water
	}

	// === ГЛАВНЫЙ ЦИКЛ ===
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	tickDuration := time.Second / time.Duration(cfg.Engine.TickRate)
	ticker := time.NewTicker(tickDuration)
	defer ticker.Stop()

	uploader := &logUploader{}
	dt := float32(tickDuration.Seconds())
	var tick uint64

	logging.Info("✅ Движок запущен: %d колонн, очередь света %d узлов",
		wm.ChunkCount(), wm.Lights().Pending())

loop:
	for {
		select {
		case sig := <-sigCh:
			logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
			break loop

		case <-ticker.C:
			tick++

			// Порция фонового освещения, затем раздача и съём мешей
			wm.Lights().ProcessBudget(cfg.Engine.LightBudget)
			metrics.SetLightQueueDepth(wm.Lights().Pending())

			sched.Dispatch()
			sched.DrainReady(uploader)

			player.Step(dt, physics.Input{Front: mgl32.Vec3{0, 0, -1}}, wm.IsSolidAt, isWater)

			if tick%uint64(cfg.Engine.TickRate*10) == 0 {
				logging.Debug("Тик %d: выгрузок %d, вершин %d, игрок на %.1f",
					tick, uploader.uploads, uploader.vertices, player.Position.Y())
			}
		}
	}

	// === GRACEFUL SHUTDOWN ===
	logging.Debug("Остановка планировщика мешей...")
	sched.Stop()
	sched.DrainReady(uploader)

	logging.Info("👋 Движок остановлен: %d выгрузок мешей за %d тиков", uploader.uploads, tick)
}
