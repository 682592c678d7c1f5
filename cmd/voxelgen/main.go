package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/meshing"
	"github.com/annel0/voxel-world/internal/observability"
	"github.com/annel0/voxel-world/internal/physics"
	"github.com/annel0/voxel-world/internal/pipeline"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/annel0/voxel-world/internal/world/block/implementations"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $VOXEL_CONFIG)")
	radius := flag.Int("radius", 1, "радиус квадрата чанков вокруг начала координат")
	seed := flag.Int64("seed", 0, "сид мира (0 - из конфигурации)")
	mode := flag.String("mode", "", "режим сетки: mesh+collider, mesh или collider")
	workers := flag.Int("workers", 0, "число воркеров (0 - из конфигурации)")
	dumpDir := flag.String("dump", "", "каталог для выгрузки сеток в JSON+zstd")
	serveMetrics := flag.Bool("metrics", false, "после построения отдавать /metrics до получения сигнала")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *mode != "" {
		cfg.Meshing.Mode = *mode
	}
	if *workers > 0 {
		cfg.Meshing.Workers = *workers
	}

	if err := setupLogging(cfg.Logging); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer closeComponentLoggers()

	if err := run(cfg, *radius, *dumpDir, *serveMetrics); err != nil {
		logging.Error("❌ %v", err)
		closeComponentLoggers()
		logging.CloseDefaultLogger()
		os.Exit(1)
	}
}

func closeComponentLoggers() {
	if err := logging.GetLoggerManager().CloseAll(); err != nil {
		log.Printf("ошибка закрытия логов: %v", err)
	}
}

func setupLogging(cfg config.LoggingConfig) error {
	level, err := logging.ParseLevel(cfg.GetLevel())
	if err != nil {
		return err
	}
	logging.Configure(cfg.GetDir(), level, logging.DEBUG)
	return logging.InitDefaultLogger("voxelgen")
}

func run(cfg *config.Config, radius int, dumpDir string, serveMetrics bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.IsEnabled() {
		shutdown, err := observability.InitTelemetry(ctx, cfg.Telemetry.GetServiceName())
		if err != nil {
			logging.Warn("⚠️ Трассировка отключена: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Warn("Ошибка остановки трассировки: %v", err)
				}
			}()
		}
	}

	mode, err := meshing.ParseMode(cfg.Meshing.GetMode())
	if err != nil {
		return err
	}

	registry, err := loadRegistry(cfg.Catalog.GetPath())
	if err != nil {
		return err
	}

	settings := world.Settings{
		ChunkSize: cfg.World.GetChunkSize(),
		VoxelSize: cfg.World.GetVoxelSize(),
		SubMeshes: cfg.Meshing.GetSubMeshes(),
	}
	seed := cfg.World.GetSeed()
	generator, err := newGenerator(cfg.World.GetGenerator(), seed)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	bus := eventbus.NewMemoryBus(1024)
	defer bus.Close()
	if _, err := eventbus.StartLoggingListener(bus, logging.GetEventBusLogger()); err != nil {
		return err
	}
	busMetrics, err := eventbus.NewMetricsExporter(bus, metrics.Registry())
	if err != nil {
		return err
	}
	busMetrics.Start(time.Second)
	defer busMetrics.Stop()

	w, err := world.NewWorld(settings, registry, generator, seed,
		world.WithMetrics(metrics), world.WithEventBus(bus))
	if err != nil {
		return err
	}

	logging.Info("🌍 Мир: сид=%d, чанк=%d, воксель=%v, генератор=%s, типов=%d",
		seed, settings.ChunkSize, settings.VoxelSize, cfg.World.GetGenerator(), registry.Len())

	mesher := pipeline.NewMesher(w, mode,
		pipeline.WithWorkers(cfg.Meshing.GetWorkers()),
		pipeline.WithMetrics(metrics),
	)
	results, runErr := mesher.Run(ctx, pipeline.Square(vec.Vec3{}, radius))

	for _, r := range results {
		switch {
		case r.Skipped():
			logging.Debug("Чанк %s пропущен", r.Coords)
		case r.Mesh == nil:
			logging.Error("Чанк %s: %v", r.Coords, r.Err)
		default:
			logging.Info("Чанк %s: %d вершин, %d треугольников, коллайдер %d треугольников, %v",
				r.Coords, r.Mesh.Stats.Vertices, r.Mesh.Stats.Triangles, r.Mesh.Stats.ColliderTriangles, r.Duration)
		}
	}

	summary := pipeline.Summarize(results)
	logging.Info("✅ Готово: чанков=%d, ошибок=%d, пропущено=%d, неподдерживаемых ячеек=%d, треугольников=%d",
		summary.Jobs, summary.Failed, summary.Skipped, summary.Unsupported, summary.Triangles)

	if runErr != nil {
		return fmt.Errorf("построение прервано: %w", runErr)
	}

	if spawn, ok := physics.FindGround(w, physics.NewBoxCollider(1, 2, 1), 0, 0, settings.ChunkSize-2, 0); ok {
		logging.Info("🧍 Точка появления: %s", spawn)
	} else {
		logging.Warn("Не найдена точка появления над (0, 0)")
	}

	if dumpDir != "" {
		if err := dumpMeshes(dumpDir, results); err != nil {
			return err
		}
	}

	if serveMetrics {
		srv := metrics.StartHTTP(fmt.Sprintf(":%d", cfg.Metrics.GetPort()))
		<-ctx.Done()
		logging.Info("📡 Получен сигнал завершения, остановка...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
	return nil
}

// loadRegistry собирает встроенный каталог и, если задан, YAML каталог поверх него
func loadRegistry(path string) (*block.Registry, error) {
	registry, err := implementations.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	if path != "" {
		n, err := block.LoadCatalog(path, registry)
		if err != nil {
			return nil, fmt.Errorf("каталог %s: %w", path, err)
		}
		logging.Info("📦 Загружено %d типов из %s", n, path)
	}
	registry.Freeze()
	return registry, nil
}

func newGenerator(name string, seed int64) (world.TerrainGenerator, error) {
	switch name {
	case "heuristic":
		return world.NewHeuristicTerrain(), nil
	case "shapes":
		return &world.HeuristicTerrain{Palette: world.DefaultPalette(), RandomShapes: true}, nil
	case "perlin":
		return world.NewPerlinTerrain(seed, world.DefaultPalette()), nil
	case "empty":
		return nil, nil
	}
	return nil, fmt.Errorf("неизвестный генератор %q", name)
}

func dumpMeshes(dir string, results []pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var errs []error
	written := 0
	for _, r := range results {
		if r.Mesh == nil {
			continue
		}
		name := fmt.Sprintf("chunk_%d_%d_%d.json.zst", r.Coords.X, r.Coords.Y, r.Coords.Z)
		if err := meshing.WriteDumpFile(filepath.Join(dir, name), r.Mesh.Dump()); err != nil {
			errs = append(errs, err)
			continue
		}
		written++
	}
	logging.Info("💾 Выгружено %d сеток в %s", written, dir)
	return errors.Join(errs...)
}
