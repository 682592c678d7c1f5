package logging

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Имена компонентов, под которыми пишут пакеты модуля
const (
	ComponentWorld    = "world"
	ComponentPipeline = "pipeline"
	ComponentEventBus = "eventbus"
)

// LoggerManager хранит по одному логгеру на компонент
type LoggerManager struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает общий менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = &LoggerManager{loggers: make(map[string]*Logger)}
	})
	return globalManager
}

// GetLogger возвращает логгер компонента, создавая его при первом обращении
// с настройками из Configure
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.RLock()
	logger, ok := lm.loggers[component]
	lm.mu.RUnlock()
	if ok {
		return logger, nil
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()
	if logger, ok := lm.loggers[component]; ok {
		return logger, nil
	}

	logger, err := NewLogger(component)
	if err != nil {
		return nil, fmt.Errorf("логгер компонента %s: %w", component, err)
	}
	lm.loggers[component] = logger
	return logger, nil
}

// MustGetLogger возвращает логгер компонента; если файл логов открыть не удалось,
// логгер пишет только в консоль
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	logger, err := lm.GetLogger(component)
	if err == nil {
		return logger
	}

	settingsMu.RLock()
	consoleLevel := defaultConsoleLevel
	settingsMu.RUnlock()

	fallback := &Logger{
		component:       component,
		consoleLogger:   getDefault().consoleLogger,
		minConsoleLevel: consoleLevel,
		minFileLevel:    ERROR + 1,
	}
	fallback.Warn("Файловый лог недоступен: %v", err)
	return fallback
}

// SetAllLevels меняет пороги у всех уже созданных логгеров
func (lm *LoggerManager) SetAllLevels(consoleLevel, fileLevel LogLevel) {
	lm.mu.RLock()
	defer lm.mu.RUnlock()
	for _, logger := range lm.loggers {
		logger.SetLevels(consoleLevel, fileLevel)
	}
}

// SetLogLevel меняет пороги логгера одного компонента
func (lm *LoggerManager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	lm.mu.RLock()
	logger, ok := lm.loggers[component]
	lm.mu.RUnlock()
	if !ok {
		return fmt.Errorf("логгер компонента %s не создан", component)
	}
	logger.SetLevels(consoleLevel, fileLevel)
	return nil
}

// ListComponents возвращает имена компонентов в алфавитном порядке
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.RLock()
	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	lm.mu.RUnlock()

	sort.Strings(components)
	return components
}

// CloseAll закрывает файлы всех логгеров и забывает их
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var errs []error
	for component, logger := range lm.loggers {
		if err := logger.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", component, err))
		}
	}
	lm.loggers = make(map[string]*Logger)
	return errors.Join(errs...)
}

// GetComponentLogger логгер компонента из общего менеджера
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}

func GetWorldLogger() *Logger {
	return GetComponentLogger(ComponentWorld)
}

func GetPipelineLogger() *Logger {
	return GetComponentLogger(ComponentPipeline)
}

func GetEventBusLogger() *Logger {
	return GetComponentLogger(ComponentEventBus)
}
