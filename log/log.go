package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger *zap.Logger
	mu     sync.RWMutex
)

func init() {
	logger = newLogger(false)
}

func newLogger(dev bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = level
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// 设置日志级别：debug, info, warn, error
func SetLevel(lv string) (err error) {
	var l zapcore.Level
	if err = l.UnmarshalText([]byte(lv)); err != nil {
		return
	}
	level.SetLevel(l)
	return
}

// 切换为开发模式（控制台格式输出）
func UseDevelopment() {
	mu.Lock()
	logger = newLogger(true)
	mu.Unlock()
}

// 替换全局logger，测试中可传入zaptest/observer生成的logger
func ReplaceLogger(l *zap.Logger) (restore func()) {
	mu.Lock()
	prev := logger
	logger = l.WithOptions(zap.AddCallerSkip(1))
	mu.Unlock()
	return func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	}
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, fields ...zap.Field) {
	get().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	get().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	get().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	get().Error(msg, fields...)
}

func Sync() error {
	return get().Sync()
}
