package logger

import (
	"log"
	"mamacare-service/internal/app/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	logLevel, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		logLevel = zap.InfoLevel
	}

	outputPaths := []string{"stdout"}
	errorOutputPaths := []string{"stderr"}
	if internalConfig.App.IsProduction() {
		outputPaths = []string{"stdout", driverConfig.Logger.OutputFileName}
		errorOutputPaths = []string{"stderr", driverConfig.Logger.OutputErrorFileName}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      !internalConfig.App.IsProduction(),
		Encoding:         "json",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: errorOutputPaths,
	}

	zapLogger, err := cfg.Build(zap.Fields(zap.String("service", "mamacare-service")))
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger
}
