package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию.
var Log = logrus.New()

// Init настраивает глобальный логгер.
// Вызывается один раз при старте приложения в main.go (и в TestMain).
func Init() {
	// 1. Уровень логирования из переменной окружения.
	// По умолчанию - "info". Для отладки можно выставить "debug".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Форматтер.
	// "json" - для продакшена и сбора логов.
	// "text" - для удобной разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	// 3. Куда писать логи (в стандартный вывод).
	Log.SetOutput(os.Stdout)
}

// Redirect перенаправляет логи, например в файл, пока терминал занят отрисовкой.
func Redirect(w io.Writer) {
	Log.SetOutput(w)
}

// Component возвращает логгер с полем component.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
