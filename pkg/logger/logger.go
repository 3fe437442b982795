package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До Init() это логгер logrus по умолчанию (stderr, info).
var Log = logrus.New()

// Init инициализирует глобальный логгер из переменных окружения.
// Вызывается один раз при старте (main.go) и в TestMain.
func Init() {
	Log = logrus.New()

	// Уровень: LOG_LEVEL, по умолчанию "info".
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для сбора логов, "text" - для разработки.
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   logFormat != "plain",
		})
	}

	Log.SetOutput(os.Stdout)

	// Терминальный клиент занимает stdout экраном, поэтому логи можно увести в файл.
	if path := os.Getenv("GLOAMWOOD_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			Log.WithError(err).Warn("Cannot open log file, falling back to stdout.")
			return
		}
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
		Log.SetOutput(f)
	}
}

// Redirect перенаправляет вывод глобального логгера (io.Discard, буфер в тестах).
func Redirect(w io.Writer) {
	Log.SetOutput(w)
}
