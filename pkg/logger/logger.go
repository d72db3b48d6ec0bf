// Package logger envuelve zerolog con la configuración del servicio de
// inventario: salida legible en development, JSON en el resto de entornos,
// y el nombre del servicio estampado en cada entrada.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config opciones del logger.
type Config struct {
	Env     string // development usa consola legible; cualquier otro valor, JSON
	Level   string // trace, debug, info, warn, error (info si no se reconoce)
	Service string // nombre del servicio; se estampa como campo "servicio"
}

// Logger logger estructurado del servicio.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	return newLogger(cfg, w)
}

// newLogger separa la construcción del destino de escritura.
func newLogger(cfg Config, w io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("servicio", cfg.Service)
	}
	return &Logger{zl: ctx.Logger()}
}

// WithComponent devuelve un sublogger etiquetado con el componente emisor
// (http, postgres, reportes...).
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("componente", name).Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
