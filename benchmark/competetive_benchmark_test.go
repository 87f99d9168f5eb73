package benchmark

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nilsbrandt/corelog/appender"
	"github.com/nilsbrandt/corelog/appender/console"
	"github.com/nilsbrandt/corelog/core"
	"github.com/nilsbrandt/corelog/renderer"
	"github.com/nilsbrandt/corelog/writer"
)

// newCorelogWriter returns a LogWriter with app as its only appender,
// at the given minimum level.
func newCorelogWriter(b *testing.B, app appender.Appender, level core.Level) *writer.LogWriter {
	lw, err := writer.BuildLogWriter([]appender.Appender{app}, nil, []core.Level{level})
	if err != nil {
		b.Fatal(err)
	}
	return lw
}

func newZapLogger() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(c)
}

func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// BenchmarkCompetitive_InfoNoFields compares the cost of logging one
// plain Info record end to end (producer through dispatcher, adapter
// queue, worker, renderer) against the equivalent call on a handful of
// widely used loggers. corelog has no structured-field API (spec's
// non-goal), so every competitor here is exercised message-only too.
func BenchmarkCompetitive_InfoNoFields(b *testing.B) {
	b.Run("corelog", func(b *testing.B) {
		app := console.New(console.Config{Writer: io.Discard, Renderer: renderer.NewJSON("")})
		lw := newCorelogWriter(b, app, core.Debug)
		defer lw.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			lw.Log(core.Info, "info message", "")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// BenchmarkCompetitive_DisabledLevel measures the overhead of rejecting
// a below-threshold record before it ever reaches a sink.
func BenchmarkCompetitive_DisabledLevel(b *testing.B) {
	b.Run("corelog", func(b *testing.B) {
		app := console.New(console.Config{Writer: io.Discard, Renderer: renderer.NewJSON("")})
		lw := newCorelogWriter(b, app, core.Error)
		defer lw.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			lw.Log(core.Debug, "should be skipped", "")
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		c := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
		l := zap.New(c)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("should be skipped")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("should be skipped")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := logrus.New()
		l.SetOutput(io.Discard)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("should be skipped")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Msg("should be skipped")
		}
	})
}

// BenchmarkCompetitive_Parallel measures throughput under contention,
// which for corelog means many producer goroutines feeding the single
// main queue and its one dispatcher goroutine.
func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("corelog", func(b *testing.B) {
		app := console.New(console.Config{Writer: io.Discard, Renderer: renderer.NewJSON("")})
		lw := newCorelogWriter(b, app, core.Debug)
		defer lw.Close()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				lw.Log(core.Info, "parallel log", "")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel log")
			}
		})
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel log")
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel log")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Msg("parallel log")
			}
		})
	})
}

// BenchmarkCompetitive_FileOutput compares real file I/O under equal
// conditions, one record at a time.
func BenchmarkCompetitive_FileOutput(b *testing.B) {
	b.Run("corelog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-corelog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		app := console.New(console.Config{Writer: f, Renderer: renderer.NewJSON("")})
		lw := newCorelogWriter(b, app, core.Info)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			lw.Log(core.Info, "file log", "")
		}
		b.StopTimer()
		lw.Close()
		f.Close()
	})

	b.Run("zap", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zap-*.log")
		if err != nil {
			b.Fatal(err)
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		c := zapcore.NewCore(enc, zapcore.AddSync(f), zap.InfoLevel)
		l := zap.New(c)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		l.Sync()
		f.Close()
	})

	b.Run("slog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-slog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("logrus", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-logrus-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := logrus.New()
		l.SetOutput(f)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("zerolog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zerolog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("file log")
		}
		b.StopTimer()
		f.Close()
	})
}
