package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a logger that discards everything. Useful in tests and scripts.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if fields := contextFields(ctx); len(fields) > 0 {
		return l.sugar.With(fields...)
	}
	return l.sugar
}

// Info and friends accept a message followed by optional key/value pairs.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.with(ctx).Debugw(msg(arg), kv(arg)...) }
func (l *zapLogger) Info(ctx context.Context, arg ...any)  { l.with(ctx).Infow(msg(arg), kv(arg)...) }
func (l *zapLogger) Warn(ctx context.Context, arg ...any)  { l.with(ctx).Warnw(msg(arg), kv(arg)...) }
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.with(ctx).Errorw(msg(arg), kv(arg)...) }
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.with(ctx).DPanicw(msg(arg), kv(arg)...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.with(ctx).Panicw(msg(arg), kv(arg)...) }
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.with(ctx).Fatalw(msg(arg), kv(arg)...) }

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// msg joins the leading non key/value arguments, so both
// Info(ctx, "a", "k", v) and Error(ctx, "failed: ", err) read naturally.
func msg(arg []any) string {
	if len(arg) == 0 {
		return ""
	}
	if s, ok := arg[0].(string); ok {
		if len(arg) > 1 && len(arg)%2 == 0 {
			if _, isErr := arg[1].(error); isErr {
				return s + arg[1].(error).Error()
			}
		}
		return s
	}
	return zapSprint(arg...)
}

func kv(arg []any) []any {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return nil
	}
	if _, ok := arg[0].(string); !ok {
		return nil
	}
	return arg[1:]
}

func zapSprint(arg ...any) string {
	var b strings.Builder
	for i, a := range arg {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(toString(a))
	}
	return b.String()
}
