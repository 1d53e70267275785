package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado por handlers e middlewares
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type contextKey string

const (
	CorrelationIDKey   contextKey = "correlation_id"
	correlationIDField            = "correlation_id"
)

// logger repassa os níveis para a entry do logrus e filtra os campos em desenvolvimento
type logger struct {
	*logrus.Entry
	filter fieldFilter
}

var L Logger = newLogger()

func newLogger() *logger {
	return &logger{
		Entry:  logrus.NewEntry(logrus.StandardLogger()),
		filter: fieldFilterFor(IsDevelopment()),
	}
}

// IsDevelopment considera APP_ENV vazio como desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	default:
		return false
	}
}

// Configure define o formato e o nível do logger global a partir de LOG_LEVEL.
// Nível inválido cai para info e é devolvido para quem chamou poder avisar.
func Configure(level string) (logrus.Level, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = newLogger()

	return parsed, err
}

// SetupTestLogger usa saída compacta em nível debug
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		PadLevelText: true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger()
}

// fieldFilter decide quais campos chegam à saída; nil deixa tudo passar
type fieldFilter func(key string) bool

func fieldFilterFor(development bool) fieldFilter {
	if !development {
		return nil
	}
	return isDevField
}

// devFields são os campos mantidos em desenvolvimento; o resto vira ruído no console
var devFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
}

var devFieldPrefixes = []string{"sync", "records_"}

func isDevField(key string) bool {
	if _, ok := devFields[key]; ok {
		return true
	}
	for _, prefix := range devFieldPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

func (l *logger) with(entry *logrus.Entry) *logger {
	return &logger{Entry: entry, filter: l.filter}
}

func (l *logger) WithField(key string, value any) Logger {
	if l.filter != nil && !l.filter(key) {
		return l
	}
	return l.with(l.Entry.WithField(key, value))
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if l.filter == nil || l.filter(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return l.with(l.Entry.WithFields(kept))
}

func (l *logger) WithError(err error) Logger {
	return l.with(l.Entry.WithError(err))
}

// WithContext anexa o ID de correlação, quando o contexto tiver um
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.NewString()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
