package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

var levelColors = map[LogLevel]lipgloss.Color{
	DEBUG: lipgloss.Color("8"),
	INFO:  lipgloss.Color("4"),
	WARN:  lipgloss.Color("3"),
	ERROR: lipgloss.Color("1"),
	FATAL: lipgloss.Color("5"),
}

// sink is one destination for a level. The renderer is bound to the writer so
// colors are dropped when the writer is not a terminal (log files, buffers).
type sink struct {
	writer   io.Writer
	logger   *log.Logger
	renderer *lipgloss.Renderer
}

func newSink(w io.Writer) *sink {
	return &sink{
		writer:   w,
		logger:   log.New(w, "", 0),
		renderer: lipgloss.NewRenderer(w),
	}
}

// ColoredLogger writes every level to stderr unless told otherwise, leaving
// stdout to command output.
type ColoredLogger struct {
	verbose bool
	mu      sync.RWMutex
	sinks   map[LogLevel]*sink
	exit    func(code int)
}

var globalLogger *ColoredLogger

func init() {
	globalLogger = &ColoredLogger{
		sinks: make(map[LogLevel]*sink),
		exit:  os.Exit,
	}

	SetWriterForAll(os.Stderr)
}

func SetVerbose(verbose bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.verbose = verbose
}

func SetWriter(level LogLevel, writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.sinks[level] = newSink(writer)
}

func SetWriterForAll(writer io.Writer) {
	for level := DEBUG; level <= FATAL; level++ {
		SetWriter(level, writer)
	}
}

// AddWriter tees a level's output into writer as well, e.g. a --logfile.
func AddWriter(level LogLevel, writer io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()

	current := globalLogger.sinks[level]
	if current == nil {
		globalLogger.sinks[level] = newSink(writer)
		return
	}
	globalLogger.sinks[level] = newSink(io.MultiWriter(current.writer, writer))
}

func AddWriterForAll(writer io.Writer) {
	for level := DEBUG; level <= FATAL; level++ {
		AddWriter(level, writer)
	}
}

func (cl *ColoredLogger) formatMessage(s *sink, level LogLevel, message string) string {
	timestamp := time.Now().Format("06-01-02 15:04:05")

	muted := s.renderer.NewStyle().Foreground(levelColors[DEBUG])
	levelStyle := s.renderer.NewStyle().Foreground(levelColors[level]).Width(5)

	return fmt.Sprintf("%s %s %s",
		muted.Render("["+timestamp+"]"),
		levelStyle.Render(level.String()),
		message,
	)
}

func (cl *ColoredLogger) log(level LogLevel, format string, args ...interface{}) {
	cl.mu.RLock()
	if level == DEBUG && !cl.verbose {
		cl.mu.RUnlock()
		return
	}

	s := cl.sinks[level]
	exit := cl.exit
	cl.mu.RUnlock()

	message := fmt.Sprintf(format, args...)
	s.logger.Println(cl.formatMessage(s, level, message))

	if level == FATAL {
		exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	globalLogger.log(FATAL, format, args...)
}
