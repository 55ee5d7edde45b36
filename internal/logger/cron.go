package logger

// CronLogger adapts Logger to robfig/cron's Logger interface.
type CronLogger struct {
	log *Logger
}

// NewCronLogger wraps l for use with cron.WithLogger.
func NewCronLogger(l *Logger) CronLogger {
	return CronLogger{log: l}
}

// Info logs routine scheduler messages at debug level; cron is chatty.
func (c CronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debugw("cron_"+msg, keysAndValues...)
}

// Error logs scheduler failures, including recovered job panics.
func (c CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Errorw("cron_"+msg, append([]interface{}{"err", err}, keysAndValues...)...)
}
