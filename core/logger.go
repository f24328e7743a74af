package core

// Logger is the application-wide logging service.
// expected args fmt: error, map[string]interface{}, or an acting identity (phone number)
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
