package logger

// NewStub returns a Logger that drops everything. Panic variants still panic.
func NewStub() Logger {
	return stubLogger{}
}

type stubLogger struct{}

func (s stubLogger) With(string) Logger { return s }

func (stubLogger) Debugf(string, ...any) {}
func (stubLogger) Infof(string, ...any)  {}
func (stubLogger) Warnf(string, ...any)  {}
func (stubLogger) Errorf(string, ...any) {}

func (stubLogger) Panicf(format string, args ...any) {
	panic(struct {
		format string
		args   []any
	}{format, args})
}

func (stubLogger) Debug(error) {}
func (stubLogger) Info(error)  {}
func (stubLogger) Warn(error)  {}
func (stubLogger) Error(error) {}

func (stubLogger) Panic(err error) {
	panic(err)
}
