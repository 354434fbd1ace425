package facade

const (
	nopFactoryTypeName = "git.famapp.in/fampay-inc/logbind/pkg/facade.nopFactory"
	nopMDCTypeName     = "git.famapp.in/fampay-inc/logbind/pkg/facade.nopMDCAdapter"
)

type nopLogger struct {
	name string
}

func (l nopLogger) Name() string           { return l.name }
func (nopLogger) Debug(_ string, _ ...any) {}
func (nopLogger) Info(_ string, _ ...any)  {}
func (nopLogger) Warn(_ string, _ ...any)  {}
func (nopLogger) Error(_ string, _ ...any) {}
func (l nopLogger) With(_ ...any) Logger   { return l }

type nopFactory struct{}

func (nopFactory) Logger(name string) Logger { return nopLogger{name: name} }

// nopMDCAdapter drops every write.
type nopMDCAdapter struct{}

func (nopMDCAdapter) Put(_, _ string)                     {}
func (nopMDCAdapter) Get(_ string) (string, bool)         { return "", false }
func (nopMDCAdapter) Remove(_ string)                     {}
func (nopMDCAdapter) Clear()                              {}
func (nopMDCAdapter) CopyOfContextMap() map[string]string { return nil }
func (nopMDCAdapter) SetContextMap(_ map[string]string)   {}
