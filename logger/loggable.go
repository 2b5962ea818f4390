package logger

import "github.com/embedlog/sinker/dispatch"

// Loggable equips a type with its own tagged logger. Embed it and construct
// with NewLoggable:
//
//	type Scanner struct {
//	    logger.Loggable
//	    ...
//	}
//
//	s := &Scanner{Loggable: logger.NewLoggable(hub, "scanner")}
//	s.Logger().Info("started")
type Loggable struct {
	log Logger
}

// NewLoggable creates the embeddable carrier for a component named name.
func NewLoggable(hub *dispatch.Sinker, name string) Loggable {
	return Loggable{log: New(hub, name)}
}

// Logger returns the component's tagged logger.
func (l *Loggable) Logger() Logger {
	return l.log
}
