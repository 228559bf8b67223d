package logbuffer

import "github.com/sirupsen/logrus"

var _lg = logrus.New()

// SetLogger overrides the package-level logger used by the file-backed
// buffer to report torn or otherwise unreadable lines. I/O failures are
// returned as ErrBufferIO, not logged.
func SetLogger(lg *logrus.Logger) { _lg = lg }
