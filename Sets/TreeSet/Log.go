package TreeSet

import "github.com/sirupsen/logrus"

// Log is used by TreeSet to report erase relinking at debug level and failed
// structure checks at warn level. Callers can change its level, output and
// formatter through the logrus API. Defaults to WarnLevel on stderr.
var Log = newLog()

func newLog() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

func debugEnabled() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}
