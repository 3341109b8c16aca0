// Package logcat forwards logrus entries to the Android log buffer.
package logcat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Tag is the log tag entries are written under.
const Tag = "Xia-DisplayAdaptor"

// Android log priorities.
const (
	prioVerbose = 2
	prioDebug   = 3
	prioInfo    = 4
	prioWarn    = 5
	prioError   = 6
	prioFatal   = 7
)

func priority(l logrus.Level) int {
	switch l {
	case logrus.TraceLevel:
		return prioVerbose
	case logrus.DebugLevel:
		return prioDebug
	case logrus.InfoLevel:
		return prioInfo
	case logrus.WarnLevel:
		return prioWarn
	case logrus.ErrorLevel:
		return prioError
	}
	return prioFatal
}

// format renders an entry as "message key=value ...", sorted by key.
func format(e *logrus.Entry) string {
	if len(e.Data) == 0 {
		return e.Message
	}

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(e.Message)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	return b.String()
}

// Hook is a logrus hook writing every entry through write.
type Hook struct {
	write func(prio int, tag, msg string)
}

var _ logrus.Hook = &Hook{}

func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *Hook) Fire(e *logrus.Entry) error {
	h.write(priority(e.Level), Tag, format(e))
	return nil
}
