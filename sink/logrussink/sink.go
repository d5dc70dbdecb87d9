package logrussink

import (
	"github.com/mreithub/go-index-partitioner/sink"
	"github.com/sirupsen/logrus"
)

var _ sink.Sink = (*LogrusSink)(nil)

// LogrusSink -- logs every emission before (or instead of) passing it on to Next
type LogrusSink struct {
	Next sink.Sink
	Log  logrus.FieldLogger
}

func (s LogrusSink) logger() logrus.FieldLogger {
	if s.Log != nil {
		return s.Log
	}
	return logrus.StandardLogger()
}

func (s LogrusSink) Emit(name string, patterns []string) error {
	var log = s.logger().WithField("request", name)
	if s.Next != nil {
		if err := s.Next.Emit(name, patterns); err != nil {
			log.WithError(err).Errorf("failed to emit %d index patterns", len(patterns))
			return err
		}
	}
	log.WithField("patterns", patterns).Infof("emitted %d index patterns", len(patterns))
	return nil
}
