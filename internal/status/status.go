// Progress reporting. The pilot never logs directly; it talks to a Sink so a
// run can surface status through the process log, Telegram, or both.

package status

import "log"

// Sink receives step-by-step progress. Alert is the alarm path.
type Sink interface {
	Update(text string)
	Alert(text string)
}

// LogSink writes status to the process log.
type LogSink struct{}

func (LogSink) Update(text string) {
	log.Printf("ℹ️ %s", text)
}

func (LogSink) Alert(text string) {
	log.Printf("🚨 %s", text)
}

// Multi fans status out to several sinks.
type Multi []Sink

func (m Multi) Update(text string) {
	for _, s := range m {
		s.Update(text)
	}
}

func (m Multi) Alert(text string) {
	for _, s := range m {
		s.Alert(text)
	}
}
