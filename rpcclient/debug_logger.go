package rpcclient

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/status-im/eth-test-rpc/config"
)

// Debug event actions emitted by a long-lived provider transport.
const (
	ActionSendPayload   = "sendRpcPayload"
	ActionReceiveResult = "receiveRpcResult"
)

// DebugEvent is a diagnostic notification emitted by a provider object when
// it sends or receives RPC traffic through its own transport, independent of
// any Client dispatch.
type DebugEvent struct {
	Action  string
	Payload interface{}
}

// Payloads normalizes the event payload into a slice so single values and
// batches are handled uniformly.
func (e DebugEvent) Payloads() []interface{} {
	switch payload := e.Payload.(type) {
	case nil:
		return nil
	case []interface{}:
		return payload
	default:
		return []interface{}{payload}
	}
}

// DebugEmitter is the subscribable debug-event stream of a long-lived
// provider object.
type DebugEmitter interface {
	OnDebug(listener func(DebugEvent))
}

// EventLogger is a passive observer of provider debug events. It never
// alters data flow and never fails the surrounding operation; payloads that
// cannot be serialized are skipped.
type EventLogger struct {
	logger *zap.Logger
}

// NewEventLogger creates an EventLogger writing to the given logger.
func NewEventLogger(logger *zap.Logger) *EventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventLogger{logger: logger}
}

// Attach registers the logger on the emitter when the diagnostic flag in
// settings is enabled. When disabled the emitter never receives the listener
// and produces no output for its whole lifetime.
func (l *EventLogger) Attach(settings config.Settings, emitter DebugEmitter) {
	if !settings.Debug {
		return
	}
	emitter.OnDebug(l.Handle)
}

// Handle logs a single debug event, one line per payload, each serialized as
// JSON text. Events with unknown actions are ignored.
func (l *EventLogger) Handle(event DebugEvent) {
	var marker string
	switch event.Action {
	case ActionSendPayload:
		marker = "rpc request"
	case ActionReceiveResult:
		marker = "rpc response"
	default:
		return
	}

	for _, payload := range event.Payloads() {
		data, err := json.Marshal(payload)
		if err != nil {
			// best effort
			continue
		}
		l.logger.Info(marker, zap.ByteString("payload", data))
	}
}
