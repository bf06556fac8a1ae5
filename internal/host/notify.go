package host

import (
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// DesktopNotifier sends toasts through the OS notification service and
// mirrors them to the log. Delivery failures are logged and dropped; a missed
// toast is never worth an error path.
type DesktopNotifier struct {
	title string
	log   *zap.Logger
}

// NewDesktopNotifier returns a notifier titling every toast with title.
func NewDesktopNotifier(title string, log *zap.Logger) *DesktopNotifier {
	if title == "" {
		title = "menhera"
	}
	return &DesktopNotifier{title: title, log: log}
}

func (n *DesktopNotifier) Info(message string) {
	n.log.Info("toast", zap.String("level", "info"), zap.String("message", message))
	if err := beeep.Notify(n.title, message, ""); err != nil {
		n.log.Debug("desktop notification failed", zap.Error(err))
	}
}

func (n *DesktopNotifier) Warn(message string) {
	n.log.Warn("toast", zap.String("level", "warn"), zap.String("message", message))
	if err := beeep.Alert(n.title, message, ""); err != nil {
		n.log.Debug("desktop notification failed", zap.Error(err))
	}
}

func (n *DesktopNotifier) Error(message string) {
	n.log.Warn("toast", zap.String("level", "error"), zap.String("message", message))
	if err := beeep.Alert(n.title, message, ""); err != nil {
		n.log.Debug("desktop notification failed", zap.Error(err))
	}
}

// Ask shows an actionable message. The desktop backend cannot solicit a
// response, so the action is folded into the text.
func (n *DesktopNotifier) Ask(message, action string) {
	n.Info(message + " (" + action + ")")
}
