package events

import "github.com/atomicstack/tmux-context-menu/internal/logging"

type MenuTracer struct{}

type PanelTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type CloseReason string

const (
	CloseReasonDismiss  CloseReason = "dismiss"
	CloseReasonActivate CloseReason = "activate"
	CloseReasonEscape   CloseReason = "escape"
	CloseReasonReopen   CloseReason = "reopen"
	CloseReasonClose    CloseReason = "close"
)

var (
	Menu    = MenuTracer{}
	Panel   = PanelTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Open(menuID string, x, y, leaves int) {
	logging.Trace("menu.open", map[string]interface{}{"menu": menuID, "x": x, "y": y, "leaves": leaves})
}

func (MenuTracer) Close(menuID string, reason CloseReason) {
	logging.Trace("menu.close", map[string]interface{}{"menu": menuID, "reason": string(reason)})
}

func (MenuTracer) SwallowOpenClick(menuID string, elapsedMS int64) {
	logging.Trace("menu.open-click", map[string]interface{}{"menu": menuID, "elapsed_ms": elapsedMS})
}

func (PanelTracer) Open(menuID, item string, depth int) {
	logging.Trace("panel.open", map[string]interface{}{"menu": menuID, "item": item, "depth": depth})
}

func (PanelTracer) Release(menuID string, depth int) {
	logging.Trace("panel.release", map[string]interface{}{"menu": menuID, "depth": depth})
}

func (PanelTracer) Placed(menuID string, depth, x, y, w, h int, direction string) {
	logging.Trace("panel.placed", map[string]interface{}{
		"menu":      menuID,
		"depth":     depth,
		"x":         x,
		"y":         y,
		"w":         w,
		"h":         h,
		"direction": direction,
	})
}

func (PanelTracer) SafeZone(menuID string, depth int, zone string) {
	logging.Trace("panel.safe-zone", map[string]interface{}{"menu": menuID, "depth": depth, "zone": zone})
}

func (PanelTracer) Defer(menuID, item string, waitMS int64) {
	logging.Trace("panel.defer", map[string]interface{}{"menu": menuID, "item": item, "wait_ms": waitMS})
}

func (PanelTracer) Retry(menuID, item string, hovered bool) {
	logging.Trace("panel.retry", map[string]interface{}{"menu": menuID, "item": item, "hovered": hovered})
}

func (ActionTracer) Invoke(menuID, path string) {
	logging.Trace("action.invoke", map[string]interface{}{"menu": menuID, "path": path})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
