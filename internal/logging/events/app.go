package events

import "github.com/atomicstack/tmux-context-menu/internal/logging"

type AppTracer struct{}

type DefinitionTracer struct{}

var (
	App        = AppTracer{}
	Definition = DefinitionTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(path, command string) {
	logging.Trace("app.exit", map[string]interface{}{"path": path, "command": command})
}

func (DefinitionTracer) Load(path string, items int) {
	logging.Trace("definition.load", map[string]interface{}{"path": path, "items": items})
}

func (DefinitionTracer) Reload(path string, items int) {
	logging.Trace("definition.reload", map[string]interface{}{"path": path, "items": items})
}

func (DefinitionTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("definition.error", map[string]interface{}{"path": path, "error": err.Error()})
}
