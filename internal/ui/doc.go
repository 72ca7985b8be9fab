// Package ui contains the Bubble Tea program that hosts the context menu.
// The Model type focuses on message orchestration, while dedicated helpers own
// mouse input, keyboard navigation, rendering and backend updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (input.go for the mouse, navigation.go for keys).
//   - A right-button press (or ctrl plus the primary button) opens a menu at
//     the pointer. Motion events become PointerMove calls on the open menu and
//     releases become clicks.
//   - Deferred submenu opens requested by a safe zone are scheduled with
//     tea.Tick and come back as retryMsg values tagged with the menu ID, so a
//     timer from a closed menu never touches a newer one.
//
// State ownership:
//   - Panels, items, the safe zone and the open-click debounce live in
//     internal/ui/state.Root. The Model only holds the current Root and the
//     loaded definition.
//   - Activated actions run through the internal/ui/command bus. Its DoneMsg
//     ends the program and the selection is reported by Model.Selection.
//
// Backend interactions:
//   - A backend.Watcher polls the definition file; reloads arrive as
//     backendEventMsg values. A reload that lands while a menu is open is held
//     until the next open so visible panels never change under the pointer.
package ui
