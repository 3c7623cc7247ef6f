// Package ui contains the Bubble Tea program that acts as the panel's control
// loop.
//
// Message flow:
//   - Every input reaches the model through the event bus. Terminal key
//     presses delivered by Bubble Tea are enqueued as Terminal events rather
//     than handled in place, so keyboard, GPIO, ticks and internal commands
//     are consumed in one arrival order.
//   - waitForEvent blocks on the bus and hands the next event to Update,
//     which applies it and re-arms the wait. Once the model stops running it
//     returns tea.Quit instead and nothing further is consumed.
//   - Terminal events are translated by the key map (input.go) into Hardware
//     or App events and enqueued again.
//
// State ownership:
//   - The model owns the Screen and the selection cursor
//     (internal/ui/state.Selection). Tabs own their own active flag and
//     collaborators; only navigation.go calls their lifecycle methods.
//
// Rendering is pure: View reads the model and the selected tab's Render
// output and never changes state.
package ui
