// Package tui implements the live watch screen for luxtap.
//
// The screen polls every ambient light sensor the registry exposes and
// renders one row per sensor with its current lux value, refreshing on a
// fixed interval. It is a read-only dashboard: the only interactions are
// forcing a refresh and quitting.
//
// The model follows the bubbletea Model/Update/View architecture:
//
//	model := tui.NewModel(hub, cfg.DisplayName, 1*time.Second)
//	program := tea.NewProgram(model, tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Sensor polling happens in a tea.Cmd so the UI never blocks on the
// registry; each completed poll schedules the next tick.
package tui
