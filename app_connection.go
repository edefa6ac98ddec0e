package main

import (
	"context"

	"riftlens/internal/apperr"
	"riftlens/internal/riot"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// keyCheckPlatform is the platform whose status endpoint is used to test the key
const keyCheckPlatform = "NA1"

// KeyStatus is the API key state shown in the status bar
type KeyStatus struct {
	Checked bool   `json:"checked"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// checkAPIKey validates the configured key once at startup and emits the result.
// Searches still run with an invalid key; their errors are reported normally.
func (a *App) checkAPIKey() {
	status := a.validateKey(a.ctx)
	a.setKeyStatus(status)

	runtime.EventsEmit(a.ctx, "api:status", status)

	event := a.logger.Info()
	if !status.Valid {
		event = a.logger.Warn()
	}
	event.Str("api_key", a.cfg.MaskedKey()).Str("result", status.Message).Msg("API key checked")
}

func (a *App) validateKey(ctx context.Context) KeyStatus {
	if err := a.cfg.Validate(); err != nil {
		return KeyStatus{Checked: true, Message: apperr.UserMessage(err)}
	}

	host, err := riot.PlatformHost(keyCheckPlatform)
	if err != nil {
		return KeyStatus{Message: err.Error()}
	}

	valid, err := a.client.ValidateKey(ctx, host)
	if err != nil {
		return KeyStatus{Message: "Could not verify the API key: " + apperr.UserMessage(err)}
	}
	if !valid {
		return KeyStatus{Checked: true, Message: "API key rejected (expired or invalid)."}
	}
	return KeyStatus{Checked: true, Valid: true, Message: "API key OK"}
}

func (a *App) setKeyStatus(s KeyStatus) {
	a.statusMu.Lock()
	defer a.statusMu.Unlock()
	a.keyStatus = s
}

// GetConnectionStatus returns the last API key check
func (a *App) GetConnectionStatus() KeyStatus {
	a.statusMu.RLock()
	defer a.statusMu.RUnlock()
	return a.keyStatus
}
