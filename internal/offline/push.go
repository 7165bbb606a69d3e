package offline

import (
	"context"
	"encoding/json"
	"fmt"
)

// PushPayload is the JSON body of a push message. All fields are optional.
type PushPayload struct {
	Title   string               `json:"title"`
	Body    string               `json:"body"`
	Data    map[string]any       `json:"data"`
	Actions []NotificationAction `json:"actions"`
}

// NotificationAction is a button attached to a displayed notification.
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

// Notification is what the controller asks the platform to display.
type Notification struct {
	Title   string
	Body    string
	Icon    string
	Data    map[string]any
	Actions []NotificationAction
}

// Notifier is the platform surface for notifications and window management.
type Notifier interface {
	// Show displays a notification.
	Show(ctx context.Context, n Notification) error

	// FocusOrOpen brings an existing app window to the front, or opens a
	// new one at url when none is open.
	FocusOrOpen(ctx context.Context, url string) error
}

// HandlePush displays a notification for a pushed payload. An empty payload
// is ignored entirely.
func (c *Controller) HandlePush(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	if c.notifier == nil {
		return nil
	}

	var p PushPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("invalid push payload: %w", err)
	}

	n := Notification{
		Title:   p.Title,
		Body:    p.Body,
		Icon:    "/icons/icon-192x192.png",
		Data:    p.Data,
		Actions: p.Actions,
	}
	if n.Title == "" {
		n.Title = "RecipeBox"
	}
	if n.Body == "" {
		n.Body = "RecipeBox notification"
	}

	return c.notifier.Show(ctx, n)
}

// HandleNotificationClick focuses an open app window, or opens a new one at
// the notification's target URL for the "open" action.
func (c *Controller) HandleNotificationClick(ctx context.Context, action string, data map[string]any) error {
	if c.notifier == nil {
		return nil
	}

	target := "/"
	if action == "open" {
		if u, ok := data["url"].(string); ok && u != "" {
			target = u
		}
	}
	return c.notifier.FocusOrOpen(ctx, target)
}

// HandleSync is the background-sync hook. There is nothing to sync in a
// single-device app, so the recognized tag is acknowledged and nothing else
// happens.
func (c *Controller) HandleSync(ctx context.Context, tag string) error {
	if tag != "background-sync" {
		return nil
	}
	c.log.Debug(ctx, "background sync complete", "tag", tag)
	return nil
}
