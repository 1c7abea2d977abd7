// Package ui provides the graphical user interface for Redshift Tray.
// This file contains the desktop notification system.
package ui

import (
	"os/exec"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/redshift-tray/common"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationWarning
	NotificationError
)

// Notification represents a system notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

const (
	notifyDest      = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = notifyDest + ".Notify"
	notifyTimeoutMS = 5000

	iconInfo    = "weather-clear"
	iconWarning = "dialog-warning"
	iconError   = "dialog-error"
)

// icon returns the explicit icon or one matching the type.
func (n Notification) icon() string {
	if n.Icon != "" {
		return n.Icon
	}
	switch n.Type {
	case NotificationWarning:
		return iconWarning
	case NotificationError:
		return iconError
	default:
		return iconInfo
	}
}

// urgency returns the freedesktop urgency level: 0 low, 1 normal, 2 critical.
func (n Notification) urgency() byte {
	switch n.Type {
	case NotificationError:
		return 2
	case NotificationWarning:
		return 1
	default:
		return 0
	}
}

func (n Notification) urgencyName() string {
	return [...]string{"low", "normal", "critical"}[n.urgency()]
}

// ShowNotification displays a system notification over the session bus,
// falling back to notify-send.
func ShowNotification(n Notification) {
	err := notifyDBus(n)
	if err == nil {
		return
	}
	common.LogDebug("D-Bus notification failed, trying notify-send: %v", err)

	cmd := exec.Command("notify-send",
		"--app-name="+common.AppName,
		"--icon="+n.icon(),
		"--urgency="+n.urgencyName(),
		n.Title,
		n.Message,
	)
	if err := cmd.Run(); err != nil {
		common.LogWarn("Error showing notification: %v", err)
	}
}

func notifyDBus(n Notification) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(n.urgency()),
	}
	obj := conn.Object(notifyDest, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyMethod, 0,
		common.AppName,
		uint32(0),
		n.icon(),
		n.Title,
		n.Message,
		[]string{},
		hints,
		int32(notifyTimeoutMS),
	)
	return call.Err
}

// DesktopNotifier implements common.Notifier with desktop notifications.
type DesktopNotifier struct{}

// Notify sends an informational notification.
func (DesktopNotifier) Notify(title, message string) error {
	ShowNotification(Notification{Title: title, Message: message, Type: NotificationInfo})
	return nil
}

// NotifyWithIcon sends a notification with a custom icon. The dialog-warning
// and dialog-error icons also raise the urgency.
func (DesktopNotifier) NotifyWithIcon(title, message, icon string) error {
	n := Notification{Title: title, Message: message, Type: NotificationInfo, Icon: icon}
	switch icon {
	case iconWarning:
		n.Type = NotificationWarning
	case iconError:
		n.Type = NotificationError
	}
	ShowNotification(n)
	return nil
}

var _ common.Notifier = DesktopNotifier{}
