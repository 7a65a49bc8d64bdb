// Package behaviour implements the desktop_notification entity behaviour.
//
// A DesktopNotification binds the watched properties of one entity (show,
// app_name, summary, body, icon, timeout) to a notify.Desktop: every property
// change is type-checked and applied to the notification, and a true show
// displays it. The Provider keeps one behaviour per entity id and is the
// reactive.EntityBehaviourProvider the host drives on entity lifecycle events.
//
// Handlers run synchronously on the goroutine that publishes the change.
// Updates whose value has the wrong type are dropped without error.
//
// Teardown is exactly-once: Disconnect may be called any number of times,
// from any goroutine, and an instance that is dropped without Disconnect is
// torn down by a runtime cleanup.
package behaviour
