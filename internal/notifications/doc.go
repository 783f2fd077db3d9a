// Package notifications delivers cleaning run feedback via pluggable backends.
//
// The desktop backend mirrors classic file-manager behaviour: notify-send for
// run summaries and a zenity error dialog for fatal conditions. The ntfy
// backend publishes the same events to a push topic. When neither is
// configured a no-op implementation is returned, so callers never need nil
// checks. Delivery is best effort; a failed notification is reported to the
// caller for logging but must never fail the cleaning run itself.
package notifications
