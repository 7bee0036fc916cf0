// Package storage provides an optional delivery journal.
//
// Every notification the bot attempts is appended with its outcome. The
// watcher never reads this back; it exists for operator visibility
// ("what did the bot actually send, and when"). Disabled by default.
package storage
