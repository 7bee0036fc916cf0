// Package practicum is the client for the Practicum homework-review API.
//
// It covers the three pure pieces of the poll cycle:
//   - fetching homework statuses (Client.HomeworkStatuses)
//   - validating the response shape (CheckResponse)
//   - rendering a status message for a homework record (ParseStatus)
//
// All failures are typed sentinel errors so the watcher can route them
// without string matching. Functions here never log; the caller does.
package practicum
