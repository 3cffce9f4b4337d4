// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time and calendar date in the app timezone:
//     now := timezone.Now()
//     today := timezone.Today()                // civil.Date
//
//  2. Getting the timezone location:
//     loc := timezone.GetLocation()
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
package timezone
