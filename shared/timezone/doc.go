// Package timezone keeps the application timezone used to stamp and render records.
//
//	timezone.Init(cfg.App.Timezone)          // once, at startup
//	now := timezone.Now()                    // current time in app timezone
//	shown := timezone.Format(t, "02 Jan 2006 15:04")
//
// Before Init is called every helper works in UTC.
// Names must be IANA timezone database names such as "UTC" or "Asia/Kolkata".
package timezone
