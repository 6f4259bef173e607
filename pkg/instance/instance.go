package instance

import "os"

// GetID returns the runtime instance identifier used in log fields. Heroku
// dynos expose DYNO; other platforms can set INSTANCE_ID.
func GetID() string {
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	if id := os.Getenv("INSTANCE_ID"); id != "" {
		return id
	}
	return "local"
}
