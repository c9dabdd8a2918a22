package commons

import "time"

const (
	DefaultLogFile       = "app.log"
	DefaultMaxEntries    = 10
	AllowedRPS           = 10
	MirrorSourceDefault  = "logkeep"
	MirrorTimeoutDefault = 5 * time.Second
	ServerIdleTimeout    = time.Minute
	ServerReadTimeout    = 10 * time.Second
	ServerWriteTimeout   = 30 * time.Second
)
