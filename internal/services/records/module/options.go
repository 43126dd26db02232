package module

import "viewlog/internal/platform/config"

// Options holds configuration settings for the records module
type Options struct {
	MaxRejected int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("RECORDS_")
	return Options{
		MaxRejected: rf.MayInt("MAX_REJECTED", 100),
	}
}
