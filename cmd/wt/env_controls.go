package main

import (
	"os"
	"strings"
)

func envFlagEnabled(name string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func testModeEnabled() bool {
	return envFlagEnabled("WT_TEST_MODE")
}

func provisioningDisabled() bool {
	return envFlagEnabled("WT_NO_PROVISION")
}

// localeFromEnv follows the usual precedence of the POSIX locale variables.
func localeFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func shellFromEnv() string {
	return strings.TrimSpace(os.Getenv("SHELL"))
}
