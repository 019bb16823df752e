package util

import (
	"os"
	"strconv"
	"strings"
)

func EnvGet(name string, defaultVal string) string {
	val := os.Getenv(name)
	if val == "" {
		return defaultVal
	}
	return val
}

// EnvLookup is like EnvGet but distinguishes an unset var from one explicitly set to "".
func EnvLookup(name string, defaultVal string) string {
	val, ok := os.LookupEnv(name)
	if !ok {
		return defaultVal
	}
	return val
}

func EnvGetInt(name string, defaultVal int) int {
	val := os.Getenv(name)
	if val == "" {
		return defaultVal
	}

	valParsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		panic("Failed to parse " + name)
	}
	return int(valParsed)
}

func EnvGetBool(name string, defaultVal bool) bool {
	val := os.Getenv(name)
	if val == "" {
		return defaultVal
	}

	valParsed, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		panic("Failed to parse " + name)
	}
	return valParsed
}
