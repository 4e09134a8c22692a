// Package config reads process configuration from the environment.
package config

import (
	"os"
	"strconv"
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

func Port() string {
	if port := os.Getenv("APP_PORT"); port != "" {
		return port
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// SolverMaxFrontier overrides the solver's frontier-region cap;
// returns fallback when unset or malformed.
func SolverMaxFrontier(fallback int) int {
	return intEnv("SOLVER_MAX_FRONTIER", fallback)
}

// SolverMaxNodes overrides the solver's per-region search budget.
func SolverMaxNodes(fallback int64) int64 {
	return int64(intEnv("SOLVER_MAX_NODES", int(fallback)))
}

func intEnv(key string, fallback int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
