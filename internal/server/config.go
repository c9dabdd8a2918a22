package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rmachado/logkeep/internal/commons"
)

const (
	CollectorKindHTTP  = "http"
	CollectorKindRedis = "redis"
	CollectorKindNone  = "none"
)

type Config struct {
	ServerPort       uint16
	LogDir           string
	CollectorKind    string
	CollectorHost    string
	CollectorPort    uint16
	CollectorTimeout time.Duration
	CollectorSource  string
	CollectorTags    map[string]string
	RedisAddr        string
	RedisPass        string
	DiagDB           string
}

func LoadConfig() (Config, error) {
	var config Config
	var errors []string

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		errors = append(errors, "SERVER_PORT is not set")
	} else {
		parsedServerPort, err := strconv.ParseUint(serverPort, 10, 16)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid SERVER_PORT: %s", err))
		} else {
			config.ServerPort = uint16(parsedServerPort)
		}
	}

	config.LogDir = os.Getenv("LOG_DIR")
	if config.LogDir == "" {
		errors = append(errors, "LOG_DIR is not set")
	}

	config.CollectorKind = os.Getenv("COLLECTOR_KIND")
	switch config.CollectorKind {
	case "":
		errors = append(errors, "COLLECTOR_KIND is not set")
	case CollectorKindHTTP:
		config.CollectorHost = os.Getenv("COLLECTOR_HOST")
		if config.CollectorHost == "" {
			errors = append(errors, "COLLECTOR_HOST is not set")
		}
		collectorPort := os.Getenv("COLLECTOR_PORT")
		if collectorPort == "" {
			errors = append(errors, "COLLECTOR_PORT is not set")
		} else {
			parsedCollectorPort, err := strconv.ParseUint(collectorPort, 10, 16)
			if err != nil {
				errors = append(errors, fmt.Sprintf("invalid COLLECTOR_PORT: %s", err))
			} else {
				config.CollectorPort = uint16(parsedCollectorPort)
			}
		}
	case CollectorKindRedis:
		config.RedisAddr = os.Getenv("REDIS_ADDR")
		if config.RedisAddr == "" {
			errors = append(errors, "REDIS_ADDR is not set")
		}
		config.RedisPass = os.Getenv("REDIS_PASSWORD")
	case CollectorKindNone:
	default:
		errors = append(errors, fmt.Sprintf("invalid COLLECTOR_KIND: %s, must be http, redis or none", config.CollectorKind))
	}

	config.CollectorTimeout = commons.MirrorTimeoutDefault
	if timeout := os.Getenv("COLLECTOR_TIMEOUT"); timeout != "" {
		parsedTimeout, err := strconv.Atoi(timeout)
		if err != nil || parsedTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("invalid COLLECTOR_TIMEOUT: %s", timeout))
		} else {
			config.CollectorTimeout = time.Duration(parsedTimeout) * time.Second
		}
	}

	config.CollectorSource = os.Getenv("COLLECTOR_SOURCE")
	if config.CollectorSource == "" {
		config.CollectorSource = commons.MirrorSourceDefault
	}

	if tags := os.Getenv("COLLECTOR_TAGS"); tags != "" {
		parsedTags, err := parseTags(tags)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid COLLECTOR_TAGS: %s", err))
		} else {
			config.CollectorTags = parsedTags
		}
	}

	config.DiagDB = os.Getenv("DIAG_DB")

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Println("Configuration Error:", err)
		}
		return Config{}, fmt.Errorf("configuration errors occurred")
	}

	return config, nil
}

func parseTags(raw string) (map[string]string, error) {
	tags := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("expected k=v pair, got %q", pair)
		}
		tags[key] = value
	}
	return tags, nil
}
