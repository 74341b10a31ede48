package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-storage storage driver (memory, sqlite, postgres, mongo)
//	-d database DSN
//	-mongo-uri MongoDB connection string
//	-redis-address Redis address for the user cache
//	-skip-seed do not insert the fixture user
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-inference-url model endpoint
//	-api-key model API key
//	-warmup-interval model warm-up period (e.g., "10m")
//	-server-url mission hub URL used by the assistant client
//	-reply-delay assistant canned reply delay
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var driver string
	var databaseDSN string
	var mongoURI string
	var redisAddress string
	var skipSeed bool
	var jsonConfigPath string
	var requestTimeout time.Duration
	var inferenceURL string
	var apiKey string
	var warmupInterval time.Duration
	var serverURL string
	var replyDelay time.Duration

	fs := flag.NewFlagSet("mission-hub", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&driver, "storage", "", "Storage driver: memory, sqlite, postgres, mongo")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB URI")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.BoolVar(&skipSeed, "skip-seed", false, "Do not seed the fixture user")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&inferenceURL, "inference-url", "", "Inference model endpoint")
	fs.StringVar(&apiKey, "api-key", "", "Inference API key")
	fs.DurationVar(&warmupInterval, "warmup-interval", 0, "Model warm-up interval (e.g., 10m)")
	fs.StringVar(&serverURL, "server-url", "", "Mission hub URL for the assistant client")
	fs.DurationVar(&replyDelay, "reply-delay", 0, "Assistant canned reply delay")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Driver: driver,
			DB: DB{
				DSN: databaseDSN,
			},
			Mongo: Mongo{
				URI: mongoURI,
			},
			Cache: Cache{
				RedisAddress: redisAddress,
			},
			SkipSeed: skipSeed,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			InferenceURL: inferenceURL,
			APIKey:       apiKey,
		},
		Workers: Workers{
			WarmupInterval: warmupInterval,
		},
		Client: Client{
			ServerURL:  serverURL,
			ReplyDelay: replyDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
