package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s")
//	-blob-driver blob storage driver (s3|file)
//	-blob-dir blob directory for the file driver
//	-redis redis address for the inference cache
//	-inference-url base URL of the inference API
//	-inference-model model name
//	-server server URL used by the client
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("nutri-track", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var blobDriver, blobDir string
	var redisAddress string
	var inferenceURL, inferenceModel string
	var serverURL string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&blobDriver, "blob-driver", "", "Blob storage driver: s3 or file")
	fs.StringVar(&blobDir, "blob-dir", "", "Directory of the file blob driver")
	fs.StringVar(&redisAddress, "redis", "", "Redis address for the inference cache")
	fs.StringVar(&inferenceURL, "inference-url", "", "Inference API base URL")
	fs.StringVar(&inferenceModel, "inference-model", "", "Inference model name")
	fs.StringVar(&serverURL, "server", "", "Server URL used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:   DB{DSN: databaseDSN},
			Blob: Blob{Driver: blobDriver, Dir: blobDir},
		},
		Cache: Cache{RedisAddress: redisAddress},
		Inference: Inference{
			BaseURL: inferenceURL,
			Model:   inferenceModel,
		},
		Adapter:      Adapter{HTTPAddress: serverURL},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The port must be positive and the host must be
// "localhost" or a valid IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
