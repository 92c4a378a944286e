package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ytget/sigcipher"
	"github.com/ytget/sigcipher/client"
	"github.com/ytget/sigcipher/internal/logger"
)

func main() {
	var (
		flagPage      string
		flagScript    string
		flagPlayerURL string
		flagTimeout   time.Duration
		flagRetries   int
		flagUA        string
		flagProxy     string
		flagLogLevel  string
		flagLogFormat string
		flagLogComps  string
	)

	flag.StringVar(&flagPage, "page", "", "Path to video page HTML ('-' for stdin)")
	flag.StringVar(&flagScript, "script", "", "Path to player script text (offline mode, skips fetching)")
	flag.StringVar(&flagPlayerURL, "player-url", "", "Player script URL (offline mode, diagnostic only)")
	flag.DurationVar(&flagTimeout, "http-timeout", 30*time.Second, "HTTP timeout (e.g., 30s, 1m)")
	flag.IntVar(&flagRetries, "retries", 3, "HTTP retries for transient errors")
	flag.StringVar(&flagUA, "ua", "", "Override User-Agent header")
	flag.StringVar(&flagProxy, "proxy", "", "Proxy URL (http/https/socks)")
	flag.StringVar(&flagLogLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	flag.StringVar(&flagLogFormat, "log-format", "", "Log format (text, json, color)")
	flag.StringVar(&flagLogComps, "log-components", "", "Comma-separated components to enable (app,player,cipher,client)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <cipher_blob> [<cipher_blob> ...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nResolves signature-protected media URLs from raw cipher blobs.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}

	flag.Parse()
	blobs := flag.Args()
	if flagPage == "" && flagScript == "" {
		flag.Usage()
		os.Exit(2)
	}
	if len(blobs) < 1 {
		fmt.Fprintln(os.Stderr, "No cipher blobs given")
		os.Exit(2)
	}

	setupLogging(flagLogLevel, flagLogFormat, flagLogComps)
	log := logger.WithComponent(logger.ComponentApp)

	pageHTML := ""
	if flagPage != "" {
		data, err := readInput(flagPage)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read page: %v\n", err)
			os.Exit(1)
		}
		pageHTML = data
	}

	r := sigcipher.New().WithClient(client.NewWith(client.Config{
		Timeout:   flagTimeout,
		Retries:   flagRetries,
		UserAgent: flagUA,
		ProxyURL:  flagProxy,
	}))

	sess, err := buildSession(r, pageHTML, flagScript, flagPlayerURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info("session ready", map[string]interface{}{"player_url": sess.PlayerURL()})

	exitCode := 0
	for _, blob := range blobs {
		u, err := sigcipher.ResolveFormatURL(sess, blob)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving blob: %v\n", err)
			exitCode = 1
			continue
		}
		fmt.Println(u)
	}
	os.Exit(exitCode)
}

func buildSession(r *sigcipher.Resolver, pageHTML, scriptPath, playerURL string) (sess *sigcipher.Session, err error) {
	if scriptPath == "" {
		return r.NewSession(pageHTML)
	}

	// Offline mode: script text comes from disk, nothing is fetched.
	scriptText, err := readInput(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("read script: %v", err)
	}
	if playerURL == "" && pageHTML != "" {
		if located, err := r.LocatePlayerURL(pageHTML); err == nil {
			playerURL = located
		}
	}
	return sigcipher.NewSessionFromScript(playerURL, scriptText)
}

func setupLogging(level, format, components string) {
	cfg := logger.EnvironmentConfig()
	if level != "" {
		cfg.Level = level
	}
	if format != "" {
		cfg.Format = format
	}
	if components != "" {
		cfg.Components = make(map[string]bool)
		for _, comp := range strings.Split(components, ",") {
			comp = strings.TrimSpace(comp)
			if comp != "" {
				cfg.Components[comp] = true
			}
		}
	}
	if l, err := logger.CreateLoggerFromConfig(cfg); err == nil {
		logger.SetGlobalLogger(l)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
