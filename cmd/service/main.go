package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/coachplanhq/coachplan/internal"
	"github.com/coachplanhq/coachplan/internal/config"
	"github.com/coachplanhq/coachplan/internal/logging"
	"github.com/coachplanhq/coachplan/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	seed := flag.Bool("seed", false, "insert starter data (demo coach, catalog, default session) and continue")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "coachplan-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	jwtSigningKey := os.Getenv("COACHPLAN_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		log.Errorf("jwt signing key not set. use COACHPLAN_JWT_SIGNING_KEY env var to set it")
	}

	googleClientID := os.Getenv("COACHPLAN_GOOGLE_CLIENT_ID")
	if googleClientID == "" {
		log.Errorf("google client id not set. use COACHPLAN_GOOGLE_CLIENT_ID")
	}
	googleClientSecret := os.Getenv("COACHPLAN_GOOGLE_CLIENT_SECRET")
	if googleClientSecret == "" {
		log.Errorf("google client secret not set. use COACHPLAN_GOOGLE_CLIENT_SECRET")
	}
	googleRedirectURL := os.Getenv("COACHPLAN_GOOGLE_REDIRECT_URL")
	if googleRedirectURL == "" {
		googleRedirectURL = fmt.Sprintf("http://localhost:%d/api/auth/google/callback", cfg.Port)
		log.Warnf("google redirect url not set, using default: %s", googleRedirectURL)
	}

	redisPassword := os.Getenv("COACHPLAN_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use COACHPLAN_REDIS_PASS")
	}

	otelEnabled := os.Getenv("OTEL_TRACING_ENABLED") == "true"
	if !otelEnabled {
		log.Debugln("otel tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:             cfg,
			VersionInfo:        versionInfo,
			JWTSigningKey:      jwtSigningKey,
			GoogleClientID:     googleClientID,
			GoogleClientSecret: googleClientSecret,
			GoogleRedirectURL:  googleRedirectURL,
			RedisPassword:      redisPassword,
			OtelTracingEnabled: otelEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	if *seed {
		if err := server.SeedDefaults(ctx); err != nil {
			log.Fatalf("seed defaults: %s", err)
		}
	}

	server.Serve(ctx)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
