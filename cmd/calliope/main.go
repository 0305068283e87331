package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/logrus/sentry"

	"github.com/Decentr-net/calliope/internal/health"
	"github.com/Decentr-net/calliope/internal/server"
	"github.com/Decentr-net/calliope/internal/service/impl"
	"github.com/Decentr-net/calliope/internal/storage/memory"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"10s" description:"request processing timeout, events stream is not limited"`

	Seed bool `long:"seed" env:"SEED" description:"fill store with sample posts"`

	AIIdeasLatency        time.Duration `long:"ai.ideas_latency" env:"AI_IDEAS_LATENCY" default:"1500ms" description:"simulated latency of content ideas generation"`
	AIHashtagsLatency     time.Duration `long:"ai.hashtags_latency" env:"AI_HASHTAGS_LATENCY" default:"500ms" description:"simulated latency of hashtags generation"`
	AIPostingTimesLatency time.Duration `long:"ai.posting_times_latency" env:"AI_POSTING_TIMES_LATENCY" default:"300ms" description:"simulated latency of posting times request"`
	AIAPIKey              string        `long:"ai.api_key" env:"AI_API_KEY" description:"api key of AI backend, the simulated assistant does not use it"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Fatal("failed to load .env")
	}

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Calliope"
	parser.LongDescription = "Calliope content planning service"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "calliope",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	if opts.AIAPIKey != "" {
		logrus.Warn("ai api key is set, but the simulated assistant ignores it")
	}

	var storeOpts []memory.Option
	if opts.Seed {
		storeOpts = append(storeOpts, memory.WithSeed())
	}
	s := memory.New(storeOpts...)

	ai := impl.New(impl.Config{
		IdeasLatency:        opts.AIIdeasLatency,
		HashtagsLatency:     opts.AIHashtagsLatency,
		PostingTimesLatency: opts.AIPostingTimesLatency,
	})

	r := chi.NewMux()
	r.Get("/health", health.Handler(
		5*time.Second,
		s,
		ai,
	))
	r.Handle("/metrics", promhttp.Handler())

	server.SetupRouter(s, ai, r, opts.RequestTimeout)

	// Request contexts are cancelled on shutdown to close event streams.
	baseCtx, stop := context.WithCancel(context.Background())

	srv := http.Server{
		Addr:              fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:           r,
		ReadHeaderTimeout: opts.RequestTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(stop)

	gr, _ := errgroup.WithContext(context.Background())
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		sig := <-sigs

		logrus.Infof("terminating by %s signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), opts.RequestTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		return errTerminated
	})

	logrus.WithField("addr", srv.Addr).WithField("seed", opts.Seed).Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("server unexpectedly closed")
	}
}

