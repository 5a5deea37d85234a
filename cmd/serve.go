package cmd

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/chaucha/agent"
	"github.com/etnz/chaucha/server"
	"github.com/google/subcommands"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type serveCmd struct {
	addr      string
	resetPaid string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the profile on a local HTTP API" }
func (*serveCmd) Usage() string {
	return `chaucha serve [-addr <host:port>] [-reset-paid <cron spec>]

  Serves the profile as a JSON HTTP API until interrupted.
  See 'chaucha topic serve' for the routes.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "localhost:8080", "Address to listen on.")
	f.StringVar(&c.resetPaid, "reset-paid", server.DefaultResetPaid, "When to mark fixed expenses unpaid, as a cron spec. Empty to never.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, log, err := OpenStore()
	if err != nil {
		return fail("%v", err)
	}
	defer log.Sync()

	// The mentor is optional, without a key chat requests are refused.
	var mentor agent.Sender
	if os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != "" {
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			return fail("initializing Gemini's client: %v", err)
		}
		mentor = agent.NewMentor(agent.GeminiChats(client), store, *currency, log)
	} else {
		log.Warn("no Gemini key, the mentor is disabled")
	}

	if c.resetPaid != "" {
		jobs := cron.New()
		if err := server.ScheduleResetPaid(jobs, store, c.resetPaid, log); err != nil {
			return fail("%v", err)
		}
		jobs.Start()
		defer jobs.Stop()
	}

	srv := &http.Server{
		Addr:              c.addr,
		Handler:           server.New(store, mentor, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()

	log.Info("serving the profile", zap.String("addr", c.addr), zap.String("profile", storeLocation()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}
