package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bluesky-social/skycord/atproto/atclient"
	"github.com/bluesky-social/skycord/atproto/identity"
	"github.com/bluesky-social/skycord/lookup"
	"github.com/bluesky-social/skycord/pkg/robusthttp"
	"github.com/bluesky-social/skycord/reply"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "skycord",
		Usage:   "chat bot for Bluesky profile, identity, and feed lookups",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "appview-host",
			Usage:   "method, hostname, and port of AppView (XRPC queries)",
			Value:   "https://public.api.bsky.app",
			EnvVars: []string{"SKYCORD_APPVIEW_HOST", "ATP_APPVIEW_HOST"},
		},
		&cli.StringFlag{
			Name:    "plc-host",
			Usage:   "method, hostname, and port of PLC registry",
			Value:   identity.DefaultPLCURL,
			EnvVars: []string{"SKYCORD_PLC_HOST", "ATP_PLC_HOST"},
		},
		&cli.StringFlag{
			Name:    "web-base-url",
			Usage:   "web app used for profile and feed links in replies",
			Value:   reply.DefaultWebBaseURL,
			EnvVars: []string{"SKYCORD_WEB_BASE_URL"},
		},
		&cli.DurationFlag{
			Name:    "http-timeout",
			Usage:   "timeout for each outbound HTTP request",
			Value:   robusthttp.DefaultTimeout,
			EnvVars: []string{"SKYCORD_HTTP_TIMEOUT"},
		},
		&cli.IntFlag{
			Name:    "http-retries",
			Usage:   "retries for failed outbound HTTP requests (0 reports failures immediately)",
			Value:   0,
			EnvVars: []string{"SKYCORD_HTTP_RETRIES"},
		},
		&cli.StringFlag{
			Name:    "user-agent",
			Usage:   "User-Agent header for outbound requests",
			Value:   "skycord/" + versioninfo.Short(),
			EnvVars: []string{"SKYCORD_USER_AGENT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "info",
			EnvVars: []string{"SKYCORD_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
		},
	}

	app.Commands = []*cli.Command{
		runCmd,
		&cli.Command{
			Name:      "profile",
			Usage:     "look up a profile and print the reply",
			ArgsUsage: "<actor>",
			Action:    runLookupCmd(lookup.CommandProfile),
		},
		&cli.Command{
			Name:      "did",
			Usage:     "resolve a handle to its DID and print the reply",
			ArgsUsage: "<handle>",
			Action:    runLookupCmd(lookup.CommandDID),
		},
		&cli.Command{
			Name:      "handle",
			Usage:     "resolve a DID to its handle and print the reply",
			ArgsUsage: "<did>",
			Action:    runLookupCmd(lookup.CommandHandle),
		},
		&cli.Command{
			Name:      "feed",
			Usage:     "find a feed generator by name or record key and print the reply",
			ArgsUsage: "<actor> <feed>",
			Action:    runLookupCmd(lookup.CommandFeed),
		},
	}

	return app.Run(args)
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "connect to Discord and serve slash commands",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "discord-token",
			Usage:    "bot token for the Discord gateway and REST API",
			Required: true,
			EnvVars:  []string{"DISCORD_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "discord-app-id",
			Usage:   "Discord application ID for command registration (defaults to the bot user ID)",
			EnvVars: []string{"DISCORD_CLIENT_ID", "CLIENT_ID"},
		},
		&cli.StringFlag{
			Name:    "discord-guild-id",
			Usage:   "register commands in a single guild instead of globally",
			EnvVars: []string{"DISCORD_GUILD_ID"},
		},
		&cli.BoolFlag{
			Name:    "skip-register",
			Usage:   "do not overwrite slash command definitions at startup",
			EnvVars: []string{"SKYCORD_SKIP_REGISTER"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics and health checks",
			Value:   ":3989",
			EnvVars: []string{"SKYCORD_METRICS_LISTEN"},
		},
	},
	Action: runBot,
}

func runBot(cctx *cli.Context) error {
	logger := configLogger(cctx, os.Stdout)
	shutdownOTEL := configOTEL("skycord")
	defer shutdownOTEL()

	svc, formatter := configService(cctx, logger)

	bot, err := NewBot(svc, formatter, BotConfig{
		Token:        cctx.String("discord-token"),
		AppID:        cctx.String("discord-app-id"),
		GuildID:      cctx.String("discord-guild-id"),
		SkipRegister: cctx.Bool("skip-register"),
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	admin := NewAdminServer(cctx.String("metrics-listen"), logger)

	ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return admin.Run(ctx)
	})
	g.Go(func() error {
		return bot.Run(ctx)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("graceful shutdown complete")
	return nil
}

// Returns an action which runs a single command against the network and prints the formatted reply.
func runLookupCmd(cmd lookup.Command) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		args := cctx.Args()
		req := lookup.Request{Command: cmd, Input: args.First()}
		want := 1
		if cmd == lookup.CommandFeed {
			req.FeedName = args.Get(1)
			want = 2
		}
		if args.Len() != want || req.Input == "" || (cmd == lookup.CommandFeed && req.FeedName == "") {
			return fmt.Errorf("expected %d argument(s): %s", want, cctx.Command.ArgsUsage)
		}

		logger := configLogger(cctx, os.Stderr)
		svc, formatter := configService(cctx, logger)

		msg := formatter.Format(svc.Run(cctx.Context, req))
		fmt.Fprintln(cctx.App.Writer, msg.Text())
		return nil
	}
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// Builds the lookup service and reply formatter from global flags. A single HTTP client is shared by XRPC and DID document fetches.
func configService(cctx *cli.Context, logger *slog.Logger) (*lookup.Service, *reply.Formatter) {
	httpClient := robusthttp.NewClient(
		robusthttp.WithTimeout(cctx.Duration("http-timeout")),
		robusthttp.WithMaxRetries(cctx.Int("http-retries")),
		robusthttp.WithLogger(logger),
	)

	xrpcc := atclient.NewAPIClient(cctx.String("appview-host"))
	xrpcc.Client = httpClient
	xrpcc.Headers.Set("User-Agent", cctx.String("user-agent"))

	docs := identity.DocResolver{
		PLCURL:     cctx.String("plc-host"),
		HTTPClient: httpClient,
		Logger:     logger.With("component", "identity"),
	}

	resolver := &lookup.Resolver{
		Client: xrpcc,
		Docs:   &docs,
		Logger: logger.With("component", "lookup"),
	}
	return lookup.NewService(resolver, logger), &reply.Formatter{WebBaseURL: cctx.String("web-base-url")}
}
