package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Runs commands end to end. Every outcome, including failures and panics in the resolution chain, comes back as a [Result].
type Service struct {
	Resolver *Resolver
	Logger   *slog.Logger
}

func NewService(resolver *Resolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Resolver: resolver,
		Logger:   logger.With("component", "lookup"),
	}
}

func (s *Service) Run(ctx context.Context, req Request) (res Result) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", string(req.Command)),
		attribute.String("input", req.Input),
	)

	start := time.Now()
	var err error
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("panic while resolving command", "command", req.Command, "input", req.Input, "panic", r)
			err = fmt.Errorf("panic: %v", r)
			res = &NotFoundResult{Command: req.Command, Input: req.Input, Reason: err}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome(err))
		}
		commandsTotal.WithLabelValues(string(req.Command), outcome(err)).Inc()
		commandDuration.WithLabelValues(string(req.Command)).Observe(time.Since(start).Seconds())
	}()

	res, err = s.dispatch(ctx, req)
	if err != nil {
		s.Logger.Info("command failed", "command", req.Command, "input", req.Input, "outcome", outcome(err), "err", err)
		return &NotFoundResult{Command: req.Command, Input: req.Input, Reason: err}
	}
	s.Logger.Debug("command resolved", "command", req.Command, "input", req.Input, "duration", time.Since(start))
	return res
}

func (s *Service) dispatch(ctx context.Context, req Request) (Result, error) {
	switch req.Command {
	case CommandProfile:
		profile, err := s.Resolver.FetchProfile(ctx, req.Input)
		if err != nil {
			return nil, err
		}
		return &ProfileResult{Profile: profile}, nil
	case CommandDID:
		did, err := s.Resolver.ResolveHandle(ctx, req.Input)
		if err != nil {
			return nil, err
		}
		return &IdentityResult{Input: req.Input, Resolved: did}, nil
	case CommandHandle:
		handle, err := s.Resolver.ResolveDID(ctx, req.Input)
		if err != nil {
			return nil, err
		}
		return &IdentityResult{Input: req.Input, Resolved: handle}, nil
	case CommandFeed:
		feed, err := s.Resolver.FindFeed(ctx, req.Input, req.FeedName)
		if err != nil {
			return nil, err
		}
		return &FeedResult{Feed: feed}, nil
	default:
		return nil, fmt.Errorf("unknown command: %q", req.Command)
	}
}
