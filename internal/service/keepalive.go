package service

import (
	"context"
	"fmt"
	"trading-signal-bot/config"
	"trading-signal-bot/pkg/httpclient"
	"trading-signal-bot/pkg/logger"

	"github.com/robfig/cron/v3"
)

// KeepAliveService periodically pings the externally reachable host so the
// hosting platform does not idle the process. Failures only surface in logs;
// the next tick is the retry.
type KeepAliveService struct {
	cfg        *config.Config
	log        *logger.Logger
	httpClient httpclient.HTTPClient
	cron       *cron.Cron
}

func NewKeepAliveService(cfg *config.Config, log *logger.Logger) *KeepAliveService {
	return &KeepAliveService{
		cfg:        cfg,
		log:        log,
		httpClient: httpclient.New(cfg.KeepAlive.URL, cfg.KeepAlive.Timeout, ""),
		cron:       cron.New(),
	}
}

func (s *KeepAliveService) Start(ctx context.Context) error {
	if s.cfg.KeepAlive.URL == "" {
		s.log.Info("Keep-alive ping is disabled")
		return nil
	}

	spec := fmt.Sprintf("@every %s", s.cfg.KeepAlive.Interval)
	_, err := s.cron.AddFunc(spec, func() {
		s.ping(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule keep-alive ping: %w", err)
	}

	s.log.Info("Starting keep-alive pinger",
		logger.StringField("url", s.cfg.KeepAlive.URL),
		logger.StringField("interval", s.cfg.KeepAlive.Interval.String()),
	)
	s.cron.Start()
	return nil
}

func (s *KeepAliveService) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info("Keep-alive pinger stopped")
}

func (s *KeepAliveService) ping(ctx context.Context) {
	resp, err := s.httpClient.Get(ctx, "", nil, nil, nil)
	if err != nil {
		s.log.WarnContext(ctx, "Keep-alive ping failed", logger.ErrorField(err))
		return
	}
	s.log.DebugContext(ctx, "Keep-alive ping ok", logger.IntField("status_code", resp.StatusCode))
}
