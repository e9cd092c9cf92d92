package app

import (
	"context"

	"lifelens/domain/timeline"
	"lifelens/internal"
	"lifelens/internal/analysis"
	"lifelens/internal/config"
	"lifelens/ports"
)

// InsightService runs the full analysis pipeline: load signals, aggregate,
// merge, correlate, detect anomalies, and package evidence. Everything is
// recomputed per request; no insight artifact is persisted.
type InsightService struct {
	signals    ports.SignalSource
	checkins   ports.CheckinRepository
	summarizer ports.Summarizer
	cfg        config.AnalysisConfig
	logger     *internal.Logger
}

// InsightReport is the full dashboard payload for one computation
type InsightReport struct {
	Days        []timeline.MergedDay   `json:"days"`
	Cards       []analysis.Card        `json:"cards"`
	Anomalies   analysis.AnomalyBundle `json:"anomalies"`
	StressSplit analysis.StressSplit   `json:"stress_split"`
}

// NewInsightService creates an insight service
func NewInsightService(
	signals ports.SignalSource,
	checkins ports.CheckinRepository,
	summarizer ports.Summarizer,
	cfg config.AnalysisConfig,
	logger *internal.Logger,
) *InsightService {
	return &InsightService{
		signals:    signals,
		checkins:   checkins,
		summarizer: summarizer,
		cfg:        cfg,
		logger:     logger.WithComponent("insight"),
	}
}

// Insights computes the dashboard payload from current data
func (s *InsightService) Insights(ctx context.Context) (*InsightReport, error) {
	rows, err := s.mergedSeries(ctx)
	if err != nil {
		return nil, err
	}

	report := &InsightReport{
		Days:        rows,
		Cards:       analysis.ComputeCards(rows),
		Anomalies:   analysis.DetectAnomalies(rows, s.anomalyConfig()),
		StressSplit: analysis.ComputeStressSplit(rows),
	}
	s.logger.Debug("computed insights over %d merged days", len(rows))
	return report, nil
}

// Evidence computes the bounded payload handed to a summarizer
func (s *InsightService) Evidence(ctx context.Context) (*analysis.Evidence, error) {
	rows, err := s.mergedSeries(ctx)
	if err != nil {
		return nil, err
	}

	cards := analysis.ComputeCards(rows)
	flags := analysis.ComputeFlags(rows, s.cfg.PrimaryZ)
	ev := analysis.PackageEvidence(rows, cards, flags, analysis.PackageConfig{
		RecentDays:     s.cfg.RecentDays,
		MaxAnomalyDays: s.cfg.MaxAnomalyDays,
	})
	return &ev, nil
}

// Summarize produces the markdown narrative for the current evidence
func (s *InsightService) Summarize(ctx context.Context) (string, *analysis.Evidence, error) {
	ev, err := s.Evidence(ctx)
	if err != nil {
		return "", nil, err
	}

	md, err := s.summarizer.Summarize(ctx, *ev)
	if err != nil {
		return "", nil, err
	}
	s.logger.Info("generated summary %s (%d chars)", ev.ID, len(md))
	return md, ev, nil
}

func (s *InsightService) mergedSeries(ctx context.Context) ([]timeline.MergedDay, error) {
	bundle, err := s.signals.Load(ctx)
	if err != nil {
		return nil, err
	}

	checkins, err := s.checkins.List(ctx)
	if err != nil {
		return nil, err
	}

	daily := timeline.AggregateDaily(bundle.Transactions)
	return timeline.Merge(daily, bundle.WatchDays, bundle.VideoDays, checkins), nil
}

func (s *InsightService) anomalyConfig() analysis.AnomalyConfig {
	return analysis.AnomalyConfig{
		PrimaryZ:   s.cfg.PrimaryZ,
		SecondaryZ: s.cfg.SecondaryZ,
		TopK:       s.cfg.TopK,
	}
}
