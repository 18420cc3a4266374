package commands

import (
	"context"
	"log/slog"

	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/usecase/shared"
)

const defaultSweepBatch = 100

type SweepReport struct {
	Candidates int
	Claimed    int
	Failed     int
}

// CompletionSweeper completes deals whose threshold was reached but whose
// completion attempt was lost after commit.
type CompletionSweeper struct {
	candidates shared.CompletionCandidateReader
	completer  Completer
	clock      clock.Clock
	batch      int32
}

func NewCompletionSweeper(candidates shared.CompletionCandidateReader, completer Completer, clk clock.Clock, batch int32) *CompletionSweeper {
	if batch <= 0 {
		batch = defaultSweepBatch
	}
	return &CompletionSweeper{candidates: candidates, completer: completer, clock: clk, batch: batch}
}

func (s *CompletionSweeper) Sweep(ctx context.Context) (SweepReport, error) {
	ids, err := s.candidates.ListCompletionCandidates(ctx, s.clock.Now(), s.batch)
	if err != nil {
		return SweepReport{}, err
	}

	report := SweepReport{Candidates: len(ids)}
	for _, id := range ids {
		outcome, err := s.completer.TryComplete(ctx, id)
		if err != nil {
			report.Failed++
			slog.Error("sweeper completion failed", "deal_id", id.String(), "error", err.Error())
			continue
		}
		if outcome.Claimed {
			report.Claimed++
		}
	}

	if report.Candidates > 0 {
		slog.Info("completion sweep finished",
			"candidates", report.Candidates,
			"claimed", report.Claimed,
			"failed", report.Failed)
	}
	return report, nil
}
