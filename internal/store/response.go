package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gauge/ent"
	"github.com/abhisek/gauge/ent/diagnosticsession"
	"github.com/abhisek/gauge/ent/responseevent"
	"github.com/abhisek/gauge/internal/calibration"
)

// responseRepo implements ResponseRepo backed by ent and the global
// sequence counter.
type responseRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *responseRepo) Append(ctx context.Context, rec *ResponseRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(rec.SessionID).
		SetItemID(rec.ItemID).
		SetDomain(rec.Domain).
		SetSelectedOption(rec.SelectedOption).
		SetCorrect(rec.Correct).
		SetResponseMs(rec.ResponseMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}

	rec.Sequence = seqNum
	return nil
}

func (r *responseRepo) BySession(ctx context.Context, sessionID string) ([]ResponseRecord, error) {
	rows, err := r.client.ResponseEvent.Query().
		Where(responseevent.SessionID(sessionID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session responses: %w", err)
	}

	records := make([]ResponseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, ResponseRecord{
			Sequence:       row.Sequence,
			Timestamp:      row.Timestamp,
			SessionID:      row.SessionID,
			ItemID:         row.ItemID,
			Domain:         row.Domain,
			SelectedOption: row.SelectedOption,
			Correct:        row.Correct,
			ResponseMs:     row.ResponseMs,
		})
	}
	return records, nil
}

func (r *responseRepo) CalibrationPoints(ctx context.Context, itemID string) ([]calibration.ResponsePoint, error) {
	rows, err := r.client.ResponseEvent.Query().
		Where(responseevent.ItemID(itemID)).
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query item responses: %w", err)
	}

	// Final abilities come only from completed sessions: an aborted run's
	// theta is too noisy to calibrate against.
	thetas := make(map[string]float64)
	sessions, err := r.client.DiagnosticSession.Query().
		Where(diagnosticsession.Status("completed")).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed sessions: %w", err)
	}
	for _, s := range sessions {
		thetas[s.SessionID] = s.Theta
	}

	var points []calibration.ResponsePoint
	for _, row := range rows {
		theta, ok := thetas[row.SessionID]
		if !ok {
			continue
		}
		points = append(points, calibration.ResponsePoint{Correct: row.Correct, Theta: theta})
	}
	return points, nil
}
