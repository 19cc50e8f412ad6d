package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/gauge/ent"
	"github.com/abhisek/gauge/ent/diagnosticsession"
	entschema "github.com/abhisek/gauge/ent/schema"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) CreateActive(ctx context.Context, rec *SessionRecord) error {
	_, err := r.client.DiagnosticSession.Create().
		SetSessionID(rec.SessionID).
		SetOwnerID(rec.OwnerID).
		SetDiagnosticType(rec.DiagnosticType).
		SetMaxQuestions(rec.MaxQuestions).
		SetQuotas(rec.Quotas).
		SetFocusDomain(rec.FocusDomain).
		SetStatus(rec.Status).
		SetTheta(rec.Theta).
		SetSe(rec.SE).
		SetDomainAbilities(domainAbilitiesToEnt(rec.DomainAbilities)).
		SetAdministered(rec.Administered).
		SetPendingItemID(rec.PendingItemID).
		SetQuestionsAnswered(rec.QuestionsAnswered).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetTerminationReason(rec.TerminationReason).
		SetStartedAt(rec.StartedAt).
		SetLastActivity(rec.LastActivity).
		Save(ctx)
	if err != nil {
		// The partial unique index on (owner_id) WHERE status='active'
		// rejects a concurrent duplicate start.
		if ent.IsConstraintError(err) {
			return ErrDuplicateActive
		}
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*SessionRecord, error) {
	row, err := r.client.DiagnosticSession.Query().
		Where(diagnosticsession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session %s: %w", sessionID, err)
	}
	return entSessionToRecord(row), nil
}

func (r *sessionRepo) ActiveForOwner(ctx context.Context, ownerID string) (*SessionRecord, error) {
	row, err := r.client.DiagnosticSession.Query().
		Where(
			diagnosticsession.OwnerID(ownerID),
			diagnosticsession.Status("active"),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query active session for %s: %w", ownerID, err)
	}
	return entSessionToRecord(row), nil
}

func (r *sessionRepo) Update(ctx context.Context, rec *SessionRecord) error {
	builder := r.client.DiagnosticSession.Update().
		Where(diagnosticsession.SessionID(rec.SessionID)).
		SetStatus(rec.Status).
		SetTheta(rec.Theta).
		SetSe(rec.SE).
		SetDomainAbilities(domainAbilitiesToEnt(rec.DomainAbilities)).
		SetAdministered(rec.Administered).
		SetPendingItemID(rec.PendingItemID).
		SetQuestionsAnswered(rec.QuestionsAnswered).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetTerminationReason(rec.TerminationReason).
		SetLastActivity(rec.LastActivity)
	if rec.CompletedAt != nil {
		builder = builder.SetCompletedAt(*rec.CompletedAt)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update session %s: %w", rec.SessionID, err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) AbandonIdle(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.client.DiagnosticSession.Update().
		Where(
			diagnosticsession.Status("active"),
			diagnosticsession.LastActivityLT(cutoff),
		).
		SetStatus("abandoned").
		SetTerminationReason("abandoned").
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("abandon idle sessions: %w", err)
	}
	return n, nil
}

func domainAbilitiesToEnt(m map[string]DomainAbilityRecord) map[string]entschema.DomainAbilityData {
	out := make(map[string]entschema.DomainAbilityData, len(m))
	for domain, rec := range m {
		out[domain] = entschema.DomainAbilityData{
			Theta:        rec.Theta,
			SE:           rec.SE,
			Administered: rec.Administered,
			Correct:      rec.Correct,
			NoData:       rec.NoData,
		}
	}
	return out
}

func entSessionToRecord(row *ent.DiagnosticSession) *SessionRecord {
	abilities := make(map[string]DomainAbilityRecord, len(row.DomainAbilities))
	for domain, data := range row.DomainAbilities {
		abilities[domain] = DomainAbilityRecord{
			Theta:        data.Theta,
			SE:           data.SE,
			Administered: data.Administered,
			Correct:      data.Correct,
			NoData:       data.NoData,
		}
	}

	return &SessionRecord{
		SessionID:         row.SessionID,
		OwnerID:           row.OwnerID,
		DiagnosticType:    row.DiagnosticType,
		MaxQuestions:      row.MaxQuestions,
		Quotas:            row.Quotas,
		FocusDomain:       row.FocusDomain,
		Status:            row.Status,
		Theta:             row.Theta,
		SE:                row.Se,
		DomainAbilities:   abilities,
		Administered:      row.Administered,
		PendingItemID:     row.PendingItemID,
		QuestionsAnswered: row.QuestionsAnswered,
		CorrectAnswers:    row.CorrectAnswers,
		TerminationReason: row.TerminationReason,
		StartedAt:         row.StartedAt,
		CompletedAt:       row.CompletedAt,
		LastActivity:      row.LastActivity,
	}
}
