package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/gauge/ent"
	"github.com/abhisek/gauge/ent/item"
	"github.com/abhisek/gauge/internal/irt"
	"github.com/abhisek/gauge/internal/itembank"
)

// itemRepo implements ItemRepo using the ent client.
type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) ReplaceBank(ctx context.Context, bank *itembank.Bank) error {
	for _, it := range bank.Items() {
		existing, err := r.client.Item.Query().
			Where(item.ItemID(it.ID)).
			Only(ctx)
		switch {
		case ent.IsNotFound(err):
			builder := r.client.Item.Create().
				SetItemID(it.ID).
				SetDomain(string(it.Domain)).
				SetPrompt(it.Prompt).
				SetOptions(it.Options).
				SetAnswerIndex(it.AnswerIndex).
				SetDifficulty(it.Params.Difficulty).
				SetDiscrimination(it.Params.Discrimination).
				SetGuessing(it.Params.Guessing).
				SetCalibrationSource(it.Calibration.Source).
				SetCalibrationSample(it.Calibration.SampleSize)
			if it.Calibration.CalibratedAt != nil {
				builder = builder.SetCalibratedAt(*it.Calibration.CalibratedAt)
			}
			if _, err := builder.Save(ctx); err != nil {
				return fmt.Errorf("create item %s: %w", it.ID, err)
			}
		case err != nil:
			return fmt.Errorf("query item %s: %w", it.ID, err)
		default:
			builder := existing.Update().
				SetDomain(string(it.Domain)).
				SetPrompt(it.Prompt).
				SetOptions(it.Options).
				SetAnswerIndex(it.AnswerIndex).
				SetDifficulty(it.Params.Difficulty).
				SetDiscrimination(it.Params.Discrimination).
				SetGuessing(it.Params.Guessing).
				SetCalibrationSource(it.Calibration.Source).
				SetCalibrationSample(it.Calibration.SampleSize)
			if it.Calibration.CalibratedAt != nil {
				builder = builder.SetCalibratedAt(*it.Calibration.CalibratedAt)
			}
			if _, err := builder.Save(ctx); err != nil {
				return fmt.Errorf("update item %s: %w", it.ID, err)
			}
		}
	}
	return nil
}

func (r *itemRepo) LoadBank(ctx context.Context) (*itembank.Bank, error) {
	rows, err := r.client.Item.Query().
		Order(ent.Asc(item.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	items := make([]itembank.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, entItemToItem(row))
	}
	return itembank.NewBank(items)
}

func (r *itemRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Item.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (r *itemRepo) UpdateParams(ctx context.Context, itemID string, params irt.Params, sample int, source string, at time.Time) error {
	n, err := r.client.Item.Update().
		Where(item.ItemID(itemID)).
		SetDifficulty(params.Difficulty).
		SetDiscrimination(params.Discrimination).
		SetGuessing(params.Guessing).
		SetCalibrationSource(source).
		SetCalibrationSample(sample).
		SetCalibratedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update item %s params: %w", itemID, err)
	}
	if n == 0 {
		return fmt.Errorf("update item %s params: no such item", itemID)
	}
	return nil
}

func entItemToItem(row *ent.Item) itembank.Item {
	return itembank.Item{
		ID:          row.ItemID,
		Domain:      itembank.Domain(row.Domain),
		Prompt:      row.Prompt,
		Options:     row.Options,
		AnswerIndex: row.AnswerIndex,
		Params: irt.Params{
			Discrimination: row.Discrimination,
			Difficulty:     row.Difficulty,
			Guessing:       row.Guessing,
		},
		Calibration: itembank.Calibration{
			Source:       row.CalibrationSource,
			SampleSize:   row.CalibrationSample,
			CalibratedAt: row.CalibratedAt,
		},
	}
}
