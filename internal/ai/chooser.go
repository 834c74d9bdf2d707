package ai

import (
	"context"
	"errors"
	"math/rand/v2"

	"go.uber.org/zap"
)

// ErrNoLegalMove is returned when the seat has nothing it may play.
var ErrNoLegalMove = errors.New("no legal move")

// CardChooser picks a hand index for the seat described by a View.
type CardChooser interface {
	ChooseCard(ctx context.Context, v View) (int, error)
}

// LocalChooser runs the heuristic in-process. It only fails when the hand
// holds no legal card.
type LocalChooser struct {
	Rand *rand.Rand
}

func (l LocalChooser) ChooseCard(_ context.Context, v View) (int, error) {
	i := Choose(v, l.Rand)
	if i == NoCard {
		return NoCard, ErrNoLegalMove
	}
	return i, nil
}

// FallbackChooser asks Primary first and Fallback on any error.
type FallbackChooser struct {
	Primary  CardChooser
	Fallback CardChooser
	Logger   *zap.Logger
}

func (f FallbackChooser) ChooseCard(ctx context.Context, v View) (int, error) {
	if f.Primary != nil {
		i, err := f.Primary.ChooseCard(ctx, v)
		if err == nil {
			return i, nil
		}
		if f.Logger != nil {
			f.Logger.Warn("primary chooser failed, using fallback",
				zap.Int("seat", v.Seat),
				zap.Error(err))
		}
	}
	return f.Fallback.ChooseCard(ctx, v)
}
