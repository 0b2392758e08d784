package game

import "context"

// Play runs turns until the card is full. The context is checked between
// turns; a turn in progress always runs to completion.
func (g *Game) Play(ctx context.Context) error {
	for !g.IsOver() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := g.PlayTurn(); err != nil {
			return err
		}
	}
	g.log.WithField("round", g.round).Info(g.Result())
	return nil
}
