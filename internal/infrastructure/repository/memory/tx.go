package memory

import "context"

// TxRunner mimics transactional write batches for the in-memory
// repositories: it snapshots the stores touched by bulk ingestion and
// rolls them back when the batch fails partway through.
type TxRunner struct {
	players *PlayerRepository
	stats   *PlayerStatsRepository
}

func NewTxRunner(players *PlayerRepository, stats *PlayerStatsRepository) *TxRunner {
	return &TxRunner{players: players, stats: stats}
}

func (t *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	playersBefore, playersNext := t.players.snapshot()
	statsBefore, statsNext := t.stats.snapshot()

	if err := fn(ctx); err != nil {
		t.players.restore(playersBefore, playersNext)
		t.stats.restore(statsBefore, statsNext)
		return err
	}

	return nil
}
