package ledger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/suplock/domain/suplock"
)

func playAction(id string) suplock.Action {
	return suplock.Action{Type: suplock.ActionPlay, CardID: id}
}

func TestNewJournalHasGenesis(t *testing.T) {
	j := NewJournal()
	require.Equal(t, 1, j.Len())

	genesis, err := j.Latest()
	require.NoError(t, err)
	assert.Equal(t, 0, genesis.Index)
	assert.Equal(t, "0", genesis.PrevHash)
	assert.Equal(t, GenesisAction, genesis.Action.Type)
	assert.NotEmpty(t, genesis.Hash)
	require.NoError(t, j.Verify())
}

func TestAppendLinksBlocks(t *testing.T) {
	j := NewJournal()

	first, err := j.Append("m1", suplock.Action{Type: suplock.ActionAdvance}, Metadata{Actor: suplock.PlayerA, Phase: suplock.PhasePlay, Turn: suplock.PlayerA, TurnNumber: 1})
	require.NoError(t, err)
	second, err := j.Append("m1", playAction("iasset-stake"), Metadata{Actor: suplock.PlayerA, Rejected: "insufficient yield"})
	require.NoError(t, err)

	genesis, err := j.GetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, genesis.Hash, first.PrevHash)
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, first.Hash, second.PrevHash)
	assert.True(t, first.Accepted())
	assert.False(t, second.Accepted())

	latest, err := j.Latest()
	require.NoError(t, err)
	assert.Equal(t, second, latest)
	require.NoError(t, j.Verify())
}

func TestGetByIndexOutOfRange(t *testing.T) {
	j := NewJournal()
	_, err := j.GetByIndex(1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = j.GetByIndex(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBlocksReturnsCopy(t *testing.T) {
	j := NewJournal()
	_, err := j.Append("m1", suplock.Action{Type: suplock.ActionCombat}, Metadata{})
	require.NoError(t, err)

	blocks := j.Blocks()
	require.Len(t, blocks, 2)
	blocks[1].Action.Type = suplock.ActionNewMatch

	require.NoError(t, j.Verify())
	b, err := j.GetByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, suplock.ActionCombat, b.Action.Type)
}

func TestMatchFiltersByID(t *testing.T) {
	j := NewJournal()
	for _, id := range []string{"m1", "m2", "m1"} {
		_, err := j.Append(id, suplock.Action{Type: suplock.ActionAdvance}, Metadata{})
		require.NoError(t, err)
	}
	m1 := j.Match("m1")
	require.Len(t, m1, 2)
	assert.Equal(t, 1, m1[0].Index)
	assert.Equal(t, 3, m1[1].Index)
	assert.Empty(t, j.Match("m3"))
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(blocks []Block)
	}{
		{
			name:   "Action",
			tamper: func(blocks []Block) { blocks[1].Action.CardID = "genesis-burn" },
		},
		{
			name:   "Metadata",
			tamper: func(blocks []Block) { blocks[2].Metadata.Rejected = "" },
		},
		{
			name:   "PrevHash",
			tamper: func(blocks []Block) { blocks[2].PrevHash = blocks[0].Hash },
		},
		{
			name:   "Index",
			tamper: func(blocks []Block) { blocks[2].Index = 7 },
		},
		{
			name:   "Genesis",
			tamper: func(blocks []Block) { blocks[0].PrevHash = "1" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJournal()
			_, err := j.Append("m1", playAction("iasset-stake"), Metadata{Actor: suplock.PlayerA})
			require.NoError(t, err)
			_, err = j.Append("m1", playAction("supply-burn"), Metadata{Actor: suplock.PlayerA, Rejected: "insufficient yield"})
			require.NoError(t, err)
			require.NoError(t, j.Verify())

			tt.tamper(j.blocks)
			require.ErrorIs(t, j.Verify(), ErrInvalidBlock)
		})
	}
}

func TestVerifyEmpty(t *testing.T) {
	j := &Journal{}
	require.ErrorIs(t, j.Verify(), ErrEmptyJournal)
	_, err := j.Latest()
	require.ErrorIs(t, err, ErrEmptyJournal)
}

func TestConcurrentAppend(t *testing.T) {
	j := NewJournal()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := j.Append("m1", suplock.Action{Type: suplock.ActionAdvance}, Metadata{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 21, j.Len())
	require.NoError(t, j.Verify())
}
