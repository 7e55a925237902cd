package leaderboard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	tests := []struct {
		name     string
		scores   []uint32
		topK     uint32
		wantRank uint32
		wantTop  []uint32
	}{
		{
			name:     "first score ranks first",
			scores:   []uint32{10},
			topK:     10,
			wantRank: 0,
			wantTop:  []uint32{10},
		},
		{
			name:     "lower score ranks after higher ones",
			scores:   []uint32{50, 30, 20},
			topK:     10,
			wantRank: 2,
			wantTop:  []uint32{50, 30, 20},
		},
		{
			name:     "ties share the best rank",
			scores:   []uint32{50, 30, 50},
			topK:     2,
			wantRank: 0,
			wantTop:  []uint32{50, 50},
		},
		{
			name:     "zero topk returns no scores",
			scores:   []uint32{5, 7},
			topK:     0,
			wantRank: 0,
			wantTop:  []uint32{},
		},
		{
			name:     "zero score",
			scores:   []uint32{3, 0, 0},
			topK:     5,
			wantRank: 1,
			wantTop:  []uint32{3, 0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := New(0)
			var res *Result
			for _, score := range tt.scores {
				var err error
				res, err = s.Submit(score, tt.topK)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantRank, res.Rank)
			assert.Equal(t, tt.wantTop, res.Top)
			assert.Equal(t, len(tt.scores), s.Len())
		})
	}
}

func TestTiesKeepSubmissionOrder(t *testing.T) {
	s := New(0)
	first, err := s.Submit(50, 1)
	require.NoError(t, err)
	_, err = s.Submit(30, 1)
	require.NoError(t, err)
	second, err := s.Submit(50, 1)
	require.NoError(t, err)

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	assert.Equal(t, uint32(30), entries[2].Score)
}

func TestMaxTopK(t *testing.T) {
	s := New(10)
	_, err := s.Submit(1, 11)
	assert.ErrorIs(t, err, ErrTopKTooLarge)
	assert.Zero(t, s.Len(), "rejected submissions are not recorded")

	_, err = s.Submit(1, 10)
	assert.NoError(t, err)
}

func TestConcurrentSubmit(t *testing.T) {
	s := New(0)
	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Submit(uint32(i), 3)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries := s.Entries()
	require.Len(t, entries, 100)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Score, entries[i].Score)
	}
	res, err := s.Submit(200, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{200, 99, 98}, res.Top)
}
