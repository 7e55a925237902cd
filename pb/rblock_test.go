package pb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestScoreRequestWireFormat(t *testing.T) {
	b, err := proto.Marshal(&ScoreRequest{Score: 150, Topk: 10})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x96, 0x01, 0x10, 0x0a}, b)

	empty, err := proto.Marshal(&ScoreRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	// a bare uint32 wrapper shares field 1 with the request.
	w, err := proto.Marshal(wrapperspb.UInt32(50))
	require.NoError(t, err)
	req := &ScoreRequest{}
	require.NoError(t, proto.Unmarshal(w, req))
	assert.Equal(t, uint32(50), req.GetScore())
}

func TestScoreResponseWireFormat(t *testing.T) {
	b, err := proto.Marshal(&ScoreResponse{Success: true, Rank: 1, Scores: []uint32{50, 300}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x01, 0x10, 0x01, 0x1a, 0x03, 0x32, 0xac, 0x02}, b)
}

func TestScoreResponseDecode(t *testing.T) {
	tests := []struct {
		name        string
		wire        []byte
		wantSuccess bool
		wantRank    uint32
		wantScores  []uint32
	}{
		{
			name:        "packed scores",
			wire:        []byte{0x08, 0x01, 0x1a, 0x02, 0x32, 0x1e},
			wantSuccess: true,
			wantScores:  []uint32{50, 30},
		},
		{
			name:       "unpacked scores",
			wire:       []byte{0x10, 0x02, 0x18, 0x32, 0x18, 0x1e},
			wantRank:   2,
			wantScores: []uint32{50, 30},
		},
		{
			name:     "unknown fields are skipped",
			wire:     []byte{0x22, 0x02, 0x68, 0x69, 0x10, 0x03},
			wantRank: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := &ScoreResponse{Rank: 99}
			require.NoError(t, proto.Unmarshal(tt.wire, got))
			assert.Equal(t, tt.wantSuccess, got.GetSuccess())
			assert.Equal(t, tt.wantRank, got.GetRank())
			assert.Equal(t, tt.wantScores, got.GetScores())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	assert.Error(t, proto.Unmarshal([]byte{0x08}, &ScoreRequest{}), "truncated varint")
	assert.Error(t, proto.Unmarshal([]byte{0x1a, 0x05, 0x01}, &ScoreResponse{}), "truncated packed scores")
}

func TestDescriptors(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName("rblock.Score")
	require.NoError(t, err)
	svc, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	m := svc.Methods().ByName("QueryScore")
	require.NotNil(t, m)
	assert.Equal(t, protoreflect.FullName("rblock.ScoreRequest"), m.Input().FullName())
	assert.Equal(t, protoreflect.FullName("rblock.ScoreResponse"), m.Output().FullName())
	assert.Equal(t, "/"+string(svc.FullName())+"/"+string(m.Name()), Score_QueryScore_FullMethodName)

	scores := (&ScoreResponse{}).ProtoReflect().Descriptor().Fields().ByName("scores")
	require.NotNil(t, scores)
	assert.True(t, scores.IsList())
	assert.True(t, scores.IsPacked())
	assert.Equal(t, protoreflect.Uint32Kind, scores.Kind())
}

func TestGetters(t *testing.T) {
	var req *ScoreRequest
	var res *ScoreResponse
	assert.Zero(t, req.GetScore())
	assert.Zero(t, req.GetTopk())
	assert.False(t, res.GetSuccess())
	assert.Zero(t, res.GetRank())
	assert.Nil(t, res.GetScores())
}
