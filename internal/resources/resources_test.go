package resources

import (
	"testing"

	"wristlist/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleBitmaps(t *testing.T) {
	b := NewBundle()

	for _, id := range []ID{TickBlack, TickWhite, AddBlack, AddWhite} {
		bmp, err := b.Bitmap(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, bmp.ID)
		w, h := bmp.Size()
		assert.Positive(t, w)
		assert.Equal(t, 1, h)
	}

	black, _ := b.Bitmap(AddBlack)
	white, _ := b.Bitmap(AddWhite)
	assert.NotEqual(t, black.Foreground, white.Foreground, "highlight variant must differ")

	_, err := b.Bitmap("NOPE")
	var resErr *errors.ResourceError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "NOPE", resErr.ResourceID())
}

func TestDeletedSequence(t *testing.T) {
	seq, err := NewBundle().Sequence(DeletedSequence)
	require.NoError(t, err)
	assert.Equal(t, len(deletedKeyFrames)*deletedHold, seq.NumFrames())

	first, ok := seq.FrameByIndex(0)
	require.True(t, ok)
	assert.Equal(t, deletedKeyFrames[0], first.Rows)

	last, ok := seq.FrameByIndex(seq.NumFrames() - 1)
	require.True(t, ok)
	assert.Equal(t, deletedKeyFrames[len(deletedKeyFrames)-1], last.Rows)

	_, ok = seq.FrameByIndex(seq.NumFrames())
	assert.False(t, ok)
	_, ok = seq.FrameByIndex(-1)
	assert.False(t, ok)
}

func TestNilSequence(t *testing.T) {
	var seq *Sequence
	assert.Equal(t, 0, seq.NumFrames())
	_, ok := seq.FrameByIndex(0)
	assert.False(t, ok)
}

func TestBundleOverrides(t *testing.T) {
	b := NewBundle()
	b.AddSequence(NewSequence(DeletedSequence))

	seq, err := b.Sequence(DeletedSequence)
	require.NoError(t, err)
	assert.Equal(t, 0, seq.NumFrames())
}
