package detect

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/findclip/internal/domain"
	"github.com/bft-labs/findclip/internal/synth"
)

func TestDetector_UniformBorder(t *testing.T) {
	d := New(DefaultConfig())

	for _, b := range []int{8, 10, 12, 16, 20} {
		t.Run(fmt.Sprintf("border %d", b), func(t *testing.T) {
			want := domain.ClipRect{Top: b, Bottom: b, Left: b, Right: b}
			f := synth.Letterbox(64, 64, want, synth.Options{Seed: int64(b)})

			res := d.Detect(f)
			require.True(t, res.Valid, res.Reason)
			assert.Equal(t, want, res.Rect)
		})
	}
}

func TestDetector_AsymmetricBorders(t *testing.T) {
	want := domain.ClipRect{Top: 8, Bottom: 12, Left: 10, Right: 16}
	f := synth.Letterbox(80, 64, want, synth.Options{Seed: 3})

	res := New(DefaultConfig()).Detect(f)
	require.True(t, res.Valid, res.Reason)
	assert.Equal(t, want, res.Rect)
}

func TestDetector_MirroringSwapsSides(t *testing.T) {
	d := New(DefaultConfig())
	f := synth.Letterbox(96, 72, domain.ClipRect{Top: 9, Bottom: 14, Left: 12, Right: 20}, synth.Options{Seed: 11, Jitter: 6})

	orig := d.Detect(f)
	mx := d.Detect(synth.MirrorX(f))
	my := d.Detect(synth.MirrorY(f))

	assert.Equal(t, orig.Left, mx.Right)
	assert.Equal(t, orig.Right, mx.Left)
	assert.Equal(t, orig.Top, mx.Top)
	assert.Equal(t, orig.Bottom, mx.Bottom)

	assert.Equal(t, orig.Top, my.Bottom)
	assert.Equal(t, orig.Bottom, my.Top)
	assert.Equal(t, orig.Left, my.Left)
	assert.Equal(t, orig.Right, my.Right)
}

func TestDetector_RejectsSmallSpan(t *testing.T) {
	f := synth.Letterbox(64, 64, domain.ClipRect{Top: 26, Bottom: 26, Left: 8, Right: 8}, synth.Options{Seed: 1})

	res := New(DefaultConfig()).Detect(f)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Reason, "vertical span")
	assert.Equal(t, 26, res.Top.Pos)
	assert.Equal(t, 26, res.Bottom.Pos)
}

func TestDetector_RejectsFrameWithoutBorder(t *testing.T) {
	d := New(DefaultConfig())

	for seed := int64(0); seed < 4; seed++ {
		f := synth.Letterbox(64, 64, domain.ClipRect{}, synth.Options{Seed: seed})

		res := d.Detect(f)
		assert.False(t, res.Valid, "seed %d", seed)
		assert.Equal(t, "no border found", res.Reason)
		assert.True(t, res.Top.OK)
		assert.Zero(t, res.Top.Pos)
	}
}

func TestDetector_PillarboxOnly(t *testing.T) {
	want := domain.ClipRect{Left: 8, Right: 8}
	f := synth.Letterbox(64, 64, want, synth.Options{Seed: 5})

	res := New(DefaultConfig()).Detect(f)
	require.True(t, res.Valid, res.Reason)
	assert.Equal(t, want, res.Rect)
}

func TestDetector_RejectsFlatFrame(t *testing.T) {
	pix := make([]uint8, 32*32)
	f, err := domain.NewFrame("flat", 32, 32, pix)
	require.NoError(t, err)

	res := New(DefaultConfig()).Detect(f)
	assert.False(t, res.Valid)
	assert.Equal(t, "no top border", res.Reason)
}

func TestDetector_RejectsTinyFrame(t *testing.T) {
	f, err := domain.NewFrame("tiny", 1, 5, make([]uint8, 5))
	require.NoError(t, err)

	res := New(DefaultConfig()).Detect(f)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Reason, "too small")
}

func TestDetector_KeepsProfiles(t *testing.T) {
	f := synth.Letterbox(40, 30, domain.ClipRect{Top: 8, Bottom: 8, Left: 8, Right: 8}, synth.Options{})

	res := New(DefaultConfig()).Detect(f)
	assert.Equal(t, 30, res.Rows.Len())
	assert.Equal(t, 40, res.Columns.Len())
	assert.Len(t, res.RowGradient, 29)
	assert.Len(t, res.ColumnGradient, 39)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	err := Config{ThresholdX: 0, ThresholdY: 200}.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}
