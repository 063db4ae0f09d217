package thumbnail

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filestore/internal/storage"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, b []byte) (image.Point, string) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	require.NoError(t, err)
	return image.Pt(cfg.Width, cfg.Height), format
}

func TestPool_Process(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	store := storage.NewLocal(fsys)
	require.NoError(t, store.Put(ctx, "/tmp/files_manager/img", pngBytes(t, 1000, 600)))

	p := NewPool(store, []int{500, 250, 100}, 1, zap.NewNop())
	require.NoError(t, p.Process(ctx, Job{FileID: "f1", LocalPath: "/tmp/files_manager/img"}))

	for w, h := range map[int]int{500: 300, 250: 150, 100: 60} {
		b, err := store.Get(ctx, "/tmp/files_manager/img_"+strconv.Itoa(w))
		require.NoError(t, err)
		size, format := decodeSize(t, b)
		assert.Equal(t, image.Pt(w, h), size)
		assert.Equal(t, "png", format)
	}
}

func TestPool_ProcessKeepsJPEG(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocal(afero.NewMemMapFs())

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 400, 400)), nil))
	require.NoError(t, store.Put(ctx, "/blobs/photo", buf.Bytes()))

	p := NewPool(store, []int{100}, 1, zap.NewNop())
	require.NoError(t, p.Process(ctx, Job{LocalPath: "/blobs/photo"}))

	b, err := store.Get(ctx, "/blobs/photo_100")
	require.NoError(t, err)
	_, format := decodeSize(t, b)
	assert.Equal(t, "jpeg", format)
}

func TestPool_ProcessErrors(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocal(afero.NewMemMapFs())
	require.NoError(t, store.Put(ctx, "/blobs/text", []byte("not an image")))

	p := NewPool(store, []int{100}, 1, zap.NewNop())

	assert.ErrorIs(t, p.Process(ctx, Job{LocalPath: "/blobs/missing"}), storage.ErrNotExist)
	assert.ErrorContains(t, p.Process(ctx, Job{LocalPath: "/blobs/text"}), "decode image")
}

func TestPool_WorkersDrainOnClose(t *testing.T) {
	ctx := context.Background()
	store := storage.NewLocal(afero.NewMemMapFs())
	require.NoError(t, store.Put(ctx, "/blobs/a", pngBytes(t, 50, 50)))

	p := NewPool(store, []int{10}, 4, zap.NewNop())
	p.Start(ctx, 2)
	assert.True(t, p.Enqueue("f1", "/blobs/a"))
	p.Close()

	b, err := store.Get(ctx, "/blobs/a_10")
	require.NoError(t, err)
	assert.NotEmpty(t, b)

	assert.False(t, p.Enqueue("f2", "/blobs/a"), "closed pool rejects jobs")
	p.Close()
}

func TestPool_EnqueueDropsWhenFull(t *testing.T) {
	p := NewPool(storage.NewLocal(afero.NewMemMapFs()), []int{10}, 1, zap.NewNop())

	assert.True(t, p.Enqueue("f1", "/a"))
	assert.False(t, p.Enqueue("f2", "/b"))
	p.Close()
}

func TestPool_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPool(storage.NewLocal(afero.NewMemMapFs()), []int{10}, 1, zap.NewNop())
	p.Start(ctx, 3)
	cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}
