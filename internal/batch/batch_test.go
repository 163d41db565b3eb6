package batch

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/domain"
	"github.com/youruser/cardforge/internal/generator"
	"github.com/youruser/cardforge/internal/style"
)

func newTestDriver(t *testing.T, workers int) *Driver {
	t.Helper()
	return NewDriver(generator.New(style.NewCatalog(t.TempDir()), 0), workers)
}

var defaults = cards.Style{Template: "executive_premium", Palette: "executive_navy"}

func rows(names ...string) []cards.Row {
	out := make([]cards.Row, len(names))
	for i, n := range names {
		out[i] = cards.Row{Contact: cards.Contact{Name: n, Company: "Analytical Engines"}}
	}
	return out
}

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = string(b)
	}
	return out
}

func TestRender_HTMLArchive(t *testing.T) {
	d := newTestDriver(t, 3)
	in := rows("Ada Lovelace", "Grace Hopper", "Alan Turing")

	res, err := d.Render(context.Background(), in, defaults, "html")
	require.NoError(t, err)
	assert.Empty(t, res.Failures)
	assert.Equal(t, "business_cards_"+res.ID+".zip", res.Filename)

	require.Len(t, res.Members, 3)
	assert.True(t, strings.HasPrefix(res.Members[0], "ada_lovelace_"))
	assert.True(t, strings.HasPrefix(res.Members[1], "grace_hopper_"))
	assert.True(t, strings.HasPrefix(res.Members[2], "alan_turing_"))

	files := readArchive(t, res.Archive)
	require.Len(t, files, 3)
	for i, member := range res.Members {
		assert.True(t, strings.HasSuffix(member, ".html"))
		body := files[member]
		assert.Contains(t, body, "data:image/png;base64,")
		assert.Contains(t, body, "<h1>"+in[i].Name+"</h1>")
	}
}

func TestRender_MemberOrderIsInputOrder(t *testing.T) {
	d := newTestDriver(t, 4)
	in := rows("a", "b", "c", "d", "e", "f")

	res, err := d.Render(context.Background(), in, defaults, "png")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(res.Archive), int64(len(res.Archive)))
	require.NoError(t, err)
	require.Len(t, zr.File, len(in))
	for i, f := range zr.File {
		assert.Equal(t, res.Members[i], f.Name)
		assert.True(t, strings.HasPrefix(f.Name, in[i].Name+"_"))
	}
}

func TestRender_SkipsFailingRecords(t *testing.T) {
	d := newTestDriver(t, 2)
	in := rows("Ada Lovelace", "Broken", "Alan Turing")
	in[1].Palette = "no_such_palette"
	in[2].Template = "tech_neon"
	in[2].IncludeQR = "yes"

	res, err := d.Render(context.Background(), in, defaults, "png")
	require.NoError(t, err)

	require.Len(t, res.Members, 2)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, 1, res.Failures[0].Index)
	assert.Equal(t, "Broken", res.Failures[0].Name)
	assert.ErrorIs(t, res.Failures[0], domain.ErrConfiguration)
	assert.Contains(t, res.Failures[0].Error(), "record 2 (Broken)")
}

func TestRender_AllRecordsFail(t *testing.T) {
	d := newTestDriver(t, 1)
	bad := cards.Style{Template: "generic", Palette: "mauve"}

	_, err := d.Render(context.Background(), rows("x", "y"), bad, "png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestRender_InvalidInput(t *testing.T) {
	d := newTestDriver(t, 1)

	_, err := d.Render(context.Background(), rows("x"), defaults, "gif")
	assert.ErrorIs(t, err, domain.ErrConfiguration)

	_, err = d.Render(context.Background(), nil, defaults, "png")
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestRender_CancelledContext(t *testing.T) {
	d := newTestDriver(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Render(ctx, rows("x", "y"), defaults, "png")
	assert.ErrorIs(t, err, context.Canceled)
}
