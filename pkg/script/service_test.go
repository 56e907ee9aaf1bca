package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubFinalScript = `#5 – Budget Pick
Great entry-level option.

#1 – The Winner
Our top pick.

Conclusion
Thanks for watching.

Avatar Intro:
Hey everyone!

YouTube Description:
Top picks this week.

Thumbnail Headlines:
- DON'T MISS THIS
`

func TestService_Run_WritesAllFourArtifacts(t *testing.T) {
	dir := t.TempDir()
	draft := &stubDraftClient{text: "raw draft text"}
	refine := &stubRefineClient{text: stubFinalScript}
	gen := NewGenerator(nil, draft, nil, refine, false)
	svc := NewService(gen)

	meta, err := svc.Run(context.Background(), "draft prompt", "refine (paste draft here)", dir)
	require.NoError(t, err)

	for _, name := range []string{"script_raw.txt", "script_final.txt", "script.txt", "script_gen_meta.json"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, "expected %s to exist", name)
	}

	assert.Equal(t, "Hey everyone!", meta.AvatarIntro)
	assert.Equal(t, "Top picks this week.", meta.YoutubeDescription)
	assert.Equal(t, []string{"DON'T MISS THIS"}, meta.ThumbnailHeadlines)
	require.Len(t, meta.Calls, 2)
}

func TestService_Run_ScriptTxtContainsCanonicalMarkers(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(nil, &stubDraftClient{text: "raw"}, nil, &stubRefineClient{text: stubFinalScript}, false)
	svc := NewService(gen)

	_, err := svc.Run(context.Background(), "p", "r (paste draft here)", dir)
	require.NoError(t, err)

	body, err := os.ReadFile(filepath.Join(dir, "script.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "[PRODUCT_5]")
	assert.Contains(t, string(body), "[PRODUCT_1]")
	assert.Contains(t, string(body), "[CONCLUSION]")
	assert.NotContains(t, string(body), "Avatar Intro")
}

func TestService_Run_FailsWhenDraftFails(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(nil, nil, nil, nil, false)
	svc := NewService(gen)

	_, err := svc.Run(context.Background(), "p", "r (paste draft here)", dir)
	require.Error(t, err)
}
