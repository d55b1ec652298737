package casepool

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackstar-game/blackstar/internal/caserecord"
)

// noShuffle makes queue order deterministic for assertions.
func noShuffle(p *Provider) *Provider {
	p.shuffle = func(n int, swap func(i, j int)) {}
	return p
}

func TestSampleCases_AllValid(t *testing.T) {
	samples := SampleCases()
	require.NotEmpty(t, samples)

	for _, c := range samples {
		res := caserecord.Validate(&c)
		assert.True(t, res.OK, "sample %s: %v", c.ID, res.Errors)
	}
}

func TestLoadQueue_ExactCount(t *testing.T) {
	src := &StaticSource{SourceName: "test", Records: SampleCases()}
	p := New(src)

	for _, count := range []int{1, 3, 10} {
		queue, err := p.LoadQueue(count)
		require.NoError(t, err)
		assert.Len(t, queue, count)
	}
}

func TestLoadQueue_InvalidCount(t *testing.T) {
	p := New()

	_, err := p.LoadQueue(0)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = p.LoadQueue(-2)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestLoadQueue_CyclesSmallPool(t *testing.T) {
	one := SampleCases()[:1]
	p := noShuffle(New(&StaticSource{SourceName: "test", Records: one}))

	queue, err := p.LoadQueue(3)
	require.NoError(t, err)
	require.Len(t, queue, 3)
	for i, c := range queue {
		assert.Equal(t, one[0].ID, c.ID, "slot %d", i)
	}
}

func TestLoadQueue_FallbackOnEmptyPool(t *testing.T) {
	p := New() // no sources at all

	queue, err := p.LoadQueue(5)
	require.NoError(t, err)
	require.Len(t, queue, 5)

	sampleIDs := make(map[string]bool)
	for _, c := range SampleCases() {
		sampleIDs[c.ID] = true
	}
	for _, c := range queue {
		assert.True(t, sampleIDs[c.ID], "queue entry %s should come from samples", c.ID)
	}
}

func TestLoadQueue_DropsInvalidRecords(t *testing.T) {
	valid := SampleCases()[0]
	invalid := valid
	invalid.ID = "broken"
	invalid.Choices = nil

	p := noShuffle(New(&StaticSource{SourceName: "test", Records: []caserecord.CaseRecord{invalid, valid}}))

	queue, err := p.LoadQueue(2)
	require.NoError(t, err)
	for _, c := range queue {
		assert.NotEqual(t, "broken", c.ID)
	}
}

func TestLoadQueue_SourceErrorIsNonFatal(t *testing.T) {
	failing := &failingSource{}
	p := New(failing, &StaticSource{SourceName: "ok", Records: SampleCases()})

	queue, err := p.LoadQueue(2)
	require.NoError(t, err)
	assert.Len(t, queue, 2)
}

func TestLoadQueue_DedupesByID(t *testing.T) {
	c := SampleCases()[0]
	p := noShuffle(New(&StaticSource{SourceName: "test", Records: []caserecord.CaseRecord{c, c, c}}))

	// Pool should contain the record once; a queue of 2 cycles it.
	queue, err := p.LoadQueue(2)
	require.NoError(t, err)
	assert.Equal(t, queue[0].ID, queue[1].ID)
}

type failingSource struct{}

func (f *failingSource) Name() string { return "failing" }
func (f *failingSource) Load() ([]caserecord.CaseRecord, error) {
	return nil, errors.New("disk on fire")
}

func TestDirSource_MissingDirectory(t *testing.T) {
	src := NewDirSource(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := src.Load()
	assert.Error(t, err)

	// The provider degrades to samples rather than failing.
	queue, qerr := New(src).LoadQueue(1)
	require.NoError(t, qerr)
	assert.Len(t, queue, 1)
}

func TestDirSource_LoadsPack(t *testing.T) {
	dir := t.TempDir()
	pack := `{
		"schema_version": "1.2.0",
		"cases": [` + sampleCaseJSON + `]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "em.json"), []byte(pack), 0o644))

	records, err := NewDirSource(dir).Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pack-em-001", records[0].ID)
}

func TestDirSource_SkipsIncompatibleSchema(t *testing.T) {
	dir := t.TempDir()
	pack := `{"schema_version": "2.0.0", "cases": [` + sampleCaseJSON + `]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "future.json"), []byte(pack), 0o644))

	records, err := NewDirSource(dir).Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDirSource_SkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{nope"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noversion.json"), []byte(`{"cases": []}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a pack"), 0o644))

	records, err := NewDirSource(dir).Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

const sampleCaseJSON = `{
	"id": "pack-em-001",
	"specialty": "emergency_medicine",
	"difficulty": 2,
	"vignette": {
		"demographics": "A 30-year-old man",
		"presentation": "presents after a fall from a ladder with left wrist pain and swelling.",
		"vitals": {"BP": "124/78 mmHg", "HR": "82/min", "RR": "14/min", "Temp": "36.7 C"}
	},
	"question": "Which of the following is the most appropriate initial study?",
	"choices": [
		{"id": "A", "text": "Plain radiograph of the wrist", "correct": true},
		{"id": "B", "text": "MRI of the wrist", "correct": false},
		{"id": "C", "text": "Ultrasound of the wrist", "correct": false},
		{"id": "D", "text": "CT of the wrist with contrast", "correct": false}
	],
	"explanation": {
		"correct": "Acute post-traumatic wrist pain is evaluated first with plain films to identify fracture.",
		"concepts": "Initial imaging for acute extremity trauma."
	},
	"metadata": {"high_yield": false, "tested_frequency": "medium"}
}`
