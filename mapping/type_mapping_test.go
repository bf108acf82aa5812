package mapping_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osmapping/mapping"
	"osmapping/options"
)

func loadTestMapping(t *testing.T) *mapping.TypeMapping {
	t.Helper()

	tm, err := mapping.LoadFile(filepath.Join("testdata", "mapping.json"), options.DecodeStrict)
	require.NoError(t, err)

	return tm
}

func TestDecodeTypeMapping(t *testing.T) {
	t.Parallel()

	tm := loadTestMapping(t)

	require.NotNil(t, tm.Dynamic)
	assert.Equal(t, mapping.DynamicStrict, *tm.Dynamic)
	require.NotNil(t, tm.DateDetection)
	assert.False(t, *tm.DateDetection)
	assert.Equal(t, []string{"yyyy-MM-dd"}, tm.DynamicDateFormats)
	require.NotNil(t, tm.Routing)
	assert.True(t, tm.Routing.Required)
	require.NotNil(t, tm.Source)
	assert.Equal(t, []string{"secret"}, tm.Source.Excludes)
	assert.Len(t, tm.Properties, 5)

	require.Len(t, tm.DynamicTemplates, 1)
	tmpl := tm.DynamicTemplates[0]
	assert.Equal(t, "strings_as_keywords", tmpl.Name)
	assert.Equal(t, "string", tmpl.Template.MatchMappingType)
	assert.True(t, tmpl.Template.Mapping.IsKeyword())
}

func TestTypeMappingRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "mapping.json"))
	require.NoError(t, err)

	tm := loadTestMapping(t)

	out, err := json.Marshal(tm)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(out))

	var again mapping.TypeMapping
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, *tm, again)
}

func TestDecodeTypeMappingErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		path string
	}{
		{
			name: "template with two names",
			in:   `{"dynamic_templates":[{"a":{"mapping":{}},"b":{"mapping":{}}}]}`,
			path: "dynamic_templates.0",
		},
		{
			name: "template without mapping",
			in:   `{"dynamic_templates":[{"a":{"match":"*_id"}}]}`,
			path: "dynamic_templates.0.a",
		},
		{
			name: "bad match pattern",
			in:   `{"dynamic_templates":[{"a":{"match_pattern":"glob","mapping":{}}}]}`,
			path: "dynamic_templates.0.a.match_pattern",
		},
		{
			name: "bad property deep inside",
			in:   `{"properties":{"user":{"properties":{"age":{"type":"integer","coerce":"maybe"}}}}}`,
			path: "properties.user.properties.age.coerce",
		},
		{
			name: "bad dynamic",
			in:   `{"dynamic":"sometimes"}`,
			path: "dynamic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := mapping.DecodeTypeMapping([]byte(tt.in), options.DecodeDefault)
			require.Error(t, err)

			var fe *mapping.FieldError
			if assert.ErrorAs(t, err, &fe) {
				assert.Equal(t, tt.path, fe.Path)
			}
		})
	}
}

func TestWalk(t *testing.T) {
	t.Parallel()

	tm := loadTestMapping(t)

	var paths []string

	err := tm.Walk(func(path string, p mapping.Property) error {
		paths = append(paths, path+":"+p.Kind().String())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"all_text:text",
		"embedding:dense_vector",
		"title:text",
		"title.raw:keyword",
		"user:object",
		"user.age:integer",
		"user.name:keyword",
		"user_name:alias",
	}, paths)
}

func TestWalkSkipChildrenAndStop(t *testing.T) {
	t.Parallel()

	tm := loadTestMapping(t)

	var paths []string

	err := tm.Walk(func(path string, p mapping.Property) error {
		paths = append(paths, path)
		if p.IsObject() || p.IsText() {
			return mapping.SkipChildren
		}

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"all_text", "embedding", "title", "user", "user_name"}, paths)

	stop := assert.AnError
	count := 0

	err = tm.Walk(func(string, mapping.Property) error {
		count++
		if count == 2 {
			return stop
		}

		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, count)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tm := loadTestMapping(t)

	tests := []struct {
		path  string
		found bool
		kind  mapping.Kind
	}{
		{path: "title", found: true, kind: mapping.KindText},
		{path: "title.raw", found: true, kind: mapping.KindKeyword},
		{path: "user.name", found: true, kind: mapping.KindKeyword},
		{path: "user.age", found: true, kind: mapping.KindInteger},
		{path: "user.email", found: false},
		{path: "missing", found: false},
		{path: "title.raw.deeper", found: false},
		{path: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			p, ok := tm.Lookup(tt.path)
			assert.Equal(t, tt.found, ok)

			if tt.found {
				assert.Equal(t, tt.kind, p.Kind())
			}
		})
	}
}

func TestConcurrentDecode(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "mapping.json"))
	require.NoError(t, err)

	const workers = 16

	var wg sync.WaitGroup

	errs := make(chan error, workers)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := mapping.DecodeTypeMapping(data, options.DecodeStrict)
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
