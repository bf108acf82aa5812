package yamlconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "key order is kept",
			in:   "type: keyword\nignore_above: 256\ndoc_values: true\n",
			want: `{"type":"keyword","ignore_above":256,"doc_values":true}`,
		},
		{
			name: "nested objects and lists",
			in:   "properties:\n  tags:\n    type: keyword\n    copy_to: [all, other]\n",
			want: `{"properties":{"tags":{"type":"keyword","copy_to":["all","other"]}}}`,
		},
		{
			name: "quoted scalars stay strings",
			in:   "null_value: \"N/A\"\nboost: \"2\"\nflag: \"true\"\n",
			want: `{"null_value":"N/A","boost":"2","flag":"true"}`,
		},
		{
			name: "null and floats",
			in:   "a: ~\nb: 1.5\nc: -3\n",
			want: `{"a":null,"b":1.5,"c":-3}`,
		},
		{
			name: "anchors resolve",
			in:   "base: &kw {type: keyword}\ncopy: *kw\n",
			want: `{"base":{"type":"keyword"},"copy":{"type":"keyword"}}`,
		},
		{
			name: "html is not escaped",
			in:   "meta: \"<b>&</b>\"\n",
			want: `{"meta":"<b>&</b>"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToJSON([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestToJSON_Errors(t *testing.T) {
	t.Parallel()

	_, err := ToJSON([]byte(""))
	require.ErrorIs(t, err, ErrEmptyDocument)

	_, err = ToJSON([]byte("a: .inf\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON representation")

	_, err = ToJSON([]byte("base: &b {x: 1}\nother:\n  <<: *b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merge keys")

	_, err = ToJSON([]byte("a: [1, 2\n"))
	require.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	in := `{"type":"text","fields":{"raw":{"type":"keyword"}},"boost":1.0,"ignore_above":10,"null_value":"true","meta":{}}`

	got, err := FromJSON([]byte(in), 2)
	require.NoError(t, err)

	want := "type: text\n" +
		"fields:\n" +
		"  raw:\n" +
		"    type: keyword\n" +
		"boost: 1.0\n" +
		"ignore_above: 10\n" +
		"null_value: \"true\"\n" +
		"meta: {}\n"
	assert.Equal(t, want, string(got))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := `{"z":1,"a":[true,null,"x"],"m":{"k":"1.5","n":2.25}}`

	y, err := FromJSON([]byte(in), 2)
	require.NoError(t, err)

	back, err := ToJSON(y)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(back))
	assert.Equal(t, in, string(back))
}

func TestFromJSON_Trailing(t *testing.T) {
	t.Parallel()

	_, err := FromJSON([]byte(`{"a":1} {"b":2}`), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")
}
