package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"osmapping/options"
)

func TestDecodeEnum(t *testing.T) {
	t.Parallel()

	assert.True(t, options.DecodeDefault.Has(options.DecodeTextNumber))
	assert.True(t, options.DecodeDefault.Has(options.DecodeTextualBool))
	assert.False(t, options.DecodeDefault.Has(options.DecodeUnknownStrict))
	assert.True(t, options.DecodeStrict.Has(options.DecodeUnknownStrict|options.DecodeTextNumber))
	assert.Equal(t, options.DecodeAll, options.DecodeStrict)

	flags := options.DecodeNone.With(options.DecodeTextualBool)
	assert.True(t, flags.Has(options.DecodeTextualBool))
	assert.False(t, flags.Has(options.DecodeTextNumber))
	assert.Equal(t, options.DecodeNone, flags.Without(options.DecodeTextualBool))
}
