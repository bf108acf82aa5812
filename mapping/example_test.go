package mapping_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"osmapping/mapping"
	"osmapping/options"
)

func ExampleNewKeywordPropertyBuilder() {
	p, err := mapping.NewKeywordPropertyBuilder().
		IgnoreAbove(256).
		NullValue("N/A").
		BuildProperty()
	if err != nil {
		panic(err)
	}

	data, _ := json.Marshal(p)
	fmt.Println(string(data))
	// Output: {"type":"keyword","ignore_above":256,"null_value":"N/A"}
}

func ExampleDecodeProperty() {
	p, err := mapping.DecodeProperty([]byte(`{"type":"text","fields":{"raw":{"type":"keyword"}}}`), options.DecodeDefault)
	if err != nil {
		panic(err)
	}

	fmt.Println(p.Kind(), p.Fields()["raw"].Kind())
	// Output: text keyword
}

func ExampleDenseVectorPropertyBuilder_Build() {
	_, err := mapping.NewDenseVectorPropertyBuilder().Similarity("cosine").Build()

	var missing *mapping.MissingRequiredFieldError
	if errors.As(err, &missing) {
		fmt.Println(missing.Field)
	}
	// Output: dims
}

func ExampleWalk() {
	tm, err := mapping.DecodeTypeMapping([]byte(`{
		"properties": {
			"user": {"properties": {"name": {"type": "text", "fields": {"raw": {"type": "keyword"}}}}}
		}
	}`), options.DecodeDefault)
	if err != nil {
		panic(err)
	}

	_ = tm.Walk(func(path string, p mapping.Property) error {
		fmt.Println(path, p.Kind())
		return nil
	})
	// Output:
	// user object
	// user.name text
	// user.name.raw keyword
}
