package manifest_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/flash-brew-digital/create-webflow-extension/internal/manifest"
)

func TestDocumentRoundTripKeepsOrderAndValues(testInstance *testing.T) {
	input := []byte(`{"zeta":1,"alpha":{"nested":[1,2,{"b":true,"a":null}]},"name":"old","emoji":"é & <tag>"}`)

	document, parseError := manifest.ParseDocument(input)
	require.NoError(testInstance, parseError)
	require.NoError(testInstance, document.SetString("name", "new & improved"))

	rendered, marshalError := document.Marshal()
	require.NoError(testInstance, marshalError)

	expected := "{\n" +
		"  \"zeta\": 1,\n" +
		"  \"alpha\": {\n" +
		"    \"nested\": [\n" +
		"      1,\n" +
		"      2,\n" +
		"      {\n" +
		"        \"b\": true,\n" +
		"        \"a\": null\n" +
		"      }\n" +
		"    ]\n" +
		"  },\n" +
		"  \"name\": \"new & improved\",\n" +
		"  \"emoji\": \"é & <tag>\"\n" +
		"}\n"
	if difference := cmp.Diff(expected, string(rendered)); len(difference) > 0 {
		testInstance.Fatalf("rendered document mismatch (-want +got):\n%s", difference)
	}
}

func TestDocumentSetAppendsAndDeleteRemoves(testInstance *testing.T) {
	document, parseError := manifest.ParseDocument([]byte(`{"a":1,"b":2}`))
	require.NoError(testInstance, parseError)

	require.NoError(testInstance, document.SetString("c", "three"))
	require.True(testInstance, document.Delete("a"))
	require.False(testInstance, document.Delete("missing"))

	if difference := cmp.Diff([]string{"b", "c"}, document.Keys()); len(difference) > 0 {
		testInstance.Fatalf("keys mismatch (-want +got):\n%s", difference)
	}
	rawValue, found := document.Raw("c")
	require.True(testInstance, found)
	require.JSONEq(testInstance, `"three"`, string(rawValue))
}

func TestParseDocumentRejectsNonObjects(testInstance *testing.T) {
	testCases := map[string]string{
		"array":         `[1,2]`,
		"scalar":        `"name"`,
		"trailing_data": `{"a":1} {"b":2}`,
		"truncated":     `{"a":`,
		"empty":         ``,
	}

	for name, input := range testCases {
		testInstance.Run(name, func(testInstance *testing.T) {
			_, parseError := manifest.ParseDocument([]byte(input))
			require.Error(testInstance, parseError)
		})
	}
}

func TestEmptyDocumentRendersEmptyObject(testInstance *testing.T) {
	document, parseError := manifest.ParseDocument([]byte(" {}\n"))
	require.NoError(testInstance, parseError)

	rendered, marshalError := document.Marshal()
	require.NoError(testInstance, marshalError)
	require.Equal(testInstance, "{}\n", string(rendered))
}
