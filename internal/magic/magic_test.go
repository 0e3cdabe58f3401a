package magic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	files map[string][]byte
}

func (f *fakeReader) ReadFile(path string) ([]byte, error) {
	body, ok := f.files[path]
	if !ok {
		return nil, errors.New("file not found")
	}
	return body, nil
}

type fakeExecutor struct {
	response []byte
	err      error
}

func (f *fakeExecutor) Execute(operationBody string) ([]byte, error) {
	return f.response, f.err
}

func TestExpand_NoMagicValuesIsIdentity(t *testing.T) {
	out, err := Expand(`{ user(id: 1) }`, Dependencies{})
	require.NoError(t, err)
	assert.Equal(t, `{ user(id: 1) }`, out)
}

func TestExpand_RandomStringProducesQuotedLiteralOfRequestedLength(t *testing.T) {
	out, err := Expand(`{ user(name: <random_string::5>) }`, Dependencies{})
	require.NoError(t, err)
	assert.Regexp(t, `^\{ user\(name: "[a-z]{5}"\) \}$`, out)
}

func TestExpand_RandomIntegerWithinBounds(t *testing.T) {
	for i := 0; i < 20; i++ {
		out, err := Expand(`{ user(age: <random_integer::10::20>) }`, Dependencies{})
		require.NoError(t, err)
		assert.Regexp(t, `^\{ user\(age: 1[0-9]\) \}$`, out)
	}
}

func TestExpand_RandomIntegerRejectsMaxNotGreaterThanMin(t *testing.T) {
	_, err := Expand(`<random_integer::5::5>`, Dependencies{})
	assert.Error(t, err)
}

func TestExpand_RandomWordIsQuotedDictionaryEntry(t *testing.T) {
	out, err := Expand(`<random_word>`, Dependencies{})
	require.NoError(t, err)
	assert.Contains(t, dictionary, out[1:len(out)-1])
}

func TestExpand_VariableExtractsFromVariablesSource(t *testing.T) {
	deps := Dependencies{Variables: []byte(`{"userId": 42, "name": "Ada"}`)}

	out, err := Expand(`{ user(id: <variable::$.userId>) }`, deps)
	require.NoError(t, err)
	assert.Equal(t, `{ user(id: 42) }`, out)

	out, err = Expand(`{ user(name: <variable::$.name>) }`, deps)
	require.NoError(t, err)
	assert.Equal(t, `{ user(name: "Ada") }`, out)
}

func TestExpand_VariableWithArrayIndexPath(t *testing.T) {
	deps := Dependencies{Variables: []byte(`{"ids": [7, 8, 9]}`)}

	out, err := Expand(`<variable::$.ids[1]>`, deps)
	require.NoError(t, err)
	assert.Equal(t, `8`, out)
}

func TestExpand_VariableMissingKeyIsError(t *testing.T) {
	deps := Dependencies{Variables: []byte(`{}`)}
	_, err := Expand(`<variable::$.missing>`, deps)
	assert.Error(t, err)
}

func TestExpand_QueryReadsFileAndExecutesThenExtracts(t *testing.T) {
	reader := &fakeReader{files: map[string][]byte{
		"subquery.graphql": []byte(`{ user { id } }`),
	}}
	executor := &fakeExecutor{response: []byte(`{"data": {"user": {"id": "u1"}}}`)}
	deps := Dependencies{Reader: reader, Executor: executor}

	out, err := Expand(`{ linkedUser(id: <query::subquery.graphql::$.data.user.id>) }`, deps)
	require.NoError(t, err)
	assert.Equal(t, `{ linkedUser(id: "u1") }`, out)
}

func TestExpand_QueryFileReadErrorAborts(t *testing.T) {
	deps := Dependencies{Reader: &fakeReader{files: map[string][]byte{}}, Executor: &fakeExecutor{}}
	_, err := Expand(`<query::missing.graphql::$.a>`, deps)
	assert.Error(t, err)
}

func TestExpand_UnknownCommandIsError(t *testing.T) {
	_, err := Expand(`<bogus::1>`, Dependencies{})
	assert.Error(t, err)
}

func TestExpand_RightToLeftSubstitutionKeepsEarlierOffsetsValid(t *testing.T) {
	deps := Dependencies{Variables: []byte(`{"a": 1, "bb": 22}`)}

	out, err := Expand(`[<variable::$.a>, <variable::$.bb>]`, deps)
	require.NoError(t, err)
	assert.Equal(t, `[1, 22]`, out)
}

func TestParseJSONPath_RejectsMissingDollar(t *testing.T) {
	_, err := parseJSONPath("a.b")
	assert.Error(t, err)
}

func TestParseJSONPath_ParsesMixedSteps(t *testing.T) {
	components, err := parseJSONPath("$.a.b[0].c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "[0]", "c"}, components)
}

func TestExtractJSONPath_NonIntegerNumberIsError(t *testing.T) {
	_, err := extractJSONPath([]byte(`{"x": 1.5}`), "$.x")
	assert.Error(t, err)
}

func TestExtractJSONPath_ObjectTypeIsError(t *testing.T) {
	_, err := extractJSONPath([]byte(`{"x": {"y": 1}}`), "$.x")
	assert.Error(t, err)
}
