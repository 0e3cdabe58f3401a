package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIntrospection = `{
  "data": {
    "__schema": {
      "queryType": { "name": "Query" },
      "mutationType": { "name": "Mutation" },
      "types": [
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [
            { "name": "user", "args": [
                { "name": "id", "type": { "kind": "NON_NULL", "name": null, "ofType": { "kind": "SCALAR", "name": "ID", "ofType": null } } }
              ],
              "type": { "kind": "NON_NULL", "name": null, "ofType": { "kind": "OBJECT", "name": "User", "ofType": null } } },
            { "name": "search", "args": [], "type": { "kind": "UNION", "name": "SearchResult", "ofType": null } }
          ]
        },
        {
          "kind": "OBJECT",
          "name": "Mutation",
          "fields": [
            { "name": "createUser", "args": [
                { "name": "input", "type": { "kind": "NON_NULL", "name": null, "ofType": { "kind": "INPUT_OBJECT", "name": "CreateUserInput", "ofType": null } } }
              ],
              "type": { "kind": "OBJECT", "name": "User", "ofType": null } }
          ]
        },
        {
          "kind": "OBJECT",
          "name": "User",
          "fields": [
            { "name": "id", "args": [], "type": { "kind": "NON_NULL", "name": null, "ofType": { "kind": "SCALAR", "name": "ID", "ofType": null } } },
            { "name": "name", "args": [], "type": { "kind": "SCALAR", "name": "String", "ofType": null } },
            { "name": "role", "args": [], "type": { "kind": "ENUM", "name": "UserRole", "ofType": null } },
            { "name": "tags", "args": [], "type": { "kind": "LIST", "name": null, "ofType": { "kind": "NON_NULL", "name": null, "ofType": { "kind": "SCALAR", "name": "String", "ofType": null } } } }
          ]
        },
        {
          "kind": "INPUT_OBJECT",
          "name": "CreateUserInput",
          "inputFields": [
            { "name": "name", "type": { "kind": "NON_NULL", "name": null, "ofType": { "kind": "SCALAR", "name": "String", "ofType": null } } },
            { "name": "role", "type": { "kind": "ENUM", "name": "UserRole", "ofType": null } }
          ]
        },
        {
          "kind": "ENUM",
          "name": "UserRole",
          "enumValues": [ { "name": "ADMIN" }, { "name": "MEMBER" } ]
        },
        {
          "kind": "UNION",
          "name": "SearchResult",
          "possibleTypes": [ { "name": "User" }, { "name": "Org" } ]
        },
        {
          "kind": "OBJECT",
          "name": "Org",
          "fields": [ { "name": "id", "args": [], "type": { "kind": "SCALAR", "name": "ID", "ofType": null } } ]
        },
        { "kind": "SCALAR", "name": "String" },
        { "kind": "SCALAR", "name": "ID" }
      ]
    }
  }
}`

func TestFromIntrospection_BuildsRootsAndTypes(t *testing.T) {
	// Test plan:
	// - Query/Mutation root names resolve.
	// - The Query root gets an Object Type entry.
	// - Scalars are not materialised as Type entries.

	sch, err := FromIntrospection([]byte(sampleIntrospection))
	require.NoError(t, err)

	assert.Equal(t, "Query", sch.QueryRootName)
	assert.Equal(t, "Mutation", sch.MutationRootName)

	queryType, ok := sch.TypeDefinition("Query")
	require.True(t, ok)
	assert.Equal(t, KindObject, queryType.Kind)

	_, ok = sch.TypeDefinition("String")
	assert.False(t, ok, "scalars should not get a Type entry")
}

func TestFromIntrospection_FieldTypeResolvesThroughWrappers(t *testing.T) {
	sch, err := FromIntrospection([]byte(sampleIntrospection))
	require.NoError(t, err)

	queryType, _ := sch.TypeDefinition("Query")
	userType, err := sch.FieldType(queryType, "user")
	require.NoError(t, err)
	assert.Equal(t, "User", userType.Name())
	assert.Equal(t, KindObject, userType.Kind)
}

func TestFromIntrospection_FieldTypeErrorsOnUnknownField(t *testing.T) {
	sch, err := FromIntrospection([]byte(sampleIntrospection))
	require.NoError(t, err)

	queryType, _ := sch.TypeDefinition("Query")
	_, err = sch.FieldType(queryType, "doesNotExist")
	assert.Error(t, err)
}

func TestTypeClass_UnderlyingNameStripsAllWrappers(t *testing.T) {
	inner := TypeClass{Kind: ClassScalar, Name: "String"}
	list := TypeClass{Kind: ClassList, Inner: &inner}
	nonNull := TypeClass{Kind: ClassNonNull, Inner: &list}

	assert.Equal(t, "String", nonNull.UnderlyingTypeName())
}

func TestTypeClass_SkipNonNullOnlyStripsOutermost(t *testing.T) {
	inner := TypeClass{Kind: ClassScalar, Name: "String"}
	list := TypeClass{Kind: ClassList, Inner: &inner}
	nonNull := TypeClass{Kind: ClassNonNull, Inner: &list}

	skipped := nonNull.SkipNonNull()
	assert.Equal(t, ClassList, skipped.Kind)
}

func TestObjectType_FieldNamesFuzzyFilters(t *testing.T) {
	sch, err := FromIntrospection([]byte(sampleIntrospection))
	require.NoError(t, err)

	userType, _ := sch.TypeDefinition("User")
	elems := userType.Object.FieldNames("nm")
	require.Len(t, elems, 1)
	assert.Equal(t, "name", elems[0].Name)
}

func TestArgList_ArgNamesAndArgType(t *testing.T) {
	sch, err := FromIntrospection([]byte(sampleIntrospection))
	require.NoError(t, err)

	queryType, _ := sch.TypeDefinition("Query")
	args, err := sch.ArgListFor(queryType, "user")
	require.NoError(t, err)

	elems := args.ArgNames("")
	require.Len(t, elems, 1)
	assert.Equal(t, "id", elems[0].Name)

	argType, ok := args.ArgType("id")
	require.True(t, ok)
	assert.Equal(t, ClassNonNull, argType.Kind)
	assert.Equal(t, "ID", argType.UnderlyingTypeName())
}

func TestUnionType_PossibleTypeNames(t *testing.T) {
	sch, err := FromIntrospection([]byte(sampleIntrospection))
	require.NoError(t, err)

	queryType, _ := sch.TypeDefinition("Query")
	searchType, err := sch.FieldType(queryType, "search")
	require.NoError(t, err)
	require.Equal(t, KindUnion, searchType.Kind)

	elems := searchType.Union.PossibleTypeNames("")
	require.Len(t, elems, 2)
	assert.Equal(t, "User", elems[0].Name)
	assert.Equal(t, "Org", elems[1].Name)
}

func TestEnumType_ValueNames(t *testing.T) {
	sch, err := FromIntrospection([]byte(sampleIntrospection))
	require.NoError(t, err)

	roleType, ok := sch.TypeDefinition("UserRole")
	require.True(t, ok)
	elems := roleType.Enum.ValueNames("A")
	require.Len(t, elems, 1)
	assert.Equal(t, "ADMIN", elems[0].Name)
}

func TestFromIntrospection_InputObjectFieldsResolve(t *testing.T) {
	sch, err := FromIntrospection([]byte(sampleIntrospection))
	require.NoError(t, err)

	inputType, ok := sch.TypeDefinition("CreateUserInput")
	require.True(t, ok)
	require.Equal(t, KindInputObject, inputType.Kind)

	roleClass, ok := sch.InputFieldClass(inputType, "role")
	require.True(t, ok)
	assert.Equal(t, ClassEnum, roleClass.Kind)

	names, err := sch.InputFieldNames(inputType, "")
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestFromIntrospection_MissingQueryTypeErrors(t *testing.T) {
	_, err := FromIntrospection([]byte(`{"data":{"__schema":{"types":[]}}}`))
	assert.Error(t, err)
}
