package gateway

import (
	"fmt"

	"github.com/itarato/gomqlet/internal/schema"
)

// introspectionQuery is the canonical introspection document, identical
// in shape to guusec-gqlparse's const of the same purpose — every field
// the schema package's introspectionFullType/introspectionField structs
// decode must be requested here.
const introspectionQuery = `{__schema{queryType{name}mutationType{name}subscriptionType{name}types{...FullType}directives{name locations args{...InputValue}}}}fragment FullType on __Type{kind name fields(includeDeprecated:true){name args{...InputValue}type{...TypeRef}isDeprecated}inputFields{...InputValue}interfaces{...TypeRef}enumValues(includeDeprecated:true){name isDeprecated}possibleTypes{...TypeRef}}fragment InputValue on __InputValue{name type{...TypeRef}defaultValue}fragment TypeRef on __Type{kind name ofType{kind name ofType{kind name ofType{kind name ofType{kind name ofType{kind name ofType{kind name}}}}}}}}`

// FetchIntrospectionJSON runs the canonical introspection query through
// executor and returns the raw JSON response body, for callers that want
// to cache it to disk (the `introspect` command) as well as those that
// only want the parsed schema.Schema (Introspect, below).
func FetchIntrospectionJSON(executor Executor) ([]byte, error) {
	body, err := executor.Execute(introspectionQuery)
	if err != nil {
		return nil, fmt.Errorf("gateway: introspection request: %w", err)
	}
	return body, nil
}

// Introspect runs the canonical introspection query through executor and
// builds a *schema.Schema from the JSON it returns.
func Introspect(executor Executor) (*schema.Schema, error) {
	body, err := FetchIntrospectionJSON(executor)
	if err != nil {
		return nil, err
	}

	sch, err := schema.FromIntrospection(body)
	if err != nil {
		return nil, fmt.Errorf("gateway: building schema from introspection response: %w", err)
	}

	return sch, nil
}
