package transport

import (
	"errors"
	"testing"
)

func TestRequestBuilder_Valid(t *testing.T) {
	req, err := NewRequest(OpFindByID, "users").
		ID(123).
		Param("expand", "profile").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if req.Op() != OpFindByID {
		t.Errorf("expected FindByID, got %s", req.Op())
	}
	if req.Resource() != "users" {
		t.Errorf("expected users, got %s", req.Resource())
	}
	if req.ID() != "123" {
		t.Errorf("expected id 123, got %q", req.ID())
	}
	if got := req.Params()["expand"]; got != "profile" {
		t.Errorf("expected expand=profile, got %q", got)
	}
}

func TestRequestBuilder_MissingOperation(t *testing.T) {
	_, err := NewRequest(Operation(0), "users").Build()
	if err == nil {
		t.Fatal("expected build to fail without operation")
	}
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
}

func TestRequestBuilder_BlankResource(t *testing.T) {
	for _, resource := range []string{"", "   "} {
		_, err := NewRequest(OpFindAll, resource).Build()
		if err == nil {
			t.Fatalf("expected build to fail for resource %q", resource)
		}
		if !errors.Is(err, ErrBadRequest) {
			t.Errorf("expected ErrBadRequest for resource %q, got %v", resource, err)
		}
	}
}

func TestRequest_ParamsCopied(t *testing.T) {
	req, err := NewRequest(OpQuery, "users").Param("page", 2).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	params := req.Params()
	params["page"] = "tampered"

	if got := req.Params()["page"]; got != "2" {
		t.Errorf("request params mutated through copy: got %q", got)
	}
}

func TestRequest_PayloadJSON(t *testing.T) {
	type user struct {
		Name string `json:"name"`
	}

	req, err := NewRequest(OpSave, "users").Payload(user{Name: "ada"}).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	data, err := req.PayloadJSON()
	if err != nil {
		t.Fatalf("payload json: %v", err)
	}
	if string(data) != `{"name":"ada"}` {
		t.Errorf("unexpected payload: %s", data)
	}
}

func TestRequest_PayloadJSON_Absent(t *testing.T) {
	req, err := NewRequest(OpCount, "users").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	data, err := req.PayloadJSON()
	if err != nil {
		t.Fatalf("payload json: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil payload, got %s", data)
	}
}

func TestRequest_PayloadJSON_Unmarshalable(t *testing.T) {
	req, err := NewRequest(OpSave, "users").Payload(func() {}).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	_, err = req.PayloadJSON()
	if !errors.Is(err, ErrSerialization) {
		t.Errorf("expected ErrSerialization, got %v", err)
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{123, "123"},
		{int64(1 << 40), "1099511627776"},
		{uint64(7), "7"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.in); got != tc.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOperation_Slug(t *testing.T) {
	cases := map[Operation]string{
		OpFindByID: "get-by-id",
		OpFindAll:  "get-all",
		OpQuery:    "query",
		OpSave:     "save",
		OpDelete:   "delete",
		OpExists:   "exists",
		OpCount:    "count",
	}
	for op, want := range cases {
		if got := op.Slug(); got != want {
			t.Errorf("%s.Slug() = %q, want %q", op, got, want)
		}
	}
}

func TestOperation_IsList(t *testing.T) {
	for _, op := range []Operation{OpFindAll, OpQuery} {
		if !op.IsList() {
			t.Errorf("%s should be a list operation", op)
		}
	}
	for _, op := range []Operation{OpFindByID, OpSave, OpDelete, OpExists, OpCount} {
		if op.IsList() {
			t.Errorf("%s should not be a list operation", op)
		}
	}
}
