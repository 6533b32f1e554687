package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport/server/stdio"
	protoschema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/motley/client"
)

type forwardCall struct {
	Method string
	Params json.RawMessage
}

type fakeForwarder struct {
	mux     sync.Mutex
	calls   []forwardCall
	forward func(ctx context.Context, method string) (json.RawMessage, error)
}

func (f *fakeForwarder) Forward(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	data, _ := json.Marshal(params)
	f.mux.Lock()
	f.calls = append(f.calls, forwardCall{Method: method, Params: data})
	f.mux.Unlock()
	return f.forward(ctx, method)
}

func (f *fakeForwarder) Calls() []forwardCall {
	f.mux.Lock()
	defer f.mux.Unlock()
	return append([]forwardCall(nil), f.calls...)
}

func failingForwarder(message string) *fakeForwarder {
	return &fakeForwarder{forward: func(ctx context.Context, method string) (json.RawMessage, error) {
		return nil, errors.New(message)
	}}
}

func replyingForwarder(result string) *fakeForwarder {
	return &fakeForwarder{forward: func(ctx context.Context, method string) (json.RawMessage, error) {
		return json.RawMessage(result), nil
	}}
}

func newTestHandler(t *testing.T, forwarder Forwarder) *Handler {
	t.Helper()
	srv, err := New(forwarder, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return srv.newHandler()
}

func serve(handler *Handler, method string, params string) *jsonrpc.Response {
	request := &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Method: method, Id: 1}
	if params != "" {
		request.Params = []byte(params)
	}
	response := &jsonrpc.Response{}
	handler.Serve(context.Background(), request, response)
	return response
}

func TestHandler_Initialize(t *testing.T) {
	handler := newTestHandler(t, replyingForwarder(`{}`))
	response := serve(handler, "initialize", `{"protocolVersion":"2025-06-18","clientInfo":{"name":"agent","version":"1"},"capabilities":{}}`)
	require.Nil(t, response.Error)

	var result protoschema.InitializeResult
	require.NoError(t, json.Unmarshal(response.Result, &result))
	assert.Equal(t, "motley", result.ServerInfo.Name)
	assert.Equal(t, "0.1.0", result.ServerInfo.Version)
	assert.Equal(t, protoschema.LatestProtocolVersion, result.ProtocolVersion)
	assert.NotNil(t, result.Capabilities.Tools)

	assert.False(t, handler.Initialized())
	handler.OnNotification(context.Background(), &jsonrpc.Notification{Method: "notifications/initialized"})
	assert.True(t, handler.Initialized())
}

func TestHandler_Ping(t *testing.T) {
	forwarder := replyingForwarder(`{}`)
	response := serve(newTestHandler(t, forwarder), "ping", "")
	require.Nil(t, response.Error)
	assert.JSONEq(t, `{}`, string(response.Result))
	assert.Empty(t, forwarder.Calls())
}

func TestHandler_ListTools(t *testing.T) {
	var testCases = []struct {
		description string
		forwarder   *fakeForwarder
		expect      string
	}{
		{
			description: "relays remote result verbatim",
			forwarder:   replyingForwarder(`{"tools": [{"name":"search","inputSchema":{"type":"object"}}]}`),
			expect:      `{"tools": [{"name":"search","inputSchema":{"type":"object"}}]}`,
		},
		{
			description: "relays non tool shaped result",
			forwarder:   replyingForwarder(`{"unexpected":true}`),
			expect:      `{"unexpected":true}`,
		},
		{
			description: "degrades to empty list",
			forwarder:   failingForwarder("remote down"),
			expect:      `{"tools":[]}`,
		},
	}
	for _, testCase := range testCases {
		response := serve(newTestHandler(t, testCase.forwarder), "tools/list", `{}`)
		require.Nil(t, response.Error, testCase.description)
		assert.Equal(t, testCase.expect, string(response.Result), testCase.description)

		calls := testCase.forwarder.Calls()
		require.Len(t, calls, 1, testCase.description)
		assert.Equal(t, "tools/list", calls[0].Method, testCase.description)
		assert.JSONEq(t, `{}`, string(calls[0].Params), testCase.description)
	}
}

func TestHandler_CallTool(t *testing.T) {
	var testCases = []struct {
		description  string
		forwarder    *fakeForwarder
		params       string
		expectParams string
		expect       string
	}{
		{
			description:  "relays remote result verbatim",
			forwarder:    replyingForwarder(`{"content":[{"type":"text","text":"found"}]}`),
			params:       `{"name":"search","arguments":{"q":"x"}}`,
			expectParams: `{"name":"search","arguments":{"q":"x"}}`,
			expect:       `{"content":[{"type":"text","text":"found"}]}`,
		},
		{
			description:  "missing arguments default to empty object",
			forwarder:    replyingForwarder(`{"content":[]}`),
			params:       `{"name":"now"}`,
			expectParams: `{"name":"now","arguments":{}}`,
			expect:       `{"content":[]}`,
		},
		{
			description:  "empty name left to the remote",
			forwarder:    failingForwarder("unknown tool: "),
			params:       `{"arguments":{"q":"x"}}`,
			expectParams: `{"name":"","arguments":{"q":"x"}}`,
			expect:       `{"content":[{"type":"text","text":"Error: unknown tool: "}],"isError":true}`,
		},
		{
			description:  "failure reported in band",
			forwarder:    failingForwarder("boom"),
			params:       `{"name":"search","arguments":{"q":"x"}}`,
			expectParams: `{"name":"search","arguments":{"q":"x"}}`,
			expect:       `{"content":[{"type":"text","text":"Error: boom"}],"isError":true}`,
		},
	}
	for _, testCase := range testCases {
		response := serve(newTestHandler(t, testCase.forwarder), "tools/call", testCase.params)
		require.Nil(t, response.Error, testCase.description)
		assert.JSONEq(t, testCase.expect, string(response.Result), testCase.description)

		calls := testCase.forwarder.Calls()
		require.Len(t, calls, 1, testCase.description)
		assert.Equal(t, "tools/call", calls[0].Method, testCase.description)
		assert.Equal(t, testCase.expectParams, string(calls[0].Params), testCase.description)
	}
}

func TestHandler_CallTool_InvalidParams(t *testing.T) {
	forwarder := replyingForwarder(`{}`)
	handler := newTestHandler(t, forwarder)

	response := serve(handler, "tools/call", `{"name":`)
	require.NotNil(t, response.Error)
	assert.Contains(t, response.Error.Message, "failed to parse")

	response = serve(handler, "tools/call", `["search"]`)
	require.NotNil(t, response.Error)
	assert.Empty(t, forwarder.Calls())
}

func TestHandler_Rejects(t *testing.T) {
	forwarder := replyingForwarder(`{}`)
	handler := newTestHandler(t, forwarder)

	response := serve(handler, "resources/list", `{}`)
	require.NotNil(t, response.Error)
	assert.Contains(t, response.Error.Message, "resources/list")

	request := &jsonrpc.Request{Jsonrpc: "1.0", Method: "tools/list", Id: 2}
	response = &jsonrpc.Response{}
	handler.Serve(context.Background(), request, response)
	require.NotNil(t, response.Error)
	assert.Empty(t, forwarder.Calls())
}

func TestHandler_EndToEnd(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		envelope := struct {
			Id     string          `json:"id"`
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		assert.Equal(t, "tools/call", envelope.Method)
		assert.JSONEq(t, `{"name":"search","arguments":{"q":"x"}}`, string(envelope.Params))
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"` + envelope.Id + `","result":{"content":[{"type":"text","text":"found"}]}}`))
	}))
	defer remote.Close()

	cli, err := client.New(client.Config{URL: remote.URL, APIKey: "key"}, client.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	handler := newTestHandler(t, cli)

	response := serve(handler, "tools/call", `{"name":"search","arguments":{"q":"x"}}`)
	require.Nil(t, response.Error)
	assert.Equal(t, `{"content":[{"type":"text","text":"found"}]}`, string(response.Result))
}

func TestHandler_EndToEnd_RemoteDown(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer remote.Close()

	cli, err := client.New(client.Config{URL: remote.URL, APIKey: "key"}, client.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	handler := newTestHandler(t, cli)

	response := serve(handler, "tools/list", "")
	require.Nil(t, response.Error)
	assert.JSONEq(t, `{"tools":[]}`, string(response.Result))

	response = serve(handler, "tools/call", `{"name":"search"}`)
	require.Nil(t, response.Error)
	assert.JSONEq(t, `{"content":[{"type":"text","text":"Error: HTTP 503: maintenance\n"}],"isError":true}`, string(response.Result))
}

func TestServer_Stdio(t *testing.T) {
	forwarder := replyingForwarder(`{"tools":[{"name":"search"}]}`)
	srv, err := New(forwarder, WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	input := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-06-18","clientInfo":{"name":"agent","version":"1"},"capabilities":{}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","method":"notifications/cancelled","params":{"requestId":1}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/list"}`,
	}, "\n") + "\n"

	stdout := os.Stdout
	outReader, outWriter, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = outWriter
	endpoint := srv.Stdio(context.Background(), stdio.WithReader(io.NopCloser(strings.NewReader(input))))
	os.Stdout = stdout

	require.NoError(t, endpoint.ListenAndServe())
	require.NoError(t, outWriter.Close())
	output, err := io.ReadAll(outReader)
	require.NoError(t, err)

	type reply struct {
		Id     int             `json:"id"`
		Result json.RawMessage `json:"result"`
		Error  *jsonrpc.Error  `json:"error"`
	}
	var replies []reply
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		aReply := reply{}
		require.NoError(t, json.Unmarshal([]byte(line), &aReply), line)
		replies = append(replies, aReply)
	}
	require.Len(t, replies, 3)

	assert.Equal(t, 1, replies[0].Id)
	assert.Nil(t, replies[0].Error)
	assert.Contains(t, string(replies[0].Result), `"serverInfo"`)

	assert.Equal(t, 2, replies[1].Id)
	assert.Nil(t, replies[1].Error)
	assert.JSONEq(t, `{"tools":[{"name":"search"}]}`, string(replies[1].Result))

	assert.Equal(t, 3, replies[2].Id)
	require.NotNil(t, replies[2].Error)
	assert.Equal(t, jsonrpc.MethodNotFound, replies[2].Error.Code)

	calls := forwarder.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "tools/list", calls[0].Method)
}

func TestNew(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(replyingForwarder(`{}`), WithImplementation(protoschema.Implementation{}))
	assert.Error(t, err)

	srv, err := New(replyingForwarder(`{}`),
		WithImplementation(protoschema.Implementation{Name: "custom", Version: "2.0"}),
		WithProtocolVersion("2024-11-05"))
	require.NoError(t, err)
	assert.Equal(t, "custom", srv.info.Name)
	assert.Equal(t, "2024-11-05", srv.protocolVersion)
	assert.NotNil(t, srv.NewHandler(context.Background(), nil))
}
