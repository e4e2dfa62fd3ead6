// cmd/factweave/chat_test.go
package main

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatEmptyMessage(t *testing.T) {
	agent := &ChatAgent{model: &fakeCompleter{}, modelName: "test"}

	_, err := agent.Chat(context.Background(), "   ", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "message is required")
}

func TestChatWithoutModel(t *testing.T) {
	agent := &ChatAgent{modelName: "test"}

	reply, err := agent.Chat(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, cannedChatReply, reply)
}

func TestChatModelFailureDegrades(t *testing.T) {
	agent := &ChatAgent{model: &fakeCompleter{err: errors.New("timeout")}, modelName: "test"}

	reply, err := agent.Chat(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, cannedChatReply, reply)
}

func TestChatWindowsHistory(t *testing.T) {
	fake := &fakeCompleter{reply: "  sure, here is how scoring works  "}
	agent := &ChatAgent{model: fake, modelName: "test"}

	history := []ChatMessage{
		{Role: "user", Content: "one"},
		{Role: "assistant", Content: "two"},
		{Role: "user", Content: "three"},
		{Role: "assistant", Content: "four"},
		{Role: "user", Content: "five"},
	}
	reply, err := agent.Chat(context.Background(), "how are scores computed?", history)

	require.NoError(t, err)
	assert.Equal(t, "sure, here is how scoring works", reply)

	// system + last 3 history turns + the new message
	require.Len(t, fake.lastReq.Messages, 5)
	assert.Equal(t, openai.ChatMessageRoleSystem, fake.lastReq.Messages[0].Role)
	assert.Equal(t, "three", fake.lastReq.Messages[1].Content)
	assert.Equal(t, "four", fake.lastReq.Messages[2].Content)
	assert.Equal(t, openai.ChatMessageRoleAssistant, fake.lastReq.Messages[2].Role)
	assert.Equal(t, "five", fake.lastReq.Messages[3].Content)
	assert.Equal(t, "how are scores computed?", fake.lastReq.Messages[4].Content)
}
