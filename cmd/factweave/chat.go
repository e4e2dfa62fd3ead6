// cmd/factweave/chat.go
package main

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// cannedChatReply is returned when no model is configured or the model fails.
const cannedChatReply = "I'm here to help! I can assist you with verifying claims, checking crisis alerts, or navigating the platform. How can I help you today?"

// chatSystemPrompt frames the assistant for the verification platform.
const chatSystemPrompt = `You are a helpful AI assistant for a fact-checking and misinformation detection platform.
You can help users verify claims, check crisis alerts, navigate the platform, and understand credibility scores.
Be concise, helpful, and accurate.`

// chatHistoryWindow is how many trailing turns of history are forwarded.
const chatHistoryWindow = 3

// ChatAgent answers platform questions conversationally.
type ChatAgent struct {
	model     completer
	modelName string
}

// NewChatAgent creates a chat agent.
func NewChatAgent(cfg *Config) *ChatAgent {
	agent := &ChatAgent{modelName: cfg.OpenAIModel}
	if cfg.OpenAIAPIKey != "" {
		agent.model = openai.NewClient(cfg.OpenAIAPIKey)
	}
	return agent
}

// Chat answers one user message with the trailing history as context. An
// empty message is the only caller-visible error; model absence or failure
// degrades to the canned reply.
func (a *ChatAgent) Chat(ctx context.Context, message string, history []ChatMessage) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message is required")
	}

	if a.model == nil {
		return cannedChatReply, nil
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
	}
	start := len(history) - chatHistoryWindow
	if start < 0 {
		start = 0
	}
	for _, msg := range history[start:] {
		role := openai.ChatMessageRoleAssistant
		if msg.Role == "user" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := a.model.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.modelName,
		Messages: messages,
	})
	if err != nil {
		GetLogger().Error("Chat completion failed: %v", err)
		return cannedChatReply, nil
	}
	if len(resp.Choices) == 0 {
		return cannedChatReply, nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
