package v1

import "github.com/zodyking/textnow-gateway/internal/service"

type ConversationsResponse struct {
	Conversations []service.ConversationSummary `json:"conversations"`
	Total         int                           `json:"total"`
}

type MessagesResponse struct {
	Messages []service.MessageView `json:"messages"`
	Total    int                   `json:"total"`
}

type SendResponse struct {
	Status string `json:"status"`
}

type UserResponse struct {
	User service.UserView `json:"user"`
}
