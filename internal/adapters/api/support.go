package api

import (
	"context"
	"fmt"

	"github.com/mvetrov/assetmart-cli/internal/domain"
)

const conversationsTag = "conversations"

type faqSchema struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type conversationSchema struct {
	ID            int64  `json:"id"`
	Subject       string `json:"subject"`
	UnreadCount   int    `json:"unread_count"`
	LastMessageAt string `json:"last_message_at"`
}

func (c *Client) FAQs(ctx context.Context, opts QueryOptions) ([]domain.FAQ, error) {
	var result []faqSchema
	if err := c.GetJSON(ctx, "faqs", nil, &result, opts); err != nil {
		return nil, err
	}

	faqs := make([]domain.FAQ, 0, len(result))
	for _, faq := range result {
		faqs = append(faqs, domain.FAQ{
			ID:       faq.ID,
			Category: faq.Category,
			Question: faq.Question,
			Answer:   faq.Answer,
		})
	}

	return faqs, nil
}

func (c *Client) Conversations(ctx context.Context, page domain.Pagination, opts QueryOptions) (domain.Page[domain.Conversation], error) {
	var result pageSchema[conversationSchema]
	if err := c.GetJSON(ctx, "conversations", pageArgs(page), &result, opts); err != nil {
		return domain.Page[domain.Conversation]{}, err
	}

	return fromPageSchema(result, fromConversationSchema), nil
}

func (c *Client) DeleteConversation(ctx context.Context, id int64) error {
	return c.DeleteJSON(ctx, fmt.Sprintf("conversations/%d", id), nil, conversationsTag)
}

func fromConversationSchema(conversation conversationSchema) domain.Conversation {
	return domain.Conversation{
		ID:            conversation.ID,
		Subject:       conversation.Subject,
		UnreadCount:   conversation.UnreadCount,
		LastMessageAt: parseTime(conversation.LastMessageAt),
	}
}
