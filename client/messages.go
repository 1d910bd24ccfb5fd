package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-backend/models"
)

// MessageStore owns the contact-message inbox. Listing and mutation require
// a signed-in session; submission is public.
type MessageStore struct {
	collection[models.Message]
	c *Client
}

func newMessageStore(c *Client) *MessageStore {
	s := &MessageStore{c: c}
	s.fetchFn = func(ctx context.Context, f Filter) ([]models.Message, error) {
		var out struct {
			Messages []models.Message `json:"messages"`
		}
		if err := c.do(ctx, http.MethodGet, "/messages", nil, nil, &out); err != nil {
			return nil, err
		}
		return out.Messages, nil
	}
	return s
}

// MarkRead flips the read flag and refetches the inbox.
func (s *MessageStore) MarkRead(ctx context.Context, id uuid.UUID, read bool) error {
	return s.mutate(ctx, func() error {
		body := map[string]bool{"read": read}
		return s.c.do(ctx, http.MethodPatch, "/message/"+id.String()+"/read", nil, body, nil)
	})
}

// Delete removes a message and refetches the inbox.
func (s *MessageStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.mutate(ctx, func() error {
		return s.c.do(ctx, http.MethodDelete, "/message/"+id.String(), nil, nil, nil)
	})
}

// SubmitContact writes one contact-form submission. No session is required
// and no email is dispatched.
func (c *Client) SubmitContact(ctx context.Context, message models.Message) error {
	return c.do(ctx, http.MethodPost, "/contact", nil, message, nil)
}
