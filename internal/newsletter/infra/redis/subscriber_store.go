package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const subscribersKey = "storefront:newsletter"

type SubscriberStore struct {
	client *redis.Client
}

func NewSubscriberStore(client *redis.Client) *SubscriberStore {
	return &SubscriberStore{client: client}
}

func (s *SubscriberStore) Add(ctx context.Context, email string) (bool, error) {
	added, err := s.client.SAdd(ctx, subscribersKey, email).Result()
	if err != nil {
		return false, err
	}
	return added > 0, nil
}
