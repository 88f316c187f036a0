package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UsernameKeyPrefix   = "username:%d"
	PostLikersKeyPrefix = "post:%d:likers"
)

const (
	UsernameTTL   = 5 * time.Minute
	PostLikersTTL = 1 * time.Minute
)

func UsernameKey(userID uint) string {
	return fmt.Sprintf(UsernameKeyPrefix, userID)
}

func PostLikersKey(postID uint) string {
	return fmt.Sprintf(PostLikersKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUsername(ctx context.Context, userID uint) {
	Invalidate(ctx, UsernameKey(userID))
}

func InvalidatePostLikers(ctx context.Context, postID uint) {
	Invalidate(ctx, PostLikersKey(postID))
}
