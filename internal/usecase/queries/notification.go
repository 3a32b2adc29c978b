package queries

import "context"

const notificationHistoryLimit = 50

type NotificationQueries interface {
	// History returns recently sent messages, newest first.
	History(ctx context.Context) ([]*NotificationMessageView, error)
}

type NotificationReadStore interface {
	FindRecent(ctx context.Context, limit int32) ([]*NotificationMessageView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{
		readStore: readStore,
	}
}

func (q *notificationQueriesImpl) History(ctx context.Context) ([]*NotificationMessageView, error) {
	return q.readStore.FindRecent(ctx, notificationHistoryLimit)
}
